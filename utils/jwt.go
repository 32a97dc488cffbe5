package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"booking-service/config"
)

// Claims bind a session token to a user identity.
type Claims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a session token for the user. The token expiration is
// aligned with the cookie lifetime.
func GenerateJWT(userID int, role string) (string, error) {
	expiration := time.Now().Add(time.Duration(config.CookieExpireDays) * 24 * time.Hour)
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiration),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTKey)
}

// ParseJWT validates a token and returns its claims.
func ParseJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// CookieOptions describe how the session cookie is delivered.
type CookieOptions struct {
	MaxAge   int
	Secure   bool
	HTTPOnly bool
}

// TokenCookieOptions returns the cookie policy for freshly issued tokens:
// always HTTP-only, secure only in production so local development over plain
// HTTP still keeps the cookie.
func TokenCookieOptions() CookieOptions {
	return CookieOptions{
		MaxAge:   config.CookieExpireDays * 24 * 60 * 60,
		Secure:   config.IsProduction(),
		HTTPOnly: true,
	}
}
