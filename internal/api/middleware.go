package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"booking-service/internal/db/models"
	"booking-service/utils"
)

const (
	ctxUserIDKey   = "userID"
	ctxUserRoleKey = "userRole"
)

// Protect rejects requests without a valid session token. The token is read
// from the "token" cookie first, then from an Authorization bearer header, and
// its claims are attached to the request context.
func Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("token")
		if err != nil || tokenStr == "" || tokenStr == "none" {
			tokenStr = ""
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenStr == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := utils.ParseJWT(tokenStr)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin allows only admin users past. Must run after Protect.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxUserRoleKey) != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"msg":     "User role is not authorized to access this route",
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"msg":     "Not authorized to access this route",
	})
}
