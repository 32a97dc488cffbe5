package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// ValidRole reports whether role is one of the accepted user roles.
func ValidRole(role string) bool {
	return role == RoleMember || role == RoleAdmin
}

// User is an account holder. The password column holds a bcrypt hash and is
// never serialized; repository reads exclude it unless explicitly selected.
type User struct {
	ID        int       `db:"id" json:"_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Tel       string    `db:"tel" json:"tel"`
	Password  string    `db:"password" json:"-"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MatchPassword compares a candidate password against the stored hash.
func (u *User) MatchPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
