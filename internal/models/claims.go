package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the identity extracted from a validated bearer token.
// Subject carries the user's email.
type UserClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the claims carry the ADMIN role.
func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
