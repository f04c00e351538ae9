package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the claim set encoded inside an issued token. Subject carries
// the user's email, ID the unique token id (jti), UserID the stable user id.
type AuthClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasAnyRole reports whether the claim set's roles intersect required.
// An empty required set always passes.
func (c *AuthClaims) HasAnyRole(required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, want := range required {
		for _, have := range c.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
