// Package auth provides Gin middleware enforcing bearer-token auth. Token
// issuance lives elsewhere; this only resolves a capability token into an
// identity and role before requests reach the core.
package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mediscan-kh/mediscan/constants"
)

const contextKey = "auth_claims"

// Claims is the resolved identity attached to an authenticated request.
type Claims struct {
	UserID uuid.UUID
	Role   constants.Role
}

// IsAdmin reports whether the claims carry the admin role.
func (c Claims) IsAdmin() bool {
	return c.Role == constants.RoleAdmin
}

func withClaims(c *gin.Context, claims Claims) {
	c.Set(contextKey, claims)
}

// FromContext extracts the authenticated claims from a request context.
func FromContext(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}
