package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/shared/constants"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID uint
	Role   UserRole
}

// HasRole reports whether the identity holds any of roles.
func (i Identity) HasRole(roles ...UserRole) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// IsOwner reports whether ownerID is the caller.
func (i Identity) IsOwner(ownerID uint) bool {
	return i.UserID != 0 && i.UserID == ownerID
}

// SetIdentity stores id on the request context. The raw user_id and
// user_role keys are kept for loggers that read them directly.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(constants.ContextKeyIdentity, id)
	c.Set(constants.ContextKeyUserID, id.UserID)
	c.Set(constants.ContextKeyUserRole, id.Role.String())
}

// IdentityFrom returns the identity placed by the auth middleware.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(constants.ContextKeyIdentity)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
