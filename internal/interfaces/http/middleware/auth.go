package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/constants"
	"github.com/garagehq/shopapi/internal/shared/utils"
)

// TokenVerifier resolves a bearer token to the caller's identity.
type TokenVerifier interface {
	Verify(token string) (*authorization.Identity, error)
}

// AuthMiddleware only reads the request: it neither logs nor writes state
// beyond the identity of an accepted caller.
type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := m.authenticate(c)
		if !ok {
			return
		}
		authorization.SetIdentity(c, *identity)
		c.Next()
	}
}

// RequireRole is RequireAuth plus a role check. A token without one of the
// roles is rejected with 403.
func (m *AuthMiddleware) RequireRole(roles ...authorization.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := m.authenticate(c)
		if !ok {
			return
		}
		if !identity.HasRole(roles...) {
			utils.ErrorResponse(c, http.StatusForbidden, roleMessage(roles))
			c.Abort()
			return
		}
		authorization.SetIdentity(c, *identity)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*authorization.Identity, bool) {
	token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAuthHeaderInvalid)
		c.Abort()
		return nil, false
	}

	identity, err := m.verifier.Verify(token)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgInvalidToken)
		c.Abort()
		return nil, false
	}
	return identity, true
}

// bearerToken extracts the token from "Bearer <token>". The scheme is
// matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

func roleMessage(roles []authorization.UserRole) string {
	for _, r := range roles {
		if r == authorization.RoleMechanic {
			return constants.ErrMsgMechanicRequired
		}
	}
	return "insufficient permissions"
}
