package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/pkg/token"
)

const (
	// ContextAccountID is the gin context key for the authenticated account.
	ContextAccountID = "account_id"
	// ContextRole is the gin context key for the authenticated role.
	ContextRole = "role"
)

type AuthMiddleware struct {
	tokens token.Service
}

func NewAuthMiddleware(tokens token.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the bearer token and puts the account id and role
// on the context. Missing or invalid credentials abort with a bare 403.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ContextAccountID, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role does not match.
func (m *AuthMiddleware) RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "access denied for this role",
			})
			return
		}
		c.Next()
	}
}
