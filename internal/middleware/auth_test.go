package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/pkg/token"
)

func newAuthRouter(t *testing.T) (*gin.Engine, token.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := token.NewService("test-secret", time.Hour)
	m := NewAuthMiddleware(tokens)

	r := gin.New()
	r.GET("/pharmacist-only",
		m.Authenticate(),
		m.RequireRole(model.RolePharmacist),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"account": c.GetString(ContextAccountID)})
		})
	return r, tokens
}

func TestAuthenticate_MissingToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pharmacist-only", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pharmacist-only", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_WrongRole(t *testing.T) {
	r, tokens := newAuthRouter(t)

	tok, err := tokens.Issue("doc1", string(model.RoleDoctor))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pharmacist-only", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")
}

func TestRequireRole_MatchingRole(t *testing.T) {
	r, tokens := newAuthRouter(t)

	tok, err := tokens.Issue("pharm1", string(model.RolePharmacist))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pharmacist-only", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pharm1")
}
