package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository/memory"
	authService "github.com/jwalitptl/pharmacy-api/internal/service/auth"
	"github.com/jwalitptl/pharmacy-api/pkg/security"
	"github.com/jwalitptl/pharmacy-api/pkg/token"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	svc := authService.NewService(store, token.NewService("test-secret", time.Hour), security.NewBcryptHasher(4))

	r := gin.New()
	api := r.Group("/api")
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterThenLogin(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", model.RegisterRequest{
		ID:       "pharm1",
		Username: "carol",
		Password: "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"Pharmacist"`)

	w = postJSON(t, r, "/api/auth/login", model.LoginRequest{
		Username: "carol",
		Password: "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RolePharmacist, resp.Role)
	assert.Equal(t, "pharm1", resp.ID)
}

func TestRegister_InvalidIDPrefix(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", model.RegisterRequest{
		ID:       "nurse1",
		Username: "eve",
		Password: "pw123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid ID format")
}

func TestRegister_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", map[string]string{"id": "doc1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/login", model.LoginRequest{Username: "ghost", Password: "pw"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/api/auth/register", model.RegisterRequest{
		ID:       "doc1",
		Username: "alice",
		Password: "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/login", model.LoginRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid password")
}
