package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oceanbreeze/internal/middleware"
	"oceanbreeze/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authEnvelope struct {
	Success bool         `json:"success"`
	Data    AuthResponse `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := newTestService(t)
	jwtService := jwt.New("test-secret", time.Hour)
	h := NewHandler(svc, jwtService)

	r := gin.New()
	v1 := r.Group("/api/v1")
	h.RegisterPublicRoutes(v1)
	h.RegisterProtectedRoutes(v1.Group("", middleware.JWTAuth(jwtService, svc.state)))
	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) AuthResponse {
	t.Helper()
	var env authEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success)
	return env.Data
}

func TestHandler_RegisterThenMe(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"username":"maria","password":"s3cret","email":"maria@example.com","fullName":"Maria Silva","dateOfBirth":"1992-03-03"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "s3cret")

	auth := decodeAuth(t, w)
	assert.Equal(t, "maria", auth.User.Username)
	require.NotEmpty(t, auth.Token)

	w = doJSON(r, http.MethodGet, "/api/v1/auth/me", "", auth.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dateOfBirth":"1992-03-03"`)

	w = doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"username":"maria","password":"x","email":"z@example.com","fullName":"Z"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "USERNAME_TAKEN")
}

func TestHandler_LoginElsewhereInvalidatesToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"username":"maria","password":"s3cret","email":"maria@example.com","fullName":"Maria Silva"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	mariaToken := decodeAuth(t, w).Token

	w = doJSON(r, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"admin123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	adminToken := decodeAuth(t, w).Token

	w = doJSON(r, http.MethodGet, "/api/v1/auth/me", "", mariaToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")

	w = doJSON(r, http.MethodPost, "/api/v1/auth/logout", "", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/auth/me", "", adminToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_LoginFailure(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")

	w = doJSON(r, http.MethodPost, "/api/v1/auth/login", `{"username":"admin"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateProfile(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"username":"maria","password":"s3cret","email":"maria@example.com","fullName":"Maria Silva"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	token := decodeAuth(t, w).Token

	w = doJSON(r, http.MethodPut, "/api/v1/auth/profile", `{"fullName":"Maria Costa"}`, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Maria Costa")

	w = doJSON(r, http.MethodPut, "/api/v1/auth/profile", `{"email":"user@oceanbreeze.com.br"}`, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EMAIL_TAKEN")
}
