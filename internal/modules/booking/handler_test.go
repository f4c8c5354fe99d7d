package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oceanbreeze/internal/middleware"
	"oceanbreeze/internal/pkg/jwt"
	"oceanbreeze/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, f *fixture) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, f.st.Update(context.Background(), func(tx *state.Tx) error {
		tx.SetSession(guest)
		return nil
	}))

	jwtService := jwt.New("test-secret", time.Hour)
	token, err := jwtService.GenerateToken(guest.ID, string(guest.Role))
	require.NoError(t, err)

	h := NewHandler(f.svc)
	r := gin.New()
	v1 := r.Group("/api/v1")
	h.RegisterPublicRoutes(v1)
	h.RegisterProtectedRoutes(v1.Group("", middleware.JWTAuth(jwtService, f.st)))
	return r, token
}

func TestHandler_SearchRooms(t *testing.T) {
	r, _ := newTestRouter(t, newFixture(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms?check_in=2024-01-10&check_out=2024-01-12", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms?check_in=2024-01-12&check_out=2024-01-12", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_DATE_RANGE")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms?check_in=12/01/2024", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms?check_in=0001-01-01&check_out=2024-01-12", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_CreateReservation(t *testing.T) {
	r, token := newTestRouter(t, newFixture(t))
	body := `{"roomId":"a","checkInDate":"2024-02-01","checkOutDate":"2024-02-04"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPrice":300`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "BOOKING_CONFLICT")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/reservations/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nights":3`)
}

func TestHandler_CreateReservation_RequiresToken(t *testing.T) {
	r, _ := newTestRouter(t, newFixture(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations",
		strings.NewReader(`{"roomId":"a","checkInDate":"2024-02-01","checkOutDate":"2024-02-04"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
