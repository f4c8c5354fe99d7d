package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/repository"
	"oceanbreeze/internal/state"
	"oceanbreeze/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, rooms []domain.Room, reservations []domain.Reservation, users []domain.StoredUser) *Service {
	t.Helper()
	ctx := context.Background()

	store := repository.NewStore(storage.NewMemoryKV())
	require.NoError(t, store.SaveReservations(ctx, reservations))
	require.NoError(t, store.SaveUsers(ctx, users))

	st := state.New(store)
	require.NoError(t, st.Load(ctx, rooms))
	return NewService(st)
}

func TestStats(t *testing.T) {
	rooms := []domain.Room{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}, {ID: "3", Name: "C"}}
	reservations := []domain.Reservation{
		{ID: "r1", RoomID: "1", TotalPrice: 300},
		{ID: "r2", RoomID: "2", TotalPrice: 450.5},
	}
	svc := newTestService(t, rooms, reservations, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRooms)
	assert.Equal(t, 2, stats.TotalReservations)
	assert.Equal(t, 750.5, stats.TotalRevenue)
	assert.Equal(t, 67, stats.OccupancyRate)
}

func TestStats_NoRooms(t *testing.T) {
	svc := newTestService(t, nil, []domain.Reservation{{ID: "r1", RoomID: "gone", TotalPrice: 10}}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRooms)
	assert.Equal(t, 0, stats.OccupancyRate)
	assert.Equal(t, 10.0, stats.TotalRevenue)
}

func TestReservations_NewestFirstWithNames(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rooms := []domain.Room{{ID: "1", Name: "Suíte Oceano"}, {ID: "2", Name: "Quarto Jardim"}}
	reservations := []domain.Reservation{
		{ID: "old", UserID: "u1", RoomID: "1", CreatedAt: base},
		{ID: "new", UserID: "u2", RoomID: "2", CreatedAt: base.Add(time.Hour)},
	}
	users := []domain.StoredUser{{SessionUser: domain.SessionUser{ID: "u1", FullName: "Ana"}, Password: "p"}}
	svc := newTestService(t, rooms, reservations, users)

	rows, err := svc.Reservations(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "new", rows[0].ID)
	assert.Equal(t, "Quarto Jardim", rows[0].RoomName)
	assert.Empty(t, rows[0].GuestName)
	assert.Equal(t, "Suíte Oceano", rows[1].RoomName)
	assert.Equal(t, "Ana", rows[1].GuestName)
}

func TestReservations_SkipsDeletedRooms(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rooms := []domain.Room{{ID: "1", Name: "Suíte Oceano"}}
	reservations := []domain.Reservation{
		{ID: "r1", UserID: "u1", RoomID: "1", CreatedAt: base},
		{ID: "r2", UserID: "u1", RoomID: "deleted-room", CreatedAt: base.Add(time.Hour)},
	}
	svc := newTestService(t, rooms, reservations, nil)

	rows, err := svc.Reservations(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "r1", rows[0].ID)
	assert.Equal(t, "Suíte Oceano", rows[0].RoomName)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalReservations)
}

func TestHandler_UsersHidePasswords(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := []domain.StoredUser{{SessionUser: domain.SessionUser{ID: "u1", Username: "ana"}, Password: "hunter2"}}
	svc := newTestService(t, nil, nil, users)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/admin"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"ana"`)
	assert.NotContains(t, w.Body.String(), "hunter2")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
