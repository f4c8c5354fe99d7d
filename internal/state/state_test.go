package state

import (
	"context"
	"errors"
	"testing"

	"oceanbreeze/internal/domain"
	"oceanbreeze/internal/repository"
	"oceanbreeze/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRooms() []domain.Room {
	return []domain.Room{{ID: "1", Name: "Suíte Oceano", Price: 450}, {ID: "2", Name: "Quarto Deluxe", Price: 280}}
}

func newLoaded(t *testing.T, kv storage.KV) (*State, *repository.Store) {
	t.Helper()
	store := repository.NewStore(kv)
	st := New(store)
	require.NoError(t, st.Load(context.Background(), seedRooms()))
	return st, store
}

func TestLoad_SeedsRoomsOnlyWhenKeyAbsent(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	st, store := newLoaded(t, kv)
	require.NoError(t, st.View(ctx, func(tx *Tx) error {
		assert.Len(t, tx.Rooms(), 2)
		return nil
	}))

	require.NoError(t, store.SaveRooms(ctx, []domain.Room{}))

	again := New(store)
	require.NoError(t, again.Load(ctx, seedRooms()))
	require.NoError(t, again.View(ctx, func(tx *Tx) error {
		assert.Empty(t, tx.Rooms(), "an explicitly empty catalogue is not reseeded")
		return nil
	}))
}

func TestLoad_RestoresSession(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	store := repository.NewStore(kv)
	require.NoError(t, store.SaveSession(ctx, domain.SessionUser{ID: "u1", Username: "maria"}))

	st := New(store)
	require.NoError(t, st.Load(ctx, nil))

	session := st.Session()
	require.NotNil(t, session)
	assert.Equal(t, "u1", session.ID)
}

func TestUpdate_WritesOnlyChangedCollections(t *testing.T) {
	ctx := context.Background()
	var written []string
	kv := storage.WithListener(storage.NewMemoryKV(), func(key string) { written = append(written, key) })
	st, store := newLoaded(t, kv)
	written = nil

	err := st.Update(ctx, func(tx *Tx) error {
		tx.SetReservations(append(tx.Reservations(), domain.Reservation{ID: "r1", RoomID: "1"}))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{repository.KeyReservations}, written)

	stored, err := store.LoadReservations(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUpdate_ErrorDiscardsChanges(t *testing.T) {
	ctx := context.Background()
	st, store := newLoaded(t, storage.NewMemoryKV())
	boom := errors.New("boom")

	err := st.Update(ctx, func(tx *Tx) error {
		tx.SetRooms(nil)
		tx.SetSession(&domain.SessionUser{ID: "u1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Nil(t, st.Session())
	rooms, _, err := store.LoadRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestUpdate_SessionSetAndClear(t *testing.T) {
	ctx := context.Background()
	st, store := newLoaded(t, storage.NewMemoryKV())

	require.NoError(t, st.Update(ctx, func(tx *Tx) error {
		tx.SetSession(&domain.SessionUser{ID: "u1", Username: "maria"})
		return nil
	}))
	session, err := store.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)

	require.NoError(t, st.Update(ctx, func(tx *Tx) error {
		tx.SetSession(nil)
		return nil
	}))
	assert.Nil(t, st.Session())
	session, err = store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestUsers_ReadFromStoreEachTransaction(t *testing.T) {
	ctx := context.Background()
	st, store := newLoaded(t, storage.NewMemoryKV())

	require.NoError(t, store.SaveUsers(ctx, []domain.StoredUser{{SessionUser: domain.SessionUser{ID: "u1"}}}))

	require.NoError(t, st.View(ctx, func(tx *Tx) error {
		users, err := tx.Users()
		require.NoError(t, err)
		assert.Len(t, users, 1)
		return nil
	}))
}

func TestTx_GettersReturnCopies(t *testing.T) {
	ctx := context.Background()
	st, _ := newLoaded(t, storage.NewMemoryKV())

	require.NoError(t, st.View(ctx, func(tx *Tx) error {
		rooms := tx.Rooms()
		rooms[0].Name = "changed"
		return nil
	}))
	require.NoError(t, st.View(ctx, func(tx *Tx) error {
		assert.Equal(t, "Suíte Oceano", tx.Rooms()[0].Name)
		return nil
	}))
}

func TestView_PanicsOnWrite(t *testing.T) {
	st, _ := newLoaded(t, storage.NewMemoryKV())

	assert.Panics(t, func() {
		_ = st.View(context.Background(), func(tx *Tx) error {
			tx.SetRooms(nil)
			return nil
		})
	})
}
