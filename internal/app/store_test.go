package app

import (
	"context"
	"errors"
	"testing"

	"oceanbreeze/internal/config"
	"oceanbreeze/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMigrateOrClose_ClosesOnFailure(t *testing.T) {
	db, err := database.Connect("file:migrate_fail?mode=memory&cache=shared")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = migrateOrClose(db, func(*gorm.DB) error { return boom })
	require.ErrorIs(t, err, boom)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "connection should be closed after a failed migration")
}

func TestMigrateOrClose_KeepsConnectionOnSuccess(t *testing.T) {
	db, err := database.Connect("file:migrate_ok?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(db) })

	require.NoError(t, migrateOrClose(db, func(*gorm.DB) error { return nil }))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestOpenKV_SQLite(t *testing.T) {
	cfg := &config.Config{
		StoreDriver:  config.DriverSQLite,
		DatabaseURL:  "file:openkv_test?mode=memory&cache=shared",
		KeyNamespace: "test",
	}
	kv, closeFn, err := OpenKV(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	require.NoError(t, kv.Set(context.Background(), "k", "v"))
	got, err := kv.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
