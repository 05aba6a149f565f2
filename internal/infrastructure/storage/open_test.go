package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freight-api/internal/domain/repository"
	"github.com/jhoicas/freight-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/freight-api/internal/infrastructure/storage"
	"github.com/jhoicas/freight-api/pkg/config"
)

func roundTrip(t *testing.T, store repository.KeyValueStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.SetMany(ctx, map[string][]byte{repository.KeyMeta: []byte(`{"v":1}`)}))
	v, found, err := store.Get(ctx, repository.KeyMeta)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"v":1}`, string(v))
}

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}}
	store, closeFn, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &kvstore.MemoryStore{}, store)
	roundTrip(t, store)
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: config.DriverRedis},
		Redis: config.RedisConfig{Addr: mr.Addr(), Prefix: "freight:"},
	}
	store, closeFn, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()
	roundTrip(t, store)
	assert.True(t, mr.Exists("freight:"+repository.KeyMeta))
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		Store:  config.StoreConfig{Driver: config.DriverSQLite},
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "data", "freight.db")},
	}
	store, closeFn, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()
	roundTrip(t, store)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "mongo"}}
	_, closeFn, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
