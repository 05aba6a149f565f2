// Package storage elige y abre el backend del almacén clave-valor según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/freight-api/internal/domain/repository"
	"github.com/jhoicas/freight-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/freight-api/internal/infrastructure/postgres"
	"github.com/jhoicas/freight-api/pkg/config"
)

// Open abre el almacén de cfg.Store.Driver. closeFn libera conexiones/archivos y nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store repository.KeyValueStore, closeFn func(), err error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacén en memoria: el estado se pierde al reiniciar el proceso")
		return kvstore.NewMemoryStore(), noop, nil

	case config.DriverRedis:
		rs, err := kvstore.NewRedisStore(ctx, kvstore.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a Redis: %w", err)
		}
		return rs, func() { _ = rs.Close() }, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		ps, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		return ps, pool.Close, nil

	case config.DriverSQLite:
		ss, err := kvstore.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("abrir SQLite: %w", err)
		}
		return ss, func() { _ = ss.Close() }, nil
	}
	return nil, noop, fmt.Errorf("STORE_DRIVER %q no soportado", cfg.Store.Driver)
}
