package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/freight-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*RedisStore)(nil)

// RedisStore guarda cada clave lógica como un string de Redis bajo un prefijo común.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// RedisOptions parámetros de conexión.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisStore abre el cliente y verifica la conexión con PING.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStoreWithClient(rdb, opts.Prefix), nil
}

// NewRedisStoreWithClient reutiliza un cliente existente.
func NewRedisStoreWithClient(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) key(k string) string { return s.prefix + k }

// Get lee la clave; redis.Nil equivale a ausente.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

// SetMany escribe todas las claves dentro de MULTI/EXEC.
func (s *RedisStore) SetMany(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range values {
			pipe.Set(ctx, s.key(k), v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Clear borra solo las claves administradas por la aplicación bajo el prefijo.
func (s *RedisStore) Clear(ctx context.Context) error {
	keys := make([]string, 0, len(repository.AllKeys))
	for _, k := range repository.AllKeys {
		keys = append(keys, s.key(k))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis clear: %w", err)
	}
	return nil
}

// Close cierra el cliente.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
