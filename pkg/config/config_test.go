package config_test

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freight-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "freight-api", cfg.App.Name)
	assert.Equal(t, config.DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "freight:", cfg.Redis.Prefix)
	assert.Equal(t, "TR", cfg.Logistics.DomesticCountry)
	assert.True(t, cfg.Logistics.DefaultTaxRate.Equal(decimal.NewFromFloat(0.2)))
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DOMESTIC_COUNTRY", "de")
	t.Setenv("DEFAULT_TAX_RATE", "0.18")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverRedis, cfg.Store.Driver)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "DE", cfg.Logistics.DomesticCountry)
	assert.True(t, cfg.Logistics.DefaultTaxRate.Equal(decimal.NewFromFloat(0.18)))
}

func TestLoad_Invalidos(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("STORE_DRIVER", "mongo")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DEFAULT_TAX_RATE", "abc")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "freight", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/freight?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

// chdir cambia el directorio de trabajo durante el test y lo restaura al terminar.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
