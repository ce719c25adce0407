package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.Migrate)
	assert.True(t, cfg.App.MetricsEnabled)
	assert.False(t, cfg.JWT.Enabled())
	assert.Equal(t, 0, cfg.Page.DefaultSize)
	assert.Equal(t, 2000, cfg.Page.MaxSize)
}

func TestFromViper_ValoresComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE", "MEMORY")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_MIGRATE", "false")
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("PAGE_DEFAULT_SIZE", "20")
	v.Set("PAGE_MAX_SIZE", "100")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.DB.Migrate)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, 20, cfg.Page.DefaultSize)
	assert.Equal(t, 100, cfg.Page.MaxSize)
}

func TestFromViper_Invalidos(t *testing.T) {
	cases := map[string]map[string]any{
		"storage desconocido": {"STORAGE": "redis"},
		"default mayor a max": {"PAGE_DEFAULT_SIZE": 50, "PAGE_MAX_SIZE": 10},
		"max conns en cero":   {"DB_MAX_CONNS": 0},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			v := viper.New()
			for k, val := range values {
				v.Set(k, val)
			}
			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "stock", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/stock?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgresql://x@y/z"
	assert.Equal(t, "postgresql://x@y/z", c.ConnectionString())
}
