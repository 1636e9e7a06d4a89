package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/surgishop-scanner/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "surgishop-scanner", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "SurgiShop", cfg.Workspace.Name)
	assert.Equal(t, "SurgiShop Condition Settings", cfg.Workspace.LinkTo)
	assert.Zero(t, cfg.Settings.CacheTTL)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SETTINGS_CACHE_TTL", "90")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 90*time.Second, cfg.Settings.CacheTTL)

	t.Setenv("SETTINGS_CACHE_TTL", "5m")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Settings.CacheTTL)
}

func TestLoad_TTLInvalido(t *testing.T) {
	t.Setenv("SETTINGS_CACHE_TTL", "pronto")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_CodificaLaContrasena(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "erp", Password: "p@ss/word", DBName: "surgishop", SSLMode: "disable"}
	assert.Equal(t, "postgres://erp:p%40ss%2Fword@db:5432/surgishop?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otra"
	assert.Equal(t, "postgres://otra", c.ConnectionString())
}
