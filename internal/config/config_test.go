package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "VEHICLE_API_URL", "VEHICLE_API_TIMEOUT", "VEHICLE_CACHE_TTL", "VPIC_DB_PATH",
	"REDIS_HOST", "REDIS_PORT", "RABBITMQ_URL", "EVENTS_EXCHANGE",
	"MYSQL_HOST", "MYSQL_PORT", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_DATABASE",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS", "OTEL_TRACES_STDOUT", "SEED_DEMO_ORDERS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "https://vpic.nhtsa.dot.gov/api/vehicles", c.VehicleAPIURL)
	assert.Equal(t, 10*time.Second, c.VehicleAPITimeout)
	assert.Equal(t, time.Hour, c.VehicleCacheTTL)
	assert.Empty(t, c.VpicDBPath)
	assert.Empty(t, c.RedisAddr())
	assert.Equal(t, "parts.exchange", c.EventsExchange)
	assert.False(t, c.MySQL.Enabled())
	assert.Equal(t, 20.0, c.RateLimitRPS)
	assert.Equal(t, 40, c.RateLimitBurst)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
	assert.False(t, c.TracesStdout)
	assert.True(t, c.SeedDemoOrders)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("VEHICLE_API_TIMEOUT", "2s")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "parts")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("MYSQL_DATABASE", "marketplace")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SEED_DEMO_ORDERS", "false")

	c, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, 2*time.Second, c.VehicleAPITimeout)
	assert.Equal(t, "cache:6379", c.RedisAddr())
	assert.True(t, c.MySQL.Enabled())
	assert.Equal(t, "parts:secret@tcp(db:3306)/marketplace?charset=utf8mb4&parseTime=True&loc=Local", c.MySQL.DSN())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
	assert.False(t, c.SeedDemoOrders)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"VEHICLE_API_TIMEOUT", "ten"},
		{"VEHICLE_CACHE_TTL", "1 hour"},
		{"RATE_LIMIT_RPS", "fast"},
		{"RATE_LIMIT_BURST", "4.5"},
		{"OTEL_TRACES_STDOUT", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PORT")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7070\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", c.Port)
}
