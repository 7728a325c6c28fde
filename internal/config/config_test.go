package config_test

import (
	"testing"
	"time"

	"github.com/oterra/waypoint/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoad_FromEnv(t *testing.T) {
	t.Setenv("WAYPOINT_ENV", "local")
	t.Setenv("WAYPOINT_INTERVAL", "10m")
	t.Setenv("WAYPOINT_PROVIDER_TYPE", "nominatim")
	t.Setenv("WAYPOINT_PROVIDER_KEY", "testAPIKey")
	t.Setenv("WAYPOINT_ADDRESS_PREFIX", "Mumbai, ")
	t.Setenv("WAYPOINT_INBOX_DIR", "/var/spool/waypoint")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "nominatim", cfg.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, "Mumbai, ", cfg.AddrPrefix)
	assert.Equal(t, "/var/spool/waypoint", cfg.InboxDir)
	assert.Equal(t, 10, cfg.Workers)
}

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "google", cfg.ProviderType)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Minute, cfg.InboxInterval)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Empty(t, cfg.InboxDir)
}

func TestMustLoad_IntervalError(t *testing.T) {
	t.Setenv("WAYPOINT_INTERVAL", "error_value")

	assert.PanicsWithValue(t, "failed to parse interval from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("WAYPOINT_HEALTH_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for monitoring server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("WAYPOINT_WORKERS", "error_value")

	assert.PanicsWithValue(t, "failed to parse workers from configuration, must be an integer type", func() {
		config.MustLoad()
	})
}

func TestMustLoad_TimeoutError(t *testing.T) {
	t.Setenv("WAYPOINT_HTTP_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse HTTP timeout from configuration", func() {
		config.MustLoad()
	})
}
