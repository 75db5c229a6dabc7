package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "GrantReports", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, SessionDriverMemory, cfg.Session.Driver)
	assert.Equal(t, "grantreports_session", cfg.Session.CookieName)
	assert.Equal(t, 4*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "Sample Grant Name", cfg.Reports.DefaultGrantName)
	assert.Equal(t, "mj@communities.gov.uk", cfg.Reports.UpdatedBy)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SESSION_DRIVER", "redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REPORTS_DEFAULT_GRANT_NAME", "Community Fund")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, SessionDriverRedis, cfg.Session.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "cache:6379", cfg.Redis.GetAddr())
	assert.Equal(t, "Community Fund", cfg.Reports.DefaultGrantName)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "bad port", env: map[string]string{"SERVER_PORT": "70000"}, want: "server port"},
		{name: "unknown driver", env: map[string]string{"SESSION_DRIVER": "cookie"}, want: "unknown session driver"},
		{name: "default secret in production", env: map[string]string{"APP_ENVIRONMENT": "production"}, want: "session secret"},
		{name: "zero rate limit", env: map[string]string{"RATE_LIMIT_REQUESTS": "0"}, want: "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "pw", Name: "sessions", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=sessions sslmode=disable", cfg.GetDSN())
}
