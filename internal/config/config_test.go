package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Point away from any config file on disk.
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "blogit", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, "auth_token", cfg.Auth.CookieName)
	// Session credentials are valid for 14 days.
	assert.Equal(t, 20160, cfg.Auth.JWTExpireMinute)
	assert.Equal(t, "blog.lifecycle.audit", cfg.RabbitMQ.AuditQueue)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "9999")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MYSQL_DB", "blogit_test")
	t.Setenv("JWT_EXPIRE_MINUTE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.App.Port)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Contains(t, cfg.MySQLDSN(), "/blogit_test?")
	// Unparsable overrides fall back to the default.
	assert.Equal(t, 20160, cfg.Auth.JWTExpireMinute)
}
