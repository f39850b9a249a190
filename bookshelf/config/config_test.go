package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DATABASE_URL", "postgres://u:hunter2@db:5432/books")
	t.Setenv("ADMIN_KEY", "very-secret-admin")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Server.Port)
	require.Equal(t, 7*24*time.Hour, cfg.Session.TTL)
	require.Equal(t, "token", cfg.Session.CookieName)
	require.True(t, cfg.Session.CookieSecure)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowOrigins)
	require.Equal(t, "https://www.googleapis.com/books/v1/volumes", cfg.GoogleBooks.URL)
	require.False(t, cfg.Kafka.Enabled())
	require.Equal(t, zapcore.InfoLevel, cfg.Log.LogLevel)

	printed := cfg.String()
	require.NotContains(t, printed, testSecret)
	require.NotContains(t, printed, "hunter2")
	require.NotContains(t, printed, "very-secret-admin")
}

func TestNewConfig_Options(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HTTP_WRITE", "0s")

	cfg, err := NewConfig(WithLogLevel(zapcore.DebugLevel), WithWriteTimeout(time.Minute))
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
}

func TestNewConfig_WeakSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")
	_, err := NewConfig()
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	base := func() Config {
		var c Config
		c.Session.Secret = testSecret
		c.Session.CookieSecure = true
		c.CORS.AllowOrigins = []string{"https://books.example.com"}
		return c
	}
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "ok", mutate: func(c *Config) {}},
		{name: "wildcard origin allowed in development", mutate: func(c *Config) {
			c.CORS.AllowOrigins = []string{"*"}
		}},
		{name: "wildcard origin in production", wantErr: true, mutate: func(c *Config) {
			c.Env = EnvProduction
			c.CORS.AllowOrigins = []string{"*"}
		}},
		{name: "insecure cookie in production", wantErr: true, mutate: func(c *Config) {
			c.Env = EnvProduction
			c.Session.CookieSecure = false
		}},
		{name: "missing secret", wantErr: true, mutate: func(c *Config) {
			c.Session.Secret = ""
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
