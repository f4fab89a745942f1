package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv unsets every variable LoadFromEnv reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
		"AUTH_JWT_SECRET", "AUTH_JWT_AUDIENCE",
		"INVITE_CODE_MAX_ATTEMPTS", "GIN_MODE",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Auth: AuthConfig{
			JWTSecret:   "secret",
			JWTAudience: "authenticated",
		},
		Team:    TeamConfig{InviteCodeMaxAttempts: 10},
		GinMode: "release",
	}
}

func TestLoadFromEnv_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg := LoadFromEnv()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "", cfg.Auth.JWTSecret)
	assert.Equal(t, "authenticated", cfg.Auth.JWTAudience)
	assert.Equal(t, 10, cfg.Team.InviteCodeMaxAttempts)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("AUTH_JWT_SECRET", "super-secret")
	t.Setenv("INVITE_CODE_MAX_ATTEMPTS", "3")

	cfg := LoadFromEnv()

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 3, cfg.Team.InviteCodeMaxAttempts)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid server config",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "server config validation failed",
		},
		{
			name:    "invalid logger config",
			mutate:  func(c *Config) { c.Logger.Level = "verbose" },
			wantErr: "logger config validation failed",
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.Auth.JWTSecret = "" },
			wantErr: "auth config validation failed",
		},
		{
			name:    "zero invite code attempts",
			mutate:  func(c *Config) { c.Team.InviteCodeMaxAttempts = 0 },
			wantErr: "team config validation failed",
		},
		{
			name:    "invalid gin mode",
			mutate:  func(c *Config) { c.GinMode = "prod" },
			wantErr: "invalid GIN_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	t.Run("every gin mode", func(t *testing.T) {
		for _, mode := range []string{"debug", "release", "test"} {
			cfg := validConfig()
			cfg.GinMode = mode
			assert.NoError(t, cfg.Validate(), "mode %s should be valid", mode)
		}
	})
}
