package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		DatabaseURL:        "postgres://localhost/tubegem",
		BotToken:           "test-token",
		YouTubeAPIKey:      "test-key",
		YouTubeEndpoint:    DefaultEndpoint,
		HealthPort:         8080,
		HealthCheckEnabled: true,
		RetryConfig: RetryConfig{
			MaxRetries:        3,
			InitialDelay:      time.Second,
			MaxDelay:          30 * time.Second,
			BackoffMultiplier: 2.0,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(_ *Config) {},
			wantErr: false,
		},
		{
			name:    "missing database URL",
			mutate:  func(c *Config) { c.DatabaseURL = "" },
			wantErr: true,
		},
		{
			name:    "missing bot token",
			mutate:  func(c *Config) { c.BotToken = "" },
			wantErr: true,
		},
		{
			name:    "missing youtube API key",
			mutate:  func(c *Config) { c.YouTubeAPIKey = "" },
			wantErr: true,
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *Config) { c.YouTubeEndpoint = "" },
			wantErr: true,
		},
		{
			name:    "invalid health check port",
			mutate:  func(c *Config) { c.HealthPort = 70000 },
			wantErr: true,
		},
		{
			name: "invalid port ignored when health check disabled",
			mutate: func(c *Config) {
				c.HealthCheckEnabled = false
				c.HealthPort = 0
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)

			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/tubegem")
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("YOUTUBE_API_KEY", "test-key")

	config, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, DefaultEndpoint, config.YouTubeEndpoint)
	assert.Equal(t, 8080, config.HealthPort)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 3, config.RetryConfig.MaxRetries)
	assert.Equal(t, 90*time.Second, config.HTTPClientConfig.IdleConnTimeout)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "15s")
	t.Setenv("TEST_FLOAT", "1.5")
	os.Unsetenv("TEST_MISSING")

	assert.Equal(t, "value", getEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", getEnv("TEST_MISSING", "default"))
	assert.Equal(t, 42, getEnvInt("TEST_INT", 0))
	assert.Equal(t, 7, getEnvInt("TEST_MISSING", 7))
	assert.True(t, getEnvBool("TEST_BOOL", false))
	assert.Equal(t, 15*time.Second, getEnvDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, 1.5, getEnvFloat("TEST_FLOAT", 2.0))
}
