package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validConfig() *Config {
	return &Config{
		Env:            "development",
		Port:           "8375",
		JWTSecret:      "secure-secret-at-least-32-chars-long",
		DBPassword:     "secure-password",
		DBSSLMode:      "disable",
		RedisURL:       "redis://localhost:6379",
		AutosaveIdleMs: 2000,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Valid Development", func(c *Config) {}, false},
		{"Missing Port", func(c *Config) { c.Port = "" }, true},
		{"Missing JWT Secret", func(c *Config) { c.JWTSecret = "" }, true},
		{"Negative Autosave Window", func(c *Config) { c.AutosaveIdleMs = -1 }, true},
		{"Production Default JWT Secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"Production Short JWT Secret", func(c *Config) {
			c.Env = "production"
			c.JWTSecret = "short"
		}, true},
		{"Production Weak DB Password", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "password"
		}, true},
		{"Production Valid", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_ReadsYAMLFile(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("APP_ENV")
	os.Setenv("APP_ENV", "development")

	dir := t.TempDir()
	fixture := map[string]any{
		"PORT":             "9999",
		"JWT_SECRET":       "file-secret-at-least-32-chars-long!!",
		"AUTOSAVE_IDLE_MS": 500,
		"FEATURE_FLAGS":    "unlimited-blocks=true",
	}
	raw, err := yaml.Marshal(fixture)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), raw, 0o644))

	t.Chdir(dir)

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", c.Port)
	assert.Equal(t, "file-secret-at-least-32-chars-long!!", c.JWTSecret)
	assert.Equal(t, 500, c.AutosaveIdleMs)
	assert.Equal(t, "unlimited-blocks=true", c.FeatureFlags)
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer viper.Reset()
	defer os.Unsetenv("APP_ENV")
	os.Setenv("APP_ENV", "development")

	t.Chdir(t.TempDir())

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8375", c.Port)
	assert.Equal(t, "gotolinks", c.DBName)
	assert.Equal(t, 2000, c.AutosaveIdleMs)
	assert.Equal(t, "hybrid", c.DBSchemaMode)
}
