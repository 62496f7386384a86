package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origURL := os.Getenv("SURREAL_URL")
	defer os.Setenv("SURREAL_URL", origURL)

	os.Setenv("SURREAL_URL", "ws://test-host:9000/rpc")
	os.Setenv("SURREAL_NAMESPACE", "testns")
	os.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "ws://test-host:9000/rpc", cfg.Surreal.URL)
	assert.Equal(t, "testns", cfg.Surreal.Namespace)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("SURREAL_URL")
	os.Unsetenv("SURREAL_NAMESPACE")
	os.Unsetenv("SURREAL_DATABASE")
	os.Unsetenv("PORT")

	cfg := Load()

	assert.Equal(t, "ws://localhost:8000/rpc", cfg.Surreal.URL)
	assert.Equal(t, "sitecms", cfg.Surreal.Namespace)
	assert.Equal(t, "content", cfg.Surreal.Database)
	assert.Equal(t, "8080", cfg.Port)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
