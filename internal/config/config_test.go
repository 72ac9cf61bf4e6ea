package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipstation/internal/config"
	"go.opentelemetry.io/otel/attribute"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.shipstation.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.UseMock)
	assert.False(t, cfg.OTELEnabled)
	assert.Equal(t, "shipstation-bridge", cfg.ServiceName)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHIPSTATION_API_KEY", "key")
	t.Setenv("SHIPSTATION_API_SECRET", "secret")
	t.Setenv("SHIPSTATION_BASE_URL", "https://sandbox.example.test")
	t.Setenv("SHIPSTATION_TIMEOUT", "5s")
	t.Setenv("SHIPSTATION_USE_MOCK", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.UseMock)

	client := cfg.Client()
	assert.Equal(t, "key", client.APIKey)
	assert.Equal(t, "secret", client.APISecret)
	assert.Equal(t, "https://sandbox.example.test", client.BaseURL)
	assert.Equal(t, 5*time.Second, client.Timeout)
	assert.Nil(t, client.Metrics)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("SHIPSTATION_TIMEOUT", "soon")

	_, err := config.Load()
	assert.ErrorContains(t, err, "loading config")
}

func TestConfig_Attributes(t *testing.T) {
	cfg := &config.Config{ServiceName: "svc", Version: "1.2.3", UseMock: true}

	attrs := cfg.Attributes()
	assert.Contains(t, attrs, attribute.String("service.name", "svc"))
	assert.Contains(t, attrs, attribute.String("service.version", "1.2.3"))
	assert.Contains(t, attrs, attribute.Bool("shipstation.mock", true))
}
