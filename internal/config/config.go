package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/tournevent/shipstation/pkg/shipstation"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// ShipStation
	APIKey    string        `envconfig:"SHIPSTATION_API_KEY"`
	APISecret string        `envconfig:"SHIPSTATION_API_SECRET"`
	BaseURL   string        `envconfig:"SHIPSTATION_BASE_URL" default:"https://api.shipstation.com"`
	Timeout   time.Duration `envconfig:"SHIPSTATION_TIMEOUT" default:"30s"`
	UseMock   bool          `envconfig:"SHIPSTATION_USE_MOCK" default:"false"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"shipstation-bridge"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Client returns the ShipStation client settings. Metrics and transport are
// left for the caller to fill in.
func (c *Config) Client() shipstation.Config {
	return shipstation.Config{
		APIKey:    c.APIKey,
		APISecret: c.APISecret,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
	}
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.String("shipstation.base_url", c.BaseURL),
		attribute.Bool("shipstation.mock", c.UseMock),
	}
}
