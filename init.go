package main

import (
	"context"

	"github.com/tournevent/shipstation/internal/config"
	"github.com/tournevent/shipstation/internal/telemetry"
	"github.com/tournevent/shipstation/pkg/shipstation"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

// initTracer returns a nil tracer when tracing is disabled; the client then
// falls back to a no-op tracer.
func initTracer(ctx context.Context, cfg *config.Config) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return nil, func(context.Context) error { return nil }, nil
	}

	return telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Attributes()...)
}

// initAPI returns the in-process mock when SHIPSTATION_USE_MOCK is set and a
// real client otherwise. metrics may be nil.
func initAPI(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer, metrics *telemetry.Metrics) shipstation.API {
	if cfg.UseMock {
		return shipstation.NewMockAPI()
	}

	clientCfg := cfg.Client()
	if metrics != nil {
		clientCfg.Metrics = metrics
	}
	return shipstation.New(clientCfg, logger, tracer)
}
