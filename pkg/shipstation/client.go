// Package shipstation is a typed client for the ShipStation v2 REST API:
// batches, carriers, rates, labels, manifests and pickups.
//
// Every method maps to exactly one HTTP request. Parameters are shaped
// (enums to wire strings, times to ISO-8601, unset optionals omitted) and the
// JSON response is decoded into a resource model or returned as an Object.
// Any non-2xx response is returned as a *RequestError; nothing is retried.
package shipstation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// DefaultBaseURL is used when Config.BaseURL is empty.
const DefaultBaseURL = "https://api.shipstation.com"

const userAgent = "tournevent-shipstation/1.0"

// HTTPDoer sends HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// MetricsRecorder receives one observation per request.
type MetricsRecorder interface {
	RecordRequest(operation, status string, duration float64)
	RecordError(operation string, statusCode int)
}

// Config holds ShipStation client configuration.
type Config struct {
	APIKey    string
	APISecret string
	BaseURL   string        // DefaultBaseURL when empty
	Timeout   time.Duration // 30s when zero; ignored if HTTPClient is set

	// HTTPClient overrides the transport. The same value is reused for every
	// call so connections are pooled.
	HTTPClient HTTPDoer

	// Metrics is optional.
	Metrics MetricsRecorder
}

// Client is the ShipStation API client. It holds no mutable state after
// construction and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient HTTPDoer
	metrics    MetricsRecorder
	logger     *otelzap.Logger
	tracer     trace.Tracer
}

// New creates a new ShipStation client. A nil logger or tracer disables logging or tracing.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
		logger:     logger,
		tracer:     tracer,
	}
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends one authenticated JSON request to baseURL+path and returns the raw
// response body. It returns nil when the response carries no content, and a
// *RequestError when the request fails or the status is not 2xx.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	return c.do(ctx, "request", method, path, query, body)
}

// do wraps roundTrip with a span, a log line and a metrics observation.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "shipstation."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.path", path),
		),
	)
	defer span.End()

	start := time.Now()
	raw, err := c.roundTrip(ctx, method, path, query, body)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Ctx(ctx).Error("ShipStation request failed",
			zap.String("operation", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", StatusCode(err)),
			zap.Error(err),
		)
	} else {
		c.logger.Ctx(ctx).Debug("ShipStation request",
			zap.String("operation", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", elapsed),
		)
	}
	if code := StatusCode(err); code != 0 {
		span.SetAttributes(attribute.Int("http.status_code", code))
	}

	if c.metrics != nil {
		c.metrics.RecordRequest(op, status, elapsed.Seconds())
		if err != nil {
			c.metrics.RecordError(op, StatusCode(err))
		}
	}
	return raw, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Cause: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode/100 != 2 {
		return nil, &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       data,
		}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// fetch performs a request and decodes a non-empty response into T.
// It returns nil, nil when the response has no content.
func fetch[T any](ctx context.Context, c *Client, op, method, path string, query url.Values, body any) (*T, error) {
	raw, err := c.do(ctx, op, method, path, query, body)
	if err != nil || raw == nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return &out, nil
}

// fetchList is fetch for endpoints answering with a JSON array.
func fetchList[T any](ctx context.Context, c *Client, op, method, path string, query url.Values, body any) ([]T, error) {
	items, err := fetch[[]T](ctx, c, op, method, path, query, body)
	if err != nil || items == nil {
		return nil, err
	}
	return *items, nil
}

// fetchObject is fetch for endpoints whose response stays untyped.
func fetchObject(ctx context.Context, c *Client, op, method, path string, query url.Values, body any) (Object, error) {
	obj, err := fetch[Object](ctx, c, op, method, path, query, body)
	if err != nil || obj == nil {
		return nil, err
	}
	return *obj, nil
}

// send performs a request whose response body, if any, is discarded.
func send(ctx context.Context, c *Client, op, method, path string, body any) error {
	_, err := c.do(ctx, op, method, path, nil, body)
	return err
}
