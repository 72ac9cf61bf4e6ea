package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipstation/internal/server"
	"github.com/tournevent/shipstation/internal/telemetry"
	"github.com/tournevent/shipstation/pkg/shipstation"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (http.Handler, *shipstation.MockAPI, *telemetry.Metrics) {
	t.Helper()

	logger := otelzap.New(zap.NewNop())
	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)
	api := shipstation.NewMockAPI()

	srv := server.New(server.Config{Port: 8080}, api, logger, reg)
	return srv.Handler(), api, metrics
}

type graphQLResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
		Path    []any  `json:"path"`
	} `json:"errors"`
}

func postGraphQL(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, graphQLResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp graphQLResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestServer_Health(t *testing.T) {
	h, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	h, _, metrics := newTestServer(t)
	metrics.RecordRequest("carriers.list", "ok", 0.05)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shipstation_requests_total{operation="carriers.list",status="ok"} 1`)
}

func TestServer_GraphQL_MethodNotAllowed(t *testing.T) {
	h, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp graphQLResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Method not allowed, use POST", resp.Errors[0].Message)
}

func TestServer_GraphQL_InvalidJSON(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec, resp := postGraphQL(t, h, "invalid json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0].Message, "Invalid JSON")
}

func TestServer_GraphQL_HealthQuery(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec, resp := postGraphQL(t, h, `{"query": "query { health }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `true`, string(resp.Data["health"]))
}

func TestServer_GraphQL_Carriers(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec, resp := postGraphQL(t, h, `{"query": "{ carriers { carrierId } }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp.Errors)

	var carriers []shipstation.Carrier
	require.NoError(t, json.Unmarshal(resp.Data["carriers"], &carriers))
	require.Len(t, carriers, 2)
	assert.Equal(t, "se-ups", carriers[0].CarrierID)
}

func TestServer_GraphQL_Variables(t *testing.T) {
	h, api, _ := newTestServer(t)

	var gotID string
	api.OnGetBatch = func(ctx context.Context, batchID string) (*shipstation.Batch, error) {
		gotID = batchID
		return &shipstation.Batch{BatchID: batchID, Status: shipstation.BatchStatusCompleted}, nil
	}

	rec, resp := postGraphQL(t, h, `{
		"query": "query Get($id: String!) { batch(id: $id) { batchId status } }",
		"operationName": "Get",
		"variables": {"id": "se-b42"}
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "se-b42", gotID)

	var batch shipstation.Batch
	require.NoError(t, json.Unmarshal(resp.Data["batch"], &batch))
	assert.Equal(t, shipstation.BatchStatusCompleted, batch.Status)
}

func TestServer_GraphQL_FieldErrorIsOK(t *testing.T) {
	h, api, _ := newTestServer(t)
	api.SimulateErrors = true

	rec, resp := postGraphQL(t, h, `{"query": "mutation { deleteBatch(id: \"se-b1\") }"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, []any{"deleteBatch"}, resp.Errors[0].Path)
	assert.Contains(t, resp.Errors[0].Message, "500")
	assert.JSONEq(t, `null`, string(resp.Data["deleteBatch"]))
}

func TestServer_GraphQL_UnknownField(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec, resp := postGraphQL(t, h, `{"query": "{ orders }"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0].Message, `unknown query field "orders"`)
}

func TestServer_Run_StopsOnCancel(t *testing.T) {
	logger := otelzap.New(zap.NewNop())
	srv := server.New(server.Config{Port: 0}, shipstation.NewMockAPI(), logger, prometheus.NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}
