package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

type seenRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeShipStation points the CLI at a local server answering every request with body.
func fakeShipStation(t *testing.T, status int, body string) *seenRequest {
	t.Helper()

	seen := &seenRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*seen = seenRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(b)}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("SHIPSTATION_USE_MOCK", "false")
	t.Setenv("SHIPSTATION_BASE_URL", srv.URL)
	t.Setenv("SHIPSTATION_API_KEY", "key")
	t.Setenv("SHIPSTATION_API_SECRET", "secret")
	return seen
}

func TestCLI_CarriersList_Mock(t *testing.T) {
	t.Setenv("SHIPSTATION_USE_MOCK", "true")

	out, _, err := runCLI(t, "", "carriers", "list")
	require.NoError(t, err)

	var carriers []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &carriers))
	require.Len(t, carriers, 2)
	assert.Equal(t, "se-ups", carriers[0]["carrierId"])
}

func TestCLI_BatchesList_Filters(t *testing.T) {
	seen := fakeShipStation(t, http.StatusOK, `[]`)

	out, _, err := runCLI(t, "", "batches", "list", "--status", "PROCESSING", "--page-size", "20",
		"--created-start", "2024-01-01T00:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, seen.Method)
	assert.Equal(t, "/v2/batches", seen.Path)
	assert.Equal(t, "createdAtStart=2024-01-01T00%3A00%3A00Z&pageSize=20&status=processing", seen.Query)
	assert.JSONEq(t, `[]`, out)
}

func TestCLI_BatchesList_BadStatus(t *testing.T) {
	t.Setenv("SHIPSTATION_USE_MOCK", "true")

	_, _, err := runCLI(t, "", "batches", "list", "--status", "shipped")
	assert.ErrorContains(t, err, `--status: unknown batch status "shipped"`)
}

func TestCLI_BatchesCreate(t *testing.T) {
	seen := fakeShipStation(t, http.StatusOK, `{"batchId":"se-b1","status":"created","createdAt":"2024-05-01T10:00:00Z"}`)

	out, _, err := runCLI(t, "", "batches", "create", "--shipment-id", "se-1,se-2", "--notes", "am")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, seen.Method)
	assert.JSONEq(t, `{"shipmentIds":["se-1","se-2"],"rateIds":[],"batchNotes":"am"}`, seen.Body)
	assert.Contains(t, out, `"batchId": "se-b1"`)
}

func TestCLI_BatchesDelete_PrintsNothing(t *testing.T) {
	seen := fakeShipStation(t, http.StatusNoContent, "")

	out, _, err := runCLI(t, "", "batches", "delete", "se-b1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, seen.Method)
	assert.Equal(t, "/v2/batches/se-b1", seen.Path)
	assert.Empty(t, out)
}

func TestCLI_BatchesAdd(t *testing.T) {
	seen := fakeShipStation(t, http.StatusNoContent, "")

	_, _, err := runCLI(t, "", "batches", "add", "se-b1", "--rate-id", "r1")
	require.NoError(t, err)
	assert.Equal(t, "/v2/batches/se-b1/add", seen.Path)
	assert.JSONEq(t, `{"shipmentIds":[],"rateIds":["r1"]}`, seen.Body)
}

func TestCLI_BatchesProcess(t *testing.T) {
	seen := fakeShipStation(t, http.StatusNoContent, "")

	_, _, err := runCLI(t, "", "batches", "process", "se-b1", "--format", "zpl", "--ship-date", "2024-06-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "/v2/batches/se-b1/process/labels", seen.Path)
	assert.JSONEq(t, `{"shipDate":"2024-06-01T00:00:00Z","labelFormat":"zpl"}`, seen.Body)
}

func TestCLI_APIErrorIsReturned(t *testing.T) {
	fakeShipStation(t, http.StatusNotFound, `{"message":"not found"}`)

	out, _, err := runCLI(t, "", "batches", "get", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Empty(t, out)
}

func TestCLI_RatesEstimate(t *testing.T) {
	seen := fakeShipStation(t, http.StatusOK, `[{"serviceCode":"ground"}]`)

	out, _, err := runCLI(t, "", "rates", "estimate",
		"--from-country", "US", "--from-postal", "78756",
		"--to-country", "US", "--to-postal", "10001",
		"--weight", "2", "--weight-unit", "OUNCE")
	require.NoError(t, err)

	assert.Equal(t, "/v2/rates/estimate", seen.Path)
	assert.JSONEq(t, `{
		"fromCountryCode": "US",
		"fromPostalCode": "78756",
		"toCountryCode": "US",
		"toPostalCode": "10001",
		"weight": {"value": 2, "unit": "ounce"}
	}`, seen.Body)
	assert.Contains(t, out, `"serviceCode": "ground"`)
}

func TestCLI_RatesEstimate_MissingRequired(t *testing.T) {
	t.Setenv("SHIPSTATION_USE_MOCK", "true")

	_, _, err := runCLI(t, "", "rates", "estimate", "--from-country", "US")
	assert.ErrorContains(t, err, "required flag(s)")
}

func TestCLI_RatesEstimate_PerCarrier(t *testing.T) {
	t.Setenv("SHIPSTATION_USE_MOCK", "true")

	out, _, err := runCLI(t, "", "rates", "estimate", "--per-carrier",
		"--carrier-id", "se-a", "--carrier-id", "se-b",
		"--from-country", "US", "--from-postal", "78756",
		"--to-country", "US", "--to-postal", "10001", "--weight", "1")
	require.NoError(t, err)

	var results []struct {
		CarrierID string           `json:"carrierId"`
		Rates     []map[string]any `json:"rates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "se-a", results[0].CarrierID)
	assert.Equal(t, "se-b", results[1].CarrierID)
}

func TestCLI_LabelsCreate_FromStdin(t *testing.T) {
	seen := fakeShipStation(t, http.StatusOK, `{"labelId":"se-l1"}`)

	_, _, err := runCLI(t, `{"serviceCode":"ups_ground"}`, "labels", "create", "--format", "pdf", "--test")
	require.NoError(t, err)
	assert.Equal(t, "/v2/labels", seen.Path)
	assert.JSONEq(t, `{"shipment":{"serviceCode":"ups_ground"},"labelFormat":"pdf","testLabel":true}`, seen.Body)
}

func TestCLI_RatesCalculate_FromFile(t *testing.T) {
	seen := fakeShipStation(t, http.StatusOK, `{"rateResponse":{}}`)

	path := filepath.Join(t.TempDir(), "shipment.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"shipTo":{"postalCode":"10001"}}`), 0o600))

	_, _, err := runCLI(t, "", "rates", "calculate", "--shipment-file", path, "--carrier-id", "se-ups")
	require.NoError(t, err)
	assert.JSONEq(t, `{"shipment":{"shipTo":{"postalCode":"10001"}},"rateOptions":{"carrierIds":["se-ups"]}}`, seen.Body)
}

func TestCLI_LabelsGet(t *testing.T) {
	seen := fakeShipStation(t, http.StatusOK, `{"labelId":"se-l1"}`)

	_, _, err := runCLI(t, "", "labels", "get", "se-l1", "--download-type", "inline")
	require.NoError(t, err)
	assert.Equal(t, "/v2/labels/se-l1", seen.Path)
	assert.Equal(t, "labelDownloadType=inline", seen.Query)
}

func TestCLI_ManifestsAndPickups_Mock(t *testing.T) {
	t.Setenv("SHIPSTATION_USE_MOCK", "true")

	out, _, err := runCLI(t, "", "manifests", "get", "se-m1")
	require.NoError(t, err)
	assert.Contains(t, out, `"manifestId": "se-m1"`)

	out, _, err = runCLI(t, "", "pickups", "schedule", "--label-id", "se-l1",
		"--window-start", "2024-07-01T09:00:00Z", "--window-end", "2024-07-01T17:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, `"pickupId"`)
}

func TestCLI_PickupsSchedule_WindowNeedsBothEnds(t *testing.T) {
	t.Setenv("SHIPSTATION_USE_MOCK", "true")

	_, _, err := runCLI(t, "", "pickups", "schedule", "--label-id", "se-l1", "--window-start", "2024-07-01T09:00:00Z")
	assert.Error(t, err)
}

func TestCLI_BatchesGet_NoContentPrintsNothing(t *testing.T) {
	fakeShipStation(t, http.StatusNoContent, "")

	out, _, err := runCLI(t, "", "batches", "get", "se-b1")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCLI_EnumFlags_NormalizedToWireValues(t *testing.T) {
	seen := fakeShipStation(t, http.StatusOK, `[]`)

	_, _, err := runCLI(t, "", "batches", "list", "--sort-dir", "DESC")
	require.NoError(t, err)
	assert.Equal(t, "sortDir=desc", seen.Query)

	_, _, err = runCLI(t, "", "rates", "estimate",
		"--from-country", "US", "--from-postal", "78756",
		"--to-country", "US", "--to-postal", "10001",
		"--weight", "1", "--residential", "YES")
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(seen.Body), &body))
	assert.Equal(t, "yes", body["addressResidentialIndicator"])
}

func TestCLI_RatesEstimate_Dimensions(t *testing.T) {
	seen := fakeShipStation(t, http.StatusOK, `[]`)

	_, _, err := runCLI(t, "", "rates", "estimate",
		"--from-country", "US", "--from-postal", "78756",
		"--to-country", "US", "--to-postal", "10001",
		"--weight", "1", "--length", "12", "--width", "8", "--height", "4", "--dimension-unit", "CENTIMETER")
	require.NoError(t, err)

	var body struct {
		Dimensions map[string]any `json:"dimensions"`
	}
	require.NoError(t, json.Unmarshal([]byte(seen.Body), &body))
	assert.Equal(t, map[string]any{"length": 12.0, "width": 8.0, "height": 4.0, "unit": "centimeter"}, body.Dimensions)
}

func TestCLI_EnumFlags_RejectUnknownValues(t *testing.T) {
	t.Setenv("SHIPSTATION_USE_MOCK", "true")

	_, _, err := runCLI(t, "", "batches", "list", "--sort-dir", "sideways")
	assert.ErrorContains(t, err, `--sort-dir: unknown sort direction "sideways"`)

	_, _, err = runCLI(t, "", "rates", "estimate",
		"--from-country", "US", "--from-postal", "78756",
		"--to-country", "US", "--to-postal", "10001",
		"--weight", "1", "--residential", "maybe")
	assert.ErrorContains(t, err, `--residential: unknown residential indicator "maybe"`)
}
