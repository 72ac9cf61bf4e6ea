package shipstation

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// MockAPI is an in-process implementation of API.
// Hooks override individual endpoints; unset hooks return canned data.
type MockAPI struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnListBatches          func(ctx context.Context, opts ListBatchesOptions) ([]Batch, error)
	OnGetBatch             func(ctx context.Context, batchID string) (*Batch, error)
	OnGetBatchByExternalID func(ctx context.Context, externalBatchID string) (*Batch, error)
	OnCreateBatch          func(ctx context.Context, opts CreateBatchOptions) (*Batch, error)
	OnDeleteBatch          func(ctx context.Context, batchID string) error
	OnAddToBatch           func(ctx context.Context, batchID string, items BatchItems) error
	OnRemoveFromBatch      func(ctx context.Context, batchID string, items BatchItems) error
	OnListBatchErrors      func(ctx context.Context, batchID string, page PageOptions) ([]BatchError, error)
	OnProcessBatchLabels   func(ctx context.Context, batchID string, opts ProcessLabelsOptions) error
	OnListCarriers         func(ctx context.Context) ([]Carrier, error)
	OnGetCarrier           func(ctx context.Context, carrierID string) (*Carrier, error)
	OnEstimateRates        func(ctx context.Context, req EstimateRatesRequest) ([]Object, error)
	OnCalculateRates       func(ctx context.Context, req CalculateRatesRequest) (Object, error)
	OnCreateLabel          func(ctx context.Context, req CreateLabelRequest) (Object, error)
	OnCreateLabelFromRate  func(ctx context.Context, rateID string, opts LabelOptions) (Object, error)
	OnGetLabel             func(ctx context.Context, labelID string, downloadType LabelDownloadType) (Object, error)
	OnCreateManifest       func(ctx context.Context, req CreateManifestRequest) (Object, error)
	OnGetManifest          func(ctx context.Context, manifestID string) (Object, error)
	OnSchedulePickup       func(ctx context.Context, req SchedulePickupRequest) (Object, error)
	OnGetPickup            func(ctx context.Context, pickupID string) (Object, error)
}

// NewMockAPI creates a mock API with default behavior.
func NewMockAPI() *MockAPI {
	return &MockAPI{}
}

// before applies simulated latency and errors.
func (m *MockAPI) before(method, path string) error {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}
	if m.SimulateErrors {
		return &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: http.StatusInternalServerError,
			Status:     "500 Internal Server Error",
			Body:       []byte(`{"message":"simulated API error"}`),
		}
	}
	return nil
}

func mockID(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

func mockBatch(id string, status BatchStatus) *Batch {
	return &Batch{
		BatchID:   id,
		Status:    status,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// ListBatches returns two mock batches, filtered by status when set.
func (m *MockAPI) ListBatches(ctx context.Context, opts ListBatchesOptions) ([]Batch, error) {
	if err := m.before(http.MethodGet, batchesPath); err != nil {
		return nil, err
	}
	if m.OnListBatches != nil {
		return m.OnListBatches(ctx, opts)
	}

	all := []Batch{
		*mockBatch(mockID("se-batch"), BatchStatusCompleted),
		*mockBatch(mockID("se-batch"), BatchStatusProcessing),
	}
	if opts.Status == "" {
		return all, nil
	}
	var out []Batch
	for _, b := range all {
		if b.Status == opts.Status {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetBatch returns a completed mock batch.
func (m *MockAPI) GetBatch(ctx context.Context, batchID string) (*Batch, error) {
	if err := m.before(http.MethodGet, resourcePath(batchesPath, batchID)); err != nil {
		return nil, err
	}
	if m.OnGetBatch != nil {
		return m.OnGetBatch(ctx, batchID)
	}
	b := mockBatch(batchID, BatchStatusCompleted)
	b.ShipmentCount, b.LabelCount = 1, 1
	return b, nil
}

// GetBatchByExternalID returns a mock batch carrying the external id.
func (m *MockAPI) GetBatchByExternalID(ctx context.Context, externalBatchID string) (*Batch, error) {
	if err := m.before(http.MethodGet, resourcePath(batchesPath, "external_batch_id", externalBatchID)); err != nil {
		return nil, err
	}
	if m.OnGetBatchByExternalID != nil {
		return m.OnGetBatchByExternalID(ctx, externalBatchID)
	}
	b := mockBatch(mockID("se-batch"), BatchStatusCreated)
	b.ExternalBatchID = &externalBatchID
	return b, nil
}

// CreateBatch echoes the request into a newly created mock batch.
func (m *MockAPI) CreateBatch(ctx context.Context, opts CreateBatchOptions) (*Batch, error) {
	if err := m.before(http.MethodPost, batchesPath); err != nil {
		return nil, err
	}
	if m.OnCreateBatch != nil {
		return m.OnCreateBatch(ctx, opts)
	}
	b := mockBatch(mockID("se-batch"), BatchStatusCreated)
	b.ShipmentCount = len(opts.ShipmentIDs) + len(opts.RateIDs)
	if opts.ExternalBatchID != "" {
		b.ExternalBatchID = &opts.ExternalBatchID
	}
	if opts.BatchNotes != "" {
		b.BatchNotes = &opts.BatchNotes
	}
	return b, nil
}

// DeleteBatch succeeds.
func (m *MockAPI) DeleteBatch(ctx context.Context, batchID string) error {
	if err := m.before(http.MethodDelete, resourcePath(batchesPath, batchID)); err != nil {
		return err
	}
	if m.OnDeleteBatch != nil {
		return m.OnDeleteBatch(ctx, batchID)
	}
	return nil
}

// AddToBatch succeeds.
func (m *MockAPI) AddToBatch(ctx context.Context, batchID string, items BatchItems) error {
	if err := m.before(http.MethodPost, resourcePath(batchesPath, batchID, "add")); err != nil {
		return err
	}
	if m.OnAddToBatch != nil {
		return m.OnAddToBatch(ctx, batchID, items)
	}
	return nil
}

// RemoveFromBatch succeeds.
func (m *MockAPI) RemoveFromBatch(ctx context.Context, batchID string, items BatchItems) error {
	if err := m.before(http.MethodPost, resourcePath(batchesPath, batchID, "remove")); err != nil {
		return err
	}
	if m.OnRemoveFromBatch != nil {
		return m.OnRemoveFromBatch(ctx, batchID, items)
	}
	return nil
}

// ListBatchErrors returns one mock error.
func (m *MockAPI) ListBatchErrors(ctx context.Context, batchID string, page PageOptions) ([]BatchError, error) {
	if err := m.before(http.MethodGet, resourcePath(batchesPath, batchID, "errors")); err != nil {
		return nil, err
	}
	if m.OnListBatchErrors != nil {
		return m.OnListBatchErrors(ctx, batchID, page)
	}
	return []BatchError{
		{
			ErrorID: mockID("err"),
			Message: "Recipient address could not be validated",
			Details: map[string]any{"shipmentId": "se-1"},
		},
	}, nil
}

// ProcessBatchLabels succeeds.
func (m *MockAPI) ProcessBatchLabels(ctx context.Context, batchID string, opts ProcessLabelsOptions) error {
	if err := m.before(http.MethodPost, resourcePath(batchesPath, batchID, "process", "labels")); err != nil {
		return err
	}
	if m.OnProcessBatchLabels != nil {
		return m.OnProcessBatchLabels(ctx, batchID, opts)
	}
	return nil
}

// ListCarriers returns two mock carriers.
func (m *MockAPI) ListCarriers(ctx context.Context) ([]Carrier, error) {
	if err := m.before(http.MethodGet, carriersPath); err != nil {
		return nil, err
	}
	if m.OnListCarriers != nil {
		return m.OnListCarriers(ctx)
	}
	balance := 120.50
	return []Carrier{
		{CarrierID: "se-ups", Name: "UPS", Code: "ups", Primary: true},
		{CarrierID: "se-stamps", Name: "Stamps.com", Code: "stamps_com", Balance: &balance, RequiresFundedAmount: true},
	}, nil
}

// GetCarrier returns a mock carrier with the requested id.
func (m *MockAPI) GetCarrier(ctx context.Context, carrierID string) (*Carrier, error) {
	if err := m.before(http.MethodGet, resourcePath(carriersPath, carrierID)); err != nil {
		return nil, err
	}
	if m.OnGetCarrier != nil {
		return m.OnGetCarrier(ctx, carrierID)
	}
	return &Carrier{CarrierID: carrierID, Name: "UPS", Code: "ups"}, nil
}

// EstimateRates returns one mock estimate per requested carrier.
func (m *MockAPI) EstimateRates(ctx context.Context, req EstimateRatesRequest) ([]Object, error) {
	if err := m.before(http.MethodPost, estimateRatesPath); err != nil {
		return nil, err
	}
	if m.OnEstimateRates != nil {
		return m.OnEstimateRates(ctx, req)
	}
	carriers := req.CarrierIDs
	if len(carriers) == 0 {
		carriers = []string{"se-ups"}
	}
	out := make([]Object, 0, len(carriers))
	for _, id := range carriers {
		out = append(out, Object{
			"carrierId":        id,
			"serviceCode":      "ground",
			"shippingCost":     Object{"currency": "usd", "amount": 12.34},
			"deliveryDays":     3,
			"validationStatus": "valid",
		})
	}
	return out, nil
}

// CalculateRates returns a mock rate response.
func (m *MockAPI) CalculateRates(ctx context.Context, req CalculateRatesRequest) (Object, error) {
	if err := m.before(http.MethodPost, calculateRatesPath); err != nil {
		return nil, err
	}
	if m.OnCalculateRates != nil {
		return m.OnCalculateRates(ctx, req)
	}
	return Object{
		"shipmentId": req.ShipmentID,
		"rateResponse": Object{
			"rateRequestId": mockID("se-req"),
			"rates": []any{
				Object{"rateId": mockID("se-rate"), "serviceCode": "ground", "shippingAmount": Object{"currency": "usd", "amount": 12.34}},
			},
		},
	}, nil
}

func mockLabel(id string, opts LabelOptions) Object {
	format := opts.LabelFormat
	if format == "" {
		format = LabelFormatPDF
	}
	return Object{
		"labelId":        id,
		"status":         "completed",
		"trackingNumber": "1Z" + uuid.New().String()[:10],
		"labelFormat":    string(format),
		"labelDownload":  Object{"href": "https://api.shipstation.com/v2/downloads/" + id + "." + string(format)},
	}
}

// CreateLabel returns a mock purchased label.
func (m *MockAPI) CreateLabel(ctx context.Context, req CreateLabelRequest) (Object, error) {
	if err := m.before(http.MethodPost, labelsPath); err != nil {
		return nil, err
	}
	if m.OnCreateLabel != nil {
		return m.OnCreateLabel(ctx, req)
	}
	return mockLabel(mockID("se-label"), req.LabelOptions), nil
}

// CreateLabelFromRate returns a mock label bought from the rate.
func (m *MockAPI) CreateLabelFromRate(ctx context.Context, rateID string, opts LabelOptions) (Object, error) {
	if err := m.before(http.MethodPost, resourcePath(labelsPath, "rates", rateID)); err != nil {
		return nil, err
	}
	if m.OnCreateLabelFromRate != nil {
		return m.OnCreateLabelFromRate(ctx, rateID, opts)
	}
	label := mockLabel(mockID("se-label"), opts)
	label["rateId"] = rateID
	return label, nil
}

// GetLabel returns a mock label.
func (m *MockAPI) GetLabel(ctx context.Context, labelID string, downloadType LabelDownloadType) (Object, error) {
	if err := m.before(http.MethodGet, resourcePath(labelsPath, labelID)); err != nil {
		return nil, err
	}
	if m.OnGetLabel != nil {
		return m.OnGetLabel(ctx, labelID, downloadType)
	}
	return mockLabel(labelID, LabelOptions{LabelDownloadType: downloadType}), nil
}

// CreateManifest returns a mock manifest.
func (m *MockAPI) CreateManifest(ctx context.Context, req CreateManifestRequest) (Object, error) {
	if err := m.before(http.MethodPost, manifestsPath); err != nil {
		return nil, err
	}
	if m.OnCreateManifest != nil {
		return m.OnCreateManifest(ctx, req)
	}
	return Object{
		"manifestId": mockID("se-manifest"),
		"carrierId":  req.CarrierID,
		"labelIds":   nonNil(req.LabelIDs),
	}, nil
}

// GetManifest returns a mock manifest.
func (m *MockAPI) GetManifest(ctx context.Context, manifestID string) (Object, error) {
	if err := m.before(http.MethodGet, resourcePath(manifestsPath, manifestID)); err != nil {
		return nil, err
	}
	if m.OnGetManifest != nil {
		return m.OnGetManifest(ctx, manifestID)
	}
	return Object{"manifestId": manifestID, "formId": mockID("form")}, nil
}

// SchedulePickup returns a mock confirmed pickup.
func (m *MockAPI) SchedulePickup(ctx context.Context, req SchedulePickupRequest) (Object, error) {
	if err := m.before(http.MethodPost, pickupsPath); err != nil {
		return nil, err
	}
	if m.OnSchedulePickup != nil {
		return m.OnSchedulePickup(ctx, req)
	}
	return Object{
		"pickupId":           mockID("pik"),
		"labelIds":           nonNil(req.LabelIDs),
		"confirmationNumber": mockID("conf"),
	}, nil
}

// GetPickup returns a mock pickup.
func (m *MockAPI) GetPickup(ctx context.Context, pickupID string) (Object, error) {
	if err := m.before(http.MethodGet, resourcePath(pickupsPath, pickupID)); err != nil {
		return nil, err
	}
	if m.OnGetPickup != nil {
		return m.OnGetPickup(ctx, pickupID)
	}
	return Object{"pickupId": pickupID, "confirmationNumber": mockID("conf")}, nil
}

var _ API = (*MockAPI)(nil)
