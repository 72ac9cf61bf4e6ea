package shipstation

import (
	"context"
)

// API is the full ShipStation endpoint surface. *Client talks to the real
// service; *MockAPI answers in-process for tests and local runs.
type API interface {
	// Batches
	ListBatches(ctx context.Context, opts ListBatchesOptions) ([]Batch, error)
	GetBatch(ctx context.Context, batchID string) (*Batch, error)
	GetBatchByExternalID(ctx context.Context, externalBatchID string) (*Batch, error)
	CreateBatch(ctx context.Context, opts CreateBatchOptions) (*Batch, error)
	DeleteBatch(ctx context.Context, batchID string) error
	AddToBatch(ctx context.Context, batchID string, items BatchItems) error
	RemoveFromBatch(ctx context.Context, batchID string, items BatchItems) error
	ListBatchErrors(ctx context.Context, batchID string, page PageOptions) ([]BatchError, error)
	ProcessBatchLabels(ctx context.Context, batchID string, opts ProcessLabelsOptions) error

	// Carriers
	ListCarriers(ctx context.Context) ([]Carrier, error)
	GetCarrier(ctx context.Context, carrierID string) (*Carrier, error)

	// Rates
	EstimateRates(ctx context.Context, req EstimateRatesRequest) ([]Object, error)
	CalculateRates(ctx context.Context, req CalculateRatesRequest) (Object, error)

	// Labels
	CreateLabel(ctx context.Context, req CreateLabelRequest) (Object, error)
	CreateLabelFromRate(ctx context.Context, rateID string, opts LabelOptions) (Object, error)
	GetLabel(ctx context.Context, labelID string, downloadType LabelDownloadType) (Object, error)

	// Manifests
	CreateManifest(ctx context.Context, req CreateManifestRequest) (Object, error)
	GetManifest(ctx context.Context, manifestID string) (Object, error)

	// Pickups
	SchedulePickup(ctx context.Context, req SchedulePickupRequest) (Object, error)
	GetPickup(ctx context.Context, pickupID string) (Object, error)
}

var _ API = (*Client)(nil)
