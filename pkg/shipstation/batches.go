package shipstation

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

const batchesPath = "/v2/batches"

// ListBatchesOptions filters GET /v2/batches. Zero values are not sent.
type ListBatchesOptions struct {
	Status           BatchStatus
	BatchNumber      string
	CreatedAtStart   *time.Time
	CreatedAtEnd     *time.Time
	ProcessedAtStart *time.Time
	ProcessedAtEnd   *time.Time
	Page             int
	PageSize         int
	SortDir          SortDirection
	SortBy           string
}

func (o ListBatchesOptions) values() url.Values {
	q := url.Values{}
	setQuery(q, "status", string(o.Status))
	setQuery(q, "batchNumber", o.BatchNumber)
	setQueryTime(q, "createdAtStart", o.CreatedAtStart)
	setQueryTime(q, "createdAtEnd", o.CreatedAtEnd)
	setQueryTime(q, "processedAtStart", o.ProcessedAtStart)
	setQueryTime(q, "processedAtEnd", o.ProcessedAtEnd)
	setQueryInt(q, "page", o.Page)
	setQueryInt(q, "pageSize", o.PageSize)
	setQuery(q, "sortDir", string(o.SortDir))
	setQuery(q, "sortBy", o.SortBy)
	return q
}

// CreateBatchOptions is the input of CreateBatch. Nil ID lists are sent as [].
type CreateBatchOptions struct {
	ShipmentIDs     []string
	RateIDs         []string
	ExternalBatchID string
	BatchNotes      string
}

type createBatchBody struct {
	ShipmentIDs     []string `json:"shipmentIds"`
	RateIDs         []string `json:"rateIds"`
	ExternalBatchID string   `json:"externalBatchId,omitempty"`
	BatchNotes      string   `json:"batchNotes,omitempty"`
}

func (o CreateBatchOptions) body() createBatchBody {
	return createBatchBody{
		ShipmentIDs:     nonNil(o.ShipmentIDs),
		RateIDs:         nonNil(o.RateIDs),
		ExternalBatchID: o.ExternalBatchID,
		BatchNotes:      o.BatchNotes,
	}
}

// BatchItems are the shipments and rates added to or removed from a batch.
type BatchItems struct {
	ShipmentIDs []string
	RateIDs     []string
}

type batchItemsBody struct {
	ShipmentIDs []string `json:"shipmentIds"`
	RateIDs     []string `json:"rateIds"`
}

func (i BatchItems) body() batchItemsBody {
	return batchItemsBody{
		ShipmentIDs: nonNil(i.ShipmentIDs),
		RateIDs:     nonNil(i.RateIDs),
	}
}

// PageOptions selects one page of a paginated listing.
type PageOptions struct {
	Page     int
	PageSize int
}

func (o PageOptions) values() url.Values {
	q := url.Values{}
	setQueryInt(q, "page", o.Page)
	setQueryInt(q, "pageSize", o.PageSize)
	return q
}

// ProcessLabelsOptions controls label purchase for a batch.
type ProcessLabelsOptions struct {
	ShipDate    *time.Time
	LabelLayout LabelLayout
	LabelFormat LabelFormat
}

type processLabelsBody struct {
	ShipDate    string      `json:"shipDate,omitempty"`
	LabelLayout LabelLayout `json:"labelLayout,omitempty"`
	LabelFormat LabelFormat `json:"labelFormat,omitempty"`
}

func (o ProcessLabelsOptions) body() processLabelsBody {
	return processLabelsBody{
		ShipDate:    isoTime(o.ShipDate),
		LabelLayout: o.LabelLayout,
		LabelFormat: o.LabelFormat,
	}
}

// ListBatches returns the batches matching opts.
func (c *Client) ListBatches(ctx context.Context, opts ListBatchesOptions) ([]Batch, error) {
	return fetchList[Batch](ctx, c, "batches.list", http.MethodGet, batchesPath, opts.values(), nil)
}

// GetBatch returns one batch by id.
func (c *Client) GetBatch(ctx context.Context, batchID string) (*Batch, error) {
	return fetch[Batch](ctx, c, "batches.get", http.MethodGet, resourcePath(batchesPath, batchID), nil, nil)
}

// GetBatchByExternalID returns the batch created with the given external id.
func (c *Client) GetBatchByExternalID(ctx context.Context, externalBatchID string) (*Batch, error) {
	path := resourcePath(batchesPath, "external_batch_id", externalBatchID)
	return fetch[Batch](ctx, c, "batches.get_external", http.MethodGet, path, nil, nil)
}

// CreateBatch creates a batch from shipments and/or rates.
func (c *Client) CreateBatch(ctx context.Context, opts CreateBatchOptions) (*Batch, error) {
	return fetch[Batch](ctx, c, "batches.create", http.MethodPost, batchesPath, nil, opts.body())
}

// DeleteBatch deletes a batch.
func (c *Client) DeleteBatch(ctx context.Context, batchID string) error {
	return send(ctx, c, "batches.delete", http.MethodDelete, resourcePath(batchesPath, batchID), nil)
}

// AddToBatch adds shipments and rates to an existing batch.
func (c *Client) AddToBatch(ctx context.Context, batchID string, items BatchItems) error {
	return send(ctx, c, "batches.add", http.MethodPost, resourcePath(batchesPath, batchID, "add"), items.body())
}

// RemoveFromBatch removes shipments and rates from a batch.
func (c *Client) RemoveFromBatch(ctx context.Context, batchID string, items BatchItems) error {
	return send(ctx, c, "batches.remove", http.MethodPost, resourcePath(batchesPath, batchID, "remove"), items.body())
}

// ListBatchErrors returns the errors recorded while processing a batch.
func (c *Client) ListBatchErrors(ctx context.Context, batchID string, page PageOptions) ([]BatchError, error) {
	path := resourcePath(batchesPath, batchID, "errors")
	return fetchList[BatchError](ctx, c, "batches.errors", http.MethodGet, path, page.values(), nil)
}

// ProcessBatchLabels starts label purchase for every item in the batch.
func (c *Client) ProcessBatchLabels(ctx context.Context, batchID string, opts ProcessLabelsOptions) error {
	path := resourcePath(batchesPath, batchID, "process", "labels")
	return send(ctx, c, "batches.process_labels", http.MethodPost, path, opts.body())
}
