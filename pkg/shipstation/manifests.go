package shipstation

import (
	"context"
	"net/http"
	"time"
)

const manifestsPath = "/v2/manifests"

// CreateManifestRequest selects the labels to manifest, either explicitly
// (LabelIDs) or by carrier, warehouse and ship date.
type CreateManifestRequest struct {
	CarrierID        string
	WarehouseID      string
	ShipDate         *time.Time
	LabelIDs         []string
	ExcludedLabelIDs []string
}

type createManifestBody struct {
	CarrierID        string   `json:"carrierId,omitempty"`
	WarehouseID      string   `json:"warehouseId,omitempty"`
	ShipDate         string   `json:"shipDate,omitempty"`
	LabelIDs         []string `json:"labelIds,omitempty"`
	ExcludedLabelIDs []string `json:"excludedLabelIds,omitempty"`
}

func (r CreateManifestRequest) body() createManifestBody {
	return createManifestBody{
		CarrierID:        r.CarrierID,
		WarehouseID:      r.WarehouseID,
		ShipDate:         isoTime(r.ShipDate),
		LabelIDs:         r.LabelIDs,
		ExcludedLabelIDs: r.ExcludedLabelIDs,
	}
}

// CreateManifest creates an end-of-day manifest.
func (c *Client) CreateManifest(ctx context.Context, req CreateManifestRequest) (Object, error) {
	return fetchObject(ctx, c, "manifests.create", http.MethodPost, manifestsPath, nil, req.body())
}

// GetManifest returns one manifest.
func (c *Client) GetManifest(ctx context.Context, manifestID string) (Object, error) {
	return fetchObject(ctx, c, "manifests.get", http.MethodGet, resourcePath(manifestsPath, manifestID), nil, nil)
}
