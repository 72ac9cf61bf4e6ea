package shipstation

import (
	"context"
	"net/http"
	"net/url"
)

const labelsPath = "/v2/labels"

// LabelOptions are the rendering options shared by the label purchase endpoints.
type LabelOptions struct {
	LabelFormat       LabelFormat
	LabelLayout       LabelLayout
	LabelDownloadType LabelDownloadType
	TestLabel         bool
}

type labelOptionsBody struct {
	LabelFormat       LabelFormat       `json:"labelFormat,omitempty"`
	LabelLayout       LabelLayout       `json:"labelLayout,omitempty"`
	LabelDownloadType LabelDownloadType `json:"labelDownloadType,omitempty"`
	TestLabel         bool              `json:"testLabel,omitempty"`
}

func (o LabelOptions) body() labelOptionsBody {
	return labelOptionsBody{
		LabelFormat:       o.LabelFormat,
		LabelLayout:       o.LabelLayout,
		LabelDownloadType: o.LabelDownloadType,
		TestLabel:         o.TestLabel,
	}
}

// CreateLabelRequest purchases a label for an inline shipment.
type CreateLabelRequest struct {
	Shipment Object
	LabelOptions
}

type createLabelBody struct {
	Shipment Object `json:"shipment"`
	labelOptionsBody
}

func (r CreateLabelRequest) body() createLabelBody {
	return createLabelBody{
		Shipment:         r.Shipment,
		labelOptionsBody: r.LabelOptions.body(),
	}
}

// CreateLabel purchases a label.
func (c *Client) CreateLabel(ctx context.Context, req CreateLabelRequest) (Object, error) {
	return fetchObject(ctx, c, "labels.create", http.MethodPost, labelsPath, nil, req.body())
}

// CreateLabelFromRate purchases a label for a previously quoted rate.
func (c *Client) CreateLabelFromRate(ctx context.Context, rateID string, opts LabelOptions) (Object, error) {
	path := resourcePath(labelsPath, "rates", rateID)
	return fetchObject(ctx, c, "labels.create_from_rate", http.MethodPost, path, nil, opts.body())
}

// GetLabel returns a label. An empty downloadType leaves the choice to the API.
func (c *Client) GetLabel(ctx context.Context, labelID string, downloadType LabelDownloadType) (Object, error) {
	q := url.Values{}
	setQuery(q, "labelDownloadType", string(downloadType))
	return fetchObject(ctx, c, "labels.get", http.MethodGet, resourcePath(labelsPath, labelID), q, nil)
}
