package shipstation

import (
	"time"
)

// BatchStatus is the processing state of a batch.
type BatchStatus string

const (
	BatchStatusCreating   BatchStatus = "creating"
	BatchStatusCreated    BatchStatus = "created"
	BatchStatusError      BatchStatus = "error"
	BatchStatusProcessing BatchStatus = "processing"
	BatchStatusCompleted  BatchStatus = "completed"
)

// LabelFormat is the file format of a purchased label.
type LabelFormat string

const (
	LabelFormatPDF LabelFormat = "pdf"
	LabelFormatPNG LabelFormat = "png"
	LabelFormatZPL LabelFormat = "zpl"
)

// LabelLayout is the paper size a label is rendered for.
type LabelLayout string

const (
	LabelLayout4x6    LabelLayout = "4x6"
	LabelLayoutLetter LabelLayout = "letter"
)

// LabelDownloadType selects whether label files are returned as URLs or inline base64.
type LabelDownloadType string

const (
	LabelDownloadURL    LabelDownloadType = "url"
	LabelDownloadInline LabelDownloadType = "inline"
)

// WeightUnit is the unit of a package weight.
type WeightUnit string

const (
	WeightPound    WeightUnit = "pound"
	WeightOunce    WeightUnit = "ounce"
	WeightGram     WeightUnit = "gram"
	WeightKilogram WeightUnit = "kilogram"
)

// DimensionUnit is the unit of package dimensions.
type DimensionUnit string

const (
	DimensionInch       DimensionUnit = "inch"
	DimensionCentimeter DimensionUnit = "centimeter"
)

// ResidentialIndicator tells the rating service whether the destination is residential.
type ResidentialIndicator string

const (
	ResidentialUnknown ResidentialIndicator = "unknown"
	ResidentialYes     ResidentialIndicator = "yes"
	ResidentialNo      ResidentialIndicator = "no"
)

// SortDirection orders list results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Object is an untyped, decoded JSON object.
type Object = map[string]any

// Carrier is a carrier account connected to the API account.
type Carrier struct {
	CarrierID            string   `json:"carrierId"`
	Name                 string   `json:"name"`
	Code                 string   `json:"code"`
	AccountNumber        *string  `json:"accountNumber,omitempty"`
	Balance              *float64 `json:"balance,omitempty"`
	Nickname             *string  `json:"nickname,omitempty"`
	FriendlyName         *string  `json:"friendlyName,omitempty"`
	RequiresFundedAmount bool     `json:"requiresFundedAmount"`
	Primary              bool     `json:"primary"`
}

// Batch is a server-side group of shipments or rates processed together.
type Batch struct {
	BatchID         string      `json:"batchId"`
	Status          BatchStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	ShipmentCount   int         `json:"shipmentCount"`
	LabelCount      int         `json:"labelCount"`
	ErrorCount      int         `json:"errorCount"`
	ExternalBatchID *string     `json:"externalBatchId,omitempty"`
	BatchNotes      *string     `json:"batchNotes,omitempty"`
}

// BatchError describes one shipment that failed while a batch was processed.
type BatchError struct {
	ErrorID string         `json:"errorId"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Weight is a package weight.
type Weight struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

// Dimensions are package dimensions.
type Dimensions struct {
	Length float64       `json:"length"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Unit   DimensionUnit `json:"unit"`
}
