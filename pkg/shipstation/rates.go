package shipstation

import (
	"context"
	"net/http"
	"time"
)

const (
	estimateRatesPath  = "/v2/rates/estimate"
	calculateRatesPath = "/v2/rates/calculate"
)

// EstimateRatesRequest asks for rate estimates without creating a shipment.
// Origin/destination country and postal codes and Weight are always sent;
// everything else is omitted when unset.
type EstimateRatesRequest struct {
	CarrierIDs        []string
	FromCountryCode   string
	FromPostalCode    string
	FromCityLocality  string
	FromStateProvince string
	ToCountryCode     string
	ToPostalCode      string
	ToCityLocality    string
	ToStateProvince   string
	Weight            Weight
	Dimensions        *Dimensions
	Residential       ResidentialIndicator
	ShipDate          *time.Time
}

type estimateRatesBody struct {
	CarrierIDs                  []string             `json:"carrierIds,omitempty"`
	FromCountryCode             string               `json:"fromCountryCode"`
	FromPostalCode              string               `json:"fromPostalCode"`
	FromCityLocality            string               `json:"fromCityLocality,omitempty"`
	FromStateProvince           string               `json:"fromStateProvince,omitempty"`
	ToCountryCode               string               `json:"toCountryCode"`
	ToPostalCode                string               `json:"toPostalCode"`
	ToCityLocality              string               `json:"toCityLocality,omitempty"`
	ToStateProvince             string               `json:"toStateProvince,omitempty"`
	Weight                      Weight               `json:"weight"`
	Dimensions                  *Dimensions          `json:"dimensions,omitempty"`
	AddressResidentialIndicator ResidentialIndicator `json:"addressResidentialIndicator,omitempty"`
	ShipDate                    string               `json:"shipDate,omitempty"`
}

func (r EstimateRatesRequest) body() estimateRatesBody {
	return estimateRatesBody{
		CarrierIDs:                  r.CarrierIDs,
		FromCountryCode:             r.FromCountryCode,
		FromPostalCode:              r.FromPostalCode,
		FromCityLocality:            r.FromCityLocality,
		FromStateProvince:           r.FromStateProvince,
		ToCountryCode:               r.ToCountryCode,
		ToPostalCode:                r.ToPostalCode,
		ToCityLocality:              r.ToCityLocality,
		ToStateProvince:             r.ToStateProvince,
		Weight:                      r.Weight,
		Dimensions:                  r.Dimensions,
		AddressResidentialIndicator: r.Residential,
		ShipDate:                    isoTime(r.ShipDate),
	}
}

// CalculateRatesRequest rates an existing shipment (ShipmentID) or an inline Shipment.
type CalculateRatesRequest struct {
	ShipmentID         string
	Shipment           Object
	CarrierIDs         []string
	ServiceCodes       []string
	PackageTypes       []string
	CalculateTaxAmount *bool
}

type rateOptionsBody struct {
	CarrierIDs         []string `json:"carrierIds"`
	ServiceCodes       []string `json:"serviceCodes,omitempty"`
	PackageTypes       []string `json:"packageTypes,omitempty"`
	CalculateTaxAmount *bool    `json:"calculateTaxAmount,omitempty"`
}

type calculateRatesBody struct {
	ShipmentID  string          `json:"shipmentId,omitempty"`
	Shipment    Object          `json:"shipment,omitempty"`
	RateOptions rateOptionsBody `json:"rateOptions"`
}

func (r CalculateRatesRequest) body() calculateRatesBody {
	return calculateRatesBody{
		ShipmentID: r.ShipmentID,
		Shipment:   r.Shipment,
		RateOptions: rateOptionsBody{
			CarrierIDs:         nonNil(r.CarrierIDs),
			ServiceCodes:       r.ServiceCodes,
			PackageTypes:       r.PackageTypes,
			CalculateTaxAmount: r.CalculateTaxAmount,
		},
	}
}

// EstimateRates returns rate estimates. The estimates are returned undecoded
// beyond plain JSON objects.
func (c *Client) EstimateRates(ctx context.Context, req EstimateRatesRequest) ([]Object, error) {
	return fetchList[Object](ctx, c, "rates.estimate", http.MethodPost, estimateRatesPath, nil, req.body())
}

// CalculateRates returns the full rate response for a shipment.
func (c *Client) CalculateRates(ctx context.Context, req CalculateRatesRequest) (Object, error) {
	return fetchObject(ctx, c, "rates.calculate", http.MethodPost, calculateRatesPath, nil, req.body())
}
