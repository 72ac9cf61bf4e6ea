package graphql

import (
	"context"
	"errors"

	"github.com/tournevent/shipstation/pkg/shipstation"
)

func (r *Resolver) mutationFields() map[string]fieldResolver {
	return map[string]fieldResolver{
		"createBatch":        r.createBatch,
		"deleteBatch":        r.deleteBatch,
		"addToBatch":         r.addToBatch,
		"removeFromBatch":    r.removeFromBatch,
		"processBatchLabels": r.processBatchLabels,
		"estimateRates":      r.estimateRates,
	}
}

func (r *Resolver) createBatch(ctx context.Context, a *args) (any, error) {
	opts := shipstation.CreateBatchOptions{
		ShipmentIDs:     a.Strings("shipmentIds"),
		RateIDs:         a.Strings("rateIds"),
		ExternalBatchID: a.String("externalBatchId"),
		BatchNotes:      a.String("batchNotes"),
	}
	return resolveWith(a, func() (*shipstation.Batch, error) {
		return r.API.CreateBatch(ctx, opts)
	})
}

func (r *Resolver) deleteBatch(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	return resolveWith(a, func() (bool, error) {
		return done(r.API.DeleteBatch(ctx, id))
	})
}

func (r *Resolver) addToBatch(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	items := batchItems(a)
	return resolveWith(a, func() (bool, error) {
		return done(r.API.AddToBatch(ctx, id, items))
	})
}

func (r *Resolver) removeFromBatch(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	items := batchItems(a)
	return resolveWith(a, func() (bool, error) {
		return done(r.API.RemoveFromBatch(ctx, id, items))
	})
}

func (r *Resolver) processBatchLabels(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	opts := shipstation.ProcessLabelsOptions{
		ShipDate:    a.Time("shipDate"),
		LabelFormat: enum(a, "labelFormat", shipstation.ParseLabelFormat),
		LabelLayout: enum(a, "labelLayout", shipstation.ParseLabelLayout),
	}
	return resolveWith(a, func() (bool, error) {
		return done(r.API.ProcessBatchLabels(ctx, id, opts))
	})
}

// estimateRates fans out one estimate per carrier. Carriers that fail are
// reported as errors next to the estimates of those that succeeded.
func (r *Resolver) estimateRates(ctx context.Context, a *args) (any, error) {
	carrierIDs := a.Strings("carrierIds")
	req := shipstation.EstimateRatesRequest{
		FromCountryCode:   a.RequiredString("fromCountryCode"),
		FromPostalCode:    a.RequiredString("fromPostalCode"),
		FromCityLocality:  a.String("fromCityLocality"),
		FromStateProvince: a.String("fromStateProvince"),
		ToCountryCode:     a.RequiredString("toCountryCode"),
		ToPostalCode:      a.RequiredString("toPostalCode"),
		ToCityLocality:    a.String("toCityLocality"),
		ToStateProvince:   a.String("toStateProvince"),
		Weight: shipstation.Weight{
			Value: a.Float("weight"),
			Unit:  enum(a, "weightUnit", shipstation.ParseWeightUnit),
		},
		Dimensions:  a.Dimensions("dimensions"),
		Residential: enum(a, "residential", shipstation.ParseResidentialIndicator),
		ShipDate:    a.Time("shipDate"),
	}
	if a.err != nil {
		return nil, a.err
	}
	if req.Weight.Unit == "" {
		req.Weight.Unit = shipstation.WeightPound
	}

	results, errs := shipstation.EstimateRatesForCarriers(ctx, r.API, req, carrierIDs)
	if len(results) == 0 {
		return nil, errors.Join(errs...)
	}
	return results, errors.Join(errs...)
}

func batchItems(a *args) shipstation.BatchItems {
	return shipstation.BatchItems{
		ShipmentIDs: a.Strings("shipmentIds"),
		RateIDs:     a.Strings("rateIds"),
	}
}

func done(err error) (bool, error) {
	return err == nil, err
}
