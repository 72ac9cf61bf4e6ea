package shipstation

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

const maxConcurrentEstimates = 4

// CarrierEstimate is the estimate response for a single carrier.
type CarrierEstimate struct {
	CarrierID string   `json:"carrierId"`
	Rates     []Object `json:"rates"`
}

// EstimateRatesForCarriers issues one EstimateRates call per carrier in parallel.
// A failing carrier does not fail the others: its error is returned in the
// second slice, prefixed with the carrier id. Results keep the order of carrierIDs.
// With no carrier ids it makes a single call with req unchanged.
func EstimateRatesForCarriers(ctx context.Context, api API, req EstimateRatesRequest, carrierIDs []string) ([]CarrierEstimate, []error) {
	if len(carrierIDs) == 0 {
		rates, err := api.EstimateRates(ctx, req)
		if err != nil {
			return nil, []error{err}
		}
		return []CarrierEstimate{{Rates: rates}}, nil
	}

	slots := make([]*CarrierEstimate, len(carrierIDs))
	errs := make([]error, 0)
	mu := &sync.Mutex{}

	var g errgroup.Group
	g.SetLimit(maxConcurrentEstimates)

	for i, id := range carrierIDs {
		g.Go(func() error {
			perCarrier := req
			perCarrier.CarrierIDs = []string{id}

			rates, err := api.EstimateRates(ctx, perCarrier)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", id, err))
				mu.Unlock()
				return nil
			}
			slots[i] = &CarrierEstimate{CarrierID: id, Rates: rates}
			return nil
		})
	}
	// Failures are collected in errs; the goroutines never return one.
	g.Wait()

	results := make([]CarrierEstimate, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			results = append(results, *s)
		}
	}
	return results, errs
}
