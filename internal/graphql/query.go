package graphql

import (
	"context"

	"github.com/tournevent/shipstation/pkg/shipstation"
)

func (r *Resolver) queryFields() map[string]fieldResolver {
	return map[string]fieldResolver{
		"health":            r.health,
		"carriers":          r.carriers,
		"carrier":           r.carrier,
		"batches":           r.batches,
		"batch":             r.batch,
		"batchByExternalId": r.batchByExternalID,
		"batchErrors":       r.batchErrors,
		"label":             r.label,
		"manifest":          r.manifest,
		"pickup":            r.pickup,
	}
}

func (r *Resolver) health(ctx context.Context, a *args) (any, error) {
	return true, nil
}

func (r *Resolver) carriers(ctx context.Context, a *args) (any, error) {
	return resolveWith(a, func() ([]shipstation.Carrier, error) {
		return r.API.ListCarriers(ctx)
	})
}

func (r *Resolver) carrier(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	return resolveWith(a, func() (*shipstation.Carrier, error) {
		return r.API.GetCarrier(ctx, id)
	})
}

func (r *Resolver) batches(ctx context.Context, a *args) (any, error) {
	opts := shipstation.ListBatchesOptions{
		Status:           enum(a, "status", shipstation.ParseBatchStatus),
		BatchNumber:      a.String("batchNumber"),
		CreatedAtStart:   a.Time("createdAtStart"),
		CreatedAtEnd:     a.Time("createdAtEnd"),
		ProcessedAtStart: a.Time("processedAtStart"),
		ProcessedAtEnd:   a.Time("processedAtEnd"),
		Page:             a.Int("page"),
		PageSize:         a.Int("pageSize"),
		SortDir:          enum(a, "sortDir", shipstation.ParseSortDirection),
		SortBy:           a.String("sortBy"),
	}
	return resolveWith(a, func() ([]shipstation.Batch, error) {
		return r.API.ListBatches(ctx, opts)
	})
}

func (r *Resolver) batch(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	return resolveWith(a, func() (*shipstation.Batch, error) {
		return r.API.GetBatch(ctx, id)
	})
}

func (r *Resolver) batchByExternalID(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("externalId")
	return resolveWith(a, func() (*shipstation.Batch, error) {
		return r.API.GetBatchByExternalID(ctx, id)
	})
}

func (r *Resolver) batchErrors(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("batchId")
	page := shipstation.PageOptions{Page: a.Int("page"), PageSize: a.Int("pageSize")}
	return resolveWith(a, func() ([]shipstation.BatchError, error) {
		return r.API.ListBatchErrors(ctx, id, page)
	})
}

func (r *Resolver) label(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	download := enum(a, "downloadType", shipstation.ParseLabelDownloadType)
	return resolveWith(a, func() (shipstation.Object, error) {
		return r.API.GetLabel(ctx, id, download)
	})
}

func (r *Resolver) manifest(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	return resolveWith(a, func() (shipstation.Object, error) {
		return r.API.GetManifest(ctx, id)
	})
}

func (r *Resolver) pickup(ctx context.Context, a *args) (any, error) {
	id := a.RequiredString("id")
	return resolveWith(a, func() (shipstation.Object, error) {
		return r.API.GetPickup(ctx, id)
	})
}
