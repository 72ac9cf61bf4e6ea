package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/tournevent/shipstation/pkg/shipstation"
)

func newBatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batches",
		Short: "Manage label batches",
	}
	cmd.AddCommand(
		newBatchesListCmd(),
		&cobra.Command{
			Use:   "get <batch-id>",
			Short: "Show a batch",
			Args:  cobra.ExactArgs(1),
			RunE: runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
				return api.GetBatch(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "get-external <external-batch-id>",
			Short: "Show a batch by its external id",
			Args:  cobra.ExactArgs(1),
			RunE: runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
				return api.GetBatchByExternalID(ctx, args[0])
			}),
		},
		newBatchesCreateCmd(),
		&cobra.Command{
			Use:   "delete <batch-id>",
			Short: "Delete a batch",
			Args:  cobra.ExactArgs(1),
			RunE: runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
				return nil, api.DeleteBatch(ctx, args[0])
			}),
		},
		newBatchItemsCmd("add", "Add shipments or rates to a batch", shipstation.API.AddToBatch),
		newBatchItemsCmd("remove", "Remove shipments or rates from a batch", shipstation.API.RemoveFromBatch),
		newBatchErrorsCmd(),
		newBatchProcessCmd(),
	)
	return cmd
}

func newBatchesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List batches",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String("status", "", "creating, created, error, processing or completed")
	cmd.Flags().String("batch-number", "", "batch number")
	cmd.Flags().String("created-start", "", "created at or after (ISO-8601)")
	cmd.Flags().String("created-end", "", "created at or before (ISO-8601)")
	cmd.Flags().String("processed-start", "", "processed at or after (ISO-8601)")
	cmd.Flags().String("processed-end", "", "processed at or before (ISO-8601)")
	cmd.Flags().Int("page", 0, "page number")
	cmd.Flags().Int("page-size", 0, "page size")
	cmd.Flags().String("sort-dir", "", "asc or desc")
	cmd.Flags().String("sort-by", "", "sort field")

	cmd.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		var opts shipstation.ListBatchesOptions
		var err error
		if opts.Status, err = enumFlag(cmd, "status", shipstation.ParseBatchStatus); err != nil {
			return nil, err
		}
		for name, dst := range map[string]**time.Time{
			"created-start":   &opts.CreatedAtStart,
			"created-end":     &opts.CreatedAtEnd,
			"processed-start": &opts.ProcessedAtStart,
			"processed-end":   &opts.ProcessedAtEnd,
		} {
			if *dst, err = timeFlag(cmd, name); err != nil {
				return nil, err
			}
		}
		opts.BatchNumber, _ = cmd.Flags().GetString("batch-number")
		opts.Page, _ = cmd.Flags().GetInt("page")
		opts.PageSize, _ = cmd.Flags().GetInt("page-size")
		if opts.SortDir, err = enumFlag(cmd, "sort-dir", shipstation.ParseSortDirection); err != nil {
			return nil, err
		}
		opts.SortBy, _ = cmd.Flags().GetString("sort-by")

		return api.ListBatches(ctx, opts)
	})
	return cmd
}

func newBatchesCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a batch",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringSlice("shipment-id", nil, "shipment ids (repeatable)")
	cmd.Flags().StringSlice("rate-id", nil, "rate ids (repeatable)")
	cmd.Flags().String("external-id", "", "external batch id")
	cmd.Flags().String("notes", "", "batch notes")

	cmd.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		var opts shipstation.CreateBatchOptions
		opts.ShipmentIDs, _ = cmd.Flags().GetStringSlice("shipment-id")
		opts.RateIDs, _ = cmd.Flags().GetStringSlice("rate-id")
		opts.ExternalBatchID, _ = cmd.Flags().GetString("external-id")
		opts.BatchNotes, _ = cmd.Flags().GetString("notes")
		return api.CreateBatch(ctx, opts)
	})
	return cmd
}

func newBatchItemsCmd(use, short string, call func(shipstation.API, context.Context, string, shipstation.BatchItems) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <batch-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringSlice("shipment-id", nil, "shipment ids (repeatable)")
	cmd.Flags().StringSlice("rate-id", nil, "rate ids (repeatable)")

	cmd.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		var items shipstation.BatchItems
		items.ShipmentIDs, _ = cmd.Flags().GetStringSlice("shipment-id")
		items.RateIDs, _ = cmd.Flags().GetStringSlice("rate-id")
		return nil, call(api, ctx, args[0], items)
	})
	return cmd
}

func newBatchErrorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors <batch-id>",
		Short: "List the errors of a batch",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().Int("page", 0, "page number")
	cmd.Flags().Int("page-size", 0, "page size")

	cmd.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		var page shipstation.PageOptions
		page.Page, _ = cmd.Flags().GetInt("page")
		page.PageSize, _ = cmd.Flags().GetInt("page-size")
		return api.ListBatchErrors(ctx, args[0], page)
	})
	return cmd
}

func newBatchProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <batch-id>",
		Short: "Purchase the labels of a batch",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().String("ship-date", "", "ship date (ISO-8601)")
	cmd.Flags().String("format", "", "label format: pdf, png or zpl")
	cmd.Flags().String("layout", "", "label layout: 4x6 or letter")

	cmd.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		var opts shipstation.ProcessLabelsOptions
		var err error
		if opts.ShipDate, err = timeFlag(cmd, "ship-date"); err != nil {
			return nil, err
		}
		if opts.LabelFormat, err = enumFlag(cmd, "format", shipstation.ParseLabelFormat); err != nil {
			return nil, err
		}
		if opts.LabelLayout, err = enumFlag(cmd, "layout", shipstation.ParseLabelLayout); err != nil {
			return nil, err
		}
		return nil, api.ProcessBatchLabels(ctx, args[0], opts)
	})
	return cmd
}
