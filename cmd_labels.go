package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/tournevent/shipstation/pkg/shipstation"
)

func newLabelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Purchase and fetch shipping labels",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Purchase a label for an inline shipment",
		Args:  cobra.NoArgs,
	}
	create.Flags().String("shipment-file", "-", "JSON file with the shipment, - for stdin")
	labelOptionFlags(create)
	create.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		path, _ := create.Flags().GetString("shipment-file")
		shipment, err := readObject(path, create.InOrStdin())
		if err != nil {
			return nil, err
		}
		opts, err := labelOptions(create)
		if err != nil {
			return nil, err
		}
		return api.CreateLabel(ctx, shipstation.CreateLabelRequest{Shipment: shipment, LabelOptions: opts})
	})

	fromRate := &cobra.Command{
		Use:   "from-rate <rate-id>",
		Short: "Purchase a label for a quoted rate",
		Args:  cobra.ExactArgs(1),
	}
	labelOptionFlags(fromRate)
	fromRate.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		opts, err := labelOptions(fromRate)
		if err != nil {
			return nil, err
		}
		return api.CreateLabelFromRate(ctx, args[0], opts)
	})

	get := &cobra.Command{
		Use:   "get <label-id>",
		Short: "Show a label",
		Args:  cobra.ExactArgs(1),
	}
	get.Flags().String("download-type", "", "label download type: url or inline")
	get.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		download, err := enumFlag(get, "download-type", shipstation.ParseLabelDownloadType)
		if err != nil {
			return nil, err
		}
		return api.GetLabel(ctx, args[0], download)
	})

	cmd.AddCommand(create, fromRate, get)
	return cmd
}

func newManifestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifests",
		Short: "Create and fetch end-of-day manifests",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a manifest",
		Args:  cobra.NoArgs,
	}
	create.Flags().String("carrier-id", "", "carrier id")
	create.Flags().String("warehouse-id", "", "warehouse id")
	create.Flags().String("ship-date", "", "ship date (ISO-8601)")
	create.Flags().StringSlice("label-id", nil, "label ids (repeatable)")
	create.Flags().StringSlice("exclude-label-id", nil, "label ids to exclude (repeatable)")
	create.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		var req shipstation.CreateManifestRequest
		var err error
		if req.ShipDate, err = timeFlag(create, "ship-date"); err != nil {
			return nil, err
		}
		req.CarrierID, _ = create.Flags().GetString("carrier-id")
		req.WarehouseID, _ = create.Flags().GetString("warehouse-id")
		req.LabelIDs, _ = create.Flags().GetStringSlice("label-id")
		req.ExcludedLabelIDs, _ = create.Flags().GetStringSlice("exclude-label-id")
		return api.CreateManifest(ctx, req)
	})

	cmd.AddCommand(create, &cobra.Command{
		Use:   "get <manifest-id>",
		Short: "Show a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
			return api.GetManifest(ctx, args[0])
		}),
	})
	return cmd
}

func newPickupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pickups",
		Short: "Schedule and fetch carrier pickups",
	}

	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a pickup for purchased labels",
		Args:  cobra.NoArgs,
	}
	schedule.Flags().StringSlice("label-id", nil, "label ids (repeatable)")
	schedule.Flags().String("contact-name", "", "contact name")
	schedule.Flags().String("contact-email", "", "contact email")
	schedule.Flags().String("contact-phone", "", "contact phone")
	schedule.Flags().String("notes", "", "pickup notes")
	schedule.Flags().String("window-start", "", "pickup window start (ISO-8601)")
	schedule.Flags().String("window-end", "", "pickup window end (ISO-8601)")
	_ = schedule.MarkFlagRequired("label-id")
	schedule.MarkFlagsRequiredTogether("window-start", "window-end")
	schedule.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		var req shipstation.SchedulePickupRequest
		req.LabelIDs, _ = schedule.Flags().GetStringSlice("label-id")
		req.Contact.Name, _ = schedule.Flags().GetString("contact-name")
		req.Contact.Email, _ = schedule.Flags().GetString("contact-email")
		req.Contact.Phone, _ = schedule.Flags().GetString("contact-phone")
		req.Notes, _ = schedule.Flags().GetString("notes")

		start, err := timeFlag(schedule, "window-start")
		if err != nil {
			return nil, err
		}
		end, err := timeFlag(schedule, "window-end")
		if err != nil {
			return nil, err
		}
		if start != nil && end != nil {
			req.Window = &shipstation.PickupWindow{StartAt: *start, EndAt: *end}
		}
		return api.SchedulePickup(ctx, req)
	})

	cmd.AddCommand(schedule, &cobra.Command{
		Use:   "get <pickup-id>",
		Short: "Show a pickup",
		Args:  cobra.ExactArgs(1),
		RunE: runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
			return api.GetPickup(ctx, args[0])
		}),
	})
	return cmd
}
