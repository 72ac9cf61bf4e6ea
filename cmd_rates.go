package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tournevent/shipstation/pkg/shipstation"
)

func newCarriersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carriers",
		Short: "Inspect connected carrier accounts",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List carriers",
			Args:  cobra.NoArgs,
			RunE: runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
				return api.ListCarriers(ctx)
			}),
		},
		&cobra.Command{
			Use:   "get <carrier-id>",
			Short: "Show a carrier",
			Args:  cobra.ExactArgs(1),
			RunE: runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
				return api.GetCarrier(ctx, args[0])
			}),
		},
	)
	return cmd
}

func newRatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Estimate and calculate shipping rates",
	}
	cmd.AddCommand(newRatesEstimateCmd(), newRatesCalculateCmd())
	return cmd
}

func newRatesEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate rates without creating a shipment",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringSlice("carrier-id", nil, "carrier ids (repeatable)")
	cmd.Flags().Bool("per-carrier", false, "query each carrier separately and report failures per carrier")
	cmd.Flags().String("from-country", "", "origin country code")
	cmd.Flags().String("from-postal", "", "origin postal code")
	cmd.Flags().String("from-city", "", "origin city")
	cmd.Flags().String("from-state", "", "origin state or province")
	cmd.Flags().String("to-country", "", "destination country code")
	cmd.Flags().String("to-postal", "", "destination postal code")
	cmd.Flags().String("to-city", "", "destination city")
	cmd.Flags().String("to-state", "", "destination state or province")
	cmd.Flags().Float64("weight", 0, "package weight")
	cmd.Flags().String("weight-unit", "pound", "pound, ounce, gram or kilogram")
	cmd.Flags().Float64("length", 0, "package length")
	cmd.Flags().Float64("width", 0, "package width")
	cmd.Flags().Float64("height", 0, "package height")
	cmd.Flags().String("dimension-unit", "inch", "inch or centimeter")
	cmd.Flags().String("residential", "", "unknown, yes or no")
	cmd.Flags().String("ship-date", "", "ship date (ISO-8601)")
	for _, name := range []string{"from-country", "from-postal", "to-country", "to-postal", "weight"} {
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.MarkFlagsRequiredTogether("length", "width", "height")

	cmd.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		req := shipstation.EstimateRatesRequest{}
		req.CarrierIDs, _ = cmd.Flags().GetStringSlice("carrier-id")
		req.FromCountryCode, _ = cmd.Flags().GetString("from-country")
		req.FromPostalCode, _ = cmd.Flags().GetString("from-postal")
		req.FromCityLocality, _ = cmd.Flags().GetString("from-city")
		req.FromStateProvince, _ = cmd.Flags().GetString("from-state")
		req.ToCountryCode, _ = cmd.Flags().GetString("to-country")
		req.ToPostalCode, _ = cmd.Flags().GetString("to-postal")
		req.ToCityLocality, _ = cmd.Flags().GetString("to-city")
		req.ToStateProvince, _ = cmd.Flags().GetString("to-state")
		req.Weight.Value, _ = cmd.Flags().GetFloat64("weight")

		var err error
		if req.Residential, err = enumFlag(cmd, "residential", shipstation.ParseResidentialIndicator); err != nil {
			return nil, err
		}
		if req.Weight.Unit, err = enumFlag(cmd, "weight-unit", shipstation.ParseWeightUnit); err != nil {
			return nil, err
		}
		if req.ShipDate, err = timeFlag(cmd, "ship-date"); err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("length") {
			d := &shipstation.Dimensions{}
			d.Length, _ = cmd.Flags().GetFloat64("length")
			d.Width, _ = cmd.Flags().GetFloat64("width")
			d.Height, _ = cmd.Flags().GetFloat64("height")
			if d.Unit, err = enumFlag(cmd, "dimension-unit", shipstation.ParseDimensionUnit); err != nil {
				return nil, err
			}
			req.Dimensions = d
		}

		if perCarrier, _ := cmd.Flags().GetBool("per-carrier"); perCarrier {
			carrierIDs := req.CarrierIDs
			req.CarrierIDs = nil
			results, errs := shipstation.EstimateRatesForCarriers(ctx, api, req, carrierIDs)
			reportErrors(cmd.ErrOrStderr(), errs)
			if len(results) == 0 && len(errs) > 0 {
				return nil, errors.Join(errs...)
			}
			return results, nil
		}
		return api.EstimateRates(ctx, req)
	})
	return cmd
}

func reportErrors(w io.Writer, errs []error) {
	for _, err := range errs {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
}

func newRatesCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate rates for a shipment",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String("shipment-id", "", "existing shipment id")
	cmd.Flags().String("shipment-file", "", "JSON file with an inline shipment, - for stdin")
	cmd.Flags().StringSlice("carrier-id", nil, "carrier ids (repeatable)")
	cmd.Flags().StringSlice("service-code", nil, "service codes (repeatable)")
	cmd.Flags().StringSlice("package-type", nil, "package types (repeatable)")
	cmd.MarkFlagsOneRequired("shipment-id", "shipment-file")
	cmd.MarkFlagsMutuallyExclusive("shipment-id", "shipment-file")

	cmd.RunE = runAPI(func(ctx context.Context, api shipstation.API, args []string) (any, error) {
		var req shipstation.CalculateRatesRequest
		req.ShipmentID, _ = cmd.Flags().GetString("shipment-id")
		if path, _ := cmd.Flags().GetString("shipment-file"); path != "" {
			shipment, err := readObject(path, cmd.InOrStdin())
			if err != nil {
				return nil, err
			}
			req.Shipment = shipment
		}
		req.CarrierIDs, _ = cmd.Flags().GetStringSlice("carrier-id")
		req.ServiceCodes, _ = cmd.Flags().GetStringSlice("service-code")
		req.PackageTypes, _ = cmd.Flags().GetStringSlice("package-type")
		return api.CalculateRates(ctx, req)
	})
	return cmd
}
