package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"time"

	"github.com/spf13/cobra"
	"github.com/tournevent/shipstation/pkg/shipstation"
	"go.uber.org/zap"
)

// apiCall is the body of a resource command. A nil result prints nothing.
type apiCall func(ctx context.Context, api shipstation.API, args []string) (any, error)

// runAPI wraps call with config loading, logging and JSON output on stdout.
func runAPI(call apiCall) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := initLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync()

		api := initAPI(cfg, logger, nil, nil)
		result, err := call(cmd.Context(), api, args)
		if err != nil {
			logger.Debug("Command failed", zap.String("command", cmd.CommandPath()), zap.Error(err))
			return err
		}
		if isNil(result) {
			return nil
		}
		return printJSON(cmd.OutOrStdout(), result)
	}
}

// isNil reports whether v is nil or a typed nil pointer, slice or map, as
// returned by getters on an empty response.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readObject decodes a JSON object from path, or from stdin when path is "-".
func readObject(path string, stdin io.Reader) (shipstation.Object, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var obj shipstation.Object
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return obj, nil
}

// timeFlag parses an optional ISO-8601 flag value.
func timeFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	v, _ := cmd.Flags().GetString(name)
	t, err := shipstation.ParseTime(v)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}

// enumFlag parses an optional enum flag value.
func enumFlag[T ~string](cmd *cobra.Command, name string, parse func(string) (T, error)) (T, error) {
	v, _ := cmd.Flags().GetString(name)
	e, err := parse(v)
	if err != nil {
		return e, fmt.Errorf("--%s: %w", name, err)
	}
	return e, nil
}

// labelOptionFlags registers the flags shared by label purchase commands.
func labelOptionFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "label format: pdf, png or zpl")
	cmd.Flags().String("layout", "", "label layout: 4x6 or letter")
	cmd.Flags().String("download-type", "", "label download type: url or inline")
	cmd.Flags().Bool("test", false, "create a test label")
}

func labelOptions(cmd *cobra.Command) (shipstation.LabelOptions, error) {
	var opts shipstation.LabelOptions
	var err error
	if opts.LabelFormat, err = enumFlag(cmd, "format", shipstation.ParseLabelFormat); err != nil {
		return opts, err
	}
	if opts.LabelLayout, err = enumFlag(cmd, "layout", shipstation.ParseLabelLayout); err != nil {
		return opts, err
	}
	if opts.LabelDownloadType, err = enumFlag(cmd, "download-type", shipstation.ParseLabelDownloadType); err != nil {
		return opts, err
	}
	opts.TestLabel, _ = cmd.Flags().GetBool("test")
	return opts, nil
}
