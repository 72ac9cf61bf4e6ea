package shipstation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// FormatTime renders t as an ISO-8601 timestamp (RFC 3339). Fractional
// seconds are kept when present.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTime parses an ISO-8601 (RFC 3339) timestamp. Empty input yields nil.
func ParseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return &t, nil
}

// isoTime is FormatTime for optional values; nil yields "".
func isoTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTime(*t)
}

// setQuery adds key only when value is set.
func setQuery(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setQueryInt(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func setQueryTime(q url.Values, key string, t *time.Time) {
	setQuery(q, key, isoTime(t))
}

// nonNil keeps list fields that the API requires serialized as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// resourcePath joins base with escaped path segments.
func resourcePath(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// ParseBatchStatus maps user input such as "PROCESSING" or "processing" to a BatchStatus.
func ParseBatchStatus(s string) (BatchStatus, error) {
	return parseEnum("batch status", s,
		BatchStatusCreating, BatchStatusCreated, BatchStatusError, BatchStatusProcessing, BatchStatusCompleted)
}

// ParseLabelFormat maps user input to a LabelFormat.
func ParseLabelFormat(s string) (LabelFormat, error) {
	return parseEnum("label format", s, LabelFormatPDF, LabelFormatPNG, LabelFormatZPL)
}

// ParseLabelLayout maps user input to a LabelLayout.
func ParseLabelLayout(s string) (LabelLayout, error) {
	return parseEnum("label layout", s, LabelLayout4x6, LabelLayoutLetter)
}

// ParseLabelDownloadType maps user input to a LabelDownloadType.
func ParseLabelDownloadType(s string) (LabelDownloadType, error) {
	return parseEnum("label download type", s, LabelDownloadURL, LabelDownloadInline)
}

// ParseWeightUnit maps user input to a WeightUnit.
func ParseWeightUnit(s string) (WeightUnit, error) {
	return parseEnum("weight unit", s, WeightPound, WeightOunce, WeightGram, WeightKilogram)
}

// ParseDimensionUnit maps user input to a DimensionUnit.
func ParseDimensionUnit(s string) (DimensionUnit, error) {
	return parseEnum("dimension unit", s, DimensionInch, DimensionCentimeter)
}

// ParseResidentialIndicator maps user input to a ResidentialIndicator.
func ParseResidentialIndicator(s string) (ResidentialIndicator, error) {
	return parseEnum("residential indicator", s, ResidentialUnknown, ResidentialYes, ResidentialNo)
}

// ParseSortDirection maps user input to a SortDirection.
func ParseSortDirection(s string) (SortDirection, error) {
	return parseEnum("sort direction", s, SortAsc, SortDesc)
}

// parseEnum matches s case-insensitively against the wire values. Empty input
// returns the zero value, which every request builder treats as unset.
func parseEnum[T ~string](kind, s string, values ...T) (T, error) {
	var zero T
	if s == "" {
		return zero, nil
	}
	for _, v := range values {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}
