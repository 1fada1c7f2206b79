package stock

import (
	"fmt"
	"strings"
)

// OutputFormat selects how data-producing operations are rendered.
type OutputFormat string

const (
	// FormatStructured returns decoded JSON values as-is (the default).
	FormatStructured OutputFormat = "structured"
	// FormatTabular renders record-like endpoint data as a Table. Endpoints
	// whose shape is not record-like fall back to structured with a warning.
	FormatTabular OutputFormat = "tabular"
)

// Option defaults and bounds.
const (
	DefaultRange = "1m"
	DefaultLast  = 10

	minLast = 1
	maxLast = 50

	// MaxSymbols is the largest symbol batch one reader may request.
	MaxSymbols = 100
)

// rangeValues are the lookback windows the chart, dividends, and splits
// endpoints accept. The first entry is the default.
var rangeValues = []string{"1m", "5y", "2y", "1y", "ytd", "6m", "3m", "1d"}

// Options is the query configuration for a Reader.
//
// The zero value maps to the catalog defaults: Range "1m", Last 10,
// DisplayPercent false, structured output. When every option equals its
// default, the wire request omits them entirely and relies on the
// server-side defaults.
type Options struct {
	// Range is the lookback window for the chart, dividends, and splits
	// endpoints. Must be one of 1m, 5y, 2y, 1y, ytd, 6m, 3m, 1d.
	Range string

	// Last is how many news items to request, between 1 and 50.
	Last int

	// DisplayPercent asks the server to return percentage fields scaled for
	// display.
	DisplayPercent bool

	// Output selects structured or tabular rendering.
	Output OutputFormat
}

// normalize fills zero-valued fields with defaults and validates the rest.
func (o *Options) normalize() error {
	if o.Range == "" {
		o.Range = DefaultRange
	}
	if o.Last == 0 {
		o.Last = DefaultLast
	}
	if o.Output == "" {
		o.Output = FormatStructured
	}

	if !validRange(o.Range) {
		return &InvalidInputError{Reason: fmt.Sprintf("invalid chart range %q", o.Range)}
	}
	if o.Last < minLast || o.Last > maxLast {
		return &InvalidInputError{Reason: fmt.Sprintf("invalid news last value %d: enter a value between 1 and 50", o.Last)}
	}
	if o.Output != FormatStructured && o.Output != FormatTabular {
		return &InvalidInputError{Reason: fmt.Sprintf("invalid output format %q", o.Output)}
	}
	return nil
}

// isDefault reports whether the wire-relevant options all equal catalog
// defaults, in which case the request omits them.
func (o Options) isDefault() bool {
	return o.Range == DefaultRange && o.Last == DefaultLast && !o.DisplayPercent
}

func validRange(r string) bool {
	for _, v := range rangeValues {
		if v == r {
			return true
		}
	}
	return false
}

// normalizeSymbols uppercases, trims, and deduplicates the requested symbols
// while preserving order, then enforces the batch size bounds.
func normalizeSymbols(symbols []string) ([]string, error) {
	if len(symbols) == 0 {
		return nil, &InvalidInputError{Reason: "a non-empty list of symbols is required"}
	}
	if len(symbols) > MaxSymbols {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("too many symbols: %d exceeds the maximum of %d", len(symbols), MaxSymbols)}
	}

	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		sym := strings.ToUpper(strings.TrimSpace(s))
		if sym == "" {
			return nil, &InvalidInputError{Reason: "symbols must be non-empty strings"}
		}
		if seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	return out, nil
}
