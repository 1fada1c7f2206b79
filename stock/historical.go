package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// timeNow is an indirection for tests that pin "now" for lookback math.
var timeNow = time.Now

const dateLayout = "2006-01-02"

// Bar is one daily entry of a historical series, restricted to the five
// value fields.
type Bar struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Series is one symbol's daily bars inside a requested window, ordered by
// date and indexed by YYYY-MM-DD date string.
type Series struct {
	Dates []string
	Bars  map[string]Bar
}

// Len returns the number of daily entries in the series.
func (s Series) Len() int { return len(s.Dates) }

// Table renders the series as a date-indexed table.
func (s Series) Table() Table {
	cols := []string{"date", "open", "high", "low", "close", "volume"}
	rows := make([][]any, 0, len(s.Dates))
	for _, d := range s.Dates {
		b := s.Bars[d]
		rows = append(rows, []any{d, b.Open, b.High, b.Low, b.Close, b.Volume})
	}
	return Table{Columns: cols, Rows: rows}
}

// chartBar mirrors one daily entry of the chart endpoint payload. Fields
// outside the five values and the date are ignored on decode.
type chartBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// chartRange maps the requested start date to the coarsest supported lookback
// bucket: the smallest bucket that still covers the window, computed from the
// year delta against "now". Dates older than five years fail with
// *InvalidDateRangeError rather than silently clamping.
func chartRange(start, now time.Time) (string, error) {
	delta := now.Year() - start.Year()
	switch {
	case delta >= 2 && delta <= 5:
		return "5y", nil
	case delta == 1:
		return "2y", nil
	case delta == 0:
		return "1y", nil
	default:
		return "", &InvalidDateRangeError{Start: start.Format(dateLayout)}
	}
}

// Historical fetches the daily series for one symbol, sliced inclusively to
// [start, end].
func Historical(ctx context.Context, transport Transport, symbol string, start, end time.Time) (Series, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return Series{}, &InvalidInputError{Reason: "please input a symbol or list of symbols"}
	}
	out, err := fetchHistorical(ctx, transport, []string{sym}, start, end)
	if err != nil {
		return Series{}, err
	}
	return out[sym], nil
}

// HistoricalBatch fetches the daily series for several symbols in one
// request, sliced inclusively to [start, end], keyed by symbol.
func HistoricalBatch(ctx context.Context, transport Transport, symbols []string, start, end time.Time) (map[string]Series, error) {
	if len(symbols) == 0 {
		return nil, &InvalidInputError{Reason: "please input a symbol or list of symbols"}
	}
	syms, err := normalizeSymbols(symbols)
	if err != nil {
		return nil, err
	}
	return fetchHistorical(ctx, transport, syms, start, end)
}

// fetchHistorical resolves the lookback bucket, issues one chart request for
// all symbols, validates that every symbol is present, and slices each
// symbol's bars to the requested window.
//
// Dates outside the served bucket simply yield a shorter series: bucket
// selection guarantees the window fits, but partial server data is passed
// through uncorrected.
func fetchHistorical(ctx context.Context, transport Transport, symbols []string, start, end time.Time) (map[string]Series, error) {
	bucket, err := chartRange(start, timeNow())
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbols", strings.Join(symbols, ","))
	params.Set("types", EndpointChart)
	params.Set("range", bucket)

	body, err := transport.Get(ctx, batchPath, params)
	if err != nil {
		return nil, err
	}

	var response map[string]struct {
		Chart []chartBar `json:"chart"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &QueryError{Path: batchPath, Err: fmt.Errorf("decode response: %w", err)}
	}

	// The server is authoritative for symbol existence.
	for _, sym := range symbols {
		if _, ok := response[sym]; !ok {
			return nil, &SymbolNotFoundError{Symbol: sym}
		}
	}

	sstart := start.Format(dateLayout)
	send := end.Format(dateLayout)

	out := make(map[string]Series, len(symbols))
	for _, sym := range symbols {
		bars := response[sym].Chart
		series := Series{Bars: make(map[string]Bar, len(bars))}
		for _, b := range bars {
			if b.Date < sstart || b.Date > send {
				continue
			}
			series.Dates = append(series.Dates, b.Date)
			series.Bars[b.Date] = Bar{
				Open:   b.Open,
				High:   b.High,
				Low:    b.Low,
				Close:  b.Close,
				Volume: b.Volume,
			}
		}
		out[sym] = series
	}
	return out, nil
}

// RenderSeries applies an output format to a per-symbol series mapping,
// unwrapping the symbol key in single mode. Structured output maps each
// symbol to its date-keyed bars; tabular output maps each symbol to a Table.
func RenderSeries(mode Mode, series map[string]Series, format OutputFormat) any {
	if format == FormatTabular {
		tables := make(map[string]Table, len(series))
		for sym, s := range series {
			tables[sym] = s.Table()
		}
		if mode == ModeSingle {
			for _, t := range tables {
				return t
			}
		}
		return tables
	}

	structured := make(map[string]map[string]Bar, len(series))
	for sym, s := range series {
		structured[sym] = s.Bars
	}
	if mode == ModeSingle {
		for _, m := range structured {
			return m
		}
	}
	return structured
}
