package stock

import (
	"encoding/json"
	"sort"

	"github.com/guttosm/iexpulse/internal/logger"
)

// Table is the row/column shape produced by tabular rendering. Columns are
// stable across rows; cell values keep their decoded JSON types.
type Table struct {
	Columns []string
	Rows    [][]any
}

// tabularUnsupported names endpoints that never render as tables regardless
// of payload shape (chart payloads are large bar arrays, price is a scalar).
var tabularUnsupported = map[string]bool{
	EndpointChart: true,
	EndpointPrice: true,
}

// Render applies the reader's output format to one endpoint's per-symbol raw
// values. It is the explicit post-processing step every data-producing
// operation shares.
//
// In structured mode the raw values are decoded as-is. In tabular mode each
// value is rendered as a Table when the endpoint's shape is record-like (a
// JSON object, or an array of objects); otherwise a warning is logged and the
// structured value is returned instead. Single-symbol readers unwrap the
// outer symbol key; this is a formatting decision only, the data set itself
// stays symbol-keyed.
func (r *Reader) Render(endpoint string, values map[string]json.RawMessage) any {
	if r.opts.Output == FormatTabular && !tabularUnsupported[endpoint] {
		tables := make(map[string]Table, len(values))
		ok := true
		for sym, v := range values {
			tbl, tabular := tableFromJSON(v)
			if !tabular {
				ok = false
				break
			}
			tables[sym] = tbl
		}
		if ok {
			if r.mode == ModeSingle {
				return tables[r.symbols[0]]
			}
			return tables
		}
		logger.L().Warn().
			Str("endpoint", endpoint).
			Msg("tabular output not supported for this endpoint, falling back to structured")
	} else if r.opts.Output == FormatTabular {
		logger.L().Warn().
			Str("endpoint", endpoint).
			Msg("tabular output not supported for this endpoint, falling back to structured")
	}

	decoded := make(map[string]any, len(values))
	for sym, v := range values {
		var out any
		_ = json.Unmarshal(v, &out)
		decoded[sym] = out
	}
	if r.mode == ModeSingle {
		return decoded[r.symbols[0]]
	}
	return decoded
}

// tableFromJSON renders a raw JSON value as a Table. It reports false when
// the value is not record-like: anything other than an object or a non-empty
// array of objects.
func tableFromJSON(raw json.RawMessage) (Table, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Table{}, false
	}

	switch val := v.(type) {
	case map[string]any:
		cols := sortedKeys(val)
		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = val[c]
		}
		return Table{Columns: cols, Rows: [][]any{row}}, true

	case []any:
		if len(val) == 0 {
			return Table{}, false
		}
		first, ok := val[0].(map[string]any)
		if !ok {
			return Table{}, false
		}
		cols := sortedKeys(first)
		rows := make([][]any, 0, len(val))
		for _, item := range val {
			rec, ok := item.(map[string]any)
			if !ok {
				return Table{}, false
			}
			row := make([]any, len(cols))
			for i, c := range cols {
				row[i] = rec[c]
			}
			rows = append(rows, row)
		}
		return Table{Columns: cols, Rows: rows}, true

	default:
		return Table{}, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
