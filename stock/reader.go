package stock

import (
	"context"
	"encoding/json"
	"fmt"
)

// Mode tags a reader as holding one symbol or a batch. It is decided once at
// construction and threaded through rendering instead of being re-inferred
// from collection sizes at each call site.
type Mode int

const (
	// ModeSingle readers hold exactly one symbol; rendering unwraps the
	// outer symbol key.
	ModeSingle Mode = iota
	// ModeBatch readers hold two or more symbols; rendering keeps the
	// symbol-keyed mapping.
	ModeBatch
)

// Reader holds a consolidated data set for a fixed symbol list.
//
// The data set is fetched eagerly by New and rebuilt only by Refresh; every
// accessor is a read-only lookup into it, so repeated calls on an unrefreshed
// reader return identical results. A Reader is not safe for concurrent
// Refresh, but independent readers share nothing.
type Reader struct {
	transport Transport
	symbols   []string
	mode      Mode
	opts      Options
	data      map[string]map[string]json.RawMessage
}

// New validates the symbol list and options, then eagerly fetches and
// consolidates all endpoint data for the symbols.
//
// symbols must be non-empty and hold at most MaxSymbols entries; they are
// uppercased and deduplicated preserving order. A zero-valued Options uses
// the catalog defaults.
func New(ctx context.Context, transport Transport, symbols []string, opts Options) (*Reader, error) {
	syms, err := normalizeSymbols(symbols)
	if err != nil {
		return nil, err
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	mode := ModeBatch
	if len(syms) == 1 {
		mode = ModeSingle
	}

	r := &Reader{
		transport: transport,
		symbols:   syms,
		mode:      mode,
		opts:      opts,
	}
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Symbols returns the normalized symbol list in request order.
func (r *Reader) Symbols() []string {
	out := make([]string, len(r.symbols))
	copy(out, r.symbols)
	return out
}

// Mode reports whether the reader was built for a single symbol or a batch.
func (r *Reader) Mode() Mode { return r.mode }

// Refresh downloads the latest data from all endpoints and replaces the
// consolidated data set. On failure the previous data set is left untouched.
func (r *Reader) Refresh(ctx context.Context) error {
	reqs := buildRequests(r.symbols, r.opts)

	groups := make([]groupResponse, 0, len(reqs))
	for _, req := range reqs {
		body, err := r.transport.Get(ctx, req.path, req.params)
		if err != nil {
			return err
		}
		var group groupResponse
		if err := json.Unmarshal(body, &group); err != nil {
			return &QueryError{Path: req.path, Err: fmt.Errorf("decode response: %w", err)}
		}
		groups = append(groups, group)
	}

	data, err := consolidate(r.symbols, groups)
	if err != nil {
		return err
	}
	r.data = data
	return nil
}

// All returns the consolidated data set: symbol -> endpoint -> raw value.
// The result must be treated as read-only.
func (r *Reader) All() map[string]map[string]json.RawMessage {
	return r.data
}

// SelectEndpoints extracts one or more endpoints from the data set for every
// symbol.
//
// At least one endpoint name is required, each must belong to the catalog,
// and each must be present in every symbol's data; otherwise the call fails
// with *InvalidInputError, *EndpointNotFoundError, or *SymbolNotFoundError
// respectively.
func (r *Reader) SelectEndpoints(endpoints ...string) (map[string]map[string]json.RawMessage, error) {
	if len(endpoints) == 0 {
		return nil, &InvalidInputError{Reason: "provide at least one endpoint"}
	}
	for _, e := range endpoints {
		if !validEndpoint(e) {
			return nil, &EndpointNotFoundError{Endpoint: e}
		}
	}

	out := make(map[string]map[string]json.RawMessage, len(r.symbols))
	for _, sym := range r.symbols {
		ds, ok := r.data[sym]
		if !ok {
			return nil, &SymbolNotFoundError{Symbol: sym}
		}
		picked := make(map[string]json.RawMessage, len(endpoints))
		for _, e := range endpoints {
			v, ok := ds[e]
			if !ok {
				return nil, &EndpointNotFoundError{Endpoint: e}
			}
			picked[e] = v
		}
		out[sym] = picked
	}
	return out, nil
}

// endpoint returns one endpoint's raw value per symbol.
func (r *Reader) endpoint(name string) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(r.symbols))
	for _, sym := range r.symbols {
		ds, ok := r.data[sym]
		if !ok {
			return nil, &SymbolNotFoundError{Symbol: sym}
		}
		v, ok := ds[name]
		if !ok {
			return nil, &EndpointNotFoundError{Endpoint: name}
		}
		out[sym] = v
	}
	return out, nil
}

// Quote returns the quote endpoint per symbol.
func (r *Reader) Quote() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointQuote)
}

// Book returns the book endpoint per symbol.
func (r *Reader) Book() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointBook)
}

// Chart returns the chart endpoint per symbol: the daily bars for the
// configured range.
func (r *Reader) Chart() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointChart)
}

// TimeSeries is an alias for Chart and returns the same data.
func (r *Reader) TimeSeries() (map[string]json.RawMessage, error) {
	return r.Chart()
}

// OpenClose is an alias for OHLC and returns the same data.
func (r *Reader) OpenClose() (map[string]json.RawMessage, error) {
	return r.OHLC()
}

// Previous returns the previous endpoint per symbol.
func (r *Reader) Previous() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointPrevious)
}

// Company returns the company endpoint per symbol.
func (r *Reader) Company() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointCompany)
}

// KeyStats returns the stats endpoint per symbol.
func (r *Reader) KeyStats() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointStats)
}

// Peers returns the peers endpoint per symbol.
func (r *Reader) Peers() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointPeers)
}

// Relevant returns the relevant endpoint per symbol.
func (r *Reader) Relevant() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointRelevant)
}

// News returns the news endpoint per symbol, holding the configured number of
// items (Options.Last).
func (r *Reader) News() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointNews)
}

// Financials returns the financials endpoint per symbol.
func (r *Reader) Financials() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointFinancials)
}

// Earnings returns the earnings endpoint per symbol.
func (r *Reader) Earnings() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointEarnings)
}

// Dividends returns the dividends endpoint per symbol for the configured range.
func (r *Reader) Dividends() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointDividends)
}

// Splits returns the splits endpoint per symbol for the configured range.
func (r *Reader) Splits() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointSplits)
}

// Logo returns the logo endpoint per symbol.
func (r *Reader) Logo() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointLogo)
}

// Price returns the latest price per symbol.
func (r *Reader) Price() (map[string]float64, error) {
	raw, err := r.endpoint(EndpointPrice)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(raw))
	for sym, v := range raw {
		var p float64
		if err := json.Unmarshal(v, &p); err != nil {
			return nil, fmt.Errorf("decode price for %s: %w", sym, err)
		}
		out[sym] = p
	}
	return out, nil
}

// DelayedQuote returns the delayed-quote endpoint per symbol.
func (r *Reader) DelayedQuote() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointDelayedQuote)
}

// EffectiveSpread returns the effective-spread endpoint per symbol.
func (r *Reader) EffectiveSpread() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointEffectiveSpread)
}

// VolumeByVenue returns the volume-by-venue endpoint per symbol.
func (r *Reader) VolumeByVenue() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointVolumeByVenue)
}

// OHLC returns the ohlc endpoint per symbol.
func (r *Reader) OHLC() (map[string]json.RawMessage, error) {
	return r.endpoint(EndpointOHLC)
}
