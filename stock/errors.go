package stock

import "fmt"

// InvalidInputError reports malformed caller input: empty or oversized symbol
// lists, unknown range values, out-of-range news counts, and similar. It is
// returned eagerly at construction and is fatal to that call.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// SymbolNotFoundError reports a requested symbol that the upstream API did not
// include in its response. The server is authoritative for symbol existence,
// so this is the definitive "symbol does not exist" signal.
type SymbolNotFoundError struct {
	Symbol string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol not found: %s", e.Symbol)
}

// EndpointNotFoundError reports an endpoint name that is either outside the
// catalog or absent from a symbol's consolidated data.
type EndpointNotFoundError struct {
	Endpoint string
}

func (e *EndpointNotFoundError) Error() string {
	return fmt.Sprintf("endpoint not found: %s", e.Endpoint)
}

// InvalidDateRangeError reports a historical start date older than the
// supported lookback ceiling.
type InvalidDateRangeError struct {
	Start string
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date %s: must be within past 5 years", e.Start)
}

// QueryError reports a network or HTTP-level failure from the upstream API.
// It is propagated unmodified; this layer never retries.
type QueryError struct {
	Path       string
	StatusCode int
	Err        error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("query %s failed: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("query %s failed: http %d", e.Path, e.StatusCode)
}

func (e *QueryError) Unwrap() error { return e.Err }
