package dto

// QuoteResponse represents the JSON structure returned by the
// GET /api/v1/quote endpoint.
//
// Data carries the rendered quote payload: a bare quote object for a single
// symbol, or a symbol-keyed mapping for a batch. The shape mirrors what the
// stock library's rendering step produced, so the API surface stays a thin
// passthrough.
type QuoteResponse struct {
	Symbols []string `json:"symbols" example:"AAPL,TSLA"` // Symbols the data covers, in request order
	Data    any      `json:"data"`                        // Rendered quote data
}

// EndpointsResponse represents the JSON structure returned by the
// GET /api/v1/endpoints endpoint: the projection of the requested endpoint
// names per symbol.
type EndpointsResponse struct {
	Symbols   []string `json:"symbols" example:"AAPL"`       // Symbols the data covers
	Endpoints []string `json:"endpoints" example:"quote"`    // Endpoint names that were projected
	Data      any      `json:"data"`                         // symbol -> endpoint -> value mapping (unwrapped for a single symbol)
}

// HistoricalResponse represents the JSON structure returned by the
// GET /api/v1/historical endpoint.
type HistoricalResponse struct {
	Symbols []string `json:"symbols" example:"AAPL"`            // Symbols the data covers
	Start   string   `json:"start" example:"2017-02-09"`        // Inclusive window start (YYYY-MM-DD)
	End     string   `json:"end" example:"2017-05-24"`          // Inclusive window end (YYYY-MM-DD)
	Data    any      `json:"data"`                              // symbol -> date -> bar mapping (unwrapped for a single symbol)
}
