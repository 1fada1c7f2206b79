// Package stock is a client for an IEX-style batch market-data HTTP API.
//
// A Reader fetches quote, fundamental, and chart data for one or more ticker
// symbols in a single consolidated data set, built eagerly at construction
// and rebuilt only on explicit Refresh. Historical daily series are fetched
// through Historical and HistoricalBatch. All operations are synchronous and
// blocking; cancellation and timeouts are delegated to the Transport.
package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Transport performs one HTTP GET against the upstream API and returns the
// raw JSON body. Implementations own connections, auth headers, and timeouts;
// this package only assembles paths and query parameters.
type Transport interface {
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
}

// APITransport is the default Transport over net/http. It joins the base URL
// with request paths and passes the API token through as a query parameter
// when one is configured.
type APITransport struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewAPITransport builds a transport for the given API base URL. token may be
// empty for endpoints that do not require one.
func NewAPITransport(baseURL, token string, timeout time.Duration) *APITransport {
	return &APITransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// Get issues one GET request and returns the response body. Network failures
// and non-2xx statuses are reported as *QueryError; bodies are returned
// undecoded so callers control their own shapes.
func (t *APITransport) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	q := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	if t.token != "" {
		q.Set("token", t.token)
	}

	u := fmt.Sprintf("%s/%s?%s", t.baseURL, strings.TrimLeft(path, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &QueryError{Path: path, Err: err}
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, &QueryError{Path: path, Err: err}
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &QueryError{Path: path, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &QueryError{Path: path, Err: fmt.Errorf("read body: %w", err)}
	}
	if !json.Valid(body) {
		return nil, &QueryError{Path: path, Err: fmt.Errorf("invalid JSON response")}
	}
	return body, nil
}
