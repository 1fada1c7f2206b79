package stock

import (
	"net/url"
	"strconv"
	"strings"
)

// batchPath is the single upstream path all consolidated fetches go through.
const batchPath = "stock/market/batch"

// request is one wire request descriptor: a path plus its query parameters.
type request struct {
	path   string
	params url.Values
}

// buildRequests constructs the minimal set of wire requests covering the full
// endpoint catalog for the given symbols: exactly two, one per catalog group.
// Requesting the whole catalog in one URL historically exceeded the server's
// length limit.
//
// Options equal to the catalog defaults are omitted entirely so the server
// applies its own defaults. The function is pure: identical inputs yield
// identical descriptors.
func buildRequests(symbols []string, opts Options) []request {
	groups := [][]string{
		endpointCatalog[:endpointGroupSize],
		endpointCatalog[endpointGroupSize:],
	}

	reqs := make([]request, 0, len(groups))
	for _, group := range groups {
		params := url.Values{}
		params.Set("symbols", strings.Join(symbols, ","))
		params.Set("types", strings.Join(group, ","))
		if !opts.isDefault() {
			params.Set("range", opts.Range)
			params.Set("last", strconv.Itoa(opts.Last))
			params.Set("displayPercent", strconv.FormatBool(opts.DisplayPercent))
		}
		reqs = append(reqs, request{path: batchPath, params: params})
	}
	return reqs
}
