package stock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// chartLengths is how many daily bars the fake serves per lookback range,
// roughly matching trading-day counts.
var chartLengths = map[string]int{
	"1d":  78,
	"1m":  21,
	"3m":  63,
	"6m":  126,
	"ytd": 160,
	"1y":  252,
	"2y":  504,
	"5y":  1259,
}

// fakeAPI is an in-memory Transport that emulates the upstream batch API for
// a fixed set of known symbols. Unknown symbols are silently omitted from
// responses, which is how the real server signals nonexistence.
type fakeAPI struct {
	known map[string]bool

	calls  int
	params []url.Values
	err    error
}

func newFakeAPI(symbols ...string) *fakeAPI {
	known := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		known[s] = true
	}
	return &fakeAPI{known: known}
}

func (f *fakeAPI) Get(_ context.Context, _ string, params url.Values) (json.RawMessage, error) {
	f.calls++
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}

	rng := params.Get("range")
	if rng == "" {
		rng = "1m"
	}
	last := 10
	if s := params.Get("last"); s != "" {
		last, _ = strconv.Atoi(s)
	}

	resp := make(map[string]map[string]any)
	for _, sym := range strings.Split(params.Get("symbols"), ",") {
		if !f.known[sym] {
			continue
		}
		data := make(map[string]any)
		for _, tp := range strings.Split(params.Get("types"), ",") {
			data[tp] = f.endpointValue(sym, tp, rng, last)
		}
		resp[sym] = data
	}
	return json.Marshal(resp)
}

func (f *fakeAPI) endpointValue(sym, endpoint, rng string, last int) any {
	switch endpoint {
	case EndpointQuote:
		return map[string]any{
			"companyName":     sym + " Inc.",
			"primaryExchange": "Nasdaq Global Select",
			"sector":          "Technology",
			"open":            100.25,
			"close":           101.5,
			"week52High":      120.0,
			"week52Low":       80.5,
			"ytdChange":       0.12,
			"latestVolume":    1250000,
			"latestPrice":     101.5,
			"marketCap":       500000000000,
		}
	case EndpointChart:
		n := chartLengths[rng]
		bars := make([]map[string]any, n)
		for i := range bars {
			bars[i] = map[string]any{
				"date":   fmt.Sprintf("2017-%02d-%02d", 1+i/28, 1+i%28),
				"open":   100.0 + float64(i),
				"high":   101.0 + float64(i),
				"low":    99.0 + float64(i),
				"close":  100.5 + float64(i),
				"volume": 1000 + i,
			}
		}
		return bars
	case EndpointNews:
		items := make([]map[string]any, last)
		for i := range items {
			items[i] = map[string]any{
				"headline": fmt.Sprintf("%s headline %d", sym, i+1),
				"source":   "Newswire",
			}
		}
		return items
	case EndpointPrice:
		return 101.5
	case EndpointStats:
		return map[string]any{
			"beta":              1.21,
			"shortInterest":     23000000,
			"shortRatio":        1.6,
			"latestEPS":         8.29,
			"sharesOutstanding": 5213840000,
			"float":             5203997571,
			"consensusEPS":      3.22,
		}
	case EndpointPeers:
		return []string{"MSFT", "GOOGL"}
	case EndpointOHLC, EndpointOpenClose:
		return map[string]any{
			"open":  map[string]any{"price": 100.25},
			"close": map[string]any{"price": 101.5},
			"high":  102.0,
			"low":   99.5,
		}
	default:
		return map[string]any{"symbol": sym}
	}
}
