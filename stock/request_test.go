package stock

import (
	"strings"
	"testing"
)

func defaultOpts(t *testing.T) Options {
	t.Helper()
	var opts Options
	if err := opts.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return opts
}

func TestBuildRequests_SplitsCatalogInTwo(t *testing.T) {
	reqs := buildRequests([]string{"AAPL", "TSLA"}, defaultOpts(t))
	if len(reqs) != 2 {
		t.Fatalf("expected exactly 2 requests, got %d", len(reqs))
	}
	for _, r := range reqs {
		if r.path != "stock/market/batch" {
			t.Fatalf("unexpected path %q", r.path)
		}
		if r.params.Get("symbols") != "AAPL,TSLA" {
			t.Fatalf("unexpected symbols param %q", r.params.Get("symbols"))
		}
	}

	first := strings.Split(reqs[0].params.Get("types"), ",")
	second := strings.Split(reqs[1].params.Get("types"), ",")
	if len(first) != 10 {
		t.Fatalf("first group should carry 10 endpoints, got %d", len(first))
	}
	if len(first)+len(second) != len(endpointCatalog) {
		t.Fatalf("groups do not cover the catalog: %d + %d != %d", len(first), len(second), len(endpointCatalog))
	}

	// Groups must be disjoint and keep catalog order.
	joined := append(first, second...)
	for i, e := range endpointCatalog {
		if joined[i] != e {
			t.Fatalf("catalog order broken at %d: want %q got %q", i, e, joined[i])
		}
	}
}

func TestBuildRequests_DefaultOptionsOmitted(t *testing.T) {
	reqs := buildRequests([]string{"AAPL"}, defaultOpts(t))
	for _, r := range reqs {
		for _, key := range []string{"range", "last", "displayPercent"} {
			if r.params.Has(key) {
				t.Fatalf("default options must omit %q from the wire request", key)
			}
		}
	}
}

func TestBuildRequests_NonDefaultOptionsIncluded(t *testing.T) {
	opts := Options{Range: "5y", Last: 37, DisplayPercent: true}
	if err := opts.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	reqs := buildRequests([]string{"AAPL"}, opts)
	for _, r := range reqs {
		if r.params.Get("range") != "5y" || r.params.Get("last") != "37" || r.params.Get("displayPercent") != "true" {
			t.Fatalf("non-default options missing from params: %v", r.params)
		}
	}
}

func TestBuildRequests_Deterministic(t *testing.T) {
	a := buildRequests([]string{"AAPL", "TSLA"}, defaultOpts(t))
	b := buildRequests([]string{"AAPL", "TSLA"}, defaultOpts(t))
	for i := range a {
		if a[i].path != b[i].path || a[i].params.Encode() != b[i].params.Encode() {
			t.Fatalf("request %d differs across identical inputs", i)
		}
	}
}
