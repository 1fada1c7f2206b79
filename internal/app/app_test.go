package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/guttosm/iexpulse/config"
	"github.com/guttosm/iexpulse/stock"
)

// stubTransport answers every batch request for the AAPL symbol.
type stubTransport struct{}

func (stubTransport) Get(_ context.Context, _ string, params url.Values) (json.RawMessage, error) {
	resp := map[string]map[string]any{}
	for _, sym := range strings.Split(params.Get("symbols"), ",") {
		if sym != "AAPL" {
			continue
		}
		data := map[string]any{}
		for _, tp := range strings.Split(params.Get("types"), ",") {
			if tp == stock.EndpointQuote {
				data[tp] = map[string]any{"latestPrice": 101.5}
			} else {
				data[tp] = map[string]any{"symbol": sym}
			}
		}
		resp[sym] = data
	}
	return json.Marshal(resp)
}

func TestInitializeApp_HappyPath(t *testing.T) {
	oldCfg := config.AppConfig
	oldBuilder := transportBuilder
	oldPinger := upstreamPinger
	t.Cleanup(func() {
		config.AppConfig = oldCfg
		transportBuilder = oldBuilder
		upstreamPinger = oldPinger
	})

	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		IEX:    config.IEXConfig{BaseURL: "http://stub", TimeoutSeconds: 1},
	}
	transportBuilder = func(config.Config) stock.Transport { return stubTransport{} }
	upstreamPinger = func(config.Config) func() error { return func() error { return nil } }

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err set or nil components")
	}

	// Hit health endpoints
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}

	// One end-to-end request through the wired stack.
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/api/v1/quote?symbols=AAPL", nil))
	if w3.Code != http.StatusOK {
		t.Fatalf("quote status=%d (body=%s)", w3.Code, w3.Body.String())
	}

	// Call cleanup and ensure it doesn't panic
	cleanup()
}

func TestInitializeApp_DegradedUpstream(t *testing.T) {
	oldCfg := config.AppConfig
	oldBuilder := transportBuilder
	oldPinger := upstreamPinger
	t.Cleanup(func() {
		config.AppConfig = oldCfg
		transportBuilder = oldBuilder
		upstreamPinger = oldPinger
	})

	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8080"},
		IEX:    config.IEXConfig{BaseURL: "http://stub", TimeoutSeconds: 1},
	}
	transportBuilder = func(config.Config) stock.Transport { return stubTransport{} }
	upstreamPinger = func(config.Config) func() error {
		return func() error { return &stock.QueryError{Path: "/", StatusCode: 503} }
	}

	router, cleanup, err := InitializeApp()
	if err != nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz with failing upstream should be 503, got %d", w.Code)
	}

	// Liveness stays green even when the upstream is down.
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w2.Code)
	}
}
