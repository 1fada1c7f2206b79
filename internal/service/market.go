package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/iexpulse/stock"
	"golang.org/x/sync/singleflight"
)

// MarketService defines the business operations the API facade exposes over
// the stock client library.
type MarketService interface {
	// Quote returns the rendered quote endpoint for the given symbols.
	Quote(ctx context.Context, symbols []string, opts stock.Options) (any, error)

	// Endpoints returns the projection of the named endpoints per symbol.
	Endpoints(ctx context.Context, symbols, endpoints []string, opts stock.Options) (any, error)

	// Historical returns the rendered daily series for the symbols inside
	// the inclusive [start, end] window.
	Historical(ctx context.Context, symbols []string, start, end time.Time, format stock.OutputFormat) (any, error)
}

type marketService struct {
	transport stock.Transport
	group     singleflight.Group
}

// NewMarketService builds a MarketService over the given transport.
//
// Each call constructs a fresh reader (one eager fetch-and-consolidate per
// request); a singleflight group collapses concurrent identical upstream
// fetches into one. This deduplicates in-flight work only and never caches
// results across invocations.
func NewMarketService(transport stock.Transport) MarketService {
	return &marketService{transport: transport}
}

func (s *marketService) Quote(ctx context.Context, symbols []string, opts stock.Options) (any, error) {
	key := flightKey("quote", symbols, opts, "", "")
	out, err, _ := s.group.Do(key, func() (any, error) {
		reader, err := stock.New(ctx, s.transport, symbols, opts)
		if err != nil {
			return nil, err
		}
		quotes, err := reader.Quote()
		if err != nil {
			return nil, err
		}
		return reader.Render(stock.EndpointQuote, quotes), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *marketService) Endpoints(ctx context.Context, symbols, endpoints []string, opts stock.Options) (any, error) {
	key := flightKey("endpoints:"+strings.Join(endpoints, ","), symbols, opts, "", "")
	out, err, _ := s.group.Do(key, func() (any, error) {
		reader, err := stock.New(ctx, s.transport, symbols, opts)
		if err != nil {
			return nil, err
		}
		projection, err := reader.SelectEndpoints(endpoints...)
		if err != nil {
			return nil, err
		}
		// Unwrapping the symbol key for a single-symbol reader is a
		// formatting decision, applied here at the facade boundary.
		if reader.Mode() == stock.ModeSingle {
			return projection[reader.Symbols()[0]], nil
		}
		return projection, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *marketService) Historical(ctx context.Context, symbols []string, start, end time.Time, format stock.OutputFormat) (any, error) {
	key := flightKey("historical", symbols, stock.Options{Output: format}, start.Format("2006-01-02"), end.Format("2006-01-02"))
	out, err, _ := s.group.Do(key, func() (any, error) {
		if len(symbols) == 1 {
			series, err := stock.Historical(ctx, s.transport, symbols[0], start, end)
			if err != nil {
				return nil, err
			}
			bySymbol := map[string]stock.Series{strings.ToUpper(symbols[0]): series}
			return stock.RenderSeries(stock.ModeSingle, bySymbol, format), nil
		}
		series, err := stock.HistoricalBatch(ctx, s.transport, symbols, start, end)
		if err != nil {
			return nil, err
		}
		return stock.RenderSeries(stock.ModeBatch, series, format), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// flightKey builds a deterministic singleflight key from an operation name
// and its inputs, so identical concurrent requests share one upstream fetch.
func flightKey(op string, symbols []string, opts stock.Options, start, end string) string {
	return fmt.Sprintf("%s|%s|%s|%d|%t|%s|%s|%s",
		op,
		strings.ToUpper(strings.Join(symbols, ",")),
		opts.Range,
		opts.Last,
		opts.DisplayPercent,
		opts.Output,
		start,
		end,
	)
}
