package stock

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidInput(t *testing.T) {
	api := newFakeAPI("AAPL")

	t.Run("empty symbol list", func(t *testing.T) {
		_, err := New(context.Background(), api, nil, Options{})
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("bad range", func(t *testing.T) {
		_, err := New(context.Background(), api, []string{"aapl"}, Options{Range: "1yy"})
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("bad last", func(t *testing.T) {
		_, err := New(context.Background(), api, []string{"aapl"}, Options{Last: 555})
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	// Nothing should have reached the wire.
	assert.Zero(t, api.calls)
}

func TestNew_UnknownSymbol(t *testing.T) {
	api := newFakeAPI("AAPL", "TSLA")
	_, err := New(context.Background(), api, []string{"TSLA", "AAAPLPL", "fwoeiwf"}, Options{})
	var notFound *SymbolNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestNew_EagerFetchInTwoRequests(t *testing.T) {
	api := newFakeAPI("AAPL", "TSLA")
	reader, err := New(context.Background(), api, []string{"aapl", "tsla"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, api.calls, "construction must issue exactly the two group requests")
	assert.Equal(t, []string{"AAPL", "TSLA"}, reader.Symbols())
	assert.Equal(t, ModeBatch, reader.Mode())

	all := reader.All()
	require.Len(t, all, 2)
	for _, sym := range []string{"AAPL", "TSLA"} {
		require.Contains(t, all, sym)
		assert.Len(t, all[sym], len(endpointCatalog), "every catalog endpoint must be consolidated")
	}
}

func TestReader_SingleMode(t *testing.T) {
	api := newFakeAPI("AAPL")
	reader, err := New(context.Background(), api, []string{"aapl"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, ModeSingle, reader.Mode())
	assert.Equal(t, []string{"AAPL"}, reader.Symbols())
}

func TestReader_Accessors(t *testing.T) {
	api := newFakeAPI("AAPL", "TSLA")
	reader, err := New(context.Background(), api, []string{"aapl", "tsla"}, Options{})
	require.NoError(t, err)

	quotes, err := reader.Quote()
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	prices, err := reader.Price()
	require.NoError(t, err)
	assert.Equal(t, 101.5, prices["AAPL"])
	assert.Equal(t, 101.5, prices["TSLA"])

	t.Run("time series aliases chart", func(t *testing.T) {
		chart, err := reader.Chart()
		require.NoError(t, err)
		ts, err := reader.TimeSeries()
		require.NoError(t, err)
		assert.Equal(t, chart, ts)
	})

	t.Run("open-close aliases ohlc", func(t *testing.T) {
		ohlc, err := reader.OHLC()
		require.NoError(t, err)
		oc, err := reader.OpenClose()
		require.NoError(t, err)
		assert.Equal(t, ohlc, oc)
	})
}

func TestReader_AccessorsIdempotent(t *testing.T) {
	api := newFakeAPI("AAPL")
	reader, err := New(context.Background(), api, []string{"aapl"}, Options{})
	require.NoError(t, err)

	calls := api.calls
	first, err := reader.Quote()
	require.NoError(t, err)
	second, err := reader.Quote()
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("accessor output changed across calls on an unrefreshed reader")
	}
	assert.Equal(t, calls, api.calls, "accessors must not trigger fetches")
}

func TestReader_NewsHonorsLast(t *testing.T) {
	for _, last := range []int{1, 37, 50} {
		api := newFakeAPI("AAPL", "TSLA")
		reader, err := New(context.Background(), api, []string{"aapl", "tsla"}, Options{Last: last})
		require.NoError(t, err)

		news, err := reader.News()
		require.NoError(t, err)
		for sym, raw := range news {
			var items []json.RawMessage
			require.NoError(t, json.Unmarshal(raw, &items))
			assert.Len(t, items, last, "symbol %s", sym)
		}
	}
}

func TestReader_ChartLengthMonotonicWithRange(t *testing.T) {
	chartLen := func(opts Options) int {
		api := newFakeAPI("AAPL")
		reader, err := New(context.Background(), api, []string{"aapl"}, opts)
		require.NoError(t, err)
		chart, err := reader.Chart()
		require.NoError(t, err)
		var bars []json.RawMessage
		require.NoError(t, json.Unmarshal(chart["AAPL"], &bars))
		return len(bars)
	}

	if wide, narrow := chartLen(Options{Range: "5y"}), chartLen(Options{}); wide <= narrow {
		t.Fatalf("5y chart (%d bars) should be longer than default 1m chart (%d bars)", wide, narrow)
	}
}

func TestReader_SelectEndpoints(t *testing.T) {
	api := newFakeAPI("AAPL", "TSLA")
	reader, err := New(context.Background(), api, []string{"aapl", "tsla"}, Options{})
	require.NoError(t, err)

	t.Run("empty endpoint list", func(t *testing.T) {
		_, err := reader.SelectEndpoints()
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		_, err := reader.SelectEndpoints("BADENDPOINT")
		var notFound *EndpointNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "BADENDPOINT", notFound.Endpoint)
	})

	t.Run("valid selection", func(t *testing.T) {
		out, err := reader.SelectEndpoints(EndpointQuote, EndpointCompany)
		require.NoError(t, err)
		require.Len(t, out, 2)
		for _, sym := range []string{"AAPL", "TSLA"} {
			require.Contains(t, out, sym)
			assert.Len(t, out[sym], 2)
		}
	})
}

func TestReader_Refresh(t *testing.T) {
	api := newFakeAPI("AAPL")
	reader, err := New(context.Background(), api, []string{"aapl"}, Options{})
	require.NoError(t, err)

	require.NoError(t, reader.Refresh(context.Background()))
	assert.Equal(t, 4, api.calls, "refresh re-runs the two-request fetch sequence")
}

func TestReader_QueryErrorPropagates(t *testing.T) {
	api := newFakeAPI("AAPL")
	api.err = &QueryError{Path: batchPath, StatusCode: 502}

	_, err := New(context.Background(), api, []string{"aapl"}, Options{})
	var query *QueryError
	require.ErrorAs(t, err, &query)
	assert.Equal(t, 502, query.StatusCode)
}

func TestReader_RefreshFailureKeepsOldData(t *testing.T) {
	api := newFakeAPI("AAPL")
	reader, err := New(context.Background(), api, []string{"aapl"}, Options{})
	require.NoError(t, err)

	before := reader.All()
	api.err = errors.New("boom")
	require.Error(t, reader.Refresh(context.Background()))
	assert.True(t, reflect.DeepEqual(before, reader.All()), "failed refresh must not clobber the data set")
}
