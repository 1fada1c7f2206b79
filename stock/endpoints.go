package stock

// Endpoint names served by the batch API, in catalog order. The catalog is
// split into two wire requests because the full list exceeds the server-side
// URL length limit when requested at once.
const (
	EndpointChart           = "chart"
	EndpointQuote           = "quote"
	EndpointBook            = "book"
	EndpointOpenClose       = "open-close"
	EndpointPrevious        = "previous"
	EndpointCompany         = "company"
	EndpointStats           = "stats"
	EndpointPeers           = "peers"
	EndpointRelevant        = "relevant"
	EndpointNews            = "news"
	EndpointFinancials      = "financials"
	EndpointEarnings        = "earnings"
	EndpointDividends       = "dividends"
	EndpointSplits          = "splits"
	EndpointLogo            = "logo"
	EndpointPrice           = "price"
	EndpointDelayedQuote    = "delayed-quote"
	EndpointEffectiveSpread = "effective-spread"
	EndpointVolumeByVenue   = "volume-by-venue"
	EndpointOHLC            = "ohlc"
)

// endpointCatalog is the full ordered list of known endpoints. Requests for
// names outside this list are rejected.
var endpointCatalog = []string{
	EndpointChart,
	EndpointQuote,
	EndpointBook,
	EndpointOpenClose,
	EndpointPrevious,
	EndpointCompany,
	EndpointStats,
	EndpointPeers,
	EndpointRelevant,
	EndpointNews,
	EndpointFinancials,
	EndpointEarnings,
	EndpointDividends,
	EndpointSplits,
	EndpointLogo,
	EndpointPrice,
	EndpointDelayedQuote,
	EndpointEffectiveSpread,
	EndpointVolumeByVenue,
	EndpointOHLC,
}

// endpointGroupSize is where the catalog splits into the two request groups.
const endpointGroupSize = 10

// Endpoints returns a copy of the full endpoint catalog in order.
func Endpoints() []string {
	out := make([]string, len(endpointCatalog))
	copy(out, endpointCatalog)
	return out
}

func validEndpoint(name string) bool {
	for _, e := range endpointCatalog {
		if e == name {
			return true
		}
	}
	return false
}
