package stock

import "github.com/tidwall/gjson"

// Field accessors project one named field out of an endpoint's raw JSON for
// every symbol. Lookups go through gjson so the endpoint payloads never need
// a full decode.

// field returns the named field of the given endpoint per symbol. A field
// absent from the payload yields the zero gjson.Result for that symbol,
// matching the server omitting optional fields.
func (r *Reader) field(endpoint, name string) (map[string]gjson.Result, error) {
	raw, err := r.endpoint(endpoint)
	if err != nil {
		return nil, err
	}
	out := make(map[string]gjson.Result, len(raw))
	for sym, v := range raw {
		out[sym] = gjson.GetBytes(v, name)
	}
	return out, nil
}

func (r *Reader) quoteString(name string) (map[string]string, error) {
	res, err := r.field(EndpointQuote, name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(res))
	for sym, v := range res {
		out[sym] = v.String()
	}
	return out, nil
}

func (r *Reader) quoteFloat(name string) (map[string]float64, error) {
	res, err := r.field(EndpointQuote, name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(res))
	for sym, v := range res {
		out[sym] = v.Float()
	}
	return out, nil
}

func (r *Reader) statsFloat(name string) (map[string]float64, error) {
	res, err := r.field(EndpointStats, name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(res))
	for sym, v := range res {
		out[sym] = v.Float()
	}
	return out, nil
}

// CompanyName returns the company name per symbol from the quote endpoint.
func (r *Reader) CompanyName() (map[string]string, error) {
	return r.quoteString("companyName")
}

// PrimaryExchange returns the primary listing exchange per symbol.
func (r *Reader) PrimaryExchange() (map[string]string, error) {
	return r.quoteString("primaryExchange")
}

// Sector returns the sector per symbol.
func (r *Reader) Sector() (map[string]string, error) {
	return r.quoteString("sector")
}

// Open returns the official open price per symbol.
func (r *Reader) Open() (map[string]float64, error) {
	return r.quoteFloat("open")
}

// Close returns the official close price per symbol.
func (r *Reader) Close() (map[string]float64, error) {
	return r.quoteFloat("close")
}

// YearsHigh returns the 52-week high per symbol.
func (r *Reader) YearsHigh() (map[string]float64, error) {
	return r.quoteFloat("week52High")
}

// YearsLow returns the 52-week low per symbol.
func (r *Reader) YearsLow() (map[string]float64, error) {
	return r.quoteFloat("week52Low")
}

// YTDChange returns the year-to-date change per symbol.
func (r *Reader) YTDChange() (map[string]float64, error) {
	return r.quoteFloat("ytdChange")
}

// Volume returns the latest volume per symbol.
func (r *Reader) Volume() (map[string]int64, error) {
	res, err := r.field(EndpointQuote, "latestVolume")
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(res))
	for sym, v := range res {
		out[sym] = v.Int()
	}
	return out, nil
}

// MarketCap returns the market capitalization per symbol.
func (r *Reader) MarketCap() (map[string]float64, error) {
	return r.quoteFloat("marketCap")
}

// Beta returns the beta per symbol from the stats endpoint.
func (r *Reader) Beta() (map[string]float64, error) {
	return r.statsFloat("beta")
}

// ShortInterest returns the short interest per symbol.
func (r *Reader) ShortInterest() (map[string]float64, error) {
	return r.statsFloat("shortInterest")
}

// ShortRatio returns the short ratio per symbol.
func (r *Reader) ShortRatio() (map[string]float64, error) {
	return r.statsFloat("shortRatio")
}

// LatestEPS returns the latest earnings per share per symbol.
func (r *Reader) LatestEPS() (map[string]float64, error) {
	return r.statsFloat("latestEPS")
}

// SharesOutstanding returns the shares outstanding per symbol.
func (r *Reader) SharesOutstanding() (map[string]float64, error) {
	return r.statsFloat("sharesOutstanding")
}

// Float returns the public float per symbol.
func (r *Reader) Float() (map[string]float64, error) {
	return r.statsFloat("float")
}

// EPSConsensus returns the consensus EPS estimate per symbol.
func (r *Reader) EPSConsensus() (map[string]float64, error) {
	return r.statsFloat("consensusEPS")
}
