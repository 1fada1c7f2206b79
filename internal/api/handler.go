package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/iexpulse/internal/domain/dto"
	"github.com/guttosm/iexpulse/internal/service"
	"github.com/guttosm/iexpulse/stock"
)

// Handler provides HTTP handlers for the market-data endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Interact with the service layer for upstream data access
//   - Translate library results and errors into response DTOs and status codes
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// parseSymbols splits and trims the comma-separated symbols query parameter.
func parseSymbols(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseOptions reads the optional range/last/percent/format query parameters.
// Full validation is the stock library's job; only type conversion errors are
// rejected here.
func parseOptions(c *gin.Context) (stock.Options, error) {
	var opts stock.Options
	opts.Range = c.Query("range")
	if s := c.Query("last"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return opts, errors.New("invalid last value, expected an integer")
		}
		opts.Last = n
	}
	if s := c.Query("percent"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return opts, errors.New("invalid percent value, expected a boolean")
		}
		opts.DisplayPercent = b
	}
	opts.Output = stock.OutputFormat(c.Query("format"))
	return opts, nil
}

// statusFor maps the stock library's error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var invalid *stock.InvalidInputError
	var symbol *stock.SymbolNotFoundError
	var endpoint *stock.EndpointNotFoundError
	var dates *stock.InvalidDateRangeError
	var query *stock.QueryError

	switch {
	case errors.As(err, &invalid), errors.As(err, &dates):
		return http.StatusBadRequest
	case errors.As(err, &symbol), errors.As(err, &endpoint):
		return http.StatusNotFound
	case errors.As(err, &query):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetQuote handles GET /api/v1/quote requests.
//
// GetQuote godoc
// @Summary      Get quotes
// @Description  Returns the quote endpoint for one or more symbols
// @Tags         market
// @Produce      json
// @Param        symbols  query     string  true   "Comma-separated ticker symbols" example(AAPL,TSLA)
// @Param        range    query     string  false  "Chart lookback range" example(1m)
// @Param        last     query     int     false  "News item count (1-50)" example(10)
// @Param        percent  query     bool    false  "Display percentages scaled"
// @Param        format   query     string  false  "Output format: structured or tabular"
// @Success      200      {object}  dto.QuoteResponse      "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse      "Symbol Not Found"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream Failure"
// @Router       /api/v1/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	symbols := parseSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbols is required", nil))
		return
	}

	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	data, err := h.svc.Quote(c.Request.Context(), symbols, opts)
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to fetch quotes", err))
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{Symbols: upper(symbols), Data: data})
}

// GetEndpoints handles GET /api/v1/endpoints requests: the generic
// endpoint-selection operation.
//
// GetEndpoints godoc
// @Summary      Select endpoints
// @Description  Returns the requested endpoint categories per symbol
// @Tags         market
// @Produce      json
// @Param        symbols  query     string  true   "Comma-separated ticker symbols" example(AAPL)
// @Param        types    query     string  true   "Comma-separated endpoint names" example(quote,company)
// @Success      200      {object}  dto.EndpointsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse      "Not Found"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream Failure"
// @Router       /api/v1/endpoints [get]
func (h *Handler) GetEndpoints(c *gin.Context) {
	symbols := parseSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbols is required", nil))
		return
	}
	endpoints := parseSymbols(c.Query("types"))
	if len(endpoints) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("types is required", nil))
		return
	}

	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	data, err := h.svc.Endpoints(c.Request.Context(), symbols, endpoints, opts)
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to fetch endpoints", err))
		return
	}

	c.JSON(http.StatusOK, dto.EndpointsResponse{
		Symbols:   upper(symbols),
		Endpoints: endpoints,
		Data:      data,
	})
}

// GetHistorical handles GET /api/v1/historical requests.
//
// GetHistorical godoc
// @Summary      Get historical daily series
// @Description  Returns daily bars for the symbols inside an inclusive date window (up to 5 years back)
// @Tags         market
// @Produce      json
// @Param        symbols  query     string  true   "Comma-separated ticker symbols" example(AAPL,TSLA)
// @Param        start    query     string  true   "Window start in YYYY-MM-DD" example(2017-02-09)
// @Param        end      query     string  true   "Window end in YYYY-MM-DD" example(2017-05-24)
// @Param        format   query     string  false  "Output format: structured or tabular"
// @Success      200      {object}  dto.HistoricalResponse "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse      "Symbol Not Found"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream Failure"
// @Router       /api/v1/historical [get]
func (h *Handler) GetHistorical(c *gin.Context) {
	symbols := parseSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbols is required", nil))
		return
	}

	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start format, expected YYYY-MM-DD", err))
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end format, expected YYYY-MM-DD", err))
		return
	}

	format := stock.OutputFormat(c.Query("format"))
	if format == "" {
		format = stock.FormatStructured
	}

	data, err := h.svc.Historical(c.Request.Context(), symbols, start, end, format)
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to fetch historical data", err))
		return
	}

	c.JSON(http.StatusOK, dto.HistoricalResponse{
		Symbols: upper(symbols),
		Start:   start.Format("2006-01-02"),
		End:     end.Format("2006-01-02"),
		Data:    data,
	})
}

func upper(symbols []string) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = strings.ToUpper(s)
	}
	return out
}
