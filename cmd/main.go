package main

//
//  @title           iexpulse API
//  @version         1.0
//  @description     Market-data facade over an IEX-style batch API.
//  @termsOfService  https://github.com/guttosm/iexpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/iexpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Endpoints for querying quotes and historical series
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/iexpulse/config"
	_ "github.com/guttosm/iexpulse/docs" // swagger docs
	"github.com/guttosm/iexpulse/internal/app"
	"github.com/guttosm/iexpulse/internal/logger"
	"github.com/guttosm/iexpulse/stock"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// money renders a price with two decimal places.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// printQuotes fetches a consolidated data set for the symbols and prints a
// quote summary table.
func printQuotes(ctx context.Context, transport stock.Transport, symbols []string, opts stock.Options) error {
	reader, err := stock.New(ctx, transport, symbols, opts)
	if err != nil {
		return err
	}

	names, err := reader.CompanyName()
	if err != nil {
		return err
	}
	prices, err := reader.Price()
	if err != nil {
		return err
	}
	opens, err := reader.Open()
	if err != nil {
		return err
	}
	closes, err := reader.Close()
	if err != nil {
		return err
	}
	highs, err := reader.YearsHigh()
	if err != nil {
		return err
	}
	lows, err := reader.YearsLow()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Symbol", "Company", "Price", "Open", "Close", "52w High", "52w Low"})
	for _, sym := range reader.Symbols() {
		table.Append([]string{
			sym,
			names[sym],
			money(prices[sym]),
			money(opens[sym]),
			money(closes[sym]),
			money(highs[sym]),
			money(lows[sym]),
		})
	}
	table.Render()
	return nil
}

// printHistorical fetches daily series for the symbols and prints one table
// per symbol.
func printHistorical(ctx context.Context, transport stock.Transport, symbols []string, start, end time.Time) error {
	series, err := stock.HistoricalBatch(ctx, transport, symbols, start, end)
	if err != nil {
		return err
	}

	for _, sym := range symbols {
		s := series[strings.ToUpper(sym)]
		fmt.Printf("%s (%d days)\n", strings.ToUpper(sym), s.Len())

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Date", "Open", "High", "Low", "Close", "Volume"})
		for _, d := range s.Dates {
			b := s.Bars[d]
			table.Append([]string{
				d,
				money(b.Open),
				money(b.High),
				money(b.Low),
				money(b.Close),
				fmt.Sprintf("%d", b.Volume),
			})
		}
		table.Render()
	}
	return nil
}

// main is the entry point of the iexpulse application.
//
// Modes (selected via --mode flag):
//   - quote:      Fetches a consolidated data set and prints a quote table.
//   - historical: Fetches a date-bounded daily series and prints it.
//   - api:        Starts the REST API facade.
//
// Flags:
//   - --mode:    Execution mode ("quote", "historical", or "api"). Default: "quote".
//   - --symbols: Comma-separated ticker symbols.
//   - --range:   Chart lookback range (1m, 5y, 2y, 1y, ytd, 6m, 3m, 1d).
//   - --last:    News item count (1-50).
//   - --percent: Ask the server to scale percentage fields.
//   - --start:   Historical window start (YYYY-MM-DD).
//   - --end:     Historical window end (YYYY-MM-DD).
//   - --port:    Port for API mode. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "quote", "Mode: quote, historical, or api")
	symbolsFlag := flag.String("symbols", "", "Comma-separated ticker symbols")
	rangeFlag := flag.String("range", "", "Chart lookback range")
	last := flag.Int("last", 0, "News item count (1-50)")
	percent := flag.Bool("percent", false, "Display percentages scaled")
	startFlag := flag.String("start", "", "Historical window start (YYYY-MM-DD)")
	endFlag := flag.String("end", "", "Historical window end (YYYY-MM-DD)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	transport := stock.NewAPITransport(
		config.AppConfig.IEX.BaseURL,
		config.AppConfig.IEX.Token,
		config.AppConfig.IEX.Timeout(),
	)

	symbols := strings.Split(*symbolsFlag, ",")

	switch *mode {
	case "quote":
		if *symbolsFlag == "" {
			logger.L().Fatal().Msg("--symbols is required for quote mode")
		}
		opts := stock.Options{Range: *rangeFlag, Last: *last, DisplayPercent: *percent}
		if err := printQuotes(ctx, transport, symbols, opts); err != nil {
			logger.L().Fatal().Err(err).Msg("quote fetch failed")
		}

	case "historical":
		if *symbolsFlag == "" {
			logger.L().Fatal().Msg("--symbols is required for historical mode")
		}
		start, err := time.Parse("2006-01-02", *startFlag)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid --start, expected YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", *endFlag)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid --end, expected YYYY-MM-DD")
		}
		if err := printHistorical(ctx, transport, symbols, start, end); err != nil {
			logger.L().Fatal().Err(err).Msg("historical fetch failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
