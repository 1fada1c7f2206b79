package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server surface and the upstream market-data API.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	IEX_BASE_URL=https://api.iextrading.com/1.0
//	IEX_TOKEN=pk_xxx
//	IEX_TIMEOUT_SECONDS=10
type Config struct {
	Server ServerConfig // HTTP server configuration
	IEX    IEXConfig    // Upstream market-data API settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// IEXConfig defines how to reach the upstream market-data API.
//
// Fields:
//   - BaseURL: root URL of the API, without a trailing slash.
//   - Token: optional API token, passed through as a query parameter.
//   - TimeoutSeconds: per-request HTTP timeout.
type IEXConfig struct {
	BaseURL        string
	Token          string
	TimeoutSeconds int
}

// Timeout returns the per-request timeout as a time.Duration.
func (c IEXConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields (the token stays optional).
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the
//     app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("IEX_BASE_URL", "https://api.iextrading.com/1.0")
	viper.SetDefault("IEX_TOKEN", "")
	viper.SetDefault("IEX_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		IEX: IEXConfig{
			BaseURL:        viper.GetString("IEX_BASE_URL"),
			Token:          viper.GetString("IEX_TOKEN"),
			TimeoutSeconds: viper.GetInt("IEX_TIMEOUT_SECONDS"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// The token is deliberately not validated: the upstream API accepts
// tokenless requests for public data, so an empty token is a valid setup.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.IEX.BaseURL == "" {
		missing = append(missing, "IEX_BASE_URL")
	}
	if AppConfig.IEX.TimeoutSeconds <= 0 {
		missing = append(missing, "IEX_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
