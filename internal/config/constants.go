package config

import "time"

// Application constants
const (
	AppName    = "bracketboard"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. BRACKET_SERVER_PORT
	EnvPrefix = "BRACKET"

	// EnvConfigFile names an explicit YAML config file
	EnvConfigFile = "BRACKET_CONFIG"

	DefaultPort           = 8080
	DefaultRequestTimeout = 30 * time.Second
	DefaultRateLimit      = 100 // requests per second
	DefaultBurstSize      = 50
	DefaultLogLevel       = "info"

	// Prediction workbooks, relative to the data directory
	DefaultDataDir      = "data"
	DefaultRoundsFile   = "aggregated_round_win_percentages.xlsx"
	DefaultMatchupsFile = "test_with_predictions.xlsx"
	DefaultRatingsFile  = "test_with_predictionselo.xlsx"

	// Dashboard text
	DefaultTitle           = "March Madness Predictions"
	DefaultMatchupsHeading = "First Round Matchup Predictions"
	DefaultSimulationCount = 10000
)

// API endpoints
const (
	APIBasePath     = "/api"
	RoundsEndpoint  = "/api/rounds"
	HealthEndpoint  = "/api/health"
	MetricsEndpoint = "/metrics"
)
