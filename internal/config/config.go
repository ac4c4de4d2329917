package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Security  SecurityConfig  `yaml:"security" envconfig:"SECURITY"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Data      DataConfig      `yaml:"data" envconfig:"DATA"`
	Dashboard DashboardConfig `yaml:"dashboard" envconfig:"DASHBOARD"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `yaml:"host" envconfig:"HOST"`
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT" validate:"gt=0"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gte=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"gte=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// DataConfig locates the prediction workbooks. Relative file names are
// resolved against Dir, and a relative Dir against the base directory.
type DataConfig struct {
	Dir          string `yaml:"dir" envconfig:"DIR"`
	RoundsFile   string `yaml:"rounds_file" envconfig:"ROUNDS_FILE" validate:"required"`
	MatchupsFile string `yaml:"matchups_file" envconfig:"MATCHUPS_FILE" validate:"required"`
	RatingsFile  string `yaml:"ratings_file" envconfig:"RATINGS_FILE" validate:"required"`
}

// DashboardConfig holds the page text of the dashboard
type DashboardConfig struct {
	Title           string   `yaml:"title" envconfig:"TITLE" validate:"required"`
	MatchupsHeading string   `yaml:"matchups_heading" envconfig:"MATCHUPS_HEADING" validate:"required"`
	SimulationCount int      `yaml:"simulation_count" envconfig:"SIMULATION_COUNT" validate:"min=1"`
	Notes           []string `yaml:"notes" envconfig:"NOTES"`
	DataSources     []string `yaml:"data_sources" envconfig:"DATA_SOURCES"`
	Author          string   `yaml:"author" envconfig:"AUTHOR"`
}

// TelemetryConfig controls metrics and tracing
type TelemetryConfig struct {
	ServiceName      string  `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	MetricsEnabled   bool    `yaml:"metrics_enabled" envconfig:"METRICS_ENABLED"`
	TracingEnabled   bool    `yaml:"tracing_enabled" envconfig:"TRACING_ENABLED"`
	TraceSampleRatio float64 `yaml:"trace_sample_ratio" envconfig:"TRACE_SAMPLE_RATIO" validate:"min=0,max=1"`
}

// Load loads configuration from the first config file found in the usual
// locations, then applies environment overrides
func Load() (*Config, error) {
	return LoadFrom(getConfigFilePath())
}

// LoadFrom loads configuration with precedence defaults < file < environment.
// An empty path skips the file layer.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// variables that are not set leave the field untouched
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file at filePath onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging file_path is required for output %q", c.Logging.Output)
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p
	}

	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
		"../../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // defaults and env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20, // 1MB
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  DefaultRequestTimeout,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     DefaultRateLimit,
				Burst:   DefaultBurstSize,
			},
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Output:   "console",
			FilePath: "logs/app.log",
		},
		Data: DataConfig{
			Dir:          DefaultDataDir,
			RoundsFile:   DefaultRoundsFile,
			MatchupsFile: DefaultMatchupsFile,
			RatingsFile:  DefaultRatingsFile,
		},
		Dashboard: DashboardConfig{
			Title:           DefaultTitle,
			MatchupsHeading: DefaultMatchupsHeading,
			SimulationCount: DefaultSimulationCount,
			Notes: []string{
				"Developed for interactive exploration of tournament predictions.",
				"Pre-tournament simulated Final 4: Auburn, Duke, Texas Tech, Houston",
				"Pre-tournament simulated Champion: Auburn",
			},
			DataSources: []string{"kenpom.com", "barttorvik.com"},
			Author:      "David Mustard",
		},
		Telemetry: TelemetryConfig{
			ServiceName:      AppName,
			MetricsEnabled:   true,
			TraceSampleRatio: 1.0,
		},
	}
}
