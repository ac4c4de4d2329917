// Package config provides centralized configuration management for the
// prediction dashboard. It loads configuration from multiple sources,
// validates it, and resolves the data file locations.
//
// # Configuration Sources
//
// Configuration is loaded in order of increasing precedence:
//
//	1. Default values
//	2. YAML configuration file
//	3. Environment variables
//
// The file is taken from BRACKET_CONFIG, or the first of config.yaml,
// configs/config.yaml, ../configs/config.yaml found.
//
// # Environment Variables
//
// Environment variables follow the pattern BRACKET_<SECTION>_<FIELD>:
//
//	BRACKET_SERVER_PORT=8080
//	BRACKET_LOGGING_LEVEL=debug
//	BRACKET_DATA_DIR=/srv/predictions
//	BRACKET_DASHBOARD_SIMULATION_COUNT=10000
//
// Only variables that are present override a value.
//
// # Path Management
//
// Paths resolves the data directory and the three prediction workbooks:
//
//	paths, err := cfg.GetPaths()
//	src := predictions.Sources{RoundsPath: paths.RoundsFile, ...}
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
