package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains the resolved file system locations used by the
// application. Every path is absolute.
type Paths struct {
	BaseDir      string
	DataDir      string
	RoundsFile   string
	MatchupsFile string
	RatingsFile  string
	LogFile      string
}

// GetPaths resolves the configured locations against the working directory
func (c *Config) GetPaths() (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return c.ResolvePaths(wd)
}

// ResolvePaths resolves the configured locations against base. Absolute
// entries are kept as is.
func (c *Config) ResolvePaths(base string) (*Paths, error) {
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory: %w", err)
	}

	dataDir := resolve(base, c.Data.Dir)
	p := &Paths{
		BaseDir:      base,
		DataDir:      dataDir,
		RoundsFile:   resolve(dataDir, c.Data.RoundsFile),
		MatchupsFile: resolve(dataDir, c.Data.MatchupsFile),
		RatingsFile:  resolve(dataDir, c.Data.RatingsFile),
	}
	if c.Logging.FilePath != "" {
		p.LogFile = resolve(base, c.Logging.FilePath)
	}
	return p, nil
}

func resolve(base, p string) string {
	if p == "" {
		return base
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// LogPathResolution logs the resolved paths at debug level
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("Path resolution",
		slog.String("base_dir", p.BaseDir),
		slog.String("data_dir", p.DataDir),
		slog.String("rounds_file", p.RoundsFile),
		slog.String("matchups_file", p.MatchupsFile),
		slog.String("ratings_file", p.RatingsFile),
		slog.String("log_file", p.LogFile))
}
