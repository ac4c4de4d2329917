package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"bracketboard/internal/infrastructure"
	"bracketboard/internal/predictions"
	"bracketboard/pkg/contracts"
)

// Summarizer reports what the dashboard has loaded
type Summarizer interface {
	Summary(ctx context.Context) DatasetSummary
}

// HealthService provides health check functionality
type HealthService struct {
	version   string
	sources   predictions.Sources
	dashboard Summarizer
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Runtime   map[string]interface{}   `json:"runtime,omitempty"`
	Services  map[string]ServiceHealth `json:"services,omitempty"`
}

// ServiceHealth represents individual component health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Rows    int    `json:"rows,omitempty"`
}

// NewHealthService creates a new health service. dashboard may be nil until
// the dataset is loaded.
func NewHealthService(version string, sources predictions.Sources, dashboard Summarizer, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized", slog.String("version", version))

	return &HealthService{
		version:   version,
		sources:   sources,
		dashboard: dashboard,
		startTime: time.Now(),
		logger:    logger.With(slog.String("component", "health_service")),
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	hs.logger.DebugContext(ctx, "HealthCheck: performing health check",
		slog.String("uptime", time.Since(hs.startTime).String()))

	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   hs.version,
	}
}

// ReadinessCheck reports ready once the dataset is loaded and its source
// files are still readable
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   hs.version,
		Services: map[string]ServiceHealth{
			"dataset": hs.checkDataset(ctx),
			"sources": hs.checkSources(),
		},
	}

	for _, s := range status.Services {
		if s.Status != "ready" {
			status.Status = "not_ready"
			break
		}
	}

	if status.Status != "ready" {
		hs.logger.WarnContext(ctx, "ReadinessCheck: not ready", slog.Any("services", status.Services))
	}
	return status
}

// IsReady reports whether the readiness status is ready
func (s HealthStatus) IsReady() bool {
	return s.Status == "ready"
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	stats := infrastructure.ReadRuntimeStats(hs.startTime)
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime":     stats.Uptime.Seconds(),
			"go_version": runtime.Version(),
			"goroutines": stats.Goroutines,
			"heap_alloc": stats.HeapAllocBytes,
			"num_gc":     stats.NumGC,
		},
	}
}

// Version returns version information
func (hs *HealthService) Version() contracts.VersionInfo {
	info := contracts.GetVersionInfo()
	if hs.version != "" {
		info.Version = hs.version
	}
	return info
}

func (hs *HealthService) checkDataset(ctx context.Context) ServiceHealth {
	if hs.dashboard == nil {
		return ServiceHealth{Status: "not_ready", Message: "prediction dataset not loaded"}
	}

	summary := hs.dashboard.Summary(ctx)
	if summary.RoundRows == 0 {
		return ServiceHealth{Status: "not_ready", Message: "round table is empty"}
	}

	return ServiceHealth{
		Status:  "ready",
		Message: fmt.Sprintf("loaded %s", summary.LoadedAt.Format(time.RFC3339)),
		Rows:    summary.RoundRows + summary.MatchupRows + summary.RatingRows,
	}
}

func (hs *HealthService) checkSources() ServiceHealth {
	for _, path := range []string{hs.sources.RoundsPath, hs.sources.MatchupsPath, hs.sources.RatingsPath} {
		if _, err := os.Stat(path); err != nil {
			return ServiceHealth{
				Status:  "not_ready",
				Message: fmt.Sprintf("source not readable: %s", path),
			}
		}
	}
	return ServiceHealth{Status: "ready", Message: "source files present"}
}
