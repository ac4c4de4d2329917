package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"bracketboard/internal/exporter"
	"bracketboard/internal/infrastructure"
	"bracketboard/internal/predictions"
)

// DashboardService serves views of the loaded prediction dataset. Every call
// recomputes its view from the immutable dataset; nothing is cached or
// mutated between calls.
type DashboardService struct {
	dataset *predictions.Dataset
	metrics *infrastructure.BusinessMetrics
	csv     *exporter.CSVWriter
	logger  *slog.Logger
}

// RoundsView is the round table for one selection
type RoundsView struct {
	Selection predictions.Selection
	Unknown   []string
	Filtered  predictions.Table
	Display   predictions.DisplayTable
}

// FilterOptions lists the seed and region choices
type FilterOptions struct {
	Seeds   []string `json:"seeds"`
	Regions []string `json:"regions"`
}

// DatasetSummary describes what was loaded
type DatasetSummary struct {
	RoundRows   int       `json:"round_rows"`
	MatchupRows int       `json:"matchup_rows"`
	RatingRows  int       `json:"rating_rows"`
	Regions     int       `json:"regions"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// NewDashboardService creates the service over a loaded dataset. metrics may
// be nil.
func NewDashboardService(ds *predictions.Dataset, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) (*DashboardService, error) {
	if ds == nil {
		return nil, ErrDatasetMissing
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "dashboard_service"))

	ctx := context.Background()
	metrics.RecordDatasetRows(ctx, "rounds", ds.Rounds.Len())
	metrics.RecordDatasetRows(ctx, "matchups", ds.Matchups.Len())
	metrics.RecordDatasetRows(ctx, "ratings", ds.Ratings.Len())

	logger.Info("DashboardService initialized",
		slog.Int("round_rows", ds.Rounds.Len()),
		slog.Int("regions", len(ds.RegionOptions())-1))

	return &DashboardService{
		dataset: ds,
		metrics: metrics,
		csv:     exporter.NewCSVWriter("", logger),
		logger:  logger,
	}, nil
}

// Rounds filters the round table by sel and formats the result for display.
// Values outside the option lists are logged and simply match no rows.
func (s *DashboardService) Rounds(ctx context.Context, sel predictions.Selection) (RoundsView, error) {
	if err := ctx.Err(); err != nil {
		return RoundsView{}, err
	}

	sel = normalizeSelection(sel)
	unknown := sel.Unknown(predictions.SeedOptions(), s.dataset.RegionOptions())
	if len(unknown) > 0 {
		s.logger.WarnContext(ctx, "selection contains unknown values",
			slog.Any("unknown", unknown),
			slog.Any("seeds", sel.Seeds),
			slog.Any("regions", sel.Regions))
	}

	filtered := predictions.FilterRounds(s.dataset.Rounds, sel)
	s.metrics.RecordFilter(ctx, filtered.Len(), !isDefault(sel))

	s.logger.DebugContext(ctx, "rounds filtered",
		slog.Any("seeds", sel.Seeds),
		slog.Any("regions", sel.Regions),
		slog.Int("rows", filtered.Len()))

	return RoundsView{
		Selection: sel,
		Unknown:   unknown,
		Filtered:  filtered,
		Display:   predictions.FormatPercentages(filtered),
	}, nil
}

// ResetRounds returns the view of the default selection
func (s *DashboardService) ResetRounds(ctx context.Context, current predictions.Selection) (RoundsView, error) {
	return s.Rounds(ctx, current.Reset())
}

// ExportRounds writes the formatted view for sel to w as CSV
func (s *DashboardService) ExportRounds(ctx context.Context, w io.Writer, sel predictions.Selection, bom bool) (RoundsView, error) {
	view, err := s.Rounds(ctx, sel)
	if err != nil {
		return RoundsView{}, err
	}

	n, err := s.csv.WriteTable(w, view.Display, exporter.WriteOptions{BOMPrefix: bom})
	if err != nil {
		s.logger.ErrorContext(ctx, "rounds export failed", slog.String("error", err.Error()))
		return RoundsView{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	s.metrics.RecordExport(ctx, n)
	return view, nil
}

// Options returns the seed and region filter choices
func (s *DashboardService) Options(ctx context.Context) FilterOptions {
	return FilterOptions{
		Seeds:   predictions.SeedOptions(),
		Regions: s.dataset.RegionOptions(),
	}
}

// Matchups returns the matchup predictions as loaded
func (s *DashboardService) Matchups(ctx context.Context) predictions.DisplayTable {
	return predictions.Display(s.dataset.Matchups)
}

// Ratings returns the team ratings as loaded
func (s *DashboardService) Ratings(ctx context.Context) predictions.DisplayTable {
	return predictions.Display(s.dataset.Ratings)
}

// Summary returns row counts and the load time
func (s *DashboardService) Summary(ctx context.Context) DatasetSummary {
	return DatasetSummary{
		RoundRows:   s.dataset.Rounds.Len(),
		MatchupRows: s.dataset.Matchups.Len(),
		RatingRows:  s.dataset.Ratings.Len(),
		Regions:     len(s.dataset.RegionOptions()) - 1,
		LoadedAt:    s.dataset.LoadedAt,
	}
}

// normalizeSelection drops empty values and duplicates. Values are matched
// verbatim against cell text, so they are not trimmed. A nil list means
// the parameter was not given and selects All; an empty list stays empty.
func normalizeSelection(sel predictions.Selection) predictions.Selection {
	return predictions.Selection{
		Seeds:   normalizeValues(sel.Seeds),
		Regions: normalizeValues(sel.Regions),
	}
}

func normalizeValues(values []string) []string {
	if values == nil {
		return []string{predictions.All}
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func isDefault(sel predictions.Selection) bool {
	return slices.Contains(sel.Seeds, predictions.All) && slices.Contains(sel.Regions, predictions.All)
}
