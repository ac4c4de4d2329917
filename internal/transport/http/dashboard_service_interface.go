package http

import (
	"context"
	"io"

	"bracketboard/internal/predictions"
	"bracketboard/internal/services"
)

// DashboardServiceInterface defines the dashboard operations the handlers need
type DashboardServiceInterface interface {
	Rounds(ctx context.Context, sel predictions.Selection) (services.RoundsView, error)
	ResetRounds(ctx context.Context, current predictions.Selection) (services.RoundsView, error)
	ExportRounds(ctx context.Context, w io.Writer, sel predictions.Selection, bom bool) (services.RoundsView, error)
	Options(ctx context.Context) services.FilterOptions
	Matchups(ctx context.Context) predictions.DisplayTable
	Ratings(ctx context.Context) predictions.DisplayTable
	Summary(ctx context.Context) services.DatasetSummary
}
