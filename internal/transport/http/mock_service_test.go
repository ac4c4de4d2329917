package http

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"bracketboard/internal/predictions"
	"bracketboard/internal/services"
)

// MockDashboardService is a mock implementation of DashboardServiceInterface
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Rounds(ctx context.Context, sel predictions.Selection) (services.RoundsView, error) {
	args := m.Called(sel)
	return args.Get(0).(services.RoundsView), args.Error(1)
}

func (m *MockDashboardService) ResetRounds(ctx context.Context, current predictions.Selection) (services.RoundsView, error) {
	args := m.Called(current)
	return args.Get(0).(services.RoundsView), args.Error(1)
}

func (m *MockDashboardService) ExportRounds(ctx context.Context, w io.Writer, sel predictions.Selection, bom bool) (services.RoundsView, error) {
	args := m.Called(sel, bom)
	if content, ok := args.Get(2).(string); ok && content != "" {
		_, _ = io.WriteString(w, content)
	}
	return args.Get(0).(services.RoundsView), args.Error(1)
}

func (m *MockDashboardService) Options(ctx context.Context) services.FilterOptions {
	args := m.Called()
	return args.Get(0).(services.FilterOptions)
}

func (m *MockDashboardService) Matchups(ctx context.Context) predictions.DisplayTable {
	args := m.Called()
	return args.Get(0).(predictions.DisplayTable)
}

func (m *MockDashboardService) Ratings(ctx context.Context) predictions.DisplayTable {
	args := m.Called()
	return args.Get(0).(predictions.DisplayTable)
}

func (m *MockDashboardService) Summary(ctx context.Context) services.DatasetSummary {
	args := m.Called()
	return args.Get(0).(services.DatasetSummary)
}
