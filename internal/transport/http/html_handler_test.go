package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketboard/internal/config"
	apierrors "bracketboard/internal/errors"
	"bracketboard/internal/predictions"
	"bracketboard/internal/services"
)

func newPageHandler(t *testing.T, svc *MockDashboardService) *PageHandler {
	t.Helper()
	h, err := NewPageHandler(svc, config.Default().Dashboard, nil, nil, apierrors.NewErrorHandler(nil, false))
	require.NoError(t, err)
	return h
}

func withOptions(svc *MockDashboardService) {
	svc.On("Options").Return(services.FilterOptions{
		Seeds:   predictions.SeedOptions(),
		Regions: []string{"All", "East", "West"},
	})
	svc.On("Summary").Return(services.DatasetSummary{RoundRows: 3, LoadedAt: time.Now().Add(-2 * time.Minute)})
}

func TestPageHandler_RoundsTab(t *testing.T) {
	svc := new(MockDashboardService)
	withOptions(svc)
	svc.On("Rounds", predictions.Selection{Seeds: []string{"1"}, Regions: []string{"East"}}).Return(eastView(), nil)

	rec := httptest.NewRecorder()
	newPageHandler(t, svc).ServeDashboard(rec, httptest.NewRequest(http.MethodGet, "/?seed=1&region=East", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>March Madness Predictions</title>")
	assert.Contains(t, body, "based on 10,000 simulations")
	assert.Contains(t, body, "Pre-tournament simulated Champion: Auburn")
	assert.Contains(t, body, "comes from kenpom.com and barttorvik.com.")
	assert.Contains(t, body, "By David Mustard")
	assert.Contains(t, body, `<option value="1" selected>1</option>`)
	assert.Contains(t, body, `<option value="East" selected>East</option>`)
	assert.Contains(t, body, `<option value="West">West</option>`)
	assert.Contains(t, body, "<td>20.0%</td>")
	assert.Contains(t, body, `href="/?tab=rounds">Reset Filters`)
	assert.Contains(t, body, `href="/api/rounds/export.csv?region=East&amp;seed=1"`)
	assert.Contains(t, body, "2 minutes ago")
	assert.NotContains(t, body, "Team Ratings against an average team")
	svc.AssertExpectations(t)
}

func TestPageHandler_DefaultSelection(t *testing.T) {
	svc := new(MockDashboardService)
	withOptions(svc)
	svc.On("Rounds", predictions.Selection{}).Return(services.RoundsView{Selection: predictions.DefaultSelection()}, nil)

	rec := httptest.NewRecorder()
	newPageHandler(t, svc).ServeDashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="All" selected>All</option>`)
	assert.Contains(t, body, `class="active">🏆 Tournament Probabilities`)
}

func TestPageHandler_UnknownValues(t *testing.T) {
	svc := new(MockDashboardService)
	withOptions(svc)
	svc.On("Rounds", predictions.Selection{Regions: []string{"South"}}).Return(services.RoundsView{
		Selection: predictions.Selection{Seeds: []string{"All"}, Regions: []string{"South"}},
		Unknown:   []string{"South"},
	}, nil)

	rec := httptest.NewRecorder()
	newPageHandler(t, svc).ServeDashboard(rec, httptest.NewRequest(http.MethodGet, "/?region=South", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown filter values: South")
}

func TestPageHandler_OtherTabs(t *testing.T) {
	tests := []struct {
		tab      string
		setup    func(*MockDashboardService)
		contains []string
	}{
		{
			tab: TabMatchups,
			setup: func(m *MockDashboardService) {
				m.On("Matchups").Return(predictions.DisplayTable{
					Columns: []string{"Team A", "Team B"},
					Rows:    [][]string{{"Duke", "Mount St. Mary's"}},
				})
			},
			contains: []string{"First Round Matchup Predictions", "do not account for injuries", "<th>Team A</th>", "Mount St. Mary&#39;s"},
		},
		{
			tab: TabRatings,
			setup: func(m *MockDashboardService) {
				m.On("Ratings").Return(predictions.DisplayTable{
					Columns: []string{"Team", "Rating"},
					Rows:    [][]string{{"Duke", "0.912"}},
				})
			},
			contains: []string{"Team Ratings against an average team in the field", "<td>0.912</td>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			svc := new(MockDashboardService)
			withOptions(svc)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			newPageHandler(t, svc).ServeDashboard(rec, httptest.NewRequest(http.MethodGet, "/?tab="+tt.tab, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rec.Body.String(), s)
			}
			svc.AssertNotCalled(t, "Rounds")
		})
	}
}

func TestPageHandler_InvalidTab(t *testing.T) {
	svc := new(MockDashboardService)

	rec := httptest.NewRecorder()
	newPageHandler(t, svc).ServeDashboard(rec, httptest.NewRequest(http.MethodGet, "/?tab=bracket", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"tab"`)
	assert.Contains(t, rec.Body.String(), "tab must be one of: rounds, matchups, ratings")
	svc.AssertNotCalled(t, "Options")
}
