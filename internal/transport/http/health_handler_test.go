package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketboard/internal/predictions"
	"bracketboard/internal/services"
	"bracketboard/internal/shared/testutil"
	"bracketboard/pkg/contracts"
)

type fixedSummary struct{}

func (fixedSummary) Summary(context.Context) services.DatasetSummary {
	return services.DatasetSummary{RoundRows: 3, MatchupRows: 3, RatingRows: 4, LoadedAt: time.Now()}
}

func newHealthRouter(t *testing.T, dashboard services.Summarizer) http.Handler {
	t.Helper()
	fx := testutil.WritePredictionFixture(t)
	sources := predictions.Sources{RoundsPath: fx.RoundsPath, MatchupsPath: fx.MatchupsPath, RatingsPath: fx.RatingsPath}

	h := NewHealthHandler(services.NewHealthService(contracts.Version, sources, dashboard, nil), nil)

	r := chi.NewRouter()
	r.Mount("/api/health", h.Routes())
	r.Get("/api/version", h.Version)
	return r
}

func TestHealthHandler(t *testing.T) {
	router := newHealthRouter(t, fixedSummary{})

	tests := []struct {
		name           string
		endpoint       string
		expectedStatus string
	}{
		{"health check endpoint", "/api/health", "ok"},
		{"readiness endpoint", "/api/health/ready", "ready"},
		{"liveness endpoint", "/api/health/live", "alive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.endpoint, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var status services.HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, contracts.Version, status.Version)
		})
	}
}

func TestHealthHandler_NotReady(t *testing.T) {
	router := newHealthRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_ready"`)
}

func TestHealthHandler_Version(t *testing.T) {
	router := newHealthRouter(t, fixedSummary{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var info contracts.VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, contracts.Version, info.Version)
	assert.Equal(t, contracts.APIVersion, info.APIVersion)
}
