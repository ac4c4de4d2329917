package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketboard/internal/predictions"
	"bracketboard/internal/shared/testutil"
)

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorToProblem(t *testing.T) {
	h := NewErrorHandler(nil, false)
	req := httptest.NewRequest(http.MethodGet, "/api/rounds", nil)

	tests := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{
			name:   "deadline",
			err:    fmt.Errorf("filter: %w", context.DeadlineExceeded),
			status: http.StatusGatewayTimeout,
			typ:    TypeTimeout,
		},
		{
			name:   "api error",
			err:    ErrValidation("seed", "too long"),
			status: http.StatusBadRequest,
			typ:    TypeValidation,
		},
		{
			name:   "missing source",
			err:    &predictions.DataLoadError{Source: predictions.SourceRounds, Path: "/srv/x.xlsx", Err: predictions.ErrSourceMissing},
			status: http.StatusServiceUnavailable,
			typ:    TypeDataMissing,
		},
		{
			name:   "schema mismatch",
			err:    fmt.Errorf("startup: %w", &predictions.DataLoadError{Source: predictions.SourceRounds, Err: predictions.ErrSchema}),
			status: http.StatusServiceUnavailable,
			typ:    TypeDataCorrupted,
		},
		{
			name:   "filter app error",
			err:    NewFilterError("unknown region", predictions.ErrUnknownFilterValue),
			status: http.StatusBadRequest,
			typ:    TypeFilter,
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			typ:    TypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := h.ErrorToProblem(tt.err, req)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.typ, p.Type)
			assert.Equal(t, "/api/rounds", p.Instance)
		})
	}
}

func TestDataLoadProblemHidesPath(t *testing.T) {
	h := NewErrorHandler(nil, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	p := h.ErrorToProblem(&predictions.DataLoadError{
		Source: predictions.SourceMatchups,
		Path:   "/secret/dir/test_with_predictions.xlsx",
		Sheet:  "Sheet1",
		Err:    predictions.ErrMalformedSource,
	}, req)

	assert.NotContains(t, p.Detail, "/secret")
	assert.Equal(t, predictions.SourceMatchups, p.Extensions["source"])
	assert.Equal(t, "Sheet1", p.Extensions["sheet"])
}

func TestHandleError(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)
	h := NewErrorHandler(logger, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ratings", nil)
	h.HandleError(rec, req, &predictions.DataLoadError{Source: predictions.SourceRatings, Err: predictions.ErrSourceMissing})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, TypeDataMissing, body["type"])
	assert.Equal(t, predictions.SourceRatings, body["source"])
	assert.Contains(t, body, "stack")
	assert.True(t, logs.ContainsAttr("component", "error_handler"))
	testutil.AssertLogContains(t, logs, slog.LevelError, "request failed")
}

func TestHandleErrorNil(t *testing.T) {
	rec := httptest.NewRecorder()
	NewErrorHandler(nil, false).HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := NewErrorHandler(nil, false)

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, TypeNotFound, decodeProblem(t, rec)["type"])

	rec = httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/api/rounds", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, decodeProblem(t, rec)["detail"], "DELETE")
}

func TestRecoveryMiddleware(t *testing.T) {
	h := NewErrorHandler(nil, false)
	handler := RecoveryMiddleware(h)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, TypeInternal, body["type"])
	assert.NotContains(t, body, "panic")
}
