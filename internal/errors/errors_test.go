package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := NewWithDetails(http.StatusBadRequest, "INVALID_PARAMETER", "bad seed", "seed=99")

	assert.Equal(t, "bad seed", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "seed=99", err.Details)

	var target *APIError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
}

func TestHelperConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *APIError
		status int
		code   string
	}{
		{name: "invalid request", err: InvalidRequestWithError(errors.New("x")), status: 400, code: CodeInvalidRequest},
		{name: "validation", err: ErrValidation("seed", "too long"), status: 400, code: CodeValidationFailed},
		{name: "export", err: ExportError(errors.New("disk full")), status: 500, code: CodeExportFailed},
		{name: "multiple", err: NewValidationErrors([]ValidationError{{Field: "a"}, {Field: "b"}}), status: 400, code: CodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.Equal(t, tt.code, tt.err.ErrorCode)
		})
	}

	details := ErrValidation("region", "unknown").Details.(ValidationErrors)
	require.Len(t, details.Errors, 1)
	assert.Equal(t, "region", details.Errors[0].Field)
}

func TestAPIErrorRender(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rounds", nil)

	require.NoError(t, render.Render(rec, req, ExportError(errors.New("short write"))))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, CodeExportFailed, body["error_code"])
	assert.Equal(t, "short write", body["details"])
}

func TestAppError(t *testing.T) {
	cause := errors.New("file missing")
	err := NewFilterError("seed 17", cause).WithContext("values", []string{"17"})

	assert.Equal(t, "[FILTER] seed 17: file missing", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, []string{"17"}, err.Context["values"])

	filter := NewFilterError("region Atlantis", nil)
	assert.Equal(t, "[FILTER] region Atlantis", filter.Error())
	assert.Nil(t, filter.Context)
	filter.WithContext("values", []string{"Atlantis"})
	assert.Equal(t, []string{"Atlantis"}, filter.Context["values"])
}

func TestProblemDetailsMarshal(t *testing.T) {
	p := NewProblemDetails(http.StatusServiceUnavailable, TypeDataNotLoaded, "Unavailable", "", "/api/rounds").
		WithExtension("trace_id", "abc")

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, TypeDataNotLoaded, body["type"])
	assert.Equal(t, float64(503), body["status"])
	assert.Equal(t, "/api/rounds", body["instance"])
	assert.Equal(t, "abc", body["trace_id"])
	assert.NotContains(t, body, "detail")

	// extensions never override standard members
	p.WithExtension("status", 200)
	data, err = json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, float64(503), body["status"])
}
