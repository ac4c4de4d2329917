package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "bracketboard/internal/errors"
	bbmiddleware "bracketboard/internal/middleware"
	"bracketboard/internal/predictions"
	"bracketboard/internal/services"
	api "bracketboard/pkg/contracts/api/v1"
)

// ExportFilename is the download name of the round table CSV
const ExportFilename = "round_win_percentages.csv"

// DashboardHandler serves the prediction tables as JSON and CSV
type DashboardHandler struct {
	service      DashboardServiceInterface
	validator    *bbmiddleware.Validator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a new dashboard handler with RFC 7807 error handling
func NewDashboardHandler(service DashboardServiceInterface, validator *bbmiddleware.Validator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if validator == nil {
		validator = bbmiddleware.NewValidator(logger)
	}
	return &DashboardHandler{
		service:      service,
		validator:    validator,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the dashboard API routes for mounting under /api
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

// Register adds the dashboard routes to r
func (h *DashboardHandler) Register(r chi.Router) {
	r.Mount("/rounds", h.RoundsRoutes())

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/matchups", h.GetMatchups)
		r.Get("/ratings", h.GetRatings)
	})
}

// RoundsRoutes returns the round table routes
func (h *DashboardHandler) RoundsRoutes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/", h.GetRounds)
		r.Get("/options", h.GetOptions)
		r.Post("/reset", h.ResetRounds)
	})
	r.Get("/export.csv", h.ExportRounds)

	return r
}

// GetRounds handles GET /api/rounds
func (h *DashboardHandler) GetRounds(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseRoundsQuery(w, r)
	if !ok {
		return
	}

	view, err := h.service.Rounds(r.Context(), selectionFrom(query))
	if err == nil {
		err = strictCheck(query, view)
	}
	if err != nil {
		h.fail(w, r, "failed to filter rounds", err)
		return
	}

	render.JSON(w, r, roundsResponse(view))
}

// GetOptions handles GET /api/rounds/options
func (h *DashboardHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	opts := h.service.Options(r.Context())
	render.JSON(w, r, api.OptionsResponse{Seeds: opts.Seeds, Regions: opts.Regions})
}

// ResetRounds handles POST /api/rounds/reset. The current selection may be
// passed in the query; the response carries the default selection and the
// unfiltered view.
func (h *DashboardHandler) ResetRounds(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseRoundsQuery(w, r)
	if !ok {
		return
	}

	view, err := h.service.ResetRounds(r.Context(), selectionFrom(query))
	if err != nil {
		h.fail(w, r, "failed to reset rounds", err)
		return
	}

	h.logger.InfoContext(r.Context(), "round filters reset",
		slog.String("request_id", middleware.GetReqID(r.Context())))

	render.JSON(w, r, roundsResponse(view))
}

// ExportRounds handles GET /api/rounds/export.csv
func (h *DashboardHandler) ExportRounds(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parseRoundsQuery(w, r)
	if !ok {
		return
	}

	// buffered so a failure can still be reported as a problem response
	var buf bytes.Buffer
	view, err := h.service.ExportRounds(r.Context(), &buf, selectionFrom(query), true)
	if err == nil {
		err = strictCheck(query, view)
	}
	if err != nil {
		if errors.Is(err, services.ErrExportFailed) {
			err = apierrors.ExportError(err)
		}
		h.fail(w, r, "failed to export rounds", err)
		return
	}

	h.logger.InfoContext(r.Context(), "rounds exported",
		slog.Int("rows", view.Display.Len()),
		slog.String("request_id", middleware.GetReqID(r.Context())))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// GetMatchups handles GET /api/matchups
func (h *DashboardHandler) GetMatchups(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, tableResponse("matchups", h.service.Matchups(r.Context())))
}

// GetRatings handles GET /api/ratings
func (h *DashboardHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, tableResponse("ratings", h.service.Ratings(r.Context())))
}

// parseRoundsQuery reads and validates the seed and region parameters. On
// failure the problem response has already been written.
func (h *DashboardHandler) parseRoundsQuery(w http.ResponseWriter, r *http.Request) (api.RoundsQuery, bool) {
	query := roundsQueryFrom(r)
	if err := h.validator.ValidateStruct(query); err != nil {
		h.logger.WarnContext(r.Context(), "invalid rounds query",
			slog.String("query", r.URL.RawQuery),
			slog.String("request_id", middleware.GetReqID(r.Context())))
		h.errorHandler.HandleError(w, r, err)
		return api.RoundsQuery{}, false
	}
	return query, true
}

func (h *DashboardHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg,
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetReqID(r.Context())))
	h.errorHandler.HandleError(w, r, err)
}

// roundsQueryFrom keeps absent parameters nil so they select All
func roundsQueryFrom(r *http.Request) api.RoundsQuery {
	q := r.URL.Query()
	return api.RoundsQuery{
		Seeds:   q["seed"],
		Regions: q["region"],
		Strict:  q.Get("strict"),
	}
}

// strictCheck rejects a view with unknown selection values when the query
// asked for strict matching
func strictCheck(q api.RoundsQuery, view services.RoundsView) error {
	if q.Strict != "true" || len(view.Unknown) == 0 {
		return nil
	}
	return apierrors.NewFilterError(
		"unknown filter values: "+strings.Join(view.Unknown, ", "),
		predictions.ErrUnknownFilterValue,
	).WithContext("values", view.Unknown)
}

func selectionFrom(q api.RoundsQuery) predictions.Selection {
	return predictions.Selection{Seeds: q.Seeds, Regions: q.Regions}
}

func roundsResponse(view services.RoundsView) api.RoundsResponse {
	return api.RoundsResponse{
		Selection: api.SelectionResponse{
			Seeds:   view.Selection.Seeds,
			Regions: view.Selection.Regions,
		},
		Unknown: view.Unknown,
		Table:   tableResponse("rounds", view.Display),
	}
}

func tableResponse(name string, t predictions.DisplayTable) api.TableResponse {
	rows := t.Rows
	if rows == nil {
		rows = [][]string{}
	}
	columns := t.Columns
	if columns == nil {
		columns = []string{}
	}
	return api.TableResponse{
		Name:    name,
		Columns: columns,
		Rows:    rows,
		Count:   len(rows),
	}
}
