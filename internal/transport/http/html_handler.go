package http

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/dustin/go-humanize"

	"bracketboard/internal/config"
	apierrors "bracketboard/internal/errors"
	bbmiddleware "bracketboard/internal/middleware"
	"bracketboard/internal/predictions"
	api "bracketboard/pkg/contracts/api/v1"
)

//go:embed templates/dashboard.html
var dashboardTemplate string

// Dashboard tabs
const (
	TabRounds   = "rounds"
	TabMatchups = "matchups"
	TabRatings  = "ratings"
)

var tabIDs = []string{TabRounds, TabMatchups, TabRatings}

var tabs = []struct {
	ID    string
	Label string
}{
	{TabRounds, "🏆 Tournament Probabilities"},
	{TabMatchups, "📋 Game Predictions"},
	{TabRatings, "📈 Team Ratings"},
}

// PageHandler renders the HTML dashboard
type PageHandler struct {
	service      DashboardServiceInterface
	cfg          config.DashboardConfig
	tmpl         *template.Template
	validator    *bbmiddleware.Validator
	params       *bbmiddleware.QueryParamValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewPageHandler parses the embedded dashboard template
func NewPageHandler(service DashboardServiceInterface, cfg config.DashboardConfig, validator *bbmiddleware.Validator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) (*PageHandler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if validator == nil {
		validator = bbmiddleware.NewValidator(logger)
	}

	tmpl, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	return &PageHandler{
		service:      service,
		cfg:          cfg,
		tmpl:         tmpl,
		validator:    validator,
		params:       bbmiddleware.NewQueryParamValidator(logger, errorHandler),
		logger:       logger.With(slog.String("component", "page_handler")),
		errorHandler: errorHandler,
	}, nil
}

type option struct {
	Value    string
	Selected bool
}

type tabLink struct {
	Label  string
	URL    template.URL
	Active bool
}

type pageData struct {
	Title           string
	Notes           []string
	DataSources     []string
	Author          string
	Tabs            []tabLink
	Tab             string
	Simulations     string
	LoadedAgo       string
	SeedOptions     []option
	RegionOptions   []option
	Unknown         []string
	ResetURL        template.URL
	ExportURL       template.URL
	Rounds          predictions.DisplayTable
	MatchupsHeading string
	Matchups        predictions.DisplayTable
	Ratings         predictions.DisplayTable
}

// ServeDashboard handles GET /
func (h *PageHandler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tab, ok := h.params.ValidateEnum(w, r, "tab", tabIDs, TabRounds)
	if !ok {
		return
	}
	query := api.DashboardPageQuery{
		RoundsQuery: roundsQueryFrom(r),
		Tab:         tab,
	}
	if err := h.validator.ValidateStruct(query); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	filters := url.Values{}
	for _, s := range query.Seeds {
		filters.Add("seed", s)
	}
	for _, rg := range query.Regions {
		filters.Add("region", rg)
	}

	opts := h.service.Options(ctx)
	summary := h.service.Summary(ctx)

	data := pageData{
		Title:           h.cfg.Title,
		Notes:           h.cfg.Notes,
		DataSources:     h.cfg.DataSources,
		Author:          h.cfg.Author,
		Tab:             query.Tab,
		Simulations:     humanize.Comma(int64(h.cfg.SimulationCount)),
		LoadedAgo:       humanize.Time(summary.LoadedAt),
		ResetURL:        template.URL("/?tab=" + TabRounds),
		ExportURL:       template.URL("/api/rounds/export.csv?" + filters.Encode()),
		MatchupsHeading: h.cfg.MatchupsHeading,
	}

	for _, t := range tabs {
		link := url.Values{"tab": {t.ID}}
		for k, v := range filters {
			link[k] = v
		}
		data.Tabs = append(data.Tabs, tabLink{
			Label:  t.Label,
			URL:    template.URL("/?" + link.Encode()),
			Active: t.ID == query.Tab,
		})
	}

	switch query.Tab {
	case TabRounds:
		view, err := h.service.Rounds(ctx, selectionFrom(query.RoundsQuery))
		if err != nil {
			h.errorHandler.HandleError(w, r, err)
			return
		}
		data.Rounds = view.Display
		data.Unknown = view.Unknown
		data.SeedOptions = markSelected(opts.Seeds, view.Selection.Seeds)
		data.RegionOptions = markSelected(opts.Regions, view.Selection.Regions)
	case TabMatchups:
		data.Matchups = h.service.Matchups(ctx)
	case TabRatings:
		data.Ratings = h.service.Ratings(ctx)
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		h.logger.ErrorContext(ctx, "failed to render dashboard", slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func markSelected(values, selected []string) []option {
	out := make([]option, len(values))
	for i, v := range values {
		out[i] = option{Value: v, Selected: slices.Contains(selected, v)}
	}
	return out
}
