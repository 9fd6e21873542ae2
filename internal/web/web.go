// Package web serves the single-page stress check form.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blaisecz/stress-detector/internal/chart"
	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/service"
	"github.com/blaisecz/stress-detector/internal/tracking"
	"github.com/blaisecz/stress-detector/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	gaugeWidth = 320
	radarSize  = 380
)

// ModelMissingMessage is shown instead of the analyze button.
const ModelMissingMessage = "Model file not found. Please ensure the stress model file is in the configured location."

// Handler renders the form and its results.
type Handler struct {
	service service.AssessmentService
	tracker tracking.Tracker
	tmpl    *template.Template
	static  fs.FS
	now     func() time.Time
}

type page struct {
	Input        domain.LifestyleInput
	Sliders      []slider
	Errors       map[string]string
	Metrics      []domain.HealthMetric
	Tip          string
	ModelReady   bool
	ModelMessage string
	Failure      string
	Result       *result
}

type result struct {
	Assessment *domain.Assessment
	Gauge      chart.Gauge
	Radar      chart.Radar
}

// New parses the embedded templates. A nil tracker discards server errors.
func New(svc service.AssessmentService, tracker tracking.Tracker) (*Handler, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"f2":    func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"score": func(v float64) string { return fmt.Sprintf("%.0f", v) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	if tracker == nil {
		tracker = tracking.Noop{}
	}
	return &Handler{service: svc, tracker: tracker, tmpl: tmpl, static: static, now: time.Now}, nil
}

// Routes mounts the page and its static assets.
func (h *Handler) Routes(r chi.Router) {
	h.Static(r)
	r.Get("/", h.Index)
	r.Post("/", h.Analyze)
}

// Static mounts the embedded stylesheet under /static/.
func (h *Handler) Static(r chi.Router) {
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(h.static))))
}

// Index renders the empty form with default answers.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	in := domain.DefaultLifestyleInput()
	h.render(w, http.StatusOK, h.newPage(in, nil))
}

// Analyze validates the submitted answers and renders the prediction.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	in, errs := parseForm(r)
	p := h.newPage(in, errs)

	if len(errs) > 0 {
		h.render(w, http.StatusUnprocessableEntity, p)
		return
	}
	if !p.ModelReady {
		h.render(w, http.StatusServiceUnavailable, p)
		return
	}

	assessment, err := h.service.Assess(r.Context(), in)
	if err != nil {
		logger.Named("web").Errorw("assessment failed", "error", err)
		h.tracker.CaptureError(r.Context(), err, map[string]string{"method": r.Method, "path": r.URL.Path})
		p.Failure = "We could not analyze your answers right now. Please try again."
		h.render(w, http.StatusInternalServerError, p)
		return
	}

	p.Result = &result{
		Assessment: assessment,
		Gauge:      chart.NewGauge(assessment.Gauge, gaugeWidth),
		Radar:      chart.NewRadar(assessment.Radar, radarSize),
	}
	h.render(w, http.StatusOK, p)
}

func (h *Handler) newPage(in domain.LifestyleInput, errs map[string]string) *page {
	if errs == nil {
		errs = map[string]string{}
	}
	p := &page{
		Input:      in,
		Sliders:    sliders(in, errs),
		Errors:     errs,
		Metrics:    h.service.Profile(in).HealthMetrics,
		Tip:        h.service.TipOfDay(h.now()),
		ModelReady: h.service.ModelReady(),
	}
	if !p.ModelReady {
		p.ModelMessage = ModelMissingMessage
	}
	return p
}

func (h *Handler) render(w http.ResponseWriter, status int, p *page) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", p); err != nil {
		logger.Named("web").Errorw("render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
