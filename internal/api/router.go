package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/blaisecz/stress-detector/docs"
	"github.com/blaisecz/stress-detector/internal/api/handler"
	"github.com/blaisecz/stress-detector/internal/api/middleware"
	"github.com/blaisecz/stress-detector/internal/config"
	"github.com/blaisecz/stress-detector/internal/metrics"
	"github.com/blaisecz/stress-detector/internal/tracking"
	"github.com/blaisecz/stress-detector/internal/web"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	ModelLoaded bool   `json:"model_loaded" example:"true"`
	Version     string `json:"version,omitempty" example:"1.0.0"`
}

type Router struct {
	assessmentHandler *handler.AssessmentHandler
	coachHandler      *handler.CoachHandler
	webHandler        *web.Handler
	metrics           *metrics.Metrics
	tracker           tracking.Tracker
	rateLimit         config.RateLimitConfig
	modelReady        func() bool
	version           string
}

func NewRouter(
	assessmentHandler *handler.AssessmentHandler,
	coachHandler *handler.CoachHandler,
	webHandler *web.Handler,
	m *metrics.Metrics,
	tracker tracking.Tracker,
	rateLimit config.RateLimitConfig,
	modelReady func() bool,
	version string,
) *Router {
	return &Router{
		assessmentHandler: assessmentHandler,
		coachHandler:      coachHandler,
		webHandler:        webHandler,
		metrics:           m,
		tracker:           tracker,
		rateLimit:         rateLimit,
		modelReady:        modelReady,
		version:           version,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.tracker))
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(rt.metrics))
	r.Use(middleware.Tracing)

	limit := middleware.RateLimit(rt.rateLimit.RPS, rt.rateLimit.Burst, rt.metrics)

	// Health check. Always 200 so a missing model keeps the form reachable.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		ready := rt.modelReady()
		if !ready {
			status = "degraded"
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{Status: status, ModelLoaded: ready, Version: rt.version})
	})

	r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Single-page form
	r.Group(func(r chi.Router) {
		r.With(limit).Post("/", rt.webHandler.Analyze)
		r.Get("/", rt.webHandler.Index)
		rt.webHandler.Static(r)
	})

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/assessments", func(r chi.Router) {
			r.With(limit).Post("/", rt.assessmentHandler.Create)
			r.With(limit).Post("/coach", rt.coachHandler.Coach)
		})
		r.Post("/wellness-scores", rt.assessmentHandler.Scores)
		r.Get("/recommendations/{level}", rt.assessmentHandler.GetRecommendation)
		r.Get("/tips/today", rt.assessmentHandler.GetTip)
		r.Post("/feedback", rt.coachHandler.Feedback)
	})

	return r
}
