package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blaisecz/stress-detector/internal/api/validation"
	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/service"
	"github.com/blaisecz/stress-detector/internal/tracking"
	"github.com/blaisecz/stress-detector/pkg/problem"
)

const maxBodyBytes = 1 << 16

// ModelMissingDetail is shown whenever predictions are disabled.
const ModelMissingDetail = "Model file not found. Please ensure the stress model file is available to the server."

// TipResponse is the response for the tip of the day.
// @Description Wellness tip selected for the current day.
type TipResponse struct {
	Date string `json:"date" example:"2024-01-16"`
	Tip  string `json:"tip" example:"Take 5 deep breaths when feeling overwhelmed"`
}

type AssessmentHandler struct {
	service service.AssessmentService
	tracker tracking.Tracker
	now     func() time.Time
}

// NewAssessmentHandler creates a new AssessmentHandler. A nil tracker
// discards server errors.
func NewAssessmentHandler(service service.AssessmentService, tracker tracking.Tracker) *AssessmentHandler {
	if tracker == nil {
		tracker = tracking.Noop{}
	}
	return &AssessmentHandler{service: service, tracker: tracker, now: time.Now}
}

// Create handles POST /v1/assessments
// @Summary Assess stress level
// @Description Classify the student's lifestyle answers as High, Medium or Low stress and attach recommendations, gauge and radar data.
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body domain.LifestyleInput true "Lifestyle answers"
// @Success 200 {object} domain.Assessment "Stress assessment"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Answers out of range"
// @Failure 429 {object} problem.Problem "Rate limit exceeded"
// @Failure 503 {object} problem.Problem "Stress model not loaded"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /assessments [post]
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeLifestyle(w, r)
	if !ok {
		return
	}

	assessment, err := h.service.Assess(r.Context(), in)
	if err != nil {
		writeAssessError(w, r, h.tracker, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Scores handles POST /v1/wellness-scores
// @Summary Compute wellness scores
// @Description Compute the five 0-100 lifestyle scores, radar axes and health badges. Works without the stress model.
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body domain.LifestyleInput true "Lifestyle answers"
// @Success 200 {object} domain.WellnessProfile "Wellness profile"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Answers out of range"
// @Router /wellness-scores [post]
func (h *AssessmentHandler) Scores(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeLifestyle(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Profile(in))
}

// GetRecommendation handles GET /v1/recommendations/{level}
// @Summary Get recommendation for a stress level
// @Description Return the static advice shown for a stress level. Level matching is case-insensitive.
// @Tags recommendations
// @Produce json
// @Param level path string true "Stress level" Enums(High, Medium, Low)
// @Success 200 {object} domain.Recommendation "Recommendation"
// @Failure 404 {object} problem.Problem "Unknown stress level"
// @Router /recommendations/{level} [get]
func (h *AssessmentHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	level, err := domain.ParseStressLevel(chi.URLParam(r, "level"))
	if err != nil {
		problem.NotFound("Unknown stress level, expected High, Medium or Low").Write(w)
		return
	}

	rec, err := h.service.Recommendation(level)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLevel) {
			problem.NotFound("Unknown stress level, expected High, Medium or Low").Write(w)
			return
		}
		captureError(r, h.tracker, err)
		problem.InternalError("Failed to load recommendation").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// GetTip handles GET /v1/tips/today
// @Summary Get the tip of the day
// @Description Return the wellness tip selected by day of month.
// @Tags recommendations
// @Produce json
// @Success 200 {object} TipResponse "Tip of the day"
// @Router /tips/today [get]
func (h *AssessmentHandler) GetTip(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, TipResponse{
		Date: now.Format(time.DateOnly),
		Tip:  h.service.TipOfDay(now),
	})
}

func decodeLifestyle(w http.ResponseWriter, r *http.Request) (domain.LifestyleInput, bool) {
	var in domain.LifestyleInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return in, false
	}

	if fieldErrors := validation.Validate(in); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return in, false
	}
	return in, true
}

func writeAssessError(w http.ResponseWriter, r *http.Request, tracker tracking.Tracker, err error) {
	switch {
	case errors.Is(err, domain.ErrModelUnavailable):
		problem.ServiceUnavailable("model-unavailable", ModelMissingDetail).Write(w)
	case errors.Is(err, domain.ErrUnknownLabel):
		captureError(r, tracker, err)
		problem.InternalError("Model returned an unknown label").Write(w)
	default:
		captureError(r, tracker, err)
		problem.InternalError("Failed to assess stress level").Write(w)
	}
}

// captureError reports a server-side failure with the matched route.
func captureError(r *http.Request, tracker tracking.Tracker, err error) {
	tags := map[string]string{"method": r.Method, "path": r.URL.Path}
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		tags["route"] = rctx.RoutePattern()
	}
	tracker.CaptureError(r.Context(), err, tags)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
