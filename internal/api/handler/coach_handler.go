package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/stress-detector/internal/api/validation"
	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/llm"
	"github.com/blaisecz/stress-detector/internal/service"
	"github.com/blaisecz/stress-detector/internal/tracking"
	"github.com/blaisecz/stress-detector/pkg/problem"
)

// CoachHandler handles the LLM coaching endpoints.
type CoachHandler struct {
	service service.CoachService
	tracker tracking.Tracker
}

// NewCoachHandler creates a new CoachHandler. A nil tracker discards
// server errors.
func NewCoachHandler(service service.CoachService, tracker tracking.Tracker) *CoachHandler {
	if tracker == nil {
		tracker = tracking.Noop{}
	}
	return &CoachHandler{service: service, tracker: tracker}
}

// Coach handles POST /v1/assessments/coach
// @Summary Get LLM coaching for an assessment
// @Description Assess the answers and ask the LLM for a short, non-medical narrative. The trace_id can be used to submit feedback.
// @Tags coaching
// @Accept json
// @Produce json
// @Param request body domain.LifestyleInput true "Lifestyle answers"
// @Success 200 {object} domain.CoachResponse "Assessment with coaching"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Answers out of range"
// @Failure 429 {object} problem.Problem "Rate limit exceeded"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "Model or LLM not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /assessments/coach [post]
func (h *CoachHandler) Coach(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeLifestyle(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Coach(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCoachUnavailable):
			problem.ServiceUnavailable("coach-unavailable", "OpenAI service is not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			captureError(r, h.tracker, err)
			problem.BadGateway("llm-error", "Failed to generate coaching from LLM").Write(w)
		default:
			writeAssessError(w, r, h.tracker, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /v1/feedback
// @Summary Rate a coaching response
// @Description Attach a 1-5 rating and optional comment to a previous coaching trace.
// @Tags coaching
// @Accept json
// @Produce json
// @Param request body domain.FeedbackRequest true "Feedback"
// @Success 204 "Feedback accepted"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Invalid feedback"
// @Router /feedback [post]
func (h *CoachHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), req); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Feedback could not be recorded for this trace").Write(w)
			return
		}
		captureError(r, h.tracker, err)
		problem.InternalError("Failed to record feedback").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
