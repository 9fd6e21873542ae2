package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/pkg/problem"
)

const validBody = `{"age":20,"sleep_hours":7,"study_hours":4,"screen_hours":6,"exercise_frequency":2,"social_support":true}`

func TestAssessmentHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		assessErr  error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "valid input",
			body:       validBody,
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "invalid JSON",
			body:       `{"age":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "out of range",
			body:       `{"age":30,"sleep_hours":7,"study_hours":4,"screen_hours":6,"exercise_frequency":2}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing fields fail validation",
			body:       `{}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "model not loaded",
			body:       validBody,
			assessErr:  domain.ErrModelUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCalls:  1,
		},
		{
			name:       "unknown label",
			body:       validBody,
			assessErr:  fmt.Errorf("%w: 7", domain.ErrUnknownLabel),
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAssessmentService{ready: true}
			if tt.assessErr != nil {
				svc.assessFunc = func(ctx context.Context, in domain.LifestyleInput) (*domain.Assessment, error) {
					return nil, tt.assessErr
				}
			}
			h := NewAssessmentHandler(svc, nil)

			req := httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.Create(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if svc.assessed != tt.wantCalls {
				t.Errorf("expected %d Assess calls, got %d", tt.wantCalls, svc.assessed)
			}
		})
	}
}

func TestAssessmentHandler_Create_ResponseBody(t *testing.T) {
	h := NewAssessmentHandler(&MockAssessmentService{ready: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(validBody))
	w := httptest.NewRecorder()
	h.Create(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["stress_level"] != "Low" {
		t.Errorf("expected stress_level Low, got %v", body["stress_level"])
	}
	// The embedded profile is flattened into the assessment.
	for _, key := range []string{"id", "gauge", "recommendation", "scores", "radar", "health_metrics", "created_at"} {
		if _, ok := body[key]; !ok {
			t.Errorf("expected key %q in response", key)
		}
	}
}

func TestAssessmentHandler_Create_ModelMissingProblem(t *testing.T) {
	svc := &MockAssessmentService{
		assessFunc: func(ctx context.Context, in domain.LifestyleInput) (*domain.Assessment, error) {
			return nil, domain.ErrModelUnavailable
		},
	}
	h := NewAssessmentHandler(svc, nil)

	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(validBody)))

	var p problem.Problem
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if p.Type != problem.BaseURI+"/model-unavailable" || !strings.HasPrefix(p.Detail, "Model file not found") {
		t.Errorf("unexpected problem %+v", p)
	}
}

func TestAssessmentHandler_Create_ReportsServerErrors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantReported int
	}{
		{"model not loaded", domain.ErrModelUnavailable, http.StatusServiceUnavailable, 0},
		{"unknown label", fmt.Errorf("%w: 7", domain.ErrUnknownLabel), http.StatusInternalServerError, 1},
		{"model failure", errors.New("session closed"), http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAssessmentService{
				assessFunc: func(ctx context.Context, in domain.LifestyleInput) (*domain.Assessment, error) {
					return nil, tt.err
				},
			}
			tracker := &MockTracker{}
			h := NewAssessmentHandler(svc, tracker)

			r := chi.NewRouter()
			r.Post("/v1/assessments", h.Create)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(validBody)))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if len(tracker.errs) != tt.wantReported {
				t.Fatalf("expected %d reported errors, got %d", tt.wantReported, len(tracker.errs))
			}
			if tt.wantReported == 0 {
				return
			}
			if !errors.Is(tracker.errs[0], tt.err) {
				t.Errorf("expected reported error %v, got %v", tt.err, tracker.errs[0])
			}
			if got := tracker.tags[0]["route"]; got != "/v1/assessments" {
				t.Errorf("expected route tag /v1/assessments, got %q", got)
			}
		})
	}
}

func TestAssessmentHandler_Create_ValidationErrors(t *testing.T) {
	h := NewAssessmentHandler(&MockAssessmentService{}, nil)

	body := `{"age":20,"sleep_hours":11,"study_hours":4,"screen_hours":0,"exercise_frequency":2}`
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/v1/assessments", strings.NewReader(body)))

	var p problem.Problem
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	got := map[string]string{}
	for _, fe := range p.Errors {
		got[fe.Field] = fe.Message
	}
	if got["sleep_hours"] != "must be at most 10" || got["screen_hours"] != "must be at least 1" {
		t.Errorf("unexpected field errors %v", p.Errors)
	}
}

func TestAssessmentHandler_Scores(t *testing.T) {
	h := NewAssessmentHandler(&MockAssessmentService{ready: false}, nil)

	body := `{"age":20,"sleep_hours":4,"study_hours":8,"screen_hours":10,"exercise_frequency":6,"social_support":false}`
	w := httptest.NewRecorder()
	h.Scores(w, httptest.NewRequest(http.MethodPost, "/v1/wellness-scores", strings.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 without a model, got %d", w.Code)
	}

	var profile domain.WellnessProfile
	if err := json.NewDecoder(w.Body).Decode(&profile); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := domain.WellnessScores{Sleep: 50, Study: 40, Screen: 40, Exercise: 100, SocialSupport: 0}
	if profile.Scores != want {
		t.Errorf("expected %+v, got %+v", want, profile.Scores)
	}
	if len(profile.Radar) != 5 {
		t.Errorf("expected 5 radar axes, got %d", len(profile.Radar))
	}
}

func TestAssessmentHandler_GetRecommendation(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		wantStatus int
		wantLevel  domain.StressLevel
	}{
		{"high", "High", http.StatusOK, domain.StressHigh},
		{"lower case", "medium", http.StatusOK, domain.StressMedium},
		{"low", "Low", http.StatusOK, domain.StressLow},
		{"unknown", "Extreme", http.StatusNotFound, ""},
	}

	h := NewAssessmentHandler(&MockAssessmentService{}, nil)
	r := chi.NewRouter()
	r.Get("/v1/recommendations/{level}", h.GetRecommendation)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/recommendations/"+tt.level, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var rec domain.Recommendation
			if err := json.NewDecoder(w.Body).Decode(&rec); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if rec.Level != tt.wantLevel || len(rec.Items) == 0 {
				t.Errorf("unexpected recommendation %+v", rec)
			}
		})
	}
}

func TestAssessmentHandler_GetRecommendation_WithRouteContext(t *testing.T) {
	h := NewAssessmentHandler(&MockAssessmentService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/recommendations/High", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("level", "High")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	h.GetRecommendation(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestAssessmentHandler_GetTip(t *testing.T) {
	h := NewAssessmentHandler(&MockAssessmentService{}, nil)
	h.now = func() time.Time { return time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC) }

	w := httptest.NewRecorder()
	h.GetTip(w, httptest.NewRequest(http.MethodGet, "/v1/tips/today", nil))

	var tip TipResponse
	if err := json.NewDecoder(w.Body).Decode(&tip); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if tip.Date != "2024-01-16" {
		t.Errorf("expected date 2024-01-16, got %s", tip.Date)
	}
	if tip.Tip == "" {
		t.Error("expected a tip")
	}
}
