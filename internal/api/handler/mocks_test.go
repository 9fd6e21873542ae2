package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/recommendation"
	"github.com/blaisecz/stress-detector/internal/wellness"
)

// MockAssessmentService is a mock implementation of AssessmentService
type MockAssessmentService struct {
	assessFunc func(ctx context.Context, in domain.LifestyleInput) (*domain.Assessment, error)
	ready      bool
	assessed   int
}

func (m *MockAssessmentService) Assess(ctx context.Context, in domain.LifestyleInput) (*domain.Assessment, error) {
	m.assessed++
	if m.assessFunc != nil {
		return m.assessFunc(ctx, in)
	}
	rec, _ := recommendation.MustDefault().For(domain.StressLow)
	return &domain.Assessment{
		ID:              uuid.New(),
		Input:           in,
		StressLevel:     domain.StressLow,
		Gauge:           wellness.GaugeFor(domain.StressLow),
		Recommendation:  rec,
		WellnessProfile: wellness.Profile(in),
		CreatedAt:       time.Now().UTC(),
	}, nil
}

func (m *MockAssessmentService) Profile(in domain.LifestyleInput) domain.WellnessProfile {
	return wellness.Profile(in)
}

func (m *MockAssessmentService) Recommendation(level domain.StressLevel) (*domain.Recommendation, error) {
	rec, err := recommendation.MustDefault().For(level)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (m *MockAssessmentService) TipOfDay(now time.Time) string {
	return wellness.TipOfDay(recommendation.MustDefault().Tips(), now)
}

func (m *MockAssessmentService) ModelReady() bool {
	return m.ready
}

// MockCoachService is a mock implementation of CoachService
type MockCoachService struct {
	coachFunc    func(ctx context.Context, in domain.LifestyleInput) (*domain.CoachResponse, error)
	feedbackFunc func(ctx context.Context, req domain.FeedbackRequest) error
	feedback     []domain.FeedbackRequest
}

func (m *MockCoachService) Coach(ctx context.Context, in domain.LifestyleInput) (*domain.CoachResponse, error) {
	if m.coachFunc != nil {
		return m.coachFunc(ctx, in)
	}
	return &domain.CoachResponse{
		Assessment: domain.Assessment{ID: uuid.New(), Input: in, StressLevel: domain.StressMedium},
		Coaching: domain.CoachNarrative{
			Summary:    "Balanced week.",
			FocusAreas: []string{"Screen time"},
			Actions:    []string{"Take a walk"},
		},
		TraceID: "trace-123",
	}, nil
}

func (m *MockCoachService) Feedback(ctx context.Context, req domain.FeedbackRequest) error {
	m.feedback = append(m.feedback, req)
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, req)
	}
	return nil
}

// MockTracker records captured errors
type MockTracker struct {
	errs []error
	tags []map[string]string
}

func (m *MockTracker) CaptureError(ctx context.Context, err error, tags map[string]string) {
	m.errs = append(m.errs, err)
	m.tags = append(m.tags, tags)
}

func (m *MockTracker) CapturePanic(ctx context.Context, recovered any, tags map[string]string) {}

func (m *MockTracker) Flush(timeout time.Duration) bool { return true }
