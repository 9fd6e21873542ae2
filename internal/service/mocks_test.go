package service

import (
	"context"
	"time"

	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/langfuse"
)

// MockClassifier is a mock implementation of StressClassifier
type MockClassifier struct {
	ready bool
	level domain.StressLevel
	err   error
	calls int
}

func (m *MockClassifier) Ready() bool {
	return m.ready
}

func (m *MockClassifier) Classify(ctx context.Context, in domain.LifestyleInput) (domain.StressLevel, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.level, nil
}

// MockObserver records prediction outcomes
type MockObserver struct {
	levels  []domain.StressLevel
	reasons []string
}

func (m *MockObserver) ObservePrediction(level domain.StressLevel, took time.Duration) {
	m.levels = append(m.levels, level)
}

func (m *MockObserver) ObservePredictionError(reason string) {
	m.reasons = append(m.reasons, reason)
}

// MockCoachLLM is a mock implementation of llm.CoachLLM
type MockCoachLLM struct {
	narrative *domain.CoachNarrative
	err       error
	got       *domain.CoachContext
}

func (m *MockCoachLLM) GenerateCoaching(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachNarrative, error) {
	m.got = coachCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.narrative, nil
}

// MockLangfuse is a mock implementation of langfuse.Client
type MockLangfuse struct {
	enabled  bool
	traces   []langfuse.TraceInput
	scores   []langfuse.ScoreInput
	traceErr error
	scoreErr error
}

func (m *MockLangfuse) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuse) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	if m.traceErr != nil || !m.enabled {
		return "", m.traceErr
	}
	if in.ID != "" {
		return in.ID, nil
	}
	return "lf-trace-1", nil
}

func (m *MockLangfuse) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return m.scoreErr
}

func (m *MockLangfuse) Shutdown(ctx context.Context) error {
	return nil
}
