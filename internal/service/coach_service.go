package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/trace"

	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/langfuse"
	"github.com/blaisecz/stress-detector/internal/llm"
	"github.com/blaisecz/stress-detector/pkg/logger"
)

const (
	coachTraceName    = "stress-coach"
	feedbackScoreName = "user_rating"
)

// CoachService wraps an assessment with an LLM narrative.
type CoachService interface {
	// Coach assesses the input and asks the LLM for guidance.
	Coach(ctx context.Context, in domain.LifestyleInput) (*domain.CoachResponse, error)
	// Feedback attaches a user rating to a previous coach trace.
	Feedback(ctx context.Context, req domain.FeedbackRequest) error
}

type coachService struct {
	assessments AssessmentService
	llmClient   llm.CoachLLM
	tracer      langfuse.Client
	model       string
}

// NewCoachService creates a new CoachService. llmClient may be nil.
func NewCoachService(
	assessments AssessmentService,
	llmClient llm.CoachLLM,
	tracer langfuse.Client,
	model string,
) CoachService {
	return &coachService{
		assessments: assessments,
		llmClient:   llmClient,
		tracer:      tracer,
		model:       model,
	}
}

func (s *coachService) Coach(ctx context.Context, in domain.LifestyleInput) (*domain.CoachResponse, error) {
	if s.llmClient == nil {
		return nil, domain.ErrCoachUnavailable
	}

	assessment, err := s.assessments.Assess(ctx, in)
	if err != nil {
		return nil, err
	}

	coachCtx := &domain.CoachContext{
		Input:         in,
		StressLevel:   assessment.StressLevel,
		Scores:        assessment.Scores,
		HealthMetrics: assessment.HealthMetrics,
	}

	narrative, err := s.llmClient.GenerateCoaching(ctx, coachCtx)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			return nil, domain.ErrCoachUnavailable
		}
		return nil, err
	}

	resp := &domain.CoachResponse{
		Assessment: *assessment,
		Coaching:   *narrative,
	}

	// Reuse the request span's trace ID so the Langfuse trace lines up with OTEL.
	var spanTraceID string
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		spanTraceID = sc.TraceID().String()
	}

	traceID, err := s.tracer.CreateTrace(ctx, langfuse.TraceInput{
		ID:        spanTraceID,
		SessionID: assessment.ID.String(),
		Name:      coachTraceName,
		Input:     coachCtx,
		Output:    narrative,
		Tags:      []string{"stress-detector", string(assessment.StressLevel)},
		Metadata:  map[string]any{"model": s.model},
	})
	if err != nil {
		logger.Named("coach").Warnw("langfuse trace failed", "error", err)
	}
	if traceID == "" {
		traceID = spanTraceID
	}
	resp.TraceID = traceID

	return resp, nil
}

func (s *coachService) Feedback(ctx context.Context, req domain.FeedbackRequest) error {
	err := s.tracer.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    feedbackScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
	if err != nil {
		return errors.Join(domain.ErrInvalidInput, err)
	}
	return nil
}
