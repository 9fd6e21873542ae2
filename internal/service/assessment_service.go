package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/wellness"
)

// StressClassifier predicts a stress level from lifestyle answers.
type StressClassifier interface {
	Ready() bool
	Classify(ctx context.Context, in domain.LifestyleInput) (domain.StressLevel, error)
}

// RecommendationCatalog serves the static advice and the daily tips.
type RecommendationCatalog interface {
	For(level domain.StressLevel) (domain.Recommendation, error)
	Tips() []string
}

// PredictionObserver records prediction outcomes.
type PredictionObserver interface {
	ObservePrediction(level domain.StressLevel, took time.Duration)
	ObservePredictionError(reason string)
}

// AssessmentService builds stress assessments.
type AssessmentService interface {
	// Assess classifies the input and attaches recommendation and charts.
	Assess(ctx context.Context, in domain.LifestyleInput) (*domain.Assessment, error)
	// Profile computes the model-free part of an assessment.
	Profile(in domain.LifestyleInput) domain.WellnessProfile
	// Recommendation returns the static advice for a level.
	Recommendation(level domain.StressLevel) (*domain.Recommendation, error)
	// TipOfDay picks the wellness tip for the given day.
	TipOfDay(now time.Time) string
	// ModelReady reports whether predictions are possible.
	ModelReady() bool
}

type assessmentService struct {
	classifier StressClassifier
	catalog    RecommendationCatalog
	observer   PredictionObserver
	now        func() time.Time
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(
	classifier StressClassifier,
	catalog RecommendationCatalog,
	observer PredictionObserver,
) AssessmentService {
	return &assessmentService{
		classifier: classifier,
		catalog:    catalog,
		observer:   observer,
		now:        time.Now,
	}
}

func (s *assessmentService) ModelReady() bool {
	return s.classifier != nil && s.classifier.Ready()
}

func (s *assessmentService) Assess(ctx context.Context, in domain.LifestyleInput) (*domain.Assessment, error) {
	if !s.ModelReady() {
		s.observer.ObservePredictionError("unavailable")
		return nil, domain.ErrModelUnavailable
	}

	start := time.Now()
	level, err := s.classifier.Classify(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLabel) {
			s.observer.ObservePredictionError("decode")
		} else {
			s.observer.ObservePredictionError("model")
		}
		return nil, err
	}
	s.observer.ObservePrediction(level, time.Since(start))

	rec, err := s.catalog.For(level)
	if err != nil {
		return nil, err
	}

	return &domain.Assessment{
		ID:              uuid.New(),
		Input:           in,
		StressLevel:     level,
		Gauge:           wellness.GaugeFor(level),
		Recommendation:  rec,
		WellnessProfile: wellness.Profile(in),
		CreatedAt:       s.now().UTC(),
	}, nil
}

func (s *assessmentService) Profile(in domain.LifestyleInput) domain.WellnessProfile {
	return wellness.Profile(in)
}

func (s *assessmentService) Recommendation(level domain.StressLevel) (*domain.Recommendation, error) {
	rec, err := s.catalog.For(level)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *assessmentService) TipOfDay(now time.Time) string {
	return wellness.TipOfDay(s.catalog.Tips(), now)
}
