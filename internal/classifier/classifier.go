// Package classifier wraps the pre-trained stress model behind a single
// Classify call: feature encoding, inference and label decoding.
package classifier

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blaisecz/stress-detector/internal/domain"
)

// Model is an opaque trained classifier.
type Model interface {
	// Predict returns the class index for a single feature vector.
	Predict(ctx context.Context, features []float32) (int64, error)
	Close() error
}

// Classifier turns lifestyle answers into a stress level.
type Classifier struct {
	model  Model
	labels *Labels
	tracer trace.Tracer
}

// New creates a Classifier. A nil model yields a classifier that reports
// domain.ErrModelUnavailable on every call.
func New(model Model, labels *Labels) *Classifier {
	if labels == nil {
		labels = DefaultLabels()
	}
	return &Classifier{
		model:  model,
		labels: labels,
		tracer: otel.Tracer("stress-detector/classifier"),
	}
}

// Ready reports whether a model is loaded.
func (c *Classifier) Ready() bool {
	return c != nil && c.model != nil
}

// Classify predicts the stress level for the given input.
func (c *Classifier) Classify(ctx context.Context, in domain.LifestyleInput) (domain.StressLevel, error) {
	if !c.Ready() {
		return "", domain.ErrModelUnavailable
	}

	ctx, span := c.tracer.Start(ctx, "Classifier.Classify",
		trace.WithAttributes(
			attribute.Int("input.age", in.Age),
			attribute.Int("input.sleep_hours", in.SleepHours),
			attribute.Int("input.study_hours", in.StudyHours),
			attribute.Int("input.screen_hours", in.ScreenHours),
			attribute.Int("input.exercise_frequency", in.ExerciseFrequency),
			attribute.Bool("input.social_support", in.SocialSupport),
		),
	)
	defer span.End()

	index, err := c.model.Predict(ctx, in.Features())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "predict failed")
		return "", fmt.Errorf("predict: %w", err)
	}

	level, err := c.labels.Decode(index)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return "", err
	}

	span.SetAttributes(
		attribute.Int64("prediction.index", index),
		attribute.String("prediction.level", string(level)),
	)
	return level, nil
}

// Close releases the underlying model.
func (c *Classifier) Close() error {
	if !c.Ready() {
		return nil
	}
	return c.model.Close()
}
