package domain

import (
	"time"

	"github.com/google/uuid"
)

// WellnessScores holds the five 0-100 display scores of the radar chart.
// @Description Lifestyle scores, each clamped to 0-100.
type WellnessScores struct {
	Sleep         float64 `json:"sleep" example:"87.5"`
	Study         float64 `json:"study" example:"100"`
	Screen        float64 `json:"screen" example:"80"`
	Exercise      float64 `json:"exercise" example:"50"`
	SocialSupport float64 `json:"social_support" example:"100"`
}

// RadarAxis is one labelled spoke of the radar chart.
type RadarAxis struct {
	Name  string  `json:"name" example:"Sleep Quality"`
	Score float64 `json:"score" example:"87.5"`
}

// Gauge describes the stress gauge for a predicted level.
// @Description Stress gauge value and styling.
type Gauge struct {
	Value int    `json:"value" example:"50"`
	Color string `json:"color" example:"#ffa502"`
	Emoji string `json:"emoji" example:"🟡"`
}

// HealthMetric is a single at-a-glance badge derived from the raw input.
type HealthMetric struct {
	Label string `json:"label" example:"Sleep Quality"`
	Value string `json:"value" example:"Good ✅"`
	Ok    bool   `json:"ok" example:"true"`
}

// RecommendationItem is a single actionable tip.
type RecommendationItem struct {
	Icon    string `json:"icon" yaml:"icon" example:"🛌"`
	Heading string `json:"heading" yaml:"heading" example:"Prioritize Sleep"`
	Text    string `json:"text" yaml:"text" example:"Aim for 7-9 hours of quality sleep each night"`
}

// Recommendation is the static advice shown for a stress level.
// @Description Canned recommendation text for a stress level.
type Recommendation struct {
	Level     StressLevel          `json:"level" yaml:"-" example:"High"`
	Title     string               `json:"title" yaml:"title"`
	Intro     string               `json:"intro" yaml:"intro"`
	Items     []RecommendationItem `json:"items" yaml:"items"`
	NoteLabel string               `json:"note_label" yaml:"note_label"`
	Note      string               `json:"note" yaml:"note"`
}

// WellnessProfile is everything that can be derived without the model.
// @Description Model-free lifestyle analysis.
type WellnessProfile struct {
	Scores        WellnessScores `json:"scores"`
	Radar         []RadarAxis    `json:"radar"`
	HealthMetrics []HealthMetric `json:"health_metrics"`
}

// Assessment is the full result of analyzing a lifestyle input.
// @Description Predicted stress level with recommendations and charts.
type Assessment struct {
	ID             uuid.UUID      `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Input          LifestyleInput `json:"input"`
	StressLevel    StressLevel    `json:"stress_level" example:"Medium"`
	Gauge          Gauge          `json:"gauge"`
	Recommendation Recommendation `json:"recommendation"`
	WellnessProfile
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
}
