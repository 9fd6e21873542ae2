// Package wellness turns raw lifestyle answers into display scores,
// gauge settings, status badges and daily tips. Everything here is pure.
package wellness

import (
	"fmt"
	"time"

	"github.com/blaisecz/stress-detector/internal/domain"
)

// Breakpoints of the score formula.
const (
	SleepSaturationHours   = 8.0
	StudyComfortHours      = 4.0
	StudyPenaltyPerHour    = 15.0
	ScreenComfortHours     = 4.0
	ScreenPenaltyPerHour   = 10.0
	ExerciseSaturationWeek = 4.0
)

// Radar axis names, in drawing order.
const (
	AxisSleep    = "Sleep Quality"
	AxisStudy    = "Study Balance"
	AxisScreen   = "Screen Time"
	AxisExercise = "Exercise"
	AxisSocial   = "Social Support"
)

// Scores computes the five radar scores. Each one is clamped to [0,100].
func Scores(sleepHours, studyHours, screenHours, exerciseFrequency float64, hasSocialSupport bool) domain.WellnessScores {
	social := 0.0
	if hasSocialSupport {
		social = 100
	}
	return domain.WellnessScores{
		Sleep:         clamp(sleepHours / SleepSaturationHours * 100),
		Study:         clamp(100 - (studyHours-StudyComfortHours)*StudyPenaltyPerHour),
		Screen:        clamp(100 - (screenHours-ScreenComfortHours)*ScreenPenaltyPerHour),
		Exercise:      clamp(exerciseFrequency / ExerciseSaturationWeek * 100),
		SocialSupport: social,
	}
}

// ScoresFor is Scores applied to a form submission.
func ScoresFor(in domain.LifestyleInput) domain.WellnessScores {
	return Scores(
		float64(in.SleepHours),
		float64(in.StudyHours),
		float64(in.ScreenHours),
		float64(in.ExerciseFrequency),
		in.SocialSupport,
	)
}

// Radar lays the scores out along the chart axes.
func Radar(s domain.WellnessScores) []domain.RadarAxis {
	return []domain.RadarAxis{
		{Name: AxisSleep, Score: s.Sleep},
		{Name: AxisStudy, Score: s.Study},
		{Name: AxisScreen, Score: s.Screen},
		{Name: AxisExercise, Score: s.Exercise},
		{Name: AxisSocial, Score: s.SocialSupport},
	}
}

// Profile bundles all model-free analysis of an input.
func Profile(in domain.LifestyleInput) domain.WellnessProfile {
	scores := ScoresFor(in)
	return domain.WellnessProfile{
		Scores:        scores,
		Radar:         Radar(scores),
		HealthMetrics: HealthMetrics(in),
	}
}

// GaugeFor maps a stress level onto the gauge.
func GaugeFor(level domain.StressLevel) domain.Gauge {
	switch level {
	case domain.StressHigh:
		return domain.Gauge{Value: 85, Color: "#ff4757", Emoji: "🔴"}
	case domain.StressMedium:
		return domain.Gauge{Value: 50, Color: "#ffa502", Emoji: "🟡"}
	default:
		return domain.Gauge{Value: 15, Color: "#2ed573", Emoji: "🟢"}
	}
}

// HealthMetrics derives the at-a-glance badges shown next to the form.
func HealthMetrics(in domain.LifestyleInput) []domain.HealthMetric {
	return []domain.HealthMetric{
		{Label: "Age", Value: fmt.Sprintf("%d years", in.Age), Ok: true},
		badge("Social Support", in.SocialSupport, "Yes ❤️", "Limited 💙"),
		badge("Sleep Quality", in.SleepHours >= 7, "Good ✅", "Needs Improvement ⚠️"),
		badge("Study-Life Balance", in.StudyHours <= 6, "Balanced ⚖️", "High Study Load 📚"),
		badge("Screen Time", in.ScreenHours <= 8, "Moderate 📱", "High ⚠️"),
		badge("Exercise Level", in.ExerciseFrequency >= 3, "Active 💪", "Low Activity 🚶‍♂️"),
	}
}

// TipOfDay picks one tip by day of month.
func TipOfDay(tips []string, now time.Time) string {
	if len(tips) == 0 {
		return ""
	}
	return tips[now.Day()%len(tips)]
}

func badge(label string, ok bool, good, bad string) domain.HealthMetric {
	if ok {
		return domain.HealthMetric{Label: label, Value: good, Ok: true}
	}
	return domain.HealthMetric{Label: label, Value: bad, Ok: false}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
