package validation

import (
	"strings"
	"testing"

	"github.com/blaisecz/stress-detector/internal/domain"
)

func TestValidate_LifestyleInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.LifestyleInput)
		want   map[string]string
	}{
		{
			name:   "defaults are valid",
			mutate: func(in *domain.LifestyleInput) {},
			want:   map[string]string{},
		},
		{
			name: "range edges are valid",
			mutate: func(in *domain.LifestyleInput) {
				in.Age, in.SleepHours, in.StudyHours, in.ScreenHours, in.ExerciseFrequency = 25, 1, 10, 12, 0
			},
			want: map[string]string{},
		},
		{
			name: "below range",
			mutate: func(in *domain.LifestyleInput) {
				in.Age = 16
				in.SleepHours = 0
			},
			want: map[string]string{
				"age":         "must be at least 17",
				"sleep_hours": "must be at least 1",
			},
		},
		{
			name: "above range",
			mutate: func(in *domain.LifestyleInput) {
				in.ScreenHours = 13
				in.ExerciseFrequency = 8
			},
			want: map[string]string{
				"screen_hours":       "must be at most 12",
				"exercise_frequency": "must be at most 7",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.DefaultLifestyleInput()
			tt.mutate(&in)

			got := ByField(Validate(in))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d errors, got %v", len(tt.want), got)
			}
			for field, msg := range tt.want {
				if got[field] != msg {
					t.Errorf("%s: expected %q, got %q", field, msg, got[field])
				}
			}
		})
	}
}

func TestValidate_FeedbackRequest(t *testing.T) {
	req := domain.FeedbackRequest{Score: 6, Comment: strings.Repeat("x", 1001)}

	got := ByField(Validate(req))
	if got["trace_id"] != "is required" {
		t.Errorf("trace_id: got %q", got["trace_id"])
	}
	if got["score"] != "must be at most 5" {
		t.Errorf("score: got %q", got["score"])
	}
	if got["comment"] != "must be at most 1000 characters" {
		t.Errorf("comment: got %q", got["comment"])
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("ExerciseFrequency"); got != "exercise_frequency" {
		t.Errorf("got %q", got)
	}
}
