package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/blaisecz/stress-detector/internal/api/validation"
	"github.com/blaisecz/stress-detector/internal/domain"
)

// slider describes one numeric form control.
type slider struct {
	Name  string
	Label string
	Help  string
	Min   int
	Max   int
	Value int
	Error string
}

func sliders(in domain.LifestyleInput, errs map[string]string) []slider {
	return []slider{
		{Name: "sleep_hours", Label: "💤 Sleep Hours (per day)", Help: "Average hours of sleep you get per night", Min: 1, Max: 10, Value: in.SleepHours, Error: errs["sleep_hours"]},
		{Name: "study_hours", Label: "📚 Study Hours (per day)", Help: "Hours spent studying or doing academic work daily", Min: 1, Max: 10, Value: in.StudyHours, Error: errs["study_hours"]},
		{Name: "screen_hours", Label: "📱 Screen Time (hours per day)", Help: "Total time spent on phones, computers, TV, etc.", Min: 1, Max: 12, Value: in.ScreenHours, Error: errs["screen_hours"]},
		{Name: "exercise_frequency", Label: "🏃‍♂️ Exercise (times per week)", Help: "Number of times you engage in physical exercise per week", Min: 0, Max: 7, Value: in.ExerciseFrequency, Error: errs["exercise_frequency"]},
	}
}

// parseForm reads the submitted answers. Missing fields keep their
// defaults; malformed numbers and out-of-range values are reported by
// field name.
func parseForm(r *http.Request) (domain.LifestyleInput, map[string]string) {
	in := domain.DefaultLifestyleInput()
	errs := map[string]string{}
	if err := r.ParseForm(); err != nil {
		errs["form"] = "could not read the submitted form"
		return in, errs
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"age", &in.Age},
		{"sleep_hours", &in.SleepHours},
		{"study_hours", &in.StudyHours},
		{"screen_hours", &in.ScreenHours},
		{"exercise_frequency", &in.ExerciseFrequency},
	}
	for _, f := range ints {
		raw := strings.TrimSpace(r.PostForm.Get(f.name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs[f.name] = "must be a whole number"
			continue
		}
		*f.dst = v
	}

	switch strings.ToLower(strings.TrimSpace(r.PostForm.Get("social_support"))) {
	case "", "yes":
		in.SocialSupport = true
	case "no":
		in.SocialSupport = false
	default:
		errs["social_support"] = "must be Yes or No"
	}

	for field, msg := range validation.ByField(validation.Validate(in)) {
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	return in, errs
}
