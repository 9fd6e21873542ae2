package domain

// FeatureCount is the width of the model input vector.
const FeatureCount = 6

// LifestyleInput is the self-reported data a student submits.
// @Description Daily habits and lifestyle information.
type LifestyleInput struct {
	// Age in years (17-25)
	Age int `json:"age" validate:"min=17,max=25" example:"20" minimum:"17" maximum:"25"`
	// Average hours of sleep per night (1-10)
	SleepHours int `json:"sleep_hours" validate:"min=1,max=10" example:"7" minimum:"1" maximum:"10"`
	// Hours spent studying per day (1-10)
	StudyHours int `json:"study_hours" validate:"min=1,max=10" example:"4" minimum:"1" maximum:"10"`
	// Total screen time per day in hours (1-12)
	ScreenHours int `json:"screen_hours" validate:"min=1,max=12" example:"6" minimum:"1" maximum:"12"`
	// Exercise sessions per week (0-7)
	ExerciseFrequency int `json:"exercise_frequency" validate:"min=0,max=7" example:"2" minimum:"0" maximum:"7"`
	// Whether the student has reliable social support
	SocialSupport bool `json:"social_support" example:"true"`
}

// DefaultLifestyleInput mirrors the initial state of the form.
func DefaultLifestyleInput() LifestyleInput {
	return LifestyleInput{
		Age:               20,
		SleepHours:        7,
		StudyHours:        4,
		ScreenHours:       6,
		ExerciseFrequency: 2,
		SocialSupport:     true,
	}
}

// SocialSupportValue encodes social support the way the model was trained.
func (in LifestyleInput) SocialSupportValue() int {
	if in.SocialSupport {
		return 1
	}
	return 0
}

// Features returns the model feature vector:
// age, sleep, study, screen, exercise, social support.
func (in LifestyleInput) Features() []float32 {
	return []float32{
		float32(in.Age),
		float32(in.SleepHours),
		float32(in.StudyHours),
		float32(in.ScreenHours),
		float32(in.ExerciseFrequency),
		float32(in.SocialSupportValue()),
	}
}
