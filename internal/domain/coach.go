package domain

// CoachNarrative is the structured output returned by the LLM coach.
// @Description LLM-generated, non-medical wellbeing narrative.
type CoachNarrative struct {
	// Short summary of the student's situation (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep is solid but study load and screen time are pushing stress up."`
	// Habits worth attention (2-4 items)
	FocusAreas []string `json:"focus_areas" example:"[\"Screen time is 2 hours above the comfortable range\"]"`
	// Concrete next steps (3-5 items)
	Actions []string `json:"actions" example:"[\"Put your phone away an hour before bed\"]"`
}

// CoachContext is the payload sent to the LLM.
type CoachContext struct {
	Input         LifestyleInput `json:"input"`
	StressLevel   StressLevel    `json:"stress_level"`
	Scores        WellnessScores `json:"scores"`
	HealthMetrics []HealthMetric `json:"health_metrics"`
}

// CoachResponse is the response for the coach endpoint.
// @Description Assessment together with the LLM narrative.
type CoachResponse struct {
	Assessment Assessment     `json:"assessment"`
	Coaching   CoachNarrative `json:"coaching"`
	// Trace ID for feedback (only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// FeedbackRequest rates a coach response.
// @Description Request body for submitting feedback on a coach response.
type FeedbackRequest struct {
	// Trace ID from the coach response
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" validate:"min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"The tips were helpful!"`
}
