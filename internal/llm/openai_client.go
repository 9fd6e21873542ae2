package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/blaisecz/stress-detector/internal/domain"
)

var (
	// ErrOpenAIUnavailable means no API key was configured.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest wraps transport and API failures.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse means the reply was not the expected JSON.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultModel is used when no coach model is configured.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You are a friendly, non-medical wellbeing coach for university students.

You receive one student's self-reported habits, the stress category predicted for them
("High", "Medium" or "Low") and five lifestyle scores between 0 and 100
(sleep, study balance, screen time, exercise, social support; higher is healthier).

Your goals:
- Explain in plain language which habits most likely contribute to the predicted stress level.
- Point out what the student is already doing well.
- Suggest small, realistic changes for the next week.

Rules:
- Do NOT diagnose, and do NOT mention disorders, medication or therapy types.
- Base every statement on the provided numbers only.
- If the stress level is High, include one action suggesting they talk to someone they trust
  or their campus support services.
- Be warm, concise and concrete.

Respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences about the student's current balance.",
  "focus_areas": ["2-4 habits that deserve attention, each tied to a number from the input"],
  "actions": ["3-5 concrete, small next steps"]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing the student.

- "input" holds the raw answers (hours per day, sessions per week, age in years).
- "stress_level" is the model's prediction.
- "scores" are the 0-100 lifestyle scores.
- "health_metrics" are the badges already shown on the page.

JSON:

%s

Respond in the required JSON format.`

// CoachLLM produces a wellbeing narrative for an assessed student.
type CoachLLM interface {
	GenerateCoaching(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachNarrative, error)
}

// OpenAIClient implements CoachLLM with chat completions.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient returns nil when apiKey is empty. Extra options are
// appended after the key, so tests can point the client at a local server.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = DefaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Model returns the configured chat model.
func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// GenerateCoaching asks the model for a narrative grounded in coachCtx.
func (c *OpenAIClient) GenerateCoaching(ctx context.Context, coachCtx *domain.CoachContext) (*domain.CoachNarrative, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	payload, err := json.MarshalIndent(coachCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, payload)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	return parseNarrative(resp.Choices[0].Message.Content)
}

func parseNarrative(content string) (*domain.CoachNarrative, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out domain.CoachNarrative
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	return &out, nil
}
