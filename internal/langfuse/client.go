// Package langfuse sends coaching traces and user feedback scores to the
// Langfuse ingestion API. An unconfigured client accepts every call and
// sends nothing.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blaisecz/stress-detector/pkg/logger"
)

const (
	sendTimeout   = 5 * time.Second
	ingestionPath = "/api/public/ingestion"
)

// Client records traces and scores.
type Client interface {
	IsEnabled() bool
	// CreateTrace queues a trace and returns its ID. The ID is known before
	// delivery so callers can hand it to the user for feedback.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	CreateScore(ctx context.Context, in ScoreInput) error
	// Shutdown waits for queued events or until ctx is done.
	Shutdown(ctx context.Context) error
}

// TraceInput describes one coaching run.
type TraceInput struct {
	ID        string
	SessionID string
	Name      string
	Input     any
	Output    any
	Tags      []string
	Metadata  map[string]any
}

// ScoreInput attaches a rating to a trace.
type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

// Config holds the Langfuse credentials.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

func (c Config) complete() bool {
	return c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

type client struct {
	cfg        Config
	httpClient *http.Client
	log        *zap.SugaredLogger
	inflight   sync.WaitGroup
}

// NewClient returns a client. Missing credentials yield a disabled client.
func NewClient(cfg Config) Client {
	log := logger.Named("langfuse")
	if !cfg.complete() {
		log.Infow("langfuse disabled",
			"base_url_set", cfg.BaseURL != "",
			"public_key_set", cfg.PublicKey != "",
			"secret_key_set", cfg.SecretKey != "",
		)
	} else {
		log.Infow("langfuse enabled", "base_url", cfg.BaseURL, "env", cfg.Environment)
	}

	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

func (c *client) IsEnabled() bool {
	return c.cfg.complete()
}

func (c *client) CreateTrace(_ context.Context, in TraceInput) (string, error) {
	if !c.IsEnabled() {
		return "", nil
	}

	traceID := in.ID
	if traceID == "" {
		traceID = uuid.NewString()
	}

	metadata := make(map[string]any, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		metadata[k] = v
	}
	if c.cfg.Environment != "" {
		metadata["environment"] = c.cfg.Environment
	}

	c.enqueue(newEvent("trace-create", traceBody{
		ID:        traceID,
		Name:      in.Name,
		SessionID: in.SessionID,
		Input:     in.Input,
		Output:    in.Output,
		Tags:      in.Tags,
		Metadata:  metadata,
	}))
	return traceID, nil
}

func (c *client) CreateScore(_ context.Context, in ScoreInput) error {
	if !c.IsEnabled() {
		return nil
	}
	if in.TraceID == "" {
		return fmt.Errorf("score %q: empty trace id", in.Name)
	}

	c.enqueue(newEvent("score-create", scoreBody{
		ID:      uuid.NewString(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}))
	return nil
}

func (c *client) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.httpClient.CloseIdleConnections()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// enqueue sends the event in the background. The request context is not
// used so that delivery survives the end of the HTTP request.
func (c *client) enqueue(ev ingestionEvent) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := c.send(ctx, []ingestionEvent{ev}); err != nil {
			c.log.Warnw("langfuse send failed", "type", ev.Type, "error", err)
		}
	}()
}

func (c *client) send(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+ingestionPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("ingestion status %d", resp.StatusCode)
	}
	return nil
}

func newEvent(kind string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.NewString(),
		Type:      kind,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	SessionID string         `json:"sessionId,omitempty"`
	Input     any            `json:"input,omitempty"`
	Output    any            `json:"output,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
