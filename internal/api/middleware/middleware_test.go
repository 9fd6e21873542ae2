package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/blaisecz/stress-detector/internal/metrics"
	"github.com/blaisecz/stress-detector/pkg/logger"
	"github.com/blaisecz/stress-detector/pkg/problem"
)

type fakeTracker struct {
	panics []any
	tags   map[string]string
}

func (f *fakeTracker) CaptureError(context.Context, error, map[string]string) {}

func (f *fakeTracker) CapturePanic(_ context.Context, recovered any, tags map[string]string) {
	f.panics = append(f.panics, recovered)
	f.tags = tags
}

func (f *fakeTracker) Flush(time.Duration) bool { return true }

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Get()
	logger.Set(zap.New(core).Sugar())
	t.Cleanup(func() { logger.Set(prev) })
	return logs
}

func TestRecovery(t *testing.T) {
	logs := observe(t)
	tracker := &fakeTracker{}

	h := Recovery(tracker)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/assessments", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != problem.ContentType {
		t.Errorf("expected problem content type, got %s", rec.Header().Get("Content-Type"))
	}
	if len(tracker.panics) != 1 || tracker.panics[0] != "boom" {
		t.Errorf("expected panic to be tracked, got %v", tracker.panics)
	}
	if tracker.tags["path"] != "/v1/assessments" {
		t.Errorf("expected path tag, got %v", tracker.tags)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected panic to be logged")
	}
}

func TestRecovery_NilTracker(t *testing.T) {
	observe(t)
	h := Recovery(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{"ok", http.StatusOK, zapcore.InfoLevel},
		{"client error", http.StatusUnprocessableEntity, zapcore.WarnLevel},
		{"server error", http.StatusServiceUnavailable, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observe(t)
			h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("{}"))
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 log entry, got %d", len(entries))
			}
			if entries[0].Level != tt.level {
				t.Errorf("expected level %s, got %s", tt.level, entries[0].Level)
			}
			ctx := entries[0].ContextMap()
			if ctx["status"] != int64(tt.status) || ctx["bytes"] != int64(2) || ctx["path"] != "/health" {
				t.Errorf("unexpected fields %v", ctx)
			}
		})
	}
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/v1/recommendations/{level}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, level := range []string{"High", "Extreme"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/recommendations/"+level, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/v1/recommendations/{level}", "404"))
	if got != 2 {
		t.Errorf("expected 2 requests by pattern, got %v", got)
	}
	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")); got != 1 {
		t.Errorf("expected unmatched request, got %v", got)
	}
}

func TestRateLimit(t *testing.T) {
	m := metrics.New()
	h := RateLimit(0.001, 2, m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		h.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/v1/assessments", nil))
		codes = append(codes, last.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, codes)
		}
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
	if got := testutil.ToFloat64(m.RateLimited); got != 1 {
		t.Errorf("expected 1 rejection, got %v", got)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(0, 0, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
}

func TestTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var inner trace.SpanContext
	h := Tracing(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanContextFromContext(r.Context())
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/assessments?x=1", nil))

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "POST /v1/assessments" {
		t.Errorf("unexpected span name %q", span.Name())
	}
	if !inner.IsValid() || inner.TraceID() != span.SpanContext().TraceID() {
		t.Error("expected span context to be propagated to the handler")
	}

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["http.status_code"] != "503" {
		t.Errorf("expected status attribute 503, got %q", attrs["http.status_code"])
	}
	if attrs["langfuse.observation.input"] == "" || attrs["langfuse.observation.output"] == "" {
		t.Errorf("expected langfuse observation attributes, got %v", attrs)
	}
}

func TestTracing_NamesSpanByRoutePattern(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	r := chi.NewRouter()
	r.Use(Tracing)
	r.Get("/v1/recommendations/{level}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, level := range []string{"High", "low", "Medium"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/recommendations/"+level, nil))
	}

	spans := sr.Ended()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	for _, span := range spans {
		if span.Name() != "GET /v1/recommendations/{level}" {
			t.Errorf("unexpected span name %q", span.Name())
		}
		var route string
		for _, kv := range span.Attributes() {
			if kv.Key == "http.route" {
				route = kv.Value.AsString()
			}
		}
		if route != "/v1/recommendations/{level}" {
			t.Errorf("expected http.route attribute, got %q", route)
		}
	}
}
