package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/blaisecz/stress-detector/internal/config"
	"github.com/blaisecz/stress-detector/pkg/logger"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// InitTracer installs the global tracer provider. Langfuse credentials take
// precedence over a plain OTLP endpoint. With neither, the default no-op
// provider stays in place.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName, version string) (ShutdownFunc, error) {
	log := logger.Named("telemetry")

	opts, target := exporterOptions(cfg)
	if opts == nil {
		log.Info("tracing disabled: no exporter configured")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version),
			attribute.String("deployment.environment", cfg.Env),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Infow("tracing enabled", "target", target)
	return tp.Shutdown, nil
}

func exporterOptions(cfg *config.Config) ([]otlptracehttp.Option, string) {
	if cfg.LangfuseEnabled() {
		creds := cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey
		auth := base64.StdEncoding.EncodeToString([]byte(creds))
		endpoint := strings.TrimSuffix(cfg.LangfuseBaseURL, "/") + "/api/public/otel/v1/traces"

		return []otlptracehttp.Option{
			otlptracehttp.WithEndpointURL(endpoint),
			otlptracehttp.WithHeaders(map[string]string{
				"Authorization": "Basic " + auth,
			}),
		}, "langfuse"
	}

	if cfg.OTLPEndpoint != "" {
		return []otlptracehttp.Option{
			otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint),
		}, "otlp"
	}
	return nil, ""
}
