package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaisecz/stress-detector/internal/config"
)

func TestExporterOptions(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.Config
		target string
	}{
		{
			name:   "nothing configured",
			cfg:    config.Config{},
			target: "",
		},
		{
			name:   "plain otlp endpoint",
			cfg:    config.Config{OTLPEndpoint: "http://collector:4318/v1/traces"},
			target: "otlp",
		},
		{
			name: "langfuse wins over otlp",
			cfg: config.Config{
				OTLPEndpoint:      "http://collector:4318/v1/traces",
				LangfuseBaseURL:   "http://langfuse:3000/",
				LangfusePublicKey: "pk",
				LangfuseSecretKey: "sk",
			},
			target: "langfuse",
		},
		{
			name:   "partial langfuse falls back to nothing",
			cfg:    config.Config{LangfuseBaseURL: "http://langfuse:3000"},
			target: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, target := exporterOptions(&tt.cfg)
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.target == "", opts == nil)
		})
	}
}

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.Config{}, "stress-detector", "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
