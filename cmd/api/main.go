// Student Stress Detector API
//
// Single-page stress check form plus a JSON API over the same model.
//
//	@title			Student Stress Detector API
//	@version		1.0
//	@description	Predict a student's stress level from lifestyle answers and get recommendations.
//
//	@BasePath	/v1
//
//	@tag.name			assessments
//	@tag.description	Stress prediction endpoints
//
//	@tag.name			recommendations
//	@tag.description	Static advice and daily tips
//
//	@tag.name			coaching
//	@tag.description	LLM coaching and feedback
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/blaisecz/stress-detector/internal/api"
	"github.com/blaisecz/stress-detector/internal/api/handler"
	"github.com/blaisecz/stress-detector/internal/classifier"
	"github.com/blaisecz/stress-detector/internal/config"
	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/langfuse"
	"github.com/blaisecz/stress-detector/internal/llm"
	"github.com/blaisecz/stress-detector/internal/metrics"
	"github.com/blaisecz/stress-detector/internal/recommendation"
	"github.com/blaisecz/stress-detector/internal/service"
	"github.com/blaisecz/stress-detector/internal/telemetry"
	"github.com/blaisecz/stress-detector/internal/tracking"
	"github.com/blaisecz/stress-detector/internal/web"
	"github.com/blaisecz/stress-detector/pkg/logger"
)

const serviceName = "stress-detector"

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stress-detector: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel, cfg.Env); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Named("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker, err := tracking.New(cfg.SentryDSN, cfg.Env, version)
	if err != nil {
		log.Warnw("error tracking disabled", "error", err)
		tracker = tracking.Noop{}
	}
	defer tracker.Flush(2 * time.Second)

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName, version)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}

	m := metrics.New()

	// A missing model is not fatal: the form and the model-free endpoints keep working.
	model, err := loadModel(cfg.Model, log)
	if err != nil && !errors.Is(err, domain.ErrModelNotFound) {
		return err
	}
	stressClassifier := classifier.New(model, classifier.DefaultLabels())
	defer stressClassifier.Close()
	m.SetModelLoaded(stressClassifier.Ready())

	catalog, err := recommendation.Default()
	if err != nil {
		return err
	}

	// Initialize OpenAI client (may be nil if not configured)
	var coachLLM llm.CoachLLM
	if openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel); openaiClient != nil {
		coachLLM = openaiClient
	} else {
		log.Warn("OpenAI API key not configured, coach endpoint will be unavailable")
	}

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize services
	assessmentService := service.NewAssessmentService(stressClassifier, catalog, m)
	coachService := service.NewCoachService(assessmentService, coachLLM, langfuseClient, cfg.OpenAICoachModel)

	// Initialize handlers
	webHandler, err := web.New(assessmentService, tracker)
	if err != nil {
		return err
	}
	router := api.NewRouter(
		handler.NewAssessmentHandler(assessmentService, tracker),
		handler.NewCoachHandler(coachService, tracker),
		webHandler,
		m,
		tracker,
		cfg.RateLimit,
		assessmentService.ModelReady,
		version,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting server", "addr", srv.Addr, "env", cfg.Env, "model_loaded", stressClassifier.Ready())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown", "error", err)
	}
	if err := langfuseClient.Shutdown(shutdownCtx); err != nil {
		log.Warnw("langfuse shutdown", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warnw("tracer shutdown", "error", err)
	}
	return nil
}

func loadModel(cfg config.ModelConfig, log *zap.SugaredLogger) (classifier.Model, error) {
	model, err := classifier.LoadONNXModel(classifier.ONNXConfig{
		ModelPath:   cfg.Path,
		LibraryPath: cfg.RuntimeLib,
		InputName:   cfg.InputName,
		OutputName:  cfg.OutputName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrModelNotFound) {
			log.Warnw("model file not found, predictions disabled", "path", cfg.Path)
			return nil, err
		}
		return nil, fmt.Errorf("load model: %w", err)
	}

	info := model.Info()
	log.Infow("model loaded", "path", info.Path, "size", humanize.Bytes(uint64(info.Size)))
	return model, nil
}
