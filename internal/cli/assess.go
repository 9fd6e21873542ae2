package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/blaisecz/stress-detector/internal/api/validation"
	"github.com/blaisecz/stress-detector/internal/classifier"
	"github.com/blaisecz/stress-detector/internal/domain"
	"github.com/blaisecz/stress-detector/internal/recommendation"
	"github.com/blaisecz/stress-detector/internal/service"
)

// openModel is swapped in tests.
var openModel = func(cfg classifier.ONNXConfig) (classifier.Model, classifier.ModelInfo, error) {
	m, err := classifier.LoadONNXModel(cfg)
	if err != nil {
		return nil, classifier.ModelInfo{}, err
	}
	return m, m.Info(), nil
}

type assessOptions struct {
	input      domain.LifestyleInput
	modelPath  string
	libPath    string
	inputName  string
	outputName string
	asJSON     bool
}

func newAssessCmd() *cobra.Command {
	opts := &assessOptions{}
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Predict the stress level for a set of answers",
		Example: "  stresscheck assess --age 21 --sleep 5 --study 8 --screen 10 --exercise 0 --social-support=false\n" +
			"  stresscheck assess --model ./student_stress_model.onnx --json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(cmd, opts)
		},
	}

	lifestyleFlags(cmd, &opts.input)
	f := cmd.Flags()
	f.StringVar(&opts.modelPath, "model", "student_stress_model.onnx", "path to the exported ONNX model")
	f.StringVar(&opts.libPath, "onnx-lib", "", "path to the onnxruntime shared library")
	f.StringVar(&opts.inputName, "input-name", classifier.DefaultInputName, "model input tensor name")
	f.StringVar(&opts.outputName, "output-name", classifier.DefaultOutputName, "model label output tensor name")
	f.BoolVar(&opts.asJSON, "json", false, "print the assessment as JSON")
	return cmd
}

func runAssess(cmd *cobra.Command, opts *assessOptions) error {
	if err := validateInput(opts.input); err != nil {
		return err
	}

	model, info, err := openModel(classifier.ONNXConfig{
		ModelPath:   opts.modelPath,
		LibraryPath: opts.libPath,
		InputName:   opts.inputName,
		OutputName:  opts.outputName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrModelNotFound) {
			return fmt.Errorf("%w (pass --model with the exported classifier)", err)
		}
		return fmt.Errorf("load model: %w", err)
	}
	cls := classifier.New(model, classifier.DefaultLabels())
	defer cls.Close()

	catalog, err := recommendation.Default()
	if err != nil {
		return err
	}

	svc := service.NewAssessmentService(cls, catalog, nopObserver{})
	a, err := svc.Assess(cmd.Context(), opts.input)
	if err != nil {
		return fmt.Errorf("assess: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	fmt.Fprintln(out, renderLevel(a.StressLevel))
	fmt.Fprintf(out, "Stress gauge: %d/100\n\n", a.Gauge.Value)
	fmt.Fprintln(out, renderRecommendation(a.Recommendation))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderRadar(a.Radar))
	fmt.Fprintln(out, renderMetrics(a.HealthMetrics))
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("model %s (%s)", info.Path, humanize.Bytes(uint64(info.Size)))))
	return nil
}

func validateInput(in domain.LifestyleInput) error {
	errs := validation.Validate(in)
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fmt.Sprintf("%s %s", flagName(e.Field), e.Message))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

// flagName maps a JSON field name to its command line flag.
func flagName(field string) string {
	switch field {
	case "sleep_hours":
		return "--sleep"
	case "study_hours":
		return "--study"
	case "screen_hours":
		return "--screen"
	case "exercise_frequency":
		return "--exercise"
	case "social_support":
		return "--social-support"
	}
	return "--" + field
}

type nopObserver struct{}

func (nopObserver) ObservePrediction(domain.StressLevel, time.Duration) {}
func (nopObserver) ObservePredictionError(string)                       {}
