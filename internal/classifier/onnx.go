package classifier

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	onnxruntime "github.com/yalue/onnxruntime_go"

	"github.com/blaisecz/stress-detector/internal/domain"
)

// Tensor names produced by skl2onnx for a scikit-learn classifier.
const (
	DefaultInputName  = "float_input"
	DefaultOutputName = "output_label"
)

// ONNXConfig locates the exported model and the runtime library.
type ONNXConfig struct {
	ModelPath string
	// LibraryPath points at the onnxruntime shared library. Empty uses the
	// platform default lookup.
	LibraryPath string
	InputName   string
	OutputName  string
}

// ModelInfo describes a model file found on disk.
type ModelInfo struct {
	Path string
	Size int64
}

// ONNXModel runs the stress model through ONNX Runtime.
type ONNXModel struct {
	mu         sync.RWMutex
	session    *onnxruntime.DynamicAdvancedSession
	inputName  string
	outputName string
	info       ModelInfo
}

var envMu sync.Mutex

// StatModel checks that the model file exists. A missing file is reported
// as domain.ErrModelNotFound.
func StatModel(path string) (ModelInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ModelInfo{}, fmt.Errorf("%w: %s", domain.ErrModelNotFound, path)
		}
		return ModelInfo{}, fmt.Errorf("stat model: %w", err)
	}
	if st.IsDir() {
		return ModelInfo{}, fmt.Errorf("%w: %s is a directory", domain.ErrModelNotFound, path)
	}
	return ModelInfo{Path: path, Size: st.Size()}, nil
}

// LoadONNXModel loads the exported classifier from disk.
func LoadONNXModel(cfg ONNXConfig) (*ONNXModel, error) {
	info, err := StatModel(cfg.ModelPath)
	if err != nil {
		return nil, err
	}

	if cfg.InputName == "" {
		cfg.InputName = DefaultInputName
	}
	if cfg.OutputName == "" {
		cfg.OutputName = DefaultOutputName
	}

	if err := initEnvironment(cfg.LibraryPath); err != nil {
		return nil, err
	}

	options, err := onnxruntime.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer options.Destroy()

	session, err := onnxruntime.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName}, options)
	if err != nil {
		return nil, fmt.Errorf("load onnx model %s: %w", cfg.ModelPath, err)
	}

	return &ONNXModel{
		session:    session,
		inputName:  cfg.InputName,
		outputName: cfg.OutputName,
		info:       info,
	}, nil
}

func initEnvironment(libraryPath string) error {
	envMu.Lock()
	defer envMu.Unlock()

	if onnxruntime.IsInitialized() {
		return nil
	}
	if libraryPath != "" {
		onnxruntime.SetSharedLibraryPath(libraryPath)
	}
	if err := onnxruntime.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initialize onnx runtime: %w", err)
	}
	return nil
}

// Info returns the file the model was loaded from.
func (m *ONNXModel) Info() ModelInfo {
	return m.info
}

// Predict runs a single-row inference and returns the label index.
func (m *ONNXModel) Predict(ctx context.Context, features []float32) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(features) != domain.FeatureCount {
		return 0, fmt.Errorf("%w: expected %d features, got %d", domain.ErrInvalidInput, domain.FeatureCount, len(features))
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return 0, domain.ErrModelUnavailable
	}

	input, err := onnxruntime.NewTensor(onnxruntime.NewShape(1, int64(len(features))), features)
	if err != nil {
		return 0, fmt.Errorf("create input tensor: %w", err)
	}
	defer input.Destroy()

	labels := make([]int64, 1)
	output, err := onnxruntime.NewTensor(onnxruntime.NewShape(1), labels)
	if err != nil {
		return 0, fmt.Errorf("create output tensor: %w", err)
	}
	defer output.Destroy()

	if err := m.session.Run([]onnxruntime.Value{input}, []onnxruntime.Value{output}); err != nil {
		return 0, fmt.Errorf("run inference: %w", err)
	}

	return output.GetData()[0], nil
}

// Close destroys the session. The runtime environment stays initialized
// for the life of the process.
func (m *ONNXModel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	err := m.session.Destroy()
	m.session = nil
	return err
}
