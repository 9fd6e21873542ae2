package classifier

import (
	"fmt"
	"sort"

	"github.com/blaisecz/stress-detector/internal/domain"
)

// Labels decodes model output indices into stress levels. Indices follow
// a label encoder, which numbers the class names in sorted order.
type Labels struct {
	classes []domain.StressLevel
}

// NewLabels builds a decoder fitted on the given class names.
func NewLabels(classes ...domain.StressLevel) *Labels {
	sorted := make([]domain.StressLevel, len(classes))
	copy(sorted, classes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &Labels{classes: sorted}
}

// DefaultLabels is the encoder the stress model was trained with:
// 0 High, 1 Low, 2 Medium.
func DefaultLabels() *Labels {
	return NewLabels(domain.StressHigh, domain.StressMedium, domain.StressLow)
}

// Decode maps a class index to its level.
func (l *Labels) Decode(index int64) (domain.StressLevel, error) {
	if index < 0 || index >= int64(len(l.classes)) {
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownLabel, index)
	}
	return l.classes[index], nil
}

// Classes returns the classes in index order.
func (l *Labels) Classes() []domain.StressLevel {
	out := make([]domain.StressLevel, len(l.classes))
	copy(out, l.classes)
	return out
}
