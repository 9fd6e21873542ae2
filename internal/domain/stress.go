package domain

import (
	"fmt"
	"strings"
)

// StressLevel is the stress category predicted for a student.
// @Description Predicted stress category.
type StressLevel string

const (
	StressHigh   StressLevel = "High"
	StressMedium StressLevel = "Medium"
	StressLow    StressLevel = "Low"
)

// StressLevels lists every level, most severe first.
var StressLevels = []StressLevel{StressHigh, StressMedium, StressLow}

// ParseStressLevel accepts the canonical names case-insensitively.
func ParseStressLevel(s string) (StressLevel, error) {
	for _, level := range StressLevels {
		if strings.EqualFold(string(level), strings.TrimSpace(s)) {
			return level, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l StressLevel) Valid() bool {
	switch l {
	case StressHigh, StressMedium, StressLow:
		return true
	}
	return false
}
