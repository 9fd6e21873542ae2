package domain

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrModelNotFound    = errors.New("model file not found")
	ErrModelUnavailable = errors.New("stress model unavailable")
	ErrUnknownLabel     = errors.New("unknown label index")
	ErrUnknownLevel     = errors.New("unknown stress level")
	ErrCoachUnavailable = errors.New("coach unavailable")
)
