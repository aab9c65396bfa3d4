package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Fatal: no computation proceeds without a loaded table
	ErrDataFileNotFound = errors.New("data file not found")
	ErrEmptyTable       = errors.New("table has no data rows")

	// Soft failures: the affected visualization is skipped, siblings continue
	ErrColumnNotFound   = errors.New("column not found")
	ErrMetricUnknown    = errors.New("unknown metric")
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, column)
}

func NewMetricError(metric string) error {
	return fmt.Errorf("%w: %s", ErrMetricUnknown, metric)
}

// Error checking helpers
func IsFatal(err error) bool {
	return errors.Is(err, ErrDataFileNotFound) || errors.Is(err, ErrEmptyTable)
}

func IsSkippable(err error) bool {
	return errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrMetricUnknown) ||
		errors.Is(err, ErrInsufficientData)
}
