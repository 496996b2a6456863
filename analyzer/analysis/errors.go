package analysis

import "errors"

var (
	// ErrEmptyInput is returned when statistics are requested over zero
	// values. This is a programming-contract violation, not a data-quality
	// issue, and always propagates to the caller.
	ErrEmptyInput = errors.New("cannot calculate metrics for empty input")

	// ErrMetricMismatch is returned when comparing two results of differing
	// metric types. Comparisons across incompatible units are a caller bug.
	ErrMetricMismatch = errors.New("cannot compare results with different metric types")
)
