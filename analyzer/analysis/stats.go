package analysis

import (
	"math"
	"sort"

	"github.com/perf-bench/analyzer/types"
)

// CalculateMetrics computes descriptive statistics for a list of values.
// Returns ErrEmptyInput for empty input.
func CalculateMetrics(values []float64) (types.PerformanceMetrics, error) {
	if len(values) == 0 {
		return types.PerformanceMetrics{}, ErrEmptyInput
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	meanVal := mean(values)
	stdDev := sampleStdDev(values, meanVal)

	cv := 0.0
	if meanVal != 0 {
		cv = stdDev / meanVal
	}

	return types.PerformanceMetrics{
		Mean:     meanVal,
		Median:   median(sorted),
		StdDev:   stdDev,
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		P25:      nearestRank(sorted, 0.25),
		P75:      nearestRank(sorted, 0.75),
		P95:      nearestRank(sorted, 0.95),
		CoeffVar: cv,
	}, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median expects ascending-sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStdDev uses the n-1 denominator and is 0 when n <= 1.
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	var sum float64
	for _, v := range values {
		diff := v - mean
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// nearestRank indexes the ascending-sorted values at floor(n*p), without
// interpolation. Callers guarantee non-empty input; the bounds check guards
// the n=0 case anyway.
func nearestRank(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(float64(n) * p)
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}
