package analysis

import (
	"strings"

	"github.com/perf-bench/analyzer/types"
)

// timingUnits marks metric types where lower is better. The match is a plain
// substring check on the lowercased type string; the bare "s" entry is part
// of the established classification and must stay.
var timingUnits = []string{"ms", "seconds", "s", "time"}

func isTimingMetric(metricType string) bool {
	lower := strings.ToLower(metricType)
	for _, tm := range timingUnits {
		if strings.Contains(lower, tm) {
			return true
		}
	}
	return false
}

// CompareResults compares a baseline result against a later comparison
// result of the same metric type. Returns ErrMetricMismatch when the types
// differ.
//
// Timing metrics improve when the comparison is lower; throughput metrics
// improve when it is higher. Regression requires crossing a 5% tolerance
// band, so a result can be neither improvement nor regression.
func CompareResults(baseline, comparison *types.BenchmarkResult) (types.ComparisonResult, error) {
	if baseline.MetricType != comparison.MetricType {
		return types.ComparisonResult{}, ErrMetricMismatch
	}

	absoluteDiff := comparison.Value - baseline.Value
	percentChange := 0.0
	if baseline.Value != 0 {
		percentChange = absoluteDiff / baseline.Value * 100
	}

	var speedup float64
	var isImprovement, isRegression bool

	if isTimingMetric(baseline.MetricType) {
		if comparison.Value != 0 {
			speedup = baseline.Value / comparison.Value
		}
		isImprovement = comparison.Value < baseline.Value
		isRegression = comparison.Value > baseline.Value*1.05
	} else {
		if baseline.Value != 0 {
			speedup = comparison.Value / baseline.Value
		}
		isImprovement = comparison.Value > baseline.Value
		isRegression = comparison.Value < baseline.Value*0.95
	}

	return types.ComparisonResult{
		BaselineName:    baseline.Name,
		ComparisonName:  comparison.Name,
		MetricType:      baseline.MetricType,
		BaselineValue:   baseline.Value,
		ComparisonValue: comparison.Value,
		AbsoluteDiff:    absoluteDiff,
		PercentChange:   percentChange,
		Speedup:         speedup,
		IsImprovement:   isImprovement,
		IsRegression:    isRegression,
	}, nil
}
