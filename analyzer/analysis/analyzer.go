package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/perf-bench/analyzer/types"
)

// PerformanceAnalyzer turns benchmark suites into analysis reports and
// retains run-over-run history across calls. One analyzer owns one history;
// it is not safe for concurrent Analyze calls on the same instance, so
// callers serialize access (the API server wraps Analyze in a mutex).
type PerformanceAnalyzer struct {
	history    *History
	thresholds Thresholds
	env        *types.EnvironmentInfo
	log        logrus.FieldLogger
}

// NewPerformanceAnalyzer creates an analyzer over a caller-owned history.
func NewPerformanceAnalyzer(history *History, log logrus.FieldLogger) *PerformanceAnalyzer {
	return &PerformanceAnalyzer{
		history:    history,
		thresholds: DefaultThresholds(),
		log:        log.WithField("component", "performance-analyzer"),
	}
}

// SetThresholds overrides the heuristic thresholds.
func (pa *PerformanceAnalyzer) SetThresholds(t Thresholds) {
	pa.thresholds = t
}

// SetEnvironment attaches a host snapshot to subsequent reports. It also
// feeds the limited-host recommendation.
func (pa *PerformanceAnalyzer) SetEnvironment(env *types.EnvironmentInfo) {
	pa.env = env
}

// History exposes the analyzer's run history.
func (pa *PerformanceAnalyzer) History() *History {
	return pa.history
}

// GenerateRecommendations derives actionable optimization advice from a
// suite and its detected bottlenecks.
func (pa *PerformanceAnalyzer) GenerateRecommendations(suite *types.BenchmarkSuite, bottlenecks []types.Bottleneck) []string {
	var recommendations []string

	maxTFLOPS, found := 0.0, false
	for _, r := range suite.Results {
		if strings.Contains(r.Name, "CUDA") && r.MetricType == "TFLOPS" {
			if !found || r.Value > maxTFLOPS {
				maxTFLOPS = r.Value
				found = true
			}
		}
	}
	if found && maxTFLOPS < pa.thresholds.MinTFLOPS {
		recommendations = append(recommendations,
			"Performance is below expected levels for modern GPUs. "+
				"Consider profiling with nsight compute to identify specific bottlenecks.")
	}

	for _, b := range bottlenecks {
		if b.Severity == types.SeverityCritical {
			recommendations = append(recommendations,
				fmt.Sprintf("Critical issue: %s. This should be the top optimization priority.", b.Description))
			break
		}
	}

	maxMatrixSize := 0.0
	for _, r := range suite.Results {
		if size, ok := r.Metadata["matrix_size"].Number(); ok && size > maxMatrixSize {
			maxMatrixSize = size
		}
	}
	if maxMatrixSize >= pa.thresholds.LargeMatrixSize {
		recommendations = append(recommendations,
			"Large matrix sizes detected. Consider tiling strategies "+
				"or hierarchical algorithms for better cache utilization.")
	}

	if pa.env != nil && pa.env.CPUCores > 0 && pa.env.CPUCores < pa.thresholds.MinCPUCores {
		recommendations = append(recommendations,
			"System: Limited CPU cores detected. Consider running benchmarks on a more powerful machine for accurate results.")
	}

	return recommendations
}

// Analyze performs the complete analysis of a suite: per-metric-type
// statistics, bottleneck detection, recommendations, and comparison against
// the immediately previous run. The suite is appended to history as a side
// effect; every call grows history by one entry, even on identical data.
func (pa *PerformanceAnalyzer) Analyze(suite *types.BenchmarkSuite) *types.AnalysisReport {
	pa.log.WithFields(logrus.Fields{
		"suite":   suite.Name,
		"results": len(suite.Results),
	}).Info("Analyzing benchmark suite")

	metricsByType := make(map[string]types.PerformanceMetrics)
	valuesByType := make(map[string][]float64)
	for _, r := range suite.Results {
		valuesByType[r.MetricType] = append(valuesByType[r.MetricType], r.Value)
	}
	for metricType, values := range valuesByType {
		m, err := CalculateMetrics(values)
		if err != nil {
			// Unreachable: groups are never empty.
			continue
		}
		metricsByType[metricType] = m
	}

	bottlenecks := IdentifyBottlenecks(suite, pa.thresholds)
	recommendations := pa.GenerateRecommendations(suite, bottlenecks)
	comparisons := pa.compareWithPrevious(suite)

	report := &types.AnalysisReport{
		RunID:           uuid.New().String(),
		SuiteName:       suite.Name,
		Timestamp:       time.Now(),
		Metrics:         metricsByType,
		Comparisons:     comparisons,
		Bottlenecks:     bottlenecks,
		Recommendations: recommendations,
		Summary:         buildSummary(suite, bottlenecks, comparisons),
		Results:         suite.Results,
		Environment:     pa.env,
	}

	pa.history.Append(suite)
	return report
}

// compareWithPrevious matches every current result against the same-named,
// same-typed result of the most recent historical suite. Older history
// entries are never consulted.
func (pa *PerformanceAnalyzer) compareWithPrevious(suite *types.BenchmarkSuite) []types.ComparisonResult {
	prev := pa.history.Last()
	if prev == nil {
		return nil
	}

	var comparisons []types.ComparisonResult
	for i := range suite.Results {
		current := &suite.Results[i]
		baseline := prev.GetResult(current.Name)
		if baseline == nil || baseline.MetricType != current.MetricType {
			continue
		}
		cr, err := CompareResults(baseline, current)
		if err != nil {
			continue
		}
		comparisons = append(comparisons, cr)
	}
	return comparisons
}

func buildSummary(suite *types.BenchmarkSuite, bottlenecks []types.Bottleneck, comparisons []types.ComparisonResult) string {
	var parts []string

	if len(suite.Results) > 0 {
		parts = append(parts, fmt.Sprintf("Analyzed %d benchmark results.", len(suite.Results)))
	}

	criticalCount, highCount := 0, 0
	for _, b := range bottlenecks {
		switch b.Severity {
		case types.SeverityCritical:
			criticalCount++
		case types.SeverityHigh:
			highCount++
		}
	}
	if criticalCount > 0 {
		parts = append(parts, fmt.Sprintf("Found %d critical bottleneck(s).", criticalCount))
	}
	if highCount > 0 {
		parts = append(parts, fmt.Sprintf("Found %d high-priority issue(s).", highCount))
	}

	improvements, regressions := 0, 0
	for _, c := range comparisons {
		if c.IsImprovement {
			improvements++
		}
		if c.IsRegression {
			regressions++
		}
	}
	if improvements > 0 {
		parts = append(parts, fmt.Sprintf("%d metric(s) improved vs previous run.", improvements))
	}
	if regressions > 0 {
		parts = append(parts, fmt.Sprintf("%d metric(s) regressed vs previous run.", regressions))
	}

	if len(parts) == 0 {
		return "Benchmark analysis complete."
	}
	return strings.Join(parts, " ")
}
