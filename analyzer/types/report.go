package types

import (
	"fmt"
	"time"
)

// Bottleneck severity levels, ordered from most to least urgent.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// PerformanceMetrics holds descriptive statistics for one metric type's value
// population within a suite. Percentiles use the nearest-rank method
// (sorted[floor(n*p)]), not interpolation.
type PerformanceMetrics struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	P25      float64 `json:"p25"`
	P75      float64 `json:"p75"`
	P95      float64 `json:"p95"`
	CoeffVar float64 `json:"coefficient_of_variation"`
}

func (m PerformanceMetrics) String() string {
	return fmt.Sprintf("Mean: %.2f, Median: %.2f, StdDev: %.2f, CV: %.2f%%",
		m.Mean, m.Median, m.StdDev, m.CoeffVar*100)
}

// ComparisonResult is a pairwise comparison of two same-metric-type results:
// a baseline (usually from the previous run) and a comparison (current run).
type ComparisonResult struct {
	BaselineName    string  `json:"baseline_name"`
	ComparisonName  string  `json:"comparison_name"`
	MetricType      string  `json:"metric_type"`
	BaselineValue   float64 `json:"baseline_value"`
	ComparisonValue float64 `json:"comparison_value"`
	AbsoluteDiff    float64 `json:"absolute_diff"`
	PercentChange   float64 `json:"percent_change"`
	Speedup         float64 `json:"speedup"`
	IsImprovement   bool    `json:"is_improvement"`
	IsRegression    bool    `json:"is_regression"`
}

// Bottleneck is a heuristically flagged performance issue.
type Bottleneck struct {
	Component       string   `json:"component"`
	Severity        string   `json:"severity"`
	Description     string   `json:"description"`
	Impact          float64  `json:"impact"` // 0-100+ heuristic score
	Recommendations []string `json:"recommendations"`
}

// EnvironmentInfo captures the host the analysis ran on.
type EnvironmentInfo struct {
	Hostname      string  `json:"hostname"`
	OS            string  `json:"os"`
	Architecture  string  `json:"architecture"`
	CPUModel      string  `json:"cpu_model"`
	CPUCores      int     `json:"cpu_cores"`
	TotalMemoryGB float64 `json:"total_memory_gb"`
	GoVersion     string  `json:"go_version"`
}

// AnalysisReport aggregates everything the analyzer derives from one suite.
// A fresh report is created per Analyze call; downstream consumers (chart
// renderers, document generators) get read-only access and must not mutate
// it.
type AnalysisReport struct {
	RunID           string                        `json:"run_id"`
	SuiteName       string                        `json:"suite_name"`
	Timestamp       time.Time                     `json:"timestamp"`
	Metrics         map[string]PerformanceMetrics `json:"metrics"`
	Comparisons     []ComparisonResult            `json:"comparisons"`
	Bottlenecks     []Bottleneck                  `json:"bottlenecks"`
	Recommendations []string                      `json:"recommendations"`
	Summary         string                        `json:"summary"`
	Results         []BenchmarkResult             `json:"results"`
	Environment     *EnvironmentInfo              `json:"environment,omitempty"`
}
