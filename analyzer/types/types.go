package types

import (
	"fmt"
	"time"
)

// BenchmarkResult represents one named measurement extracted from raw
// benchmark output. Names are free text and not guaranteed unique within a
// suite; repeated runs legitimately produce duplicates.
type BenchmarkResult struct {
	Name       string    `json:"name"`
	MetricType string    `json:"metric_type"` // e.g. "GFLOPS", "ms", "GB/s"
	Value      float64   `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
	Metadata   Metadata  `json:"metadata,omitempty"`
}

func (r BenchmarkResult) String() string {
	return fmt.Sprintf("%s: %.2f %s", r.Name, r.Value, r.MetricType)
}

// BenchmarkSuite is an ordered collection of results from a single parse.
// Suites are constructed once per parse call and are not mutated afterwards,
// apart from being recorded in an analyzer's history.
type BenchmarkSuite struct {
	Name      string            `json:"name"`
	Results   []BenchmarkResult `json:"results"`
	Timestamp time.Time         `json:"timestamp"`
	Config    Metadata          `json:"config,omitempty"`
}

// GetResult returns the first result with the given name, or nil. First-match
// semantics matter: suites may contain duplicate names from repeated runs.
func (s *BenchmarkSuite) GetResult(name string) *BenchmarkResult {
	for i := range s.Results {
		if s.Results[i].Name == name {
			return &s.Results[i]
		}
	}
	return nil
}

// ResultsOfType returns all results carrying the given metric type, in suite
// order.
func (s *BenchmarkSuite) ResultsOfType(metricType string) []BenchmarkResult {
	var out []BenchmarkResult
	for _, r := range s.Results {
		if r.MetricType == metricType {
			out = append(out, r)
		}
	}
	return out
}
