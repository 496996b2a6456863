package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/perf-bench/analyzer/types"
)

var gpuUtilizationRemediations = []string{
	"Check for memory transfer bottlenecks between host and device",
	"Verify kernel launch configurations (grid/block dimensions)",
	"Profile memory access patterns - ensure coalesced access",
	"Consider using shared memory for frequently accessed data",
	"Check for thread divergence in kernel code",
}

var timingVarianceRemediations = []string{
	"Check for thermal throttling",
	"Verify no background processes interfering",
	"Consider running more warmup iterations",
	"Check for GPU frequency scaling",
}

var bandwidthRemediations = []string{
	"Optimize memory access patterns for coalescing",
	"Reduce memory traffic with shared memory",
	"Check for unnecessary data transfers",
	"Consider data layout transformations (AoS vs SoA)",
}

// IdentifyBottlenecks runs the heuristic checks over a suite and returns the
// flagged issues sorted by descending impact. Every check is total: missing
// or empty data yields no bottleneck, never an error.
func IdentifyBottlenecks(suite *types.BenchmarkSuite, t Thresholds) []types.Bottleneck {
	var bottlenecks []types.Bottleneck

	if b := checkGPUUtilization(suite, t); b != nil {
		bottlenecks = append(bottlenecks, *b)
	}
	bottlenecks = append(bottlenecks, checkTimingVariance(suite, t)...)
	bottlenecks = append(bottlenecks, checkMemoryBandwidth(suite, t)...)

	sort.SliceStable(bottlenecks, func(i, j int) bool {
		return bottlenecks[i].Impact > bottlenecks[j].Impact
	})
	return bottlenecks
}

// checkGPUUtilization pairs CUDA-named GFLOPS results with CPU-named ones by
// position. Positional pairing assumes both lists arrive in matching config
// order; pairing by matrix_dims would be stricter but would change behavior
// for existing consumers.
func checkGPUUtilization(suite *types.BenchmarkSuite, t Thresholds) *types.Bottleneck {
	var cudaResults, cpuResults []types.BenchmarkResult
	for _, r := range suite.Results {
		if r.MetricType != "GFLOPS" {
			continue
		}
		if strings.Contains(r.Name, "CUDA") {
			cudaResults = append(cudaResults, r)
		}
		if strings.Contains(r.Name, "CPU") {
			cpuResults = append(cpuResults, r)
		}
	}
	if len(cudaResults) == 0 || len(cpuResults) == 0 {
		return nil
	}

	n := len(cudaResults)
	if len(cpuResults) < n {
		n = len(cpuResults)
	}

	var speedups []float64
	for i := 0; i < n; i++ {
		if cpuResults[i].Value > 0 {
			speedups = append(speedups, cudaResults[i].Value/cpuResults[i].Value)
		}
	}
	if len(speedups) == 0 {
		return nil
	}

	avgSpeedup := mean(speedups)
	if avgSpeedup >= t.MinGPUSpeedup {
		return nil
	}

	severity := types.SeverityHigh
	if avgSpeedup < t.CriticalGPUSpeedup {
		severity = types.SeverityCritical
	}

	return &types.Bottleneck{
		Component:       "GPU Utilization",
		Severity:        severity,
		Description:     fmt.Sprintf("GPU speedup is only %.1fx over CPU (expected 10-100x)", avgSpeedup),
		Impact:          100 - (avgSpeedup / t.MinGPUSpeedup * 100),
		Recommendations: gpuUtilizationRemediations,
	}
}

// checkTimingVariance flags "ms" results whose recorded per-run samples show
// a coefficient of variation above the threshold.
func checkTimingVariance(suite *types.BenchmarkSuite, t Thresholds) []types.Bottleneck {
	var bottlenecks []types.Bottleneck
	for _, r := range suite.Results {
		if r.MetricType != "ms" {
			continue
		}
		runs, ok := r.Metadata["runs"].Numbers()
		if !ok || len(runs) < 2 {
			continue
		}

		m := mean(runs)
		if m == 0 {
			continue
		}
		cv := sampleStdDev(runs, m) / m
		if cv <= t.MaxTimingCV {
			continue
		}

		bottlenecks = append(bottlenecks, types.Bottleneck{
			Component:       r.Name,
			Severity:        types.SeverityMedium,
			Description:     fmt.Sprintf("High timing variance (CV: %.1f%%)", cv*100),
			Impact:          cv * 100,
			Recommendations: timingVarianceRemediations,
		})
	}
	return bottlenecks
}

// checkMemoryBandwidth measures GB/s results against the theoretical peak of
// an A100-class device.
func checkMemoryBandwidth(suite *types.BenchmarkSuite, t Thresholds) []types.Bottleneck {
	var bottlenecks []types.Bottleneck
	for _, r := range suite.Results {
		if !strings.Contains(r.MetricType, "GB/s") {
			continue
		}
		if r.Value >= t.BandwidthFloorGBs {
			continue
		}

		efficiency := r.Value / t.BandwidthCeilingGBs * 100
		if efficiency >= t.MinBandwidthEfficiency {
			continue
		}

		severity := types.SeverityMedium
		if efficiency < t.LowBandwidthEfficiency {
			severity = types.SeverityHigh
		}

		bottlenecks = append(bottlenecks, types.Bottleneck{
			Component:       "Memory Bandwidth",
			Severity:        severity,
			Description:     fmt.Sprintf("Memory bandwidth at %.1f%% of theoretical peak", efficiency),
			Impact:          100 - efficiency,
			Recommendations: bandwidthRemediations,
		})
	}
	return bottlenecks
}
