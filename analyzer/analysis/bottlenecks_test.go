package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perf-bench/analyzer/types"
)

func TestIdentifyBottlenecksCriticalGPUUtilization(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Name: "CUDA Benchmark Suite",
		Results: []types.BenchmarkResult{
			{Name: "CUDA Performance (1024x1024)", MetricType: "GFLOPS", Value: 20},
			{Name: "CPU Performance (1024x1024)", MetricType: "GFLOPS", Value: 10},
		},
	}

	bottlenecks := IdentifyBottlenecks(suite, DefaultThresholds())

	require.Len(t, bottlenecks, 1)
	b := bottlenecks[0]
	assert.Equal(t, "GPU Utilization", b.Component)
	assert.Equal(t, types.SeverityCritical, b.Severity)
	assert.Equal(t, "GPU speedup is only 2.0x over CPU (expected 10-100x)", b.Description)
	assert.InDelta(t, 80.0, b.Impact, 1e-9)
	assert.Len(t, b.Recommendations, 5)
}

func TestIdentifyBottlenecksHighGPUUtilization(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Results: []types.BenchmarkResult{
			{Name: "CUDA Performance", MetricType: "GFLOPS", Value: 70},
			{Name: "CPU Performance", MetricType: "GFLOPS", Value: 10},
		},
	}

	bottlenecks := IdentifyBottlenecks(suite, DefaultThresholds())

	require.Len(t, bottlenecks, 1)
	assert.Equal(t, types.SeverityHigh, bottlenecks[0].Severity)
}

func TestIdentifyBottlenecksHealthyGPUSpeedup(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Results: []types.BenchmarkResult{
			{Name: "CUDA Performance", MetricType: "GFLOPS", Value: 500},
			{Name: "CPU Performance", MetricType: "GFLOPS", Value: 10},
		},
	}

	assert.Empty(t, IdentifyBottlenecks(suite, DefaultThresholds()))
}

func TestIdentifyBottlenecksSkipsZeroCPU(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Results: []types.BenchmarkResult{
			{Name: "CUDA Performance", MetricType: "GFLOPS", Value: 20},
			{Name: "CPU Performance", MetricType: "GFLOPS", Value: 0},
		},
	}

	assert.Empty(t, IdentifyBottlenecks(suite, DefaultThresholds()))
}

func TestIdentifyBottlenecksTimingVariance(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Results: []types.BenchmarkResult{
			{
				Name:       "Execution Time (1024x1024)",
				MetricType: "ms",
				Value:      100,
				Metadata: types.Metadata{
					"runs": types.NumberListValue([]float64{100, 150, 50}),
				},
			},
		},
	}

	bottlenecks := IdentifyBottlenecks(suite, DefaultThresholds())

	require.Len(t, bottlenecks, 1)
	b := bottlenecks[0]
	assert.Equal(t, "Execution Time (1024x1024)", b.Component)
	assert.Equal(t, types.SeverityMedium, b.Severity)
	assert.Equal(t, "High timing variance (CV: 50.0%)", b.Description)
	assert.InDelta(t, 50.0, b.Impact, 1e-9)
}

func TestIdentifyBottlenecksStableTiming(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Results: []types.BenchmarkResult{
			{
				Name:       "Execution Time",
				MetricType: "ms",
				Value:      100,
				Metadata: types.Metadata{
					"runs": types.NumberListValue([]float64{100, 101, 99}),
				},
			},
		},
	}

	assert.Empty(t, IdentifyBottlenecks(suite, DefaultThresholds()))
}

func TestIdentifyBottlenecksMemoryBandwidth(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Results: []types.BenchmarkResult{
			{Name: "Memory Copy", MetricType: "GB/s", Value: 300},
		},
	}

	bottlenecks := IdentifyBottlenecks(suite, DefaultThresholds())

	require.Len(t, bottlenecks, 1)
	b := bottlenecks[0]
	assert.Equal(t, "Memory Bandwidth", b.Component)
	assert.Equal(t, types.SeverityHigh, b.Severity)
	assert.Equal(t, "Memory bandwidth at 33.3% of theoretical peak", b.Description)
	assert.InDelta(t, 100-300.0/900*100, b.Impact, 1e-9)
}

func TestIdentifyBottlenecksBandwidthAboveFloor(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Results: []types.BenchmarkResult{
			{Name: "Memory Copy", MetricType: "GB/s", Value: 600},
		},
	}

	assert.Empty(t, IdentifyBottlenecks(suite, DefaultThresholds()))
}

func TestIdentifyBottlenecksSortedByImpact(t *testing.T) {
	suite := &types.BenchmarkSuite{
		Results: []types.BenchmarkResult{
			{Name: "Memory Copy", MetricType: "GB/s", Value: 300},
			{Name: "CUDA Performance", MetricType: "GFLOPS", Value: 20},
			{Name: "CPU Performance", MetricType: "GFLOPS", Value: 10},
		},
	}

	bottlenecks := IdentifyBottlenecks(suite, DefaultThresholds())

	require.Len(t, bottlenecks, 2)
	assert.Equal(t, "GPU Utilization", bottlenecks[0].Component)
	assert.Equal(t, "Memory Bandwidth", bottlenecks[1].Component)
	assert.GreaterOrEqual(t, bottlenecks[0].Impact, bottlenecks[1].Impact)
}
