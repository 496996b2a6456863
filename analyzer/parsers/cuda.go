package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/perf-bench/analyzer/types"
)

var (
	matrixRe   = regexp.MustCompile(`Benchmarking (\d+)x(\d+)`)
	bestTimeRe = regexp.MustCompile(`Best time:\s*([\d.]+)ms`)
	cudaRe     = regexp.MustCompile(`CUDA:\s*([\d.]+)\s*GFLOPS\s*\(([\d.]+)\s*TFLOPS\)`)
	cpuRe      = regexp.MustCompile(`CPU:\s*([\d.]+)\s*GFLOPS`)
)

// ParseCUDA parses CUDA-style matrix benchmark logs:
//
//	Benchmarking 4096x4096 matrices...
//	CUDA: 2939.45 GFLOPS (2.939 TFLOPS)
//	CPU: 45.2 GFLOPS
//	Best time: 46.76ms
//
// Size lines update a running config that tags every subsequent result until
// the next size line. Unmatched lines are skipped.
func ParseCUDA(text string) *types.BenchmarkSuite {
	ts := now()
	var results []types.BenchmarkResult
	config := types.Metadata{}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)

		if m := matrixRe.FindStringSubmatch(line); m != nil {
			size, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			config["matrix_size"] = types.NumberValue(float64(size))
			config["matrix_dims"] = types.StringValue(strconv.Itoa(size) + "x" + strconv.Itoa(size))
			continue
		}

		if m := bestTimeRe.FindStringSubmatch(line); m != nil {
			if v, ok := parseFinite(m[1]); ok {
				results = append(results, types.BenchmarkResult{
					Name:       "Execution Time (" + dims(config) + ")",
					MetricType: "ms",
					Value:      v,
					Timestamp:  ts,
					Metadata:   config.Clone(),
				})
			}
			continue
		}

		if m := cudaRe.FindStringSubmatch(line); m != nil {
			name := "CUDA Performance (" + dims(config) + ")"
			if gflops, ok := parseFinite(m[1]); ok {
				results = append(results, types.BenchmarkResult{
					Name:       name,
					MetricType: "GFLOPS",
					Value:      gflops,
					Timestamp:  ts,
					Metadata:   config.Clone(),
				})
			}
			if tflops, ok := parseFinite(m[2]); ok {
				results = append(results, types.BenchmarkResult{
					Name:       name,
					MetricType: "TFLOPS",
					Value:      tflops,
					Timestamp:  ts,
					Metadata:   config.Clone(),
				})
			}
			continue
		}

		if m := cpuRe.FindStringSubmatch(line); m != nil {
			if v, ok := parseFinite(m[1]); ok {
				results = append(results, types.BenchmarkResult{
					Name:       "CPU Performance (" + dims(config) + ")",
					MetricType: "GFLOPS",
					Value:      v,
					Timestamp:  ts,
					Metadata:   config.Clone(),
				})
			}
			continue
		}
	}

	return &types.BenchmarkSuite{
		Name:      "CUDA Benchmark Suite",
		Results:   results,
		Timestamp: ts,
		Config:    config,
	}
}

// dims returns the current matrix dimensions, or "unknown" when no size line
// has been seen yet.
func dims(config types.Metadata) string {
	if d, ok := config["matrix_dims"].Str(); ok {
		return d
	}
	return "unknown"
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}
