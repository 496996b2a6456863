package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/perf-bench/analyzer/types"
)

// kvValueRe extracts a numeric token and an optional trailing unit from the
// value side of a key-value line, e.g. "123.4 GB/s".
var kvValueRe = regexp.MustCompile(`([\d.]+)\s*([A-Za-z/]+)?`)

// ParseKeyValue parses "key: value" or "key = value" lines. The colon
// separator wins when both appear. The unit defaults to "value" when the
// number carries none. Lines with neither separator are skipped.
func ParseKeyValue(text string) *types.BenchmarkSuite {
	ts := now()
	var results []types.BenchmarkResult

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var key, valueStr string
		if idx := strings.Index(line, ":"); idx >= 0 {
			key = strings.TrimSpace(line[:idx])
			valueStr = strings.TrimSpace(line[idx+1:])
		} else if idx := strings.Index(line, "="); idx >= 0 {
			key = strings.TrimSpace(line[:idx])
			valueStr = strings.TrimSpace(line[idx+1:])
		} else {
			continue
		}

		m := kvValueRe.FindStringSubmatch(valueStr)
		if m == nil {
			continue
		}

		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil || !isFinite(value) {
			log.WithField("token", m[1]).Debug("Skipping unparsable numeric token")
			continue
		}

		unit := m[2]
		if unit == "" {
			unit = "value"
		}

		results = append(results, types.BenchmarkResult{
			Name:       key,
			MetricType: unit,
			Value:      value,
			Timestamp:  ts,
		})
	}

	return &types.BenchmarkSuite{
		Name:      "Key-Value Benchmark Suite",
		Results:   results,
		Timestamp: ts,
	}
}
