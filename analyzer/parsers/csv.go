package parsers

import (
	"strconv"
	"strings"

	"github.com/perf-bench/analyzer/types"
)

// ParseCSV parses comma-separated benchmark data. The first line is the
// header; column 0 of each row is the result name and every other column
// becomes one result typed by its header. Rows whose column count does not
// match the header are skipped entirely; individual non-numeric cells are
// skipped without dropping the rest of the row.
func ParseCSV(text string) *types.BenchmarkSuite {
	ts := now()
	lines := strings.Split(strings.TrimSpace(text), "\n")

	if len(lines) < 2 {
		return &types.BenchmarkSuite{Name: "CSV Benchmark", Timestamp: ts}
	}

	headers := splitTrim(lines[0])

	var results []types.BenchmarkResult
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := splitTrim(line)
		if len(cells) != len(headers) {
			log.WithField("row", line).Debug("Skipping CSV row with mismatched column count")
			continue
		}

		name := cells[0]
		for i := 1; i < len(headers); i++ {
			value, err := strconv.ParseFloat(cells[i], 64)
			if err != nil || !isFinite(value) {
				continue
			}
			results = append(results, types.BenchmarkResult{
				Name:       name,
				MetricType: headers[i],
				Value:      value,
				Timestamp:  ts,
			})
		}
	}

	return &types.BenchmarkSuite{
		Name:      "CSV Benchmark Suite",
		Results:   results,
		Timestamp: ts,
	}
}

func splitTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
