// Package parsers converts raw benchmark output of unknown or hinted format
// into BenchmarkSuite values. Parse errors are never fatal: malformed input
// degrades to an empty or partial suite.
package parsers

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/perf-bench/analyzer/types"
)

var log = logrus.WithField("component", "parsers")

// now is a hook for tests that need deterministic timestamps.
var now = time.Now

// detector pairs a format predicate with its parser. Auto-detection walks
// the chain in order and takes the first match.
type detector struct {
	format string
	match  func(text string) bool
	parse  func(text string) *types.BenchmarkSuite
}

var autoDetectors = []detector{
	{format: "json", match: looksLikeJSON, parse: ParseJSON},
	{format: "cuda", match: looksLikeCUDA, parse: ParseCUDA},
	{format: "csv", match: looksLikeCSV, parse: ParseCSV},
	{format: "kv", match: func(string) bool { return true }, parse: ParseKeyValue},
}

// Parse dispatches raw benchmark text to the right parser. formatHint may be
// one of cuda/gpu, csv, json, kv/keyvalue (case-insensitive); unknown hints
// fall back to auto-detection.
func Parse(text, formatHint string) *types.BenchmarkSuite {
	if strings.TrimSpace(text) == "" {
		return emptySuite("Empty Benchmark")
	}

	text = strings.TrimSpace(text)

	switch strings.ToLower(formatHint) {
	case "cuda", "gpu":
		return ParseCUDA(text)
	case "csv":
		return ParseCSV(text)
	case "json":
		return ParseJSON(text)
	case "kv", "keyvalue":
		return ParseKeyValue(text)
	}

	for _, d := range autoDetectors {
		if d.match(text) {
			log.WithField("format", d.format).Debug("Auto-detected benchmark format")
			return d.parse(text)
		}
	}

	// Unreachable: the key-value detector always matches.
	return emptySuite("Empty Benchmark")
}

func looksLikeJSON(text string) bool {
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		return false
	}
	return json.Valid([]byte(text))
}

func looksLikeCUDA(text string) bool {
	return strings.Contains(text, "CUDA") ||
		strings.Contains(text, "GFLOPS") ||
		strings.Contains(text, "TFLOPS")
}

func looksLikeCSV(text string) bool {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return false
	}
	return len(strings.Split(lines[0], ",")) > 1
}

func emptySuite(name string) *types.BenchmarkSuite {
	return &types.BenchmarkSuite{Name: name, Timestamp: now()}
}

// isFinite filters NaN/Inf before a value enters a suite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
