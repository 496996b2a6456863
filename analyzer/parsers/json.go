package parsers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/perf-bench/analyzer/types"
)

// ParseJSON parses structured benchmark data in one of two shapes:
//
//	[{"name": "run1", "GFLOPS": 100.5}, ...]
//	{"run1": {"GFLOPS": 100.5}, "run2": 42}
//
// In the array form each object's "name" field identifies the result and all
// other numeric fields become metric_type/value pairs. In the object form
// top-level keys are result names mapping to either a nested metrics object
// or a bare scalar (metric type "value"). Non-numeric fields are ignored and
// malformed JSON yields an empty suite.
func ParseJSON(text string) *types.BenchmarkSuite {
	ts := now()
	trimmed := strings.TrimSpace(text)

	if !json.Valid([]byte(trimmed)) {
		return &types.BenchmarkSuite{Name: "JSON Benchmark", Timestamp: ts}
	}

	var results []types.BenchmarkResult
	switch {
	case strings.HasPrefix(trimmed, "["):
		results = parseJSONArray(trimmed, ts)
	case strings.HasPrefix(trimmed, "{"):
		results = parseJSONObject(trimmed, ts)
	}

	return &types.BenchmarkSuite{
		Name:      "JSON Benchmark Suite",
		Results:   results,
		Timestamp: ts,
	}
}

// parseJSONArray handles the array-of-objects form. Array order is
// preserved; metric keys within one object are emitted in sorted order.
func parseJSONArray(text string, ts time.Time) []types.BenchmarkResult {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil
	}

	var results []types.BenchmarkResult
	for _, raw := range items {
		var obj map[string]interface{}
		if err := json.Unmarshal(raw, &obj); err != nil {
			continue
		}

		name := "Unknown"
		if v, ok := obj["name"]; ok && v != nil {
			if s, ok := v.(string); ok {
				name = s
			} else {
				name = fmt.Sprintf("%v", v)
			}
		}

		for _, key := range sortedKeys(obj) {
			if key == "name" {
				continue
			}
			if value, ok := obj[key].(float64); ok && isFinite(value) {
				results = append(results, types.BenchmarkResult{
					Name:       name,
					MetricType: key,
					Value:      value,
					Timestamp:  ts,
				})
			}
		}
	}
	return results
}

// parseJSONObject handles the name-keyed object form. Top-level key order is
// preserved by decoding the token stream rather than unmarshalling into a
// map, since result order drives first-match lookups downstream.
func parseJSONObject(text string, ts time.Time) []types.BenchmarkResult {
	dec := json.NewDecoder(strings.NewReader(text))
	if _, err := dec.Token(); err != nil { // opening '{'
		return nil
	}

	var results []types.BenchmarkResult
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return results
		}
		name, ok := keyTok.(string)
		if !ok {
			return results
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return results
		}

		switch v := value.(type) {
		case map[string]interface{}:
			for _, key := range sortedKeys(v) {
				if metric, ok := v[key].(float64); ok && isFinite(metric) {
					results = append(results, types.BenchmarkResult{
						Name:       name,
						MetricType: key,
						Value:      metric,
						Timestamp:  ts,
					})
				}
			}
		case float64:
			if isFinite(v) {
				results = append(results, types.BenchmarkResult{
					Name:       name,
					MetricType: "value",
					Value:      v,
					Timestamp:  ts,
				})
			}
		}
	}
	return results
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
