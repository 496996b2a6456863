package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONArrayForm(t *testing.T) {
	text := `[{"name":"run1","GFLOPS":100.5,"ms":46.76,"note":"warmup"}]`

	suite := ParseJSON(text)

	require.Len(t, suite.Results, 2)
	assert.Equal(t, "JSON Benchmark Suite", suite.Name)

	// Metric keys within an object come out alphabetically.
	assert.Equal(t, "run1", suite.Results[0].Name)
	assert.Equal(t, "GFLOPS", suite.Results[0].MetricType)
	assert.Equal(t, 100.5, suite.Results[0].Value)
	assert.Equal(t, "ms", suite.Results[1].MetricType)
	assert.Equal(t, 46.76, suite.Results[1].Value)
}

func TestParseJSONArrayMissingName(t *testing.T) {
	suite := ParseJSON(`[{"GFLOPS":50.0}]`)

	require.Len(t, suite.Results, 1)
	assert.Equal(t, "Unknown", suite.Results[0].Name)
}

func TestParseJSONObjectForm(t *testing.T) {
	text := `{"run1":{"GFLOPS":100.5},"run2":42}`

	suite := ParseJSON(text)

	require.Len(t, suite.Results, 2)
	assert.Equal(t, "run1", suite.Results[0].Name)
	assert.Equal(t, "GFLOPS", suite.Results[0].MetricType)
	assert.Equal(t, 100.5, suite.Results[0].Value)

	assert.Equal(t, "run2", suite.Results[1].Name)
	assert.Equal(t, "value", suite.Results[1].MetricType)
	assert.Equal(t, float64(42), suite.Results[1].Value)
}

func TestParseJSONObjectPreservesTopLevelOrder(t *testing.T) {
	text := `{"zeta":1,"alpha":2,"mid":3}`

	suite := ParseJSON(text)

	require.Len(t, suite.Results, 3)
	assert.Equal(t, "zeta", suite.Results[0].Name)
	assert.Equal(t, "alpha", suite.Results[1].Name)
	assert.Equal(t, "mid", suite.Results[2].Name)
}

func TestParseJSONMalformed(t *testing.T) {
	suite := ParseJSON(`{"run1": }`)

	assert.Equal(t, "JSON Benchmark", suite.Name)
	assert.Empty(t, suite.Results)
}

func TestParseJSONIgnoresNonNumericFields(t *testing.T) {
	suite := ParseJSON(`{"run1":{"GFLOPS":10.0,"label":"fast","flags":[1,2]}}`)

	require.Len(t, suite.Results, 1)
	assert.Equal(t, "GFLOPS", suite.Results[0].MetricType)
}
