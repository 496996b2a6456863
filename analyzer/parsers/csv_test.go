package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVSkipsNonNumericCells(t *testing.T) {
	suite := ParseCSV("name,GFLOPS\nrun1,100.5\nrun2,abc")

	require.Len(t, suite.Results, 1)
	assert.Equal(t, "run1", suite.Results[0].Name)
	assert.Equal(t, "GFLOPS", suite.Results[0].MetricType)
	assert.Equal(t, 100.5, suite.Results[0].Value)
	assert.Equal(t, "CSV Benchmark Suite", suite.Name)
}

func TestParseCSVMultipleMetricColumns(t *testing.T) {
	suite := ParseCSV("name,GFLOPS,ms\nrun1,100.5,46.76")

	require.Len(t, suite.Results, 2)
	assert.Equal(t, "GFLOPS", suite.Results[0].MetricType)
	assert.Equal(t, 100.5, suite.Results[0].Value)
	assert.Equal(t, "ms", suite.Results[1].MetricType)
	assert.Equal(t, 46.76, suite.Results[1].Value)
	assert.Equal(t, "run1", suite.Results[0].Name)
}

func TestParseCSVTooFewLines(t *testing.T) {
	suite := ParseCSV("name,GFLOPS")

	assert.Equal(t, "CSV Benchmark", suite.Name)
	assert.Empty(t, suite.Results)
}

func TestParseCSVSkipsMismatchedRows(t *testing.T) {
	suite := ParseCSV("name,GFLOPS\nrun1,100.5,extra\nrun2,50.0")

	require.Len(t, suite.Results, 1)
	assert.Equal(t, "run2", suite.Results[0].Name)
}

func TestParseCSVSkipsNonFiniteValues(t *testing.T) {
	suite := ParseCSV("name,GFLOPS\nrun1,NaN\nrun2,Inf\nrun3,1.5")

	require.Len(t, suite.Results, 1)
	assert.Equal(t, "run3", suite.Results[0].Name)
}
