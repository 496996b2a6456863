package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		value     float64
		precision int
		want      string
	}{
		{1500, 2, "1.50K"},
		{999, 2, "999.00"},
		{1000, 2, "1.00K"},
		{2500000, 2, "2.50M"},
		{3200000000, 1, "3.2B"},
		{1e12, 2, "1.00T"},
		{-2500000, 2, "-2.50M"},
		{0, 2, "0.00"},
		{0.5, 3, "0.500"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatNumber(c.value, c.precision))
	}
}

func TestFormatNumberPlain(t *testing.T) {
	cases := []struct {
		value     float64
		precision int
		want      string
	}{
		{2939.45, 2, "2,939.45"},
		{45.2, 2, "45.20"},
		{1234567.89, 2, "1,234,567.89"},
		{-1234, 0, "-1,234"},
		{999, 2, "999.00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatNumberPlain(c.value, c.precision))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "+15.5%", FormatPercentage(15.5, 1, true))
	assert.Equal(t, "15.5%", FormatPercentage(15.5, 1, false))
	assert.Equal(t, "-3.2%", FormatPercentage(-3.2, 1, true))
	assert.Equal(t, "0.0%", FormatPercentage(0, 1, true))
}

func TestFormatPerformance(t *testing.T) {
	assert.Equal(t, "2,939.45 GFLOPS", FormatPerformance(2939.45, "GFLOPS"))
}

func TestFormatSpeedup(t *testing.T) {
	assert.Equal(t, "5.20x", FormatSpeedup(5.2))
	assert.Equal(t, "0.50x", FormatSpeedup(0.5))
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		milliseconds float64
		want         string
	}{
		{0.5, "500.00µs"},
		{46.76, "46.76ms"},
		{999.99, "999.99ms"},
		{1500, "1.50s"},
		{59999, "60.00s"},
		{125000, "2m 5.0s"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatTime(c.milliseconds))
	}
}

func TestFormatChangeNoBaseline(t *testing.T) {
	assert.Equal(t, "No baseline available", FormatChange(0, 10, "ms"))
}

func TestFormatChangeTiming(t *testing.T) {
	assert.Equal(t, "Improved by 10.0% ↓", FormatChange(100, 90, "ms"))
	assert.Equal(t, "Regressed by 10.0% ↑", FormatChange(100, 110, "ms"))
	assert.Equal(t, "~No change (↑ 0.5%)", FormatChange(100, 100.5, "ms"))
}

func TestFormatChangeThroughput(t *testing.T) {
	assert.Equal(t, "Improved by 20.0% ↑", FormatChange(100, 120, "value"))
	assert.Equal(t, "Regressed by 20.0% ↓", FormatChange(100, 80, "value"))
}

func TestFormatChangeLatencyLabel(t *testing.T) {
	// "latency" counts as a timing unit even though parsers never emit it.
	assert.Equal(t, "Improved by 10.0% ↓", FormatChange(100, 90, "latency"))
}
