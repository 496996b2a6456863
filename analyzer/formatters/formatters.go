// Package formatters provides the canonical textual renderings consumed by
// report and chart generators. All functions are pure and stateless;
// downstream documents treat their output as exact.
package formatters

import (
	"fmt"
	"math"
	"strings"
)

// FormatNumber renders a value with a K/M/B/T suffix at the 1e3/1e6/1e9/1e12
// thresholds. The sign is preserved and values below 1e3 carry no suffix:
// FormatNumber(1500, 2) is "1.50K", FormatNumber(999, 2) is "999.00".
func FormatNumber(value float64, precision int) string {
	abs := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%s%.*fT", sign, precision, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s%.*fB", sign, precision, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.*fM", sign, precision, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s%.*fK", sign, precision, abs/1e3)
	default:
		return fmt.Sprintf("%s%.*f", sign, precision, abs)
	}
}

// FormatNumberPlain renders a value without suffix scaling, grouping the
// integer part with thousands separators ("2,939.45").
func FormatNumberPlain(value float64, precision int) string {
	s := fmt.Sprintf("%.*f", precision, math.Abs(value))

	intPart, fracPart := s, ""
	if idx := strings.Index(s, "."); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx:]
	}

	var b strings.Builder
	if value < 0 {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercentage renders a percentage value (15.5 means 15.5%). Positive
// values get a leading "+" when showSign is set.
func FormatPercentage(value float64, precision int, showSign bool) string {
	if showSign && value > 0 {
		return fmt.Sprintf("+%.*f%%", precision, value)
	}
	return fmt.Sprintf("%.*f%%", precision, value)
}

// FormatPerformance renders a metric value with its unit, e.g.
// "2,939.45 GFLOPS".
func FormatPerformance(value float64, metricType string) string {
	return FormatNumberPlain(value, 2) + " " + metricType
}

// FormatSpeedup renders a speedup multiplier, e.g. "5.20x".
func FormatSpeedup(speedup float64) string {
	return fmt.Sprintf("%.2fx", speedup)
}

// FormatTime renders a duration given in milliseconds with an auto-selected
// unit: µs below 1ms, ms below 1s, s below one minute, "Xm Y.Ys" above.
func FormatTime(milliseconds float64) string {
	switch {
	case milliseconds < 1:
		return fmt.Sprintf("%.2fµs", milliseconds*1000)
	case milliseconds < 1000:
		return fmt.Sprintf("%.2fms", milliseconds)
	case milliseconds < 60000:
		return fmt.Sprintf("%.2fs", milliseconds/1000)
	default:
		minutes := int(milliseconds / 60000)
		seconds := math.Mod(milliseconds, 60000) / 1000
		return fmt.Sprintf("%dm %.1fs", minutes, seconds)
	}
}

// changeTimingUnits extends the comparison set with "latency", which shows
// up in report-facing metric labels but not in parsed suites.
var changeTimingUnits = []string{"ms", "seconds", "s", "time", "latency"}

// FormatChange renders a one-line summary of the move from baseline to
// current, direction-aware for timing vs throughput metrics.
func FormatChange(baseline, current float64, metricType string) string {
	if baseline == 0 {
		return "No baseline available"
	}

	relative := (current - baseline) / baseline * 100

	isTiming := false
	lower := strings.ToLower(metricType)
	for _, tm := range changeTimingUnits {
		if strings.Contains(lower, tm) {
			isTiming = true
			break
		}
	}

	var isImprovement bool
	var symbol string
	if isTiming {
		isImprovement = current < baseline
		symbol = "↑"
		if isImprovement {
			symbol = "↓"
		}
	} else {
		isImprovement = current > baseline
		symbol = "↓"
		if isImprovement {
			symbol = "↑"
		}
	}

	switch {
	case math.Abs(relative) < 1:
		return fmt.Sprintf("~No change (%s %.1f%%)", symbol, math.Abs(relative))
	case isImprovement:
		return fmt.Sprintf("Improved by %.1f%% %s", math.Abs(relative), symbol)
	default:
		return fmt.Sprintf("Regressed by %.1f%% %s", math.Abs(relative), symbol)
	}
}
