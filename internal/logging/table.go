// Package logging generates the per-run enhancement report: aligned metric
// tables comparing the music stem before and after the enhancement chain.
package logging

import (
	"fmt"
	"math"
	"strings"
)

// MissingValue is the placeholder for unavailable measurements.
const MissingValue = "-"

// MetricRow is one line of a comparison table. Values are pre-formatted so a
// row can mix precisions.
type MetricRow struct {
	Label  string   // e.g. "RMS Level"
	Values []string // one per column
	Unit   string   // e.g. "dBFS", "Hz", "" for unitless
}

// MetricTable renders aligned columns for before/after comparison. Labels
// are left-aligned, values right-aligned, units appended after the last
// value column.
type MetricTable struct {
	Headers []string // e.g. ["Input", "Enhanced"]
	Rows    []MetricRow
}

func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth := 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
	}

	valueWidths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		valueWidths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i, val := range row.Values {
			if i < len(valueWidths) && len(val) > valueWidths[i] {
				valueWidths[i] = len(val)
			}
		}
	}

	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for i, header := range t.Headers {
		sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], header))
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		sb.WriteString(fmt.Sprintf("%-*s  ", labelWidth, row.Label))
		for i := range t.Headers {
			val := MissingValue
			if i < len(row.Values) && row.Values[i] != "" {
				val = row.Values[i]
			}
			sb.WriteString(fmt.Sprintf("%*s  ", valueWidths[i], val))
		}
		if row.Unit != "" {
			sb.WriteString(row.Unit)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatMetric formats a value to the given decimal places, falling back to
// scientific notation for very small magnitudes and the missing-value
// placeholder for NaN/Inf.
func formatMetric(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MissingValue
	}
	if value != 0 && math.Abs(value) < 0.0001 {
		return fmt.Sprintf("%.2e", value)
	}
	return fmt.Sprintf("%.*f", decimals, value)
}

// formatDb renders a linear amplitude as dBFS, with digital silence shown as
// the placeholder rather than -Inf.
func formatDb(linear float64, decimals int) string {
	if linear <= 0 {
		return MissingValue
	}
	return formatMetric(20*math.Log10(linear), decimals)
}

// formatPercent renders a 0–1 fraction as a percentage.
func formatPercent(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return MissingValue
	}
	return fmt.Sprintf("%.1f%%", fraction*100)
}
