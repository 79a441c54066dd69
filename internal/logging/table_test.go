package logging

import (
	"math"
	"strings"
	"testing"
)

func TestMetricTableAlignment(t *testing.T) {
	table := &MetricTable{
		Headers: []string{"Input", "Enhanced"},
		Rows: []MetricRow{
			{Label: "RMS Level", Values: []string{"-18.3", "-16.1"}, Unit: "dBFS"},
			{Label: "Spectral Centroid", Values: []string{"1250", "1430"}, Unit: "Hz"},
		},
	}

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "Input") || !strings.Contains(lines[0], "Enhanced") {
		t.Errorf("header line missing column names: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "RMS Level") {
		t.Errorf("row label not left-aligned: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "dBFS") {
		t.Errorf("unit not appended: %q", lines[1])
	}

	// All value columns start at the same offset, so the two data rows have
	// equal length up to their units.
	if idx1, idx2 := strings.Index(lines[1], "-18.3"), strings.Index(lines[2], "1250"); idx1 < 0 || idx2 < 0 {
		t.Fatalf("values missing from rows:\n%s", out)
	}
}

func TestMetricTableMissingValues(t *testing.T) {
	table := &MetricTable{
		Headers: []string{"Input", "Enhanced"},
		Rows: []MetricRow{
			{Label: "Peak", Values: []string{"-3.0"}, Unit: "dBFS"},
		},
	}
	out := table.String()
	if !strings.Contains(out, MissingValue) {
		t.Errorf("missing second column not rendered as placeholder:\n%s", out)
	}
}

func TestMetricTableEmpty(t *testing.T) {
	table := &MetricTable{Headers: []string{"Input", "Enhanced"}}
	if out := table.String(); out != "" {
		t.Errorf("empty table rendered %q, want empty string", out)
	}
}

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{-18.345, 1, "-18.3"},
		{0, 2, "0.00"},
		{1250.7, 0, "1251"},
		{0.00001, 2, "1.00e-05"},
		{math.NaN(), 1, MissingValue},
		{math.Inf(1), 1, MissingValue},
	}
	for _, tt := range tests {
		if got := formatMetric(tt.value, tt.decimals); got != tt.want {
			t.Errorf("formatMetric(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
		}
	}
}

func TestFormatDb(t *testing.T) {
	if got := formatDb(1.0, 1); got != "0.0" {
		t.Errorf("formatDb(1.0) = %q, want \"0.0\"", got)
	}
	if got := formatDb(0.5, 1); got != "-6.0" {
		t.Errorf("formatDb(0.5) = %q, want \"-6.0\"", got)
	}
	if got := formatDb(0, 1); got != MissingValue {
		t.Errorf("formatDb(0) = %q, want placeholder", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(0.753); got != "75.3%" {
		t.Errorf("formatPercent(0.753) = %q", got)
	}
	if got := formatPercent(math.NaN()); got != MissingValue {
		t.Errorf("formatPercent(NaN) = %q, want placeholder", got)
	}
}
