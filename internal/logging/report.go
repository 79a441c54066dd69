package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/analysis"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/enhancer"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/pipeline"
)

// ReportData carries everything the enhancement report needs.
type ReportData struct {
	InputPath  string
	OutputPath string
	VocalsPath string // empty when the vocal stem was not kept

	StartTime time.Time
	EndTime   time.Time
	Timings   []pipeline.StageTiming

	ProfileName string // empty when settings came from individual flags
	Settings    enhancer.Settings

	// Stream metadata of the enhanced output.
	SampleRate   int
	Channels     int
	SampleWidth  int // bytes
	DurationSecs float64

	// Before/after measurements of the music stem.
	Input  analysis.Summary
	Output analysis.Summary
}

// GenerateReport writes the report next to the output file as
// <output>-enhanced.log and returns its path.
func GenerateReport(data ReportData) (string, error) {
	logPath := strings.TrimSuffix(data.OutputPath, filepath.Ext(data.OutputPath)) + "-enhanced.log"

	f, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	writeReportHeader(f, data)
	writeRunSummary(f, data)
	writeSettingsSection(f, data)
	writeMeasurementTable(f, data)

	return logPath, nil
}

func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}

func writeReportHeader(f *os.File, data ReportData) {
	fmt.Fprintln(f, "Audio Enhancement Report")
	fmt.Fprintln(f, "========================")
	fmt.Fprintln(f)
	fmt.Fprintf(f, "Input:     %s\n", data.InputPath)
	fmt.Fprintf(f, "Output:    %s\n", data.OutputPath)
	if data.VocalsPath != "" {
		fmt.Fprintf(f, "Vocals:    %s\n", data.VocalsPath)
	}
	fmt.Fprintf(f, "Generated: %s\n", data.EndTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(f)
}

func writeRunSummary(f *os.File, data ReportData) {
	writeSection(f, "Run Summary")
	for _, t := range data.Timings {
		fmt.Fprintf(f, "%-10s %s\n", t.Stage.String()+":", formatDuration(t.Duration))
	}
	if !data.StartTime.IsZero() && !data.EndTime.IsZero() {
		fmt.Fprintf(f, "%-10s %s\n", "Total:", formatDuration(data.EndTime.Sub(data.StartTime)))
	}
	fmt.Fprintf(f, "%-10s %s, %s, %d-bit, %s\n", "Stream:",
		fmt.Sprintf("%d Hz", data.SampleRate),
		channelName(data.Channels),
		data.SampleWidth*8,
		formatDuration(time.Duration(data.DurationSecs*float64(time.Second))))
	fmt.Fprintln(f)
}

func writeSettingsSection(f *os.File, data ReportData) {
	writeSection(f, "Enhancement Settings")
	if data.ProfileName != "" {
		fmt.Fprintf(f, "Profile:          %s\n", data.ProfileName)
	}
	s := data.Settings
	fmt.Fprintf(f, "EQ low gain:      %+.1f dB\n", s.EQLowGainDB)
	fmt.Fprintf(f, "EQ mid gain:      %+.1f dB\n", s.EQMidGainDB)
	fmt.Fprintf(f, "EQ high gain:     %+.1f dB\n", s.EQHighGainDB)
	fmt.Fprintf(f, "Pre-emphasis:     %s\n", onOff(s.ApplyPreemphasis))
	fmt.Fprintf(f, "Noise reduction:  %s\n", onOff(s.NoiseReduction))
	fmt.Fprintf(f, "Target gain:      %+.1f dB\n", s.TargetGainDB)
	if s.HumNotch {
		if s.HumFrequency > 0 {
			fmt.Fprintf(f, "Hum notch:        on (%.0f Hz)\n", s.HumFrequency)
		} else {
			fmt.Fprintln(f, "Hum notch:        on (auto)")
		}
	} else {
		fmt.Fprintln(f, "Hum notch:        off")
	}
	fmt.Fprintln(f)
}

func writeMeasurementTable(f *os.File, data ReportData) {
	writeSection(f, "Music Stem Measurements")

	table := &MetricTable{
		Headers: []string{"Input", "Enhanced"},
		Rows: []MetricRow{
			{
				Label:  "RMS Level",
				Values: []string{formatDb(data.Input.RMS, 1), formatDb(data.Output.RMS, 1)},
				Unit:   "dBFS",
			},
			{
				Label:  "Peak Level",
				Values: []string{formatDb(data.Input.Peak, 1), formatDb(data.Output.Peak, 1)},
				Unit:   "dBFS",
			},
			{
				Label:  "Spectral Centroid",
				Values: []string{formatMetric(data.Input.CentroidHz, 0), formatMetric(data.Output.CentroidHz, 0)},
				Unit:   "Hz",
			},
			{
				Label:  "Spectral Rolloff",
				Values: []string{formatMetric(data.Input.RolloffHz, 0), formatMetric(data.Output.RolloffHz, 0)},
				Unit:   "Hz",
			},
			{
				Label:  "Low Band Energy",
				Values: []string{formatPercent(data.Input.LowEnergy), formatPercent(data.Output.LowEnergy)},
			},
			{
				Label:  "Mid Band Energy",
				Values: []string{formatPercent(data.Input.MidEnergy), formatPercent(data.Output.MidEnergy)},
			},
			{
				Label:  "High Band Energy",
				Values: []string{formatPercent(data.Input.HighEnergy), formatPercent(data.Output.HighEnergy)},
			},
		},
	}
	fmt.Fprint(f, table.String())
	fmt.Fprintln(f)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

func channelName(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d channels", channels)
	}
}
