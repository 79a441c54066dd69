package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/analysis"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/enhancer"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/pipeline"
)

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	settings := enhancer.DefaultSettings()
	settings.EQHighGainDB = 4
	settings.TargetGainDB = 1.5

	data := ReportData{
		InputPath:    filepath.Join(dir, "clip.mp4"),
		OutputPath:   filepath.Join(dir, "enhanced.wav"),
		VocalsPath:   filepath.Join(dir, "vocals.wav"),
		StartTime:    start,
		EndTime:      start.Add(95 * time.Second),
		ProfileName:  "bright",
		Settings:     settings,
		SampleRate:   44100,
		Channels:     2,
		SampleWidth:  2,
		DurationSecs: 212.5,
		Timings: []pipeline.StageTiming{
			{Stage: pipeline.StageExtract, Duration: 3 * time.Second},
			{Stage: pipeline.StageSeparate, Duration: 80 * time.Second},
			{Stage: pipeline.StageEnhance, Duration: 12 * time.Second},
		},
		Input:  analysis.Summary{RMS: 0.1, Peak: 0.5, CentroidHz: 1250, RolloffHz: 4800, LowEnergy: 0.3, MidEnergy: 0.5, HighEnergy: 0.1},
		Output: analysis.Summary{RMS: 0.12, Peak: 0.6, CentroidHz: 1430, RolloffHz: 5600, LowEnergy: 0.25, MidEnergy: 0.5, HighEnergy: 0.15},
	}

	logPath, err := GenerateReport(data)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}
	if logPath != filepath.Join(dir, "enhanced-enhanced.log") {
		t.Errorf("log path = %q", logPath)
	}

	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	report := string(raw)

	for _, want := range []string{
		"Audio Enhancement Report",
		"Run Summary",
		"Extract:",
		"Separate:",
		"Enhance:",
		"1m 35s", // total
		"44100 Hz, stereo, 16-bit",
		"Enhancement Settings",
		"Profile:          bright",
		"EQ high gain:     +4.0 dB",
		"Pre-emphasis:     on",
		"Hum notch:        off",
		"Music Stem Measurements",
		"RMS Level",
		"Spectral Centroid",
		"Mid Band Energy",
		"vocals.wav",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateReportMinimal(t *testing.T) {
	dir := t.TempDir()
	data := ReportData{
		InputPath:  filepath.Join(dir, "music.wav"),
		OutputPath: filepath.Join(dir, "out.wav"),
		EndTime:    time.Now(),
		Settings:   enhancer.DefaultSettings(),
		SampleRate: 44100,
		Channels:   1,
		SampleWidth: 2,
	}

	logPath, err := GenerateReport(data)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}
	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	report := string(raw)
	if strings.Contains(report, "Profile:") {
		t.Error("flag-driven run should not name a profile")
	}
	if strings.Contains(report, "Vocals:") {
		t.Error("report names a vocal stem that was not kept")
	}
	// Unmeasured summaries render as placeholders, not -Inf.
	if strings.Contains(report, "-Inf") || strings.Contains(report, "Inf") {
		t.Error("report leaked non-finite values")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30.0s"},
		{95 * time.Second, "1m 35s"},
		{3725 * time.Second, "1h 2m 5s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestChannelName(t *testing.T) {
	tests := []struct {
		channels int
		want     string
	}{
		{1, "mono"},
		{2, "stereo"},
		{6, "6 channels"},
	}
	for _, tt := range tests {
		if got := channelName(tt.channels); got != tt.want {
			t.Errorf("channelName(%d) = %q, want %q", tt.channels, got, tt.want)
		}
	}
}
