package pipeline

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/enhancer"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/separation"
)

func writeTone(t *testing.T, path string, durationSecs float64) {
	t.Helper()

	const sampleRate = 44100
	frames := int(durationSecs * sampleRate)
	buf := audio.NewBuffer(1, frames, sampleRate, 2)
	for i := 0; i < frames; i++ {
		at := float64(i) / sampleRate
		buf.Samples[0][i] = 0.25 * math.Sin(2.0*math.Pi*440.0*at)
	}
	if err := audio.Encode(buf, path); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestIsAudioPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"track.wav", true},
		{"track.WAV", true},
		{"track.mp3", true},
		{"track.flac", true},
		{"clip.mp4", false},
		{"clip.mkv", false},
		{"clip.avi", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsAudioPath(tt.path); got != tt.want {
			t.Errorf("IsAudioPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageExtract, "Extract"},
		{StageSeparate, "Separate"},
		{StageEnhance, "Enhance"},
		{Stage(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		InputPath:      filepath.Join(dir, "missing.wav"),
		OutputPath:     filepath.Join(dir, "out.wav"),
		WorkDir:        filepath.Join(dir, "work"),
		SkipSeparation: true,
		Settings:       enhancer.DefaultSettings(),
	}
	_, err := Run(context.Background(), cfg, nil)
	if !errors.Is(err, audio.ErrFileNotFound) {
		t.Errorf("got %v, want ErrFileNotFound", err)
	}
}

func TestRunMissingEngineReportsDependency(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "track.wav")
	writeTone(t, inPath, 0.5)

	cfg := Config{
		InputPath:  inPath,
		OutputPath: filepath.Join(dir, "out.wav"),
		WorkDir:    filepath.Join(dir, "work"),
		Engine:     "definitely-not-installed-engine",
		Settings:   enhancer.DefaultSettings(),
	}
	_, err := Run(context.Background(), cfg, nil)

	var depErr *enhancer.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("got %v, want DependencyError", err)
	}
	found := false
	for _, m := range depErr.Missing {
		if m == cfg.Engine {
			found = true
		}
	}
	if !found {
		t.Errorf("missing list %v does not name the engine", depErr.Missing)
	}
}

func TestRunSkipSeparationEnhancesDirectly(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "music.wav")
	outPath := filepath.Join(dir, "enhanced.wav")
	writeTone(t, inPath, 0.5)

	var stages []Stage
	cfg := Config{
		InputPath:      inPath,
		OutputPath:     outPath,
		WorkDir:        filepath.Join(dir, "work"),
		Engine:         separation.EngineDemucs,
		SkipSeparation: true,
		Settings:       enhancer.DefaultSettings(),
	}
	res, err := Run(context.Background(), cfg, func(stage Stage, progress float64) {
		if progress == 0 {
			stages = append(stages, stage)
		}
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(stages) != 1 || stages[0] != StageEnhance {
		t.Errorf("stages ran = %v, want only Enhance", stages)
	}
	if len(res.Timings) != 1 || res.Timings[0].Stage != StageEnhance {
		t.Errorf("timings = %v, want only Enhance", res.Timings)
	}

	out, err := audio.Decode(res.OutputPath)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if out.Frames() != 22050 {
		t.Errorf("output frames = %d, want 22050", out.Frames())
	}
	if res.Input.RMS <= 0 || res.Output.RMS <= 0 {
		t.Errorf("summaries not populated: in %v out %v", res.Input.RMS, res.Output.RMS)
	}
	if res.VocalsPath != "" {
		t.Errorf("vocals path = %q, want empty without isolation", res.VocalsPath)
	}
}

func TestRunAppliesGain(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "music.wav")
	writeTone(t, inPath, 0.5)

	settings := enhancer.Settings{TargetGainDB: 6}
	cfg := Config{
		InputPath:      inPath,
		OutputPath:     filepath.Join(dir, "enhanced.wav"),
		WorkDir:        filepath.Join(dir, "work"),
		SkipSeparation: true,
		Settings:       settings,
	}
	res, err := Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Output.Peak <= res.Input.Peak {
		t.Errorf("peak did not rise: %v -> %v", res.Input.Peak, res.Output.Peak)
	}
}
