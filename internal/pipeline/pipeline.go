// Package pipeline orchestrates a full run: extract the audio track from the
// input, separate the music stem from the vocals, and enhance the music stem.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/analysis"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/enhancer"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/extraction"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/separation"
)

// Stage identifies one step of a run.
type Stage int

const (
	StageExtract Stage = iota
	StageSeparate
	StageEnhance
)

func (s Stage) String() string {
	switch s {
	case StageExtract:
		return "Extract"
	case StageSeparate:
		return "Separate"
	case StageEnhance:
		return "Enhance"
	default:
		return "Unknown"
	}
}

// ProgressFunc receives stage progress in [0, 1]. External tools report no
// intermediate progress, so each stage fires at 0 and at 1.
type ProgressFunc func(stage Stage, progress float64)

// Config describes one pipeline run.
type Config struct {
	// InputPath is the source video or audio file.
	InputPath string

	// OutputPath is where the enhanced music stem lands.
	OutputPath string

	// WorkDir holds intermediate files (extracted track, stems).
	WorkDir string

	// Engine selects the separation backend (separation.EngineDemucs or
	// separation.EngineSpleeter).
	Engine string

	// SkipSeparation treats the input as an already-isolated music stem.
	SkipSeparation bool

	// IsolateVocals keeps the vocal stem next to the output instead of
	// leaving it in the work directory.
	IsolateVocals bool

	// VocalsOnly enhances the vocal stem instead of the music stem.
	VocalsOnly bool

	// Settings is the resolved enhancement configuration.
	Settings enhancer.Settings
}

// StageTiming records how long one stage ran.
type StageTiming struct {
	Stage    Stage
	Duration time.Duration
}

// Result collects the artefacts of a completed run.
type Result struct {
	// OutputPath is the enhanced music stem.
	OutputPath string

	// VocalsPath is the isolated vocal stem, empty unless requested.
	VocalsPath string

	// Timings lists the stages that actually ran, in order.
	Timings []StageTiming

	// Input and Output summarise the music stem before and after
	// enhancement, for the report and the completion view.
	Input  analysis.Summary
	Output analysis.Summary
}

// audioExtensions lists container extensions treated as audio input, which
// skips the extraction stage.
var audioExtensions = map[string]bool{
	".wav": true, ".mp3": true, ".flac": true, ".ogg": true,
	".m4a": true, ".aac": true, ".opus": true, ".aiff": true,
}

// IsAudioPath reports whether path looks like an audio file rather than a
// video container.
func IsAudioPath(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// checkDependencies probes every external tool the configured run needs and
// reports all missing ones at once.
func checkDependencies(cfg Config) error {
	var missing []string

	needFFmpeg := !IsAudioPath(cfg.InputPath) ||
		audio.FormatForPath(cfg.InputPath) != "wav" ||
		audio.FormatForPath(cfg.OutputPath) != "wav"
	if needFFmpeg && !audio.HaveFFmpeg() {
		missing = append(missing, "ffmpeg")
	}
	if !cfg.SkipSeparation && !separation.HaveEngine(cfg.Engine) {
		missing = append(missing, cfg.Engine)
	}

	if len(missing) > 0 {
		return &enhancer.DependencyError{Missing: missing}
	}
	return nil
}

// Run executes the configured pipeline. Stages that the configuration makes
// redundant (extraction for audio input, separation when skipped) do not
// appear in the result timings.
func Run(ctx context.Context, cfg Config, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(Stage, float64) {}
	}

	if _, err := os.Stat(cfg.InputPath); err != nil {
		return nil, fmt.Errorf("%w: %s", audio.ErrFileNotFound, cfg.InputPath)
	}
	if err := checkDependencies(cfg); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating work directory %s: %w", cfg.WorkDir, err)
	}

	res := &Result{}
	track := cfg.InputPath

	if !IsAudioPath(cfg.InputPath) {
		extracted := filepath.Join(cfg.WorkDir, "extracted.wav")
		var err error
		track, err = timeStage(res, StageExtract, progress, func() (string, error) {
			return extraction.ExtractAudio(ctx, cfg.InputPath, extracted)
		})
		if err != nil {
			return nil, err
		}
	}

	musicStem := track
	if !cfg.SkipSeparation {
		stems, err := timeStageResult(res, StageSeparate, progress, func() (*separation.Result, error) {
			return separation.Separate(ctx, track, cfg.WorkDir, cfg.Engine)
		})
		if err != nil {
			return nil, err
		}
		musicStem = stems.MusicPath
		if cfg.VocalsOnly {
			musicStem = stems.VocalsPath
		}
		if cfg.IsolateVocals {
			vocalsOut := filepath.Join(filepath.Dir(cfg.OutputPath), "vocals.wav")
			if err := copyFile(stems.VocalsPath, vocalsOut); err != nil {
				return nil, fmt.Errorf("keeping vocal stem: %w", err)
			}
			res.VocalsPath = vocalsOut
		}
	}

	out, err := timeStage(res, StageEnhance, progress, func() (string, error) {
		return enhancer.Enhance(musicStem, cfg.OutputPath, cfg.Settings)
	})
	if err != nil {
		return nil, err
	}
	res.OutputPath = out

	// Measurement failures only cost the report its numbers.
	if in, err := audio.Decode(musicStem); err == nil {
		res.Input = analysis.Measure(in)
	}
	if enhanced, err := audio.Decode(cfg.OutputPath); err == nil {
		res.Output = analysis.Measure(enhanced)
	}
	return res, nil
}

// timeStage wraps a string-returning stage with progress and timing capture.
func timeStage(res *Result, stage Stage, progress ProgressFunc, fn func() (string, error)) (string, error) {
	progress(stage, 0)
	start := time.Now()
	out, err := fn()
	if err != nil {
		return "", err
	}
	res.Timings = append(res.Timings, StageTiming{Stage: stage, Duration: time.Since(start)})
	progress(stage, 1)
	return out, nil
}

// timeStageResult is timeStage for the separation stage's richer return.
func timeStageResult(res *Result, stage Stage, progress ProgressFunc, fn func() (*separation.Result, error)) (*separation.Result, error) {
	progress(stage, 0)
	start := time.Now()
	out, err := fn()
	if err != nil {
		return nil, err
	}
	res.Timings = append(res.Timings, StageTiming{Stage: stage, Duration: time.Since(start)})
	progress(stage, 1)
	return out, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
