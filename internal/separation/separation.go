// Package separation splits a mixed track into a background-music stem and a
// vocal stem using an external separation engine (demucs or spleeter). The
// stems always land at music.wav and vocals.wav inside the output directory,
// whatever layout the engine itself produces.
package separation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
)

// Engines supported by Separate.
const (
	EngineDemucs   = "demucs"
	EngineSpleeter = "spleeter"
)

// MinDuration is the shortest input the engines handle sensibly. Anything
// shorter fails up front instead of producing garbage stems.
const MinDuration = 0.2

var (
	// ErrSeparationFailed indicates the engine ran but did not produce the
	// expected stems, or could not run at all.
	ErrSeparationFailed = errors.New("source separation failed")

	// ErrUnknownEngine indicates a separation engine name outside the
	// supported set.
	ErrUnknownEngine = errors.New("unknown separation engine")

	// ErrInputTooShort indicates the input is below MinDuration.
	ErrInputTooShort = errors.New("audio too short for separation")
)

// Result holds the relocated stem paths.
type Result struct {
	MusicPath  string
	VocalsPath string
}

// HaveEngine reports whether the named engine's binary is on PATH.
func HaveEngine(engine string) bool {
	_, err := exec.LookPath(engine)
	return err == nil
}

// Separate splits audioPath into music and vocal stems under outputDir.
// The engine's own workspace layout is cleaned up after the stems have been
// moved into place; existing music.wav/vocals.wav files are replaced.
func Separate(ctx context.Context, audioPath, outputDir, engine string) (*Result, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("%w: %s", audio.ErrFileNotFound, audioPath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSeparationFailed, outputDir, err)
	}
	if err := checkDuration(audioPath); err != nil {
		return nil, err
	}

	var args []string
	var stems stemLayout
	switch engine {
	case EngineDemucs:
		args = demucsArgs(audioPath, outputDir)
		stems = demucsLayout(audioPath, outputDir)
	case EngineSpleeter:
		args = spleeterArgs(audioPath, outputDir)
		stems = spleeterLayout(audioPath, outputDir)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}

	cmd := exec.CommandContext(ctx, engine, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrSeparationFailed, engine, err, tail(out))
	}

	return relocateStems(stems, outputDir)
}

// stemLayout describes where an engine leaves its output.
type stemLayout struct {
	musicPath  string // the accompaniment/no-vocals stem
	vocalsPath string
	workspace  string // engine-owned directory removed after relocation
}

// trackStem returns the input filename without its extension, which both
// engines use to name their per-track output directory.
func trackStem(audioPath string) string {
	base := filepath.Base(audioPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// demucsArgs runs demucs in two-stem mode: one vocal stem, everything else
// merged into the accompaniment.
func demucsArgs(audioPath, outputDir string) []string {
	return []string{"--two-stems=vocals", "-o", outputDir, audioPath}
}

// demucsLayout: <out>/htdemucs/<track>/{no_vocals,vocals}.wav with the
// default model.
func demucsLayout(audioPath, outputDir string) stemLayout {
	modelDir := filepath.Join(outputDir, "htdemucs")
	trackDir := filepath.Join(modelDir, trackStem(audioPath))
	return stemLayout{
		musicPath:  filepath.Join(trackDir, "no_vocals.wav"),
		vocalsPath: filepath.Join(trackDir, "vocals.wav"),
		workspace:  modelDir,
	}
}

// spleeterArgs runs the 2-stem spleeter model.
func spleeterArgs(audioPath, outputDir string) []string {
	return []string{"separate", "-p", "spleeter:2stems", "-o", outputDir, audioPath}
}

// spleeterLayout: <out>/<track>/{accompaniment,vocals}.wav.
func spleeterLayout(audioPath, outputDir string) stemLayout {
	trackDir := filepath.Join(outputDir, trackStem(audioPath))
	return stemLayout{
		musicPath:  filepath.Join(trackDir, "accompaniment.wav"),
		vocalsPath: filepath.Join(trackDir, "vocals.wav"),
		workspace:  trackDir,
	}
}

// relocateStems moves the engine's stems to the canonical music.wav and
// vocals.wav paths and removes the engine workspace.
func relocateStems(stems stemLayout, outputDir string) (*Result, error) {
	if _, err := os.Stat(stems.musicPath); err != nil {
		return nil, fmt.Errorf("%w: expected stem missing: %s", ErrSeparationFailed, stems.musicPath)
	}
	if _, err := os.Stat(stems.vocalsPath); err != nil {
		return nil, fmt.Errorf("%w: expected stem missing: %s", ErrSeparationFailed, stems.vocalsPath)
	}

	musicTarget := filepath.Join(outputDir, "music.wav")
	vocalsTarget := filepath.Join(outputDir, "vocals.wav")

	if err := replaceFile(stems.musicPath, musicTarget); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeparationFailed, err)
	}
	if err := replaceFile(stems.vocalsPath, vocalsTarget); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeparationFailed, err)
	}

	// Best effort: the stems are already safe in their final location.
	os.RemoveAll(stems.workspace)

	return &Result{MusicPath: musicTarget, VocalsPath: vocalsTarget}, nil
}

func replaceFile(src, dst string) error {
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.Rename(src, dst)
}

// checkDuration rejects inputs too short to separate.
func checkDuration(audioPath string) error {
	buf, err := audio.Decode(audioPath)
	if err != nil {
		return err
	}
	if d := buf.Duration(); d < MinDuration {
		return fmt.Errorf("%w: %.3fs", ErrInputTooShort, d)
	}
	return nil
}

// tail returns the last few hundred bytes of command output for error
// context without flooding the message.
func tail(out []byte) string {
	const max = 400
	if len(out) <= max {
		return string(out)
	}
	return "..." + string(out[len(out)-max:])
}
