// Package extraction pulls the audio track out of a video container as
// 16-bit PCM WAV using ffmpeg.
package extraction

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
)

// ErrExtractionFailed indicates ffmpeg could not produce an audio track from
// the video, including the case where the container has no audio stream.
var ErrExtractionFailed = errors.New("audio extraction failed")

// ffmpegBinary is overridable for tests.
var ffmpegBinary = "ffmpeg"

// ExtractAudio demuxes and decodes the audio stream of videoPath into a WAV
// file at outputPath and returns the output path. Parent directories are
// created as needed; an existing file at outputPath is overwritten.
func ExtractAudio(ctx context.Context, videoPath, outputPath string) (string, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return "", fmt.Errorf("%w: %s", audio.ErrFileNotFound, videoPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExtractionFailed, outputPath, err)
	}

	cmd := exec.CommandContext(ctx, ffmpegBinary, extractArgs(videoPath, outputPath)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v: %s", ErrExtractionFailed, videoPath, err, tail(out))
	}

	// ffmpeg can exit zero without writing anything when the input has no
	// usable audio stream.
	if _, err := os.Stat(outputPath); err != nil {
		return "", fmt.Errorf("%w: no audio track found in %s", ErrExtractionFailed, videoPath)
	}
	return outputPath, nil
}

// extractArgs builds the ffmpeg argument list: drop the video stream, decode
// audio to signed 16-bit little-endian PCM.
func extractArgs(videoPath, outputPath string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		outputPath,
	}
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
