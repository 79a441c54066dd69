package extraction

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
)

func TestExtractArgs(t *testing.T) {
	args := extractArgs("clip.mp4", "out/audio.wav")

	want := []string{
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", "clip.mp4",
		"-vn",
		"-acodec", "pcm_s16le",
		"out/audio.wav",
	}
	if len(args) != len(want) {
		t.Fatalf("got %d args, want %d: %v", len(args), len(want), args)
	}
	for i, w := range want {
		if args[i] != w {
			t.Errorf("args[%d] = %q, want %q", i, args[i], w)
		}
	}
}

func TestExtractAudioMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := ExtractAudio(context.Background(), filepath.Join(dir, "missing.mp4"), filepath.Join(dir, "out.wav"))
	if !errors.Is(err, audio.ErrFileNotFound) {
		t.Errorf("got %v, want ErrFileNotFound", err)
	}
}

func TestTail(t *testing.T) {
	short := []byte("brief output")
	if got := tail(short); got != "brief output" {
		t.Errorf("tail(short) = %q", got)
	}

	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'x'
	}
	got := tail(long)
	if len(got) != 403 {
		t.Errorf("tail(long) length = %d, want 403", len(got))
	}
	if got[:3] != "..." {
		t.Errorf("tail(long) missing ellipsis prefix")
	}
}
