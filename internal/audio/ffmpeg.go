package audio

import (
	"fmt"
	"os/exec"
)

// ffmpegBinary is the decoder/encoder used for every container the native
// WAV codec cannot handle. Overridable for tests.
var ffmpegBinary = "ffmpeg"

// HaveFFmpeg reports whether the ffmpeg binary is on PATH.
func HaveFFmpeg() bool {
	_, err := exec.LookPath(ffmpegBinary)
	return err == nil
}

// transcode converts src to dst, letting ffmpeg infer both container
// formats from the file extensions.
func transcode(src, dst string) error {
	cmd := exec.Command(ffmpegBinary, transcodeArgs(src, dst)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg transcode %s -> %s: %v: %s", src, dst, err, tail(out))
	}
	return nil
}

// transcodeArgs builds the ffmpeg argument list for a plain transcode.
// -y overwrites the destination; no filters, so sample data passes through
// untouched apart from the container's own quantisation.
func transcodeArgs(src, dst string) []string {
	return []string{"-hide_banner", "-loglevel", "error", "-y", "-i", src, dst}
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
