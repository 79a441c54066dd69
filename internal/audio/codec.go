package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Sample widths the codec quantises to, in bytes.
var supportedWidths = map[int]bool{1: true, 2: true, 4: true}

// decodeScale returns the divisor used to normalise raw integers on decode.
// Full positive range (2^(bits-1)) rather than the symmetric 2^(bits-1)-1,
// so the most negative code maps exactly to -1.0.
func decodeScale(width int) float64 {
	return float64(int64(1) << (8*width - 1))
}

// encodeScale returns the multiplier used on encode. Symmetric range, so a
// clipped +1.0 sample cannot overflow the target integer type.
func encodeScale(width int) float64 {
	return float64(int64(1)<<(8*width-1)) - 1
}

// FromPCM deinterleaves packed integer samples into a normalised Buffer.
// data is frame-major (the wire layout); the result is channel-major.
func FromPCM(data []int, channels, sampleRate, sampleWidth int) (*Buffer, error) {
	if !supportedWidths[sampleWidth] {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedFormat, sampleWidth*8)
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrDecodeFailure, channels)
	}

	frames := len(data) / channels
	buf := NewBuffer(channels, frames, sampleRate, sampleWidth)
	scale := decodeScale(sampleWidth)
	for frame := 0; frame < frames; frame++ {
		base := frame * channels
		for ch := 0; ch < channels; ch++ {
			buf.Samples[ch][frame] = float64(data[base+ch]) / scale
		}
	}
	return buf, nil
}

// ToPCM clips, quantises and interleaves a Buffer back into packed integers.
func ToPCM(buf *Buffer) ([]int, error) {
	if !supportedWidths[buf.SampleWidth] {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedFormat, buf.SampleWidth*8)
	}

	channels := buf.Channels()
	frames := buf.Frames()
	scale := encodeScale(buf.SampleWidth)
	data := make([]int, channels*frames)
	for ch := 0; ch < channels; ch++ {
		for frame, sample := range buf.Samples[ch] {
			data[frame*channels+ch] = int(math.Round(clip(sample) * scale))
		}
	}
	return data, nil
}

func clip(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}

// Decode reads an audio container into a normalised Buffer. WAV is decoded
// natively; any other container is transcoded through ffmpeg first.
func Decode(path string) (*Buffer, error) {
	if _, err := os.Stat(path); err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailure, path, err)
	}

	if FormatForPath(path) == "wav" {
		return DecodeWAV(path)
	}

	// Non-WAV input: round-trip through a temporary WAV produced by ffmpeg.
	tmp, err := os.CreateTemp("", "enhancer-decode-*.wav")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailure, path, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := transcode(path, tmpPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailure, path, err)
	}
	return DecodeWAV(tmpPath)
}

// DecodeWAV reads a WAV file into a normalised Buffer.
func DecodeWAV(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailure, path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s: not a valid WAV file", ErrDecodeFailure, path)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailure, path, err)
	}

	width := int(dec.BitDepth) / 8
	if !supportedWidths[width] {
		return nil, fmt.Errorf("%w: %s: %d bits", ErrUnsupportedFormat, path, dec.BitDepth)
	}

	// 8-bit WAV is unsigned on the wire; recentre before normalising.
	if width == 1 {
		for i, v := range pcm.Data {
			pcm.Data[i] = v - 128
		}
	}

	buf, err := FromPCM(pcm.Data, pcm.Format.NumChannels, pcm.Format.SampleRate, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// Encode writes a Buffer to path. The container format is inferred from the
// path extension (WAV when absent or unrecognised); non-WAV targets are
// written as WAV and transcoded with ffmpeg. Parent directories are created;
// an existing file at path is overwritten.
func Encode(buf *Buffer, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeFailure, path, err)
	}

	if FormatForPath(path) == "wav" {
		return EncodeWAV(buf, path)
	}

	tmp, err := os.CreateTemp("", "enhancer-encode-*.wav")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeFailure, path, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := EncodeWAV(buf, tmpPath); err != nil {
		return err
	}
	if err := transcode(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeFailure, path, err)
	}
	return nil
}

// EncodeWAV writes a Buffer as PCM WAV.
func EncodeWAV(buf *Buffer, path string) error {
	data, err := ToPCM(buf)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// Undo the signed recentring for 8-bit output.
	if buf.SampleWidth == 1 {
		for i, v := range data {
			data[i] = v + 128
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeFailure, path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, buf.SampleRate, buf.SampleWidth*8, buf.Channels(), 1)
	pcm := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: buf.Channels(), SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: buf.SampleWidth * 8,
	}
	if err := enc.Write(pcm); err != nil {
		enc.Close()
		return fmt.Errorf("%w: %s: %v", ErrEncodeFailure, path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeFailure, path, err)
	}
	return nil
}

// FormatForPath returns the container format implied by a path extension,
// defaulting to "wav" when the extension is absent.
func FormatForPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "wav"
	}
	return ext
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
