package audio

import (
	"math"
	"testing"
)

// testSignalOptions configures the synthetic audio generated for tests.
type testSignalOptions struct {
	DurationSecs float64 // Total duration in seconds (default 1.0)
	SampleRate   int     // Sample rate (default 44100)
	Channels     int     // Channel count (default 1)
	ToneFreq     float64 // Sine frequency in Hz (0 = no tone)
	ToneLevel    float64 // Tone level in dBFS (e.g. -6.0)
	NoiseLevel   float64 // White noise level in dBFS (0 = no noise)
}

// generateTestBuffer builds a deterministic synthetic Buffer containing an
// optional sine tone plus optional white noise on every channel.
func generateTestBuffer(t *testing.T, opts testSignalOptions) *Buffer {
	t.Helper()

	if opts.SampleRate == 0 {
		opts.SampleRate = 44100
	}
	if opts.DurationSecs == 0 {
		opts.DurationSecs = 1.0
	}
	if opts.Channels == 0 {
		opts.Channels = 1
	}

	frames := int(opts.DurationSecs * float64(opts.SampleRate))
	buf := NewBuffer(opts.Channels, frames, opts.SampleRate, 2)

	toneAmp := 0.0
	if opts.ToneFreq > 0 && opts.ToneLevel < 0 {
		toneAmp = math.Pow(10.0, opts.ToneLevel/20.0)
	}
	noiseAmp := 0.0
	if opts.NoiseLevel < 0 {
		noiseAmp = math.Pow(10.0, opts.NoiseLevel/20.0)
	}

	// Deterministic LCG noise, seeded per channel so channels differ.
	for ch := 0; ch < opts.Channels; ch++ {
		rngState := uint32(12345 + ch)
		nextRandom := func() float64 {
			// LCG parameters from Numerical Recipes
			rngState = rngState*1664525 + 1013904223
			return (float64(rngState)/float64(0xFFFFFFFF))*2.0 - 1.0
		}

		for i := 0; i < frames; i++ {
			var sample float64
			if toneAmp > 0 {
				at := float64(i) / float64(opts.SampleRate)
				sample += toneAmp * math.Sin(2.0*math.Pi*opts.ToneFreq*at)
			}
			if noiseAmp > 0 {
				sample += noiseAmp * nextRandom()
			}
			buf.Samples[ch][i] = sample
		}
	}
	return buf
}
