package enhancer

import (
	"math"
	"testing"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
)

// sineChannel generates amp*sin(2*pi*freq*t) at the given rate.
func sineChannel(freq, amp float64, sampleRate int, durationSecs float64) []float64 {
	frames := int(durationSecs * float64(sampleRate))
	out := make([]float64, frames)
	for i := range out {
		at := float64(i) / float64(sampleRate)
		out[i] = amp * math.Sin(2.0*math.Pi*freq*at)
	}
	return out
}

// noiseChannel generates deterministic LCG white noise at the given amplitude.
func noiseChannel(amp float64, frames int, seed uint32) []float64 {
	out := make([]float64, frames)
	state := seed
	for i := range out {
		// LCG parameters from Numerical Recipes
		state = state*1664525 + 1013904223
		out[i] = amp * ((float64(state)/float64(0xFFFFFFFF))*2.0 - 1.0)
	}
	return out
}

// toneBuffer wraps a sine channel in a 16-bit Buffer.
func toneBuffer(t *testing.T, freq, amp float64, sampleRate int, durationSecs float64) *audio.Buffer {
	t.Helper()
	buf := &audio.Buffer{
		Samples:     [][]float64{sineChannel(freq, amp, sampleRate, durationSecs)},
		SampleRate:  sampleRate,
		SampleWidth: 2,
	}
	return buf
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func peak(samples []float64) float64 {
	var p float64
	for _, v := range samples {
		if a := math.Abs(v); a > p {
			p = a
		}
	}
	return p
}
