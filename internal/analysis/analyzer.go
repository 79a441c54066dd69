// Package analysis measures level and spectral shape of a buffer. The
// numbers feed the enhancement report and the completion summary, so they
// favour robustness over exactness; nothing downstream makes decisions on
// them.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
)

// STFT frame geometry. 4096 samples at 44.1 kHz is roughly 93 ms per frame
// with 50% overlap.
const (
	fftSize = 4096
	hopSize = fftSize / 2
)

// Band edges mirror the equaliser so the report's band energies line up with
// the gains the user set.
const (
	lowBandEdgeHz  = 200.0
	midBandEdgeHz  = 2000.0
	highBandEdgeHz = 4000.0
)

// rolloffFraction is the cumulative-energy fraction defining the spectral
// rolloff point.
const rolloffFraction = 0.85

// Summary holds the measured characteristics of a buffer.
type Summary struct {
	// RMS and Peak are linear amplitudes in [0, 1] for in-range audio.
	RMS  float64
	Peak float64

	// CentroidHz is the power-weighted mean frequency.
	CentroidHz float64

	// RolloffHz is the frequency below which 85% of spectral energy sits.
	RolloffHz float64

	// Band energy fractions (low <200 Hz, mid 200–2000 Hz, high >4000 Hz).
	// They need not sum to 1; the 2–4 kHz region belongs to no band.
	LowEnergy  float64
	MidEnergy  float64
	HighEnergy float64
}

// Measure computes a Summary over all channels of buf. Channels are mixed
// down to mono before the spectral pass; level metrics run over the
// individual samples.
func Measure(buf *audio.Buffer) Summary {
	var s Summary
	if buf == nil || buf.Frames() == 0 || buf.Channels() == 0 {
		return s
	}

	var sumSq float64
	n := 0
	for _, channel := range buf.Samples {
		for _, v := range channel {
			sumSq += v * v
			if a := math.Abs(v); a > s.Peak {
				s.Peak = a
			}
			n++
		}
	}
	s.RMS = math.Sqrt(sumSq / float64(n))

	mono := mixdown(buf)
	spectrum := powerSpectrum(mono)
	fillSpectralMetrics(&s, spectrum, buf.SampleRate)
	return s
}

// mixdown averages all channels into one.
func mixdown(buf *audio.Buffer) []float64 {
	if buf.Channels() == 1 {
		return buf.Samples[0]
	}
	frames := buf.Frames()
	mono := make([]float64, frames)
	scale := 1.0 / float64(buf.Channels())
	for _, channel := range buf.Samples {
		for i, v := range channel {
			mono[i] += v * scale
		}
	}
	return mono
}

// powerSpectrum accumulates Hann-windowed FFT power over overlapping frames.
// Short signals are zero-padded into a single frame.
func powerSpectrum(mono []float64) []float64 {
	fft := fourier.NewFFT(fftSize)
	window := hannWindow(fftSize)
	power := make([]float64, fftSize/2+1)
	frame := make([]float64, fftSize)
	coeffs := make([]complex128, fftSize/2+1)

	starts := 0
	for start := 0; start == 0 || start+fftSize <= len(mono); start += hopSize {
		for i := range frame {
			if start+i < len(mono) {
				frame[i] = mono[start+i] * window[i]
			} else {
				frame[i] = 0
			}
		}
		fft.Coefficients(coeffs, frame)
		for i, c := range coeffs {
			power[i] += real(c)*real(c) + imag(c)*imag(c)
		}
		starts++
	}

	if starts > 1 {
		for i := range power {
			power[i] /= float64(starts)
		}
	}
	return power
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// fillSpectralMetrics derives centroid, rolloff and band fractions from an
// averaged power spectrum.
func fillSpectralMetrics(s *Summary, power []float64, sampleRate int) {
	binHz := float64(sampleRate) / float64(fftSize)

	var total, weighted float64
	for i, p := range power {
		freq := float64(i) * binHz
		total += p
		weighted += p * freq
	}
	if total <= 0 {
		return
	}
	s.CentroidHz = weighted / total

	var cumulative float64
	for i, p := range power {
		cumulative += p
		if cumulative >= rolloffFraction*total {
			s.RolloffHz = float64(i) * binHz
			break
		}
	}

	var low, mid, high float64
	for i, p := range power {
		freq := float64(i) * binHz
		switch {
		case freq < lowBandEdgeHz:
			low += p
		case freq <= midBandEdgeHz:
			mid += p
		case freq > highBandEdgeHz:
			high += p
		}
	}
	s.LowEnergy = low / total
	s.MidEnergy = mid / total
	s.HighEnergy = high / total
}
