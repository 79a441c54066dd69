// Package enhancer implements the music-stem enhancement chain: optional
// mains-hum notch and pre-emphasis, a three-band equaliser, adaptive noise
// reduction and final gain staging.
package enhancer

import "math"

// Equaliser band edges. The low shelf covers content below 200 Hz, the mid
// band 200–2000 Hz and the high shelf everything above 4000 Hz.
const (
	eqLowCutoffHz  = 200.0
	eqMidLowHz     = 200.0
	eqMidHighHz    = 2000.0
	eqHighCutoffHz = 4000.0
)

// Normalised-frequency clamp. Keeps filter design stable at low sample
// rates where a band edge can land on or above Nyquist.
const (
	minNormalisedFreq = 1e-4
	maxNormalisedFreq = 0.99
)

// PreemphasisCoeff is the first-order pre-emphasis coefficient:
// y[n] = x[n] - k*x[n-1].
const PreemphasisCoeff = 0.97

// humNotchQ is the quality factor of the mains-hum notch. High Q keeps the
// notch narrow so only the hum fundamental is attenuated.
const humNotchQ = 30.0

// DbToLinear converts a decibel gain to a linear amplitude factor.
func DbToLinear(db float64) float64 {
	return math.Pow(10, db/20.0)
}

// LinearToDb converts a linear amplitude factor to decibels.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return -120.0 // Practical floor for audio
	}
	return 20.0 * math.Log10(linear)
}

// biquad is a second-order IIR section with coefficients normalised by a0.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// apply runs the section over src with zero initial state (one-shot filter
// semantics) using the transposed direct form II structure.
func (f biquad) apply(src []float64) []float64 {
	out := make([]float64, len(src))
	var z1, z2 float64
	for i, x := range src {
		y := f.b0*x + z1
		z1 = f.b1*x - f.a1*y + z2
		z2 = f.b2*x - f.a2*y
		out[i] = y
	}
	return out
}

// applyChain runs src through each section in order.
func applyChain(src []float64, sections []biquad) []float64 {
	out := src
	for _, s := range sections {
		out = s.apply(out)
	}
	return out
}

// butterworthQ holds the per-section quality factors that realise a
// 4th-order Butterworth response as two cascaded biquads:
// Q_k = 1 / (2*cos((2k+1)*pi/2N)) for N=4.
var butterworthQ = [2]float64{0.54119610, 1.30656296}

// normalisedFreq converts a cutoff in Hz to the (0, 0.99] normalised range
// used by the filter designers.
func normalisedFreq(freqHz float64, sampleRate int) float64 {
	nyquist := float64(sampleRate) / 2.0
	n := freqHz / nyquist
	if n < minNormalisedFreq {
		return minNormalisedFreq
	}
	if n > maxNormalisedFreq {
		return maxNormalisedFreq
	}
	return n
}

// lowpassSections designs a 4th-order Butterworth low-pass at the given
// normalised cutoff (1.0 = Nyquist).
func lowpassSections(norm float64) []biquad {
	sections := make([]biquad, 0, len(butterworthQ))
	w0 := math.Pi * norm
	cosW0 := math.Cos(w0)
	sinW0 := math.Sin(w0)
	for _, q := range butterworthQ {
		alpha := sinW0 / (2 * q)
		a0 := 1 + alpha
		sections = append(sections, biquad{
			b0: (1 - cosW0) / 2 / a0,
			b1: (1 - cosW0) / a0,
			b2: (1 - cosW0) / 2 / a0,
			a1: -2 * cosW0 / a0,
			a2: (1 - alpha) / a0,
		})
	}
	return sections
}

// highpassSections designs a 4th-order Butterworth high-pass at the given
// normalised cutoff.
func highpassSections(norm float64) []biquad {
	sections := make([]biquad, 0, len(butterworthQ))
	w0 := math.Pi * norm
	cosW0 := math.Cos(w0)
	sinW0 := math.Sin(w0)
	for _, q := range butterworthQ {
		alpha := sinW0 / (2 * q)
		a0 := 1 + alpha
		sections = append(sections, biquad{
			b0: (1 + cosW0) / 2 / a0,
			b1: -(1 + cosW0) / a0,
			b2: (1 + cosW0) / 2 / a0,
			a1: -2 * cosW0 / a0,
			a2: (1 - alpha) / a0,
		})
	}
	return sections
}

// notchSection designs a single notch biquad at the given normalised centre
// frequency and quality factor.
func notchSection(norm, q float64) biquad {
	w0 := math.Pi * norm
	cosW0 := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha
	return biquad{
		b0: 1 / a0,
		b1: -2 * cosW0 / a0,
		b2: 1 / a0,
		a1: -2 * cosW0 / a0,
		a2: (1 - alpha) / a0,
	}
}

// Equalise applies the three-band equaliser to a single channel. The output
// is the sum of the low, mid and high band-filtered copies of the input,
// each scaled by its linear gain. Band-pass is realised as high-pass at the
// low edge cascaded with low-pass at the high edge. With all gains at 0 dB
// the bands approximately reconstruct the source.
func Equalise(channel []float64, sampleRate int, lowGainDB, midGainDB, highGainDB float64) []float64 {
	low := applyChain(channel, lowpassSections(normalisedFreq(eqLowCutoffHz, sampleRate)))
	mid := applyChain(channel, highpassSections(normalisedFreq(eqMidLowHz, sampleRate)))
	mid = applyChain(mid, lowpassSections(normalisedFreq(eqMidHighHz, sampleRate)))
	high := applyChain(channel, highpassSections(normalisedFreq(eqHighCutoffHz, sampleRate)))

	lowGain := DbToLinear(lowGainDB)
	midGain := DbToLinear(midGainDB)
	highGain := DbToLinear(highGainDB)

	out := make([]float64, len(channel))
	for i := range channel {
		out[i] = low[i]*lowGain + mid[i]*midGain + high[i]*highGain
	}
	return out
}

// Preemphasis applies the first-order high-frequency boost
// y[n] = x[n] - k*x[n-1]. The sample preceding the channel is extrapolated
// as 2*x[0]-x[1] so the filter does not introduce an onset click.
func Preemphasis(channel []float64) []float64 {
	out := make([]float64, len(channel))
	if len(channel) == 0 {
		return out
	}

	prev := channel[0]
	if len(channel) > 1 {
		prev = 2*channel[0] - channel[1]
	}
	for i, x := range channel {
		out[i] = x - PreemphasisCoeff*prev
		prev = x
	}
	return out
}

// HumNotch attenuates a narrow band around the mains frequency (and nothing
// else) on a single channel.
func HumNotch(channel []float64, sampleRate int, humFreqHz float64) []float64 {
	return notchSection(normalisedFreq(humFreqHz, sampleRate), humNotchQ).apply(channel)
}
