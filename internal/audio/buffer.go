// Package audio provides the normalised sample buffer and the codec that
// converts packed PCM containers to and from it.
package audio

// Buffer holds decoded audio as channel-major float64 samples normalised to
// roughly [-1, 1]. Values may transiently exceed that range between
// processing stages; Encode clips before quantising.
type Buffer struct {
	// Samples is indexed [channel][frame]. Every channel has the same length.
	Samples [][]float64

	// SampleRate in Hz.
	SampleRate int

	// SampleWidth is the quantisation width in bytes: 1, 2 or 4.
	SampleWidth int
}

// Channels returns the channel count.
func (b *Buffer) Channels() int {
	return len(b.Samples)
}

// Frames returns the per-channel frame count.
func (b *Buffer) Frames() int {
	if len(b.Samples) == 0 {
		return 0
	}
	return len(b.Samples[0])
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Clone returns a deep copy sharing no sample storage with the receiver.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		Samples:     make([][]float64, len(b.Samples)),
		SampleRate:  b.SampleRate,
		SampleWidth: b.SampleWidth,
	}
	for ch, samples := range b.Samples {
		out.Samples[ch] = append([]float64(nil), samples...)
	}
	return out
}

// NewBuffer allocates a zeroed buffer with the given shape.
func NewBuffer(channels, frames, sampleRate, sampleWidth int) *Buffer {
	samples := make([][]float64, channels)
	for ch := range samples {
		samples[ch] = make([]float64, frames)
	}
	return &Buffer{Samples: samples, SampleRate: sampleRate, SampleWidth: sampleWidth}
}
