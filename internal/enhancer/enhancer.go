package enhancer

import (
	"math"
	"path/filepath"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
	"github.com/Keobu/Audio-Extractor-Emhancer/internal/mains"
)

// EnhanceBuffer runs the enhancement chain over every channel of a buffer
// and returns a new buffer; the input is not modified. Channels are
// processed independently, so mono content in one channel never bleeds
// into another. The per-channel chain is hum notch (when enabled),
// pre-emphasis, equaliser, noise reduction; the target gain is applied
// across all channels at the end.
func EnhanceBuffer(buf *audio.Buffer, settings Settings) *audio.Buffer {
	out := audio.NewBuffer(buf.Channels(), buf.Frames(), buf.SampleRate, buf.SampleWidth)

	humFreq := settings.HumFrequency
	if settings.HumNotch && humFreq == 0 {
		humFreq = mains.Frequency()
	}

	for ch, channel := range buf.Samples {
		if settings.HumNotch {
			channel = HumNotch(channel, buf.SampleRate, humFreq)
		}
		if settings.ApplyPreemphasis {
			channel = Preemphasis(channel)
		}
		channel = Equalise(channel, buf.SampleRate,
			settings.EQLowGainDB, settings.EQMidGainDB, settings.EQHighGainDB)
		if settings.NoiseReduction {
			channel = ReduceNoise(channel)
		}
		copy(out.Samples[ch], channel)
	}

	if math.Abs(settings.TargetGainDB) > gainEpsilonDB {
		gain := DbToLinear(settings.TargetGainDB)
		for _, channel := range out.Samples {
			for i := range channel {
				channel[i] *= gain
			}
		}
	}
	return out
}

// Enhance reads the track at inputPath, applies the enhancement chain and
// writes the result to outputPath, returning the absolute output path.
// Required external tools are probed up front so a missing installation
// fails before any decoding starts.
func Enhance(inputPath, outputPath string, settings Settings) (string, error) {
	if err := checkDependencies(inputPath, outputPath); err != nil {
		return "", err
	}

	buf, err := audio.Decode(inputPath)
	if err != nil {
		return "", err
	}

	enhanced := EnhanceBuffer(buf, settings)

	if err := audio.Encode(enhanced, outputPath); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		// The file was written; fall back to the path as given.
		return outputPath, nil
	}
	return abs, nil
}
