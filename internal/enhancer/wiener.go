package enhancer

// wienerWindow is the moving-window length used for local statistics.
const wienerWindow = 3

// ReduceNoise applies adaptive Wiener filtering to a single channel. The
// noise power is estimated as the mean of the local variances; where the
// local variance falls below that estimate the output collapses to the
// local mean, suppressing low-level hiss while leaving tonal content
// largely intact.
func ReduceNoise(channel []float64) []float64 {
	n := len(channel)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	localMean := make([]float64, n)
	localVar := make([]float64, n)
	half := wienerWindow / 2
	window := float64(wienerWindow)

	// Local first and second moments over a zero-padded window.
	for i := 0; i < n; i++ {
		var sum, sumSq float64
		for j := i - half; j <= i+half; j++ {
			if j < 0 || j >= n {
				continue
			}
			sum += channel[j]
			sumSq += channel[j] * channel[j]
		}
		mean := sum / window
		localMean[i] = mean
		localVar[i] = sumSq/window - mean*mean
	}

	var noise float64
	for _, v := range localVar {
		noise += v
	}
	noise /= float64(n)

	for i := 0; i < n; i++ {
		residual := localVar[i] - noise
		if residual < 0 {
			residual = 0
		}
		denom := localVar[i]
		if denom < noise {
			denom = noise
		}
		if denom == 0 {
			out[i] = localMean[i]
			continue
		}
		out[i] = localMean[i] + residual/denom*(channel[i]-localMean[i])
	}
	return out
}
