package enhancer

import (
	"fmt"
	"strings"

	"github.com/Keobu/Audio-Extractor-Emhancer/internal/audio"
)

// DependencyError reports every missing external tool in one pass so the
// user can install them all before retrying.
type DependencyError struct {
	Missing []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing required tools: %s", strings.Join(e.Missing, ", "))
}

// checkDependencies probes the external tools an enhancement run needs.
// ffmpeg is only required when a non-WAV container is involved on either
// side; the native codec handles WAV alone.
func checkDependencies(inputPath, outputPath string) error {
	needFFmpeg := audio.FormatForPath(inputPath) != "wav" || audio.FormatForPath(outputPath) != "wav"
	if needFFmpeg && !audio.HaveFFmpeg() {
		return &DependencyError{Missing: []string{"ffmpeg"}}
	}
	return nil
}
