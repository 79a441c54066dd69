package enhancer

// Settings configures one enhancement invocation. Values are resolved once
// (directly from flags or from a named profile) and never mutated afterwards.
type Settings struct {
	// Equaliser band gains in dB. Zero leaves the band at unity.
	EQLowGainDB  float64
	EQMidGainDB  float64
	EQHighGainDB float64

	// ApplyPreemphasis enables the first-order high-frequency boost.
	ApplyPreemphasis bool

	// NoiseReduction enables adaptive Wiener denoising.
	NoiseReduction bool

	// TargetGainDB is the final output gain in dB. Magnitudes at or below
	// gainEpsilonDB are treated as exactly zero and skipped.
	TargetGainDB float64

	// HumNotch enables a narrow notch at the local mains frequency before
	// the rest of the chain. Off by default.
	HumNotch bool

	// HumFrequency is the mains fundamental in Hz. Zero means detect from
	// the local timezone at enhancement time.
	HumFrequency float64
}

// gainEpsilonDB is the threshold below which a target gain counts as zero.
const gainEpsilonDB = 1e-6

// DefaultSettings returns the neutral configuration: flat equaliser, zero
// gain, pre-emphasis and noise reduction enabled, hum notch off.
func DefaultSettings() Settings {
	return Settings{
		ApplyPreemphasis: true,
		NoiseReduction:   true,
	}
}

// Profile names with fixed settings. Anything else resolves to the default.
const (
	ProfileBright  = "bright"
	ProfileWarm    = "warm"
	ProfileClean   = "clean"
	ProfileDefault = "default"
)

// ResolveProfile maps a profile name to its settings. The second return is
// false when the name is not a known profile (the caller should warn); the
// settings returned in that case are the defaults, so an unknown name never
// fails an enhancement run. An empty name counts as "default".
func ResolveProfile(name string) (Settings, bool) {
	s := DefaultSettings()
	switch name {
	case ProfileBright:
		s.EQHighGainDB = 4
		s.EQMidGainDB = -1
		s.TargetGainDB = 1.5
		return s, true
	case ProfileWarm:
		s.EQLowGainDB = 3
		s.EQHighGainDB = -2
		s.NoiseReduction = false
		return s, true
	case ProfileClean:
		s.EQLowGainDB = 1
		s.EQMidGainDB = 1.5
		s.EQHighGainDB = 1
		s.TargetGainDB = 0.5
		return s, true
	case ProfileDefault, "":
		return s, true
	default:
		return s, false
	}
}

// ProfileNames lists the recognised profile names for help text.
func ProfileNames() []string {
	return []string{ProfileBright, ProfileWarm, ProfileClean, ProfileDefault}
}
