package enhancer

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.EQLowGainDB != 0 || s.EQMidGainDB != 0 || s.EQHighGainDB != 0 {
		t.Error("default equaliser gains are not flat")
	}
	if !s.ApplyPreemphasis {
		t.Error("pre-emphasis should default on")
	}
	if !s.NoiseReduction {
		t.Error("noise reduction should default on")
	}
	if s.TargetGainDB != 0 {
		t.Errorf("target gain = %v, want 0", s.TargetGainDB)
	}
	if s.HumNotch {
		t.Error("hum notch should default off")
	}
}

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		name   string
		want   Settings
		known  bool
	}{
		{
			name: ProfileBright,
			want: Settings{
				EQMidGainDB:      -1,
				EQHighGainDB:     4,
				ApplyPreemphasis: true,
				NoiseReduction:   true,
				TargetGainDB:     1.5,
			},
			known: true,
		},
		{
			name: ProfileWarm,
			want: Settings{
				EQLowGainDB:      3,
				EQHighGainDB:     -2,
				ApplyPreemphasis: true,
				NoiseReduction:   false,
			},
			known: true,
		},
		{
			name: ProfileClean,
			want: Settings{
				EQLowGainDB:      1,
				EQMidGainDB:      1.5,
				EQHighGainDB:     1,
				ApplyPreemphasis: true,
				NoiseReduction:   true,
				TargetGainDB:     0.5,
			},
			known: true,
		},
		{name: ProfileDefault, want: DefaultSettings(), known: true},
		{name: "", want: DefaultSettings(), known: true},
		{name: "ultra", want: DefaultSettings(), known: false},
	}

	for _, tt := range tests {
		label := tt.name
		if label == "" {
			label = "(empty)"
		}
		t.Run(label, func(t *testing.T) {
			got, known := ResolveProfile(tt.name)
			if known != tt.known {
				t.Errorf("known = %v, want %v", known, tt.known)
			}
			if got != tt.want {
				t.Errorf("settings = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProfileNamesAllResolve(t *testing.T) {
	for _, name := range ProfileNames() {
		if _, known := ResolveProfile(name); !known {
			t.Errorf("listed profile %q does not resolve", name)
		}
	}
}
