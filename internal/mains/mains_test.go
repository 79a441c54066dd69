package mains

import "testing"

func TestFrequencyForTimezone(t *testing.T) {
	tests := []struct {
		timezone string
		want     float64
	}{
		{"Europe/London", Hz50},
		{"Europe/Paris", Hz50},
		{"Europe/Rome", Hz50},
		{"Australia/Sydney", Hz50},
		{"Asia/Shanghai", Hz50},
		{"Asia/Tokyo", Hz50}, // Japan resolves to the Tokyo-side 50 Hz grid

		{"America/New_York", Hz60},
		{"America/Los_Angeles", Hz60},
		{"America/Toronto", Hz60},
		{"America/Mexico_City", Hz60},
		{"America/Sao_Paulo", Hz60},
		{"Asia/Seoul", Hz60},
		{"Asia/Manila", Hz60},

		{"UTC", Hz50},
		{"GMT", Hz50},
		{"Etc/UTC", Hz50},
		{"Not/AZone", Hz50},
	}

	for _, tt := range tests {
		t.Run(tt.timezone, func(t *testing.T) {
			if got := FrequencyForTimezone(tt.timezone); got != tt.want {
				t.Errorf("FrequencyForTimezone(%q) = %v, want %v", tt.timezone, got, tt.want)
			}
		})
	}
}

func TestFrequency(t *testing.T) {
	if freq := Frequency(); freq != Hz50 && freq != Hz60 {
		t.Errorf("Frequency() = %v, want 50 or 60", freq)
	}
}
