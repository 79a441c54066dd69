// Package mains infers the local electrical mains frequency, used to place
// the hum notch without asking the user where they are. Detection walks
// system timezone -> country -> grid frequency and falls back to 50 Hz,
// the more common grid worldwide.
package mains

import (
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// Grid frequencies in Hz.
const (
	Hz50 = 50.0
	Hz60 = 60.0
)

// Frequency returns the local mains frequency. Any detection failure
// (unknown timezone, no country mapping) yields 50 Hz.
func Frequency() float64 {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return Hz50
	}
	return FrequencyForTimezone(timezone)
}

// FrequencyForTimezone returns the mains frequency for an IANA timezone.
func FrequencyForTimezone(timezone string) float64 {
	// UTC, GMT and the Etc/ zones carry no country association.
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return Hz50
	}

	countries, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return Hz50
	}
	country, err := countries.GetCountry(timezone)
	if err != nil {
		return Hz50
	}

	// Japan runs both grids split by region; Tokyo's 50 Hz side holds most
	// of the population, so that wins the tie.
	if country == "Japan" {
		return Hz50
	}
	if sixtyHertz[country] {
		return Hz60
	}
	return Hz50
}

// sixtyHertz lists the countries on a 60 Hz grid; everywhere else is 50 Hz.
// Source: https://en.wikipedia.org/wiki/Mains_electricity_by_country
var sixtyHertz = map[string]bool{
	// The Americas
	"United States":       true,
	"Canada":              true,
	"Mexico":              true,
	"Belize":              true,
	"Costa Rica":          true,
	"El Salvador":         true,
	"Guatemala":           true,
	"Honduras":            true,
	"Nicaragua":           true,
	"Panama":              true,
	"Bahamas":             true,
	"Barbados":            true,
	"Cayman Islands":      true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"U.S. Virgin Islands": true,
	"Brazil":              true, // mixed historically, 60 Hz predominant
	"Colombia":            true,
	"Ecuador":             true,
	"Guyana":              true,
	"Peru":                true,
	"Suriname":            true,
	"Venezuela":           true,

	// Asia and the Pacific
	"South Korea":      true,
	"Taiwan":           true,
	"Philippines":      true,
	"Saudi Arabia":     true,
	"Guam":             true,
	"American Samoa":   true,
	"Marshall Islands": true,
	"Micronesia":       true,
	"Palau":            true,
}
