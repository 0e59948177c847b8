// Package page extracts structured fields from raw wikitext: geographic
// coordinates, categories, infoboxes, section trees and rough date
// probes. All functions are pure and operate on the page text alone.
package page

import (
	"regexp"
	"strconv"
)

var (
	coordRe = regexp.MustCompile(
		`\{\{[Cc]oord\s*\|(\d+)\s*\|(\d+)\s*\|(\d+)?\s*\|?\s*([NS])\s*\|(\d+)\s*\|(\d+)\s*\|(\d+)?\s*\|?\s*([EW])`)
	infoboxLatLonRe = regexp.MustCompile(
		`(?i)\|\s*(?:latitude\s*=\s*([+-]?\d+\.?\d*)|longitude\s*=\s*([+-]?\d+\.?\d*))`)
)

// Coordinates returns the (latitude, longitude) pair found in the page
// text, looking first at {{Coord}} templates and then at infobox
// latitude/longitude fields. ok is false when no valid pair is present.
func Coordinates(text string) (lat, lon float64, ok bool) {
	if m := coordRe.FindStringSubmatch(text); m != nil {
		lat, lon, ok = coordFromDMS(m)
		if ok {
			return lat, lon, true
		}
	}

	var haveLat, haveLon bool
	for _, m := range infoboxLatLonRe.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				lat, haveLat = v, true
			}
		}
		if m[2] != "" {
			if v, err := strconv.ParseFloat(m[2], 64); err == nil {
				lon, haveLon = v, true
			}
		}
	}
	if haveLat && haveLon && inCoordRange(lat, lon) {
		return lat, lon, true
	}
	return 0, 0, false
}

func coordFromDMS(m []string) (lat, lon float64, ok bool) {
	lat = dmsValue(m[1], m[2], m[3])
	lon = dmsValue(m[5], m[6], m[7])
	if m[4] == "S" {
		lat = -lat
	}
	if m[8] == "W" {
		lon = -lon
	}
	if !inCoordRange(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

func dmsValue(deg, min, sec string) float64 {
	d, _ := strconv.ParseFloat(deg, 64)
	m, _ := strconv.ParseFloat(min, 64)
	var s float64
	if sec != "" {
		s, _ = strconv.ParseFloat(sec, 64)
	}
	return d + m/60 + s/3600
}

func inCoordRange(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
