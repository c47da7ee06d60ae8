// Package utm resolves UTM zones, latitude bands and EPSG codes from
// longitude/latitude, including the Norway and Svalbard zone exceptions.
package utm

import "math"

// Bands lists the latitude band letters from 80°S northwards, 8° each.
const Bands = "CDEFGHJKLMNPQRSTUVWX"

const (
	minBandLat = -80.0
	maxBandLat = 84.0
)

// ZoneFromLongitude returns the regular 6° zone (1..60) for lon.
// Longitude is wrapped into [-180, 180) first; NaN and ±Inf map to zone 1.
func ZoneFromLongitude(lon float64) int {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return 1
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	zone := int(math.Floor(lon/6)) + 1
	if zone > 60 {
		zone = 60
	}
	return zone
}

// LatBand returns the band letter for lat, or false outside [-80, 84] and
// for NaN. Band X spans 12° so 84 itself still maps to X.
func LatBand(lat float64) (rune, bool) {
	if math.IsNaN(lat) || lat < minBandLat || lat > maxBandLat {
		return 0, false
	}
	i := int(math.Floor((lat - minBandLat) / 8))
	if i >= len(Bands) {
		i = len(Bands) - 1
	}
	return rune(Bands[i]), true
}

// svalbardZones holds the widened zones north of 72°: [from, to) → zone.
var svalbardZones = []struct {
	from, to float64
	zone     int
}{
	{0, 9, 31},
	{9, 21, 33},
	{21, 33, 35},
	{33, 42, 37},
}

// ZoneWithExceptions returns the zone for lon/lat after applying the Norway
// (zone 32 widened west) and Svalbard (odd zones widened) exceptions.
func ZoneWithExceptions(lon, lat float64) int {
	zone := ZoneFromLongitude(lon)

	if lat >= 56 && lat < 64 && lon >= 3 && lon < 12 {
		return 32
	}

	if lat >= 72 && lat < 84 {
		for _, s := range svalbardZones {
			if lon >= s.from && lon < s.to {
				return s.zone
			}
		}
	}

	return zone
}
