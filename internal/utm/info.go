package utm

import "encoding/json"

// Hemisphere is 'N' or 'S'.
type Hemisphere byte

const (
	North Hemisphere = 'N'
	South Hemisphere = 'S'
)

func (h Hemisphere) String() string { return string(rune(h)) }

// Info describes the UTM cell of a single longitude/latitude pair.
type Info struct {
	Zone       int
	Band       rune // 0 when HasBand is false
	HasBand    bool
	Hemisphere Hemisphere
	EPSG       int
}

// InfoFromLonLat derives zone, band, hemisphere and the WGS 84 UTM EPSG code.
// Inputs are not range checked.
func InfoFromLonLat(lon, lat float64) Info {
	zone := ZoneWithExceptions(lon, lat)
	band, ok := LatBand(lat)

	info := Info{
		Zone:       zone,
		Band:       band,
		HasBand:    ok,
		Hemisphere: North,
		EPSG:       32600 + zone,
	}
	if lat < 0 {
		info.Hemisphere = South
		info.EPSG = 32700 + zone
	}
	return info
}

// BandString returns the band letter or "" when outside the banded range.
func (i Info) BandString() string {
	if !i.HasBand {
		return ""
	}
	return string(i.Band)
}

// MarshalJSON renders the band as a string (or null) instead of a code point.
func (i Info) MarshalJSON() ([]byte, error) {
	var band *string
	if i.HasBand {
		b := i.BandString()
		band = &b
	}
	return json.Marshal(struct {
		Zone       int     `json:"zone"`
		Band       *string `json:"band"`
		Hemisphere string  `json:"hemisphere"`
		EPSG       int     `json:"epsg"`
	}{i.Zone, band, i.Hemisphere.String(), i.EPSG})
}
