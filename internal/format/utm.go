// Package format renders resolved coordinates as Norwegian UTM labels and
// degree/minute/second text.
package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/woozymasta/norcoord/internal/geo"
	"github.com/woozymasta/norcoord/internal/utm"
)

// MaxDecimals is the largest supported number of easting/northing decimals.
const MaxDecimals = 3

// Options controls UTM rendering. The zero value renders whole meters without
// digit grouping in the zone derived from the position.
type Options struct {
	Decimals  int  `yaml:"decimals" json:"decimals"`
	Thousands bool `yaml:"thousands" json:"thousands"`
	ForceEPSG int  `yaml:"force_epsg,omitempty" json:"force_epsg,omitempty"`
}

// FormattedUTM is the result of ToUTM.
type FormattedUTM struct {
	Info        utm.Info `json:"info"`
	EPSG        int      `json:"epsg"`
	Easting     float64  `json:"easting"`
	Northing    float64  `json:"northing"`
	EastingStr  string   `json:"easting_str"`
	NorthingStr string   `json:"northing_str"`
	Label       string   `json:"label"`
}

// ToUTM transforms x/y from source into the UTM zone of the position (or
// opts.ForceEPSG) and renders the "Sone 32V Ø 597642 N 6642976" label.
// The band always follows latitude; the zone in the label follows the
// effective EPSG code. An unsupported source or forced EPSG panics.
func ToUTM(x, y float64, source geo.ProjectionID, opts Options) FormattedUTM {
	if !source.Valid() {
		panic(fmt.Sprintf("format: unsupported source projection %d", int(source)))
	}

	lon, lat := geo.MustForEPSG(source.Code()).ToWGS84(x, y)
	info := utm.InfoFromLonLat(lon, lat)

	epsg := info.EPSG
	if opts.ForceEPSG != 0 {
		epsg = opts.ForceEPSG
	}
	proj := geo.MustForEPSG(epsg)
	easting, northing := proj.FromWGS84(lon, lat)

	zone := info.Zone
	if u, ok := proj.(*geo.UTM); ok {
		zone = u.Zone()
	}

	decimals := clampDecimals(opts.Decimals)
	easting = roundTo(easting, decimals)
	northing = roundTo(northing, decimals)

	eStr := formatNumber(easting, decimals, opts.Thousands)
	nStr := formatNumber(northing, decimals, opts.Thousands)

	return FormattedUTM{
		Info:        info,
		EPSG:        epsg,
		Easting:     easting,
		Northing:    northing,
		EastingStr:  eStr,
		NorthingStr: nStr,
		Label:       fmt.Sprintf("Sone %d%s Ø %s N %s", zone, info.BandString(), eStr, nStr),
	}
}

func clampDecimals(d int) int {
	if d < 0 {
		return 0
	}
	if d > MaxDecimals {
		return MaxDecimals
	}
	return d
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func formatNumber(v float64, decimals int, thousands bool) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if thousands {
		s = GroupThousands(s)
	}
	return s
}
