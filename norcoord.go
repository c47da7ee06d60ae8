// Package norcoord interprets free-text coordinate input and renders
// positions as Norwegian UTM labels.
//
// Input is recognized in four notations, tried in order: an EPSG-tagged pair
// ("425917 7730314@25833"), decimal degrees ("59.91273, 10.74609"),
// degrees/minutes(/seconds) ("59°54'45.8"N 10°44'45.9"E") and a projected
// easting/northing pair ("Sone 33 Ø 425917 N 7730314").
package norcoord

import (
	"github.com/woozymasta/norcoord/internal/format"
	"github.com/woozymasta/norcoord/internal/geo"
	"github.com/woozymasta/norcoord/internal/parser"
	"github.com/woozymasta/norcoord/internal/utm"
)

type (
	// ProjectionID is one of the spatial reference systems the engine knows.
	ProjectionID = geo.ProjectionID
	// ParsedCoordinate is a recognized position. For UTM input Lat holds the
	// northing and Lon the easting.
	ParsedCoordinate = parser.ParsedCoordinate
	// InputFormat tags the notation input was recognized in.
	InputFormat = parser.InputFormat
	// FormatOptions controls UTM label rendering.
	FormatOptions = format.Options
	// FormattedUTM is a rendered UTM position.
	FormattedUTM = format.FormattedUTM
	// UtmInfo is the zone, band, hemisphere and EPSG of a position.
	UtmInfo = utm.Info
	// DMS is a degree/minute/second decomposition.
	DMS = format.DMS
)

const (
	EPSG4326  = geo.EPSG4326
	EPSG3857  = geo.EPSG3857
	EPSG25832 = geo.EPSG25832
	EPSG25833 = geo.EPSG25833
	EPSG25834 = geo.EPSG25834
	EPSG25835 = geo.EPSG25835
	EPSG25836 = geo.EPSG25836
)

const (
	Decimal   = parser.Decimal
	DMSFormat = parser.DMS
	UTM       = parser.UTM
)

// ParseCoordinateInput interprets input as a coordinate. fallback (zero for
// none) decides how a projected pair without zone or EPSG hint is read:
// EPSG:3857 or a UTM projection is used as given, anything else means
// EPSG:25833. The second result is false when input is not a coordinate.
func ParseCoordinateInput(input string, fallback ProjectionID) (ParsedCoordinate, bool) {
	return parser.Parse(input, fallback)
}

// FormatToNorwegianUTM renders coord ([x, y] in source units, lon/lat for
// EPSG:4326) as a label like "Sone 32V Ø 597642 N 6642976".
// It panics when source or opts.ForceEPSG is not a known projection.
func FormatToNorwegianUTM(coord [2]float64, source ProjectionID, opts FormatOptions) FormattedUTM {
	return format.ToUTM(coord[0], coord[1], source, opts)
}

// UTMInfo resolves the zone, band, hemisphere and EPSG for a WGS84 position,
// with the Norway and Svalbard zone exceptions applied.
func UTMInfo(lon, lat float64) UtmInfo {
	return utm.InfoFromLonLat(lon, lat)
}

// DecimalToDMS splits a decimal angle into degrees, minutes and seconds.
func DecimalToDMS(v float64) DMS {
	return format.DecimalToDMS(v)
}

// LookupEPSG maps an EPSG code to a known projection.
func LookupEPSG(code int) (ProjectionID, bool) {
	id, _, ok := geo.LookupEPSG(code)
	return id, ok
}
