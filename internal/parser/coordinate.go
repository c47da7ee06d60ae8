// Package parser recognizes geographic and projected positions in free-text
// search input.
package parser

import (
	"fmt"

	"github.com/woozymasta/norcoord/internal/geo"
)

// InputFormat tags the notation a coordinate was recognized in.
type InputFormat int

const (
	Decimal InputFormat = iota
	DMS
	UTM
)

func (f InputFormat) String() string {
	switch f {
	case Decimal:
		return "decimal"
	case DMS:
		return "dms"
	case UTM:
		return "utm"
	default:
		return fmt.Sprintf("InputFormat(%d)", int(f))
	}
}

func (f InputFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParsedCoordinate is a recognized position.
//
// For Decimal and DMS input Lat/Lon are WGS84 degrees. For UTM input (any
// projected notation, Web Mercator included) Lat holds the northing and Lon
// the easting in Projection's units.
type ParsedCoordinate struct {
	Lat             float64          `json:"lat"`
	Lon             float64          `json:"lon"`
	Projection      geo.ProjectionID `json:"projection"`
	FormattedString string           `json:"formatted_string"`
	InputFormat     InputFormat      `json:"input_format"`
}

// Easting is Lon; meaningful when InputFormat is UTM.
func (c ParsedCoordinate) Easting() float64 { return c.Lon }

// Northing is Lat; meaningful when InputFormat is UTM.
func (c ParsedCoordinate) Northing() float64 { return c.Lat }

// WGS84 returns the position as WGS84 longitude/latitude.
func (c ParsedCoordinate) WGS84() (lon, lat float64) {
	return geo.MustForEPSG(c.Projection.Code()).ToWGS84(c.Lon, c.Lat)
}

// String is the formatted rendering.
func (c ParsedCoordinate) String() string { return c.FormattedString }
