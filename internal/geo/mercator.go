package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// MaxMercatorLat is the latitude at which Web Mercator becomes square.
const MaxMercatorLat = 85.05112878

// MercatorExtent is half the projected width of the world in meters.
const MercatorExtent = 20037508.342789244

// WebMercator implements Projection for EPSG:3857.
type WebMercator struct{}

func (WebMercator) EPSG() int { return 3857 }

func (WebMercator) ToWGS84(x, y float64) (lon, lat float64) {
	p := project.Mercator.ToWGS84(orb.Point{x, y})
	return p.Lon(), p.Lat()
}

// FromWGS84 clamps latitude to the Mercator limit so poles stay finite.
func (WebMercator) FromWGS84(lon, lat float64) (x, y float64) {
	lat = math.Max(-MaxMercatorLat, math.Min(MaxMercatorLat, lat))
	p := project.WGS84.ToMercator(orb.Point{lon, lat})
	return p.X(), p.Y()
}
