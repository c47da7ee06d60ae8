package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PointFeature builds a GeoJSON point feature at WGS84 lon/lat.
func PointFeature(lon, lat float64, props map[string]interface{}) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{lon, lat})
	for k, v := range props {
		f.Properties[k] = v
	}
	return f
}

// ToWGS84Point transforms x/y in the projection identified by epsg to an
// orb point in WGS84 lon/lat.
func ToWGS84Point(x, y float64, epsg int) orb.Point {
	lon, lat := MustForEPSG(epsg).ToWGS84(x, y)
	return orb.Point{lon, lat}
}
