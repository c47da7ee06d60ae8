package geo

import (
	"fmt"
	"math"
	"sync"

	"github.com/ctessum/geom/proj"
)

// Ellipsoid is a proj4 ellipsoid name.
type Ellipsoid string

const (
	// GRS80 is the ETRS89 ellipsoid.
	GRS80 Ellipsoid = "GRS80"
	// WGS84 is the WGS 84 ellipsoid.
	WGS84 Ellipsoid = "WGS84"
)

// UTM implements Projection for a single transverse Mercator zone backed by
// a proj4 transform pair. Geographic coordinates live on the same ellipsoid
// as the zone, so no datum shift is applied.
type UTM struct {
	zone  int
	south bool
	epsg  int

	forward proj.Transformer
	inverse proj.Transformer
}

// utmCache holds one *UTM per EPSG code.
var utmCache sync.Map

// NewUTM builds the projection for zone (1..60) on the given ellipsoid.
func NewUTM(zone int, south bool, e Ellipsoid, epsg int) (*UTM, error) {
	if zone < 1 || zone > 60 {
		return nil, fmt.Errorf("utm zone %d out of range", zone)
	}

	def := fmt.Sprintf("+proj=utm +zone=%d +ellps=%s +units=m +no_defs", zone, e)
	if south {
		def += " +south"
	}

	tm, err := proj.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", def, err)
	}
	lonlat, err := proj.Parse("+proj=longlat +ellps=" + string(e) + " +no_defs")
	if err != nil {
		return nil, fmt.Errorf("parse longlat %s: %w", e, err)
	}

	forward, err := lonlat.NewTransform(tm)
	if err != nil {
		return nil, fmt.Errorf("EPSG:%d forward transform: %w", epsg, err)
	}
	inverse, err := tm.NewTransform(lonlat)
	if err != nil {
		return nil, fmt.Errorf("EPSG:%d inverse transform: %w", epsg, err)
	}

	return &UTM{zone: zone, south: south, epsg: epsg, forward: forward, inverse: inverse}, nil
}

// cachedUTM returns the shared projection for epsg, building it on first use.
func cachedUTM(zone int, south bool, e Ellipsoid, epsg int) Projection {
	if p, ok := utmCache.Load(epsg); ok {
		return p.(*UTM)
	}
	u, err := NewUTM(zone, south, e, epsg)
	if err != nil {
		return nil
	}
	p, _ := utmCache.LoadOrStore(epsg, u)
	return p.(*UTM)
}

func (u *UTM) EPSG() int { return u.epsg }

func (u *UTM) Zone() int { return u.zone }

// FromWGS84 converts longitude/latitude (degrees) to easting/northing (meters).
// A point the transform rejects comes back as NaN.
func (u *UTM) FromWGS84(lon, lat float64) (easting, northing float64) {
	return apply(u.forward, lon, lat)
}

// ToWGS84 converts easting/northing (meters) to longitude/latitude (degrees).
// A point the transform rejects comes back as NaN.
func (u *UTM) ToWGS84(easting, northing float64) (lon, lat float64) {
	return apply(u.inverse, easting, northing)
}

func apply(t proj.Transformer, x, y float64) (float64, float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return math.NaN(), math.NaN()
	}
	rx, ry, err := t(x, y)
	if err != nil {
		return math.NaN(), math.NaN()
	}
	return rx, ry
}
