// Package geo handles spatial reference systems and coordinate transforms.
package geo

import (
	"fmt"
	"strconv"
)

// ProjectionID is the closed set of spatial reference systems the engine
// understands. The value is the EPSG code.
type ProjectionID int

const (
	EPSG4326  ProjectionID = 4326  // WGS 84 longitude/latitude
	EPSG3857  ProjectionID = 3857  // WGS 84 / Pseudo-Mercator
	EPSG25832 ProjectionID = 25832 // ETRS89 / UTM zone 32N
	EPSG25833 ProjectionID = 25833 // ETRS89 / UTM zone 33N
	EPSG25834 ProjectionID = 25834 // ETRS89 / UTM zone 34N
	EPSG25835 ProjectionID = 25835 // ETRS89 / UTM zone 35N
	EPSG25836 ProjectionID = 25836 // ETRS89 / UTM zone 36N
)

type epsgEntry struct {
	ID    ProjectionID
	Label string
}

// epsgTable maps accepted EPSG codes to a ProjectionID. ETRS89 geographic
// (4258) is treated as WGS 84.
var epsgTable = map[int]epsgEntry{
	4326:  {EPSG4326, "WGS 84"},
	4258:  {EPSG4326, "ETRS89"},
	3857:  {EPSG3857, "WGS 84 / Pseudo-Mercator"},
	25832: {EPSG25832, "ETRS89 / UTM zone 32N"},
	25833: {EPSG25833, "ETRS89 / UTM zone 33N"},
	25834: {EPSG25834, "ETRS89 / UTM zone 34N"},
	25835: {EPSG25835, "ETRS89 / UTM zone 35N"},
	25836: {EPSG25836, "ETRS89 / UTM zone 36N"},
}

// LookupEPSG resolves an EPSG code to a ProjectionID and its label.
func LookupEPSG(code int) (ProjectionID, string, bool) {
	e, ok := epsgTable[code]
	if !ok {
		return 0, "", false
	}
	return e.ID, e.Label, true
}

// ParseProjectionID accepts "25833", "EPSG:25833" or "epsg:25833".
func ParseProjectionID(s string) (ProjectionID, error) {
	raw := s
	if len(raw) > 5 && (raw[:5] == "EPSG:" || raw[:5] == "epsg:") {
		raw = raw[5:]
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid EPSG code %q: %w", s, err)
	}
	id, _, ok := LookupEPSG(code)
	if !ok {
		return 0, fmt.Errorf("unsupported EPSG code %d", code)
	}
	return id, nil
}

// UTMProjectionForZone returns the ETRS89 UTM projection for zone, if supported.
func UTMProjectionForZone(zone int) (ProjectionID, bool) {
	id := ProjectionID(25800 + zone)
	if !id.IsUTM() {
		return 0, false
	}
	return id, true
}

func (p ProjectionID) Code() int { return int(p) }

func (p ProjectionID) String() string { return "EPSG:" + strconv.Itoa(int(p)) }

// Label returns the human readable name of the reference system.
func (p ProjectionID) Label() string {
	if e, ok := epsgTable[int(p)]; ok && e.ID == p {
		return e.Label
	}
	return p.String()
}

// Valid reports whether p belongs to the closed enumeration.
func (p ProjectionID) Valid() bool {
	e, ok := epsgTable[int(p)]
	return ok && e.ID == p
}

func (p ProjectionID) IsGeographic() bool { return p == EPSG4326 }

func (p ProjectionID) IsUTM() bool { return p >= EPSG25832 && p <= EPSG25836 }

// UTMZone returns the zone number of a UTM projection, or 0.
func (p ProjectionID) UTMZone() int {
	if !p.IsUTM() {
		return 0
	}
	return int(p) - 25800
}

// MarshalText encodes the projection as "EPSG:<code>".
func (p ProjectionID) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts the forms understood by ParseProjectionID.
func (p *ProjectionID) UnmarshalText(text []byte) error {
	id, err := ParseProjectionID(string(text))
	if err != nil {
		return err
	}
	*p = id
	return nil
}

// Projection converts between a source CRS and WGS84.
type Projection interface {
	// ToWGS84 converts source CRS coordinates to WGS84 longitude/latitude (degrees).
	ToWGS84(x, y float64) (lon, lat float64)

	// FromWGS84 converts WGS84 longitude/latitude (degrees) to source CRS coordinates.
	FromWGS84(lon, lat float64) (x, y float64)

	// EPSG returns the EPSG code for this projection.
	EPSG() int
}

// ForEPSG returns a Projection for the given EPSG code.
// Besides the ProjectionID enumeration it covers the WGS 84 UTM codes
// 32601-32660 and 32701-32760 used for labelling.
// Returns nil if the EPSG code is not supported.
func ForEPSG(epsg int) Projection {
	switch {
	case epsg == 4326 || epsg == 4258:
		return WGS84Identity{}
	case epsg == 3857:
		return WebMercator{}
	case epsg >= 25801 && epsg <= 25860:
		return cachedUTM(epsg-25800, false, GRS80, epsg)
	case epsg >= 32601 && epsg <= 32660:
		return cachedUTM(epsg-32600, false, WGS84, epsg)
	case epsg >= 32701 && epsg <= 32760:
		return cachedUTM(epsg-32700, true, WGS84, epsg)
	default:
		return nil
	}
}

// MustForEPSG is ForEPSG for codes that must be supported. An unknown code
// is a programming error and panics.
func MustForEPSG(epsg int) Projection {
	p := ForEPSG(epsg)
	if p == nil {
		panic(fmt.Sprintf("geo: unsupported EPSG code %d", epsg))
	}
	return p
}

// WGS84Identity is a no-op projection for data already in EPSG:4326.
type WGS84Identity struct{}

func (WGS84Identity) ToWGS84(x, y float64) (lon, lat float64)   { return x, y }
func (WGS84Identity) FromWGS84(lon, lat float64) (x, y float64) { return lon, lat }
func (WGS84Identity) EPSG() int                                 { return 4326 }
