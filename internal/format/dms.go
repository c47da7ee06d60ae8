package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/woozymasta/norcoord/internal/geo"
)

// DMS is a degree/minute/second decomposition of a decimal angle.
type DMS struct {
	Degrees int
	Minutes int
	Seconds float64 // rounded to 3 decimals
	Sign    int     // -1 or 1
}

// DecimalToDMS splits v into degrees, minutes and seconds. Seconds are
// rounded to 3 decimals first; an overflow to 60 carries into minutes, and
// only then a minutes overflow carries into degrees.
func DecimalToDMS(v float64) DMS {
	sign := 1
	if v < 0 {
		sign = -1
	}

	a := math.Abs(v)
	deg := math.Floor(a)
	minutes := (a - deg) * 60
	mins := math.Floor(minutes)
	secs := math.Round((minutes-mins)*60*1000) / 1000

	if secs >= 60 {
		secs -= 60
		mins++
	}
	if mins >= 60 {
		mins -= 60
		deg++
	}

	return DMS{Degrees: int(deg), Minutes: int(mins), Seconds: secs, Sign: sign}
}

// Decimal reconstructs the decimal angle.
func (d DMS) Decimal() float64 {
	return float64(d.Sign) * (float64(d.Degrees) + float64(d.Minutes)/60 + d.Seconds/3600)
}

// String renders 59°54'45.8" without hemisphere letter or sign.
func (d DMS) String() string {
	return strconv.Itoa(d.Degrees) + "°" +
		strconv.Itoa(d.Minutes) + "'" +
		strconv.FormatFloat(d.Seconds, 'f', -1, 64) + `"`
}

// DMSPair renders lat/lon as `59°54'45.8" N, 10°44'45.9" E`.
func DMSPair(lat, lon float64) string {
	la, lo := DecimalToDMS(lat), DecimalToDMS(lon)
	return la.String() + " " + hemi(lat, "N", "S") + ", " + lo.String() + " " + hemi(lon, "E", "W")
}

// Decimal renders lat/lon as "59.91273° N, 10.74609° E".
func Decimal(lat, lon float64) string {
	return plain(math.Abs(lat)) + "° " + hemi(lat, "N", "S") + ", " +
		plain(math.Abs(lon)) + "° " + hemi(lon, "E", "W")
}

// Projected renders an easting/northing pair in the notation the parser
// reads back: "Sone 33 Ø 425917 N 7730314" for UTM projections and
// "Ø 1196250 N 8380327 @3857" otherwise.
func Projected(easting, northing float64, id geo.ProjectionID) string {
	var b strings.Builder
	if zone := id.UTMZone(); zone > 0 {
		b.WriteString("Sone ")
		b.WriteString(strconv.Itoa(zone))
		b.WriteByte(' ')
	}
	b.WriteString("Ø ")
	b.WriteString(plain(easting))
	b.WriteString(" N ")
	b.WriteString(plain(northing))
	if id.UTMZone() == 0 {
		b.WriteString(" @")
		b.WriteString(strconv.Itoa(id.Code()))
	}
	return b.String()
}

func hemi(v float64, pos, neg string) string {
	if v < 0 {
		return neg
	}
	return pos
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
