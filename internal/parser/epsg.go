package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/woozymasta/norcoord/internal/format"
	"github.com/woozymasta/norcoord/internal/geo"
)

var epsgSuffix = regexp.MustCompile(`(?i)^(?:epsg:?\s*)?(\d{4,5})$`)

// parseEPSGTagged reads "<a> <b>@<code>". Geographic codes take latitude
// first, projected codes easting first, unless direction letters say
// otherwise. Magnitudes never reorder a tagged pair.
func parseEPSGTagged(s string, _ geo.ProjectionID) (ParsedCoordinate, bool) {
	if strings.Count(s, "@") != 1 {
		return ParsedCoordinate{}, false
	}
	prefix, suffix, _ := strings.Cut(s, "@")

	m := epsgSuffix.FindStringSubmatch(strings.TrimSpace(suffix))
	if m == nil {
		return ParsedCoordinate{}, false
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return ParsedCoordinate{}, false
	}
	id, _, ok := geo.LookupEPSG(code)
	if !ok {
		return ParsedCoordinate{}, false
	}

	toks, ok := tokenize(splitFields(stripAxisLabels(prefix)))
	if !ok || len(toks) != 2 {
		return ParsedCoordinate{}, false
	}

	if id.IsGeographic() {
		lat, lon, ok := geographicPair(toks[0], toks[1])
		if !ok {
			return ParsedCoordinate{}, false
		}
		return ParsedCoordinate{
			Lat:             lat,
			Lon:             lon,
			Projection:      id,
			FormattedString: format.Decimal(lat, lon),
			InputFormat:     Decimal,
		}, true
	}

	east, north, ok := projectedPair(toks[0], toks[1], false)
	if !ok || !inProjectedRange(east, north, id) {
		return ParsedCoordinate{}, false
	}
	return projected(east, north, id), true
}

func projected(east, north float64, id geo.ProjectionID) ParsedCoordinate {
	return ParsedCoordinate{
		Lat:             north,
		Lon:             east,
		Projection:      id,
		FormattedString: format.Projected(east, north, id),
		InputFormat:     UTM,
	}
}
