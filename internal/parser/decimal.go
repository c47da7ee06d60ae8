package parser

import (
	"math"
	"strings"

	"github.com/woozymasta/norcoord/internal/format"
	"github.com/woozymasta/norcoord/internal/geo"
)

// parseDecimal reads decimal degrees, either with direction letters
// ("59.9° N 10.7° E", letters pick the axes) or as a bare pair
// ("59.9, 10.7", latitude first).
func parseDecimal(s string, _ geo.ProjectionID) (ParsedCoordinate, bool) {
	if strings.ContainsAny(s, `'"`) {
		return ParsedCoordinate{}, false
	}
	if c, ok := parseDecimalDirected(s); ok {
		return c, true
	}
	return parseDecimalBare(s)
}

func parseDecimalDirected(s string) (ParsedCoordinate, bool) {
	toks, ok := tokenize(splitFields(strings.ReplaceAll(stripAxisLabels(s), "°", " ")))
	if !ok || len(toks) != 2 || toks[0].dir == 0 || toks[1].dir == 0 {
		return ParsedCoordinate{}, false
	}
	lat, lon, ok := geographicPair(toks[0], toks[1])
	if !ok {
		return ParsedCoordinate{}, false
	}
	return decimalCoordinate(lat, lon), true
}

// parseDecimalBare accepts the pair only if it cannot be a projected
// coordinate: at least one magnitude must stay below 80.
func parseDecimalBare(s string) (ParsedCoordinate, bool) {
	toks, ok := tokenize(splitFields(strings.ReplaceAll(stripAxisLabels(s), "°", " ")))
	if !ok || len(toks) != 2 || toks[0].dir != 0 || toks[1].dir != 0 {
		return ParsedCoordinate{}, false
	}
	first, second := toks[0].value, toks[1].value
	if math.Abs(first) > 90 || math.Abs(second) > 180 {
		return ParsedCoordinate{}, false
	}
	if math.Abs(first) >= 80 && math.Abs(second) >= 80 {
		return ParsedCoordinate{}, false
	}
	return decimalCoordinate(first, second), true
}

func decimalCoordinate(lat, lon float64) ParsedCoordinate {
	return ParsedCoordinate{
		Lat:             lat,
		Lon:             lon,
		Projection:      geo.EPSG4326,
		FormattedString: format.Decimal(lat, lon),
		InputFormat:     Decimal,
	}
}
