package parser

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/norcoord/internal/geo"
)

// grammar recognizes one notation in normalized input.
type grammar struct {
	name  string
	parse func(s string, fallback geo.ProjectionID) (ParsedCoordinate, bool)
}

// grammars run in this order; the first match wins. Narrow notations come
// before broad ones, so "425917 7730314@25833" is read as EPSG-tagged
// before the projected grammar has to guess a zone.
var grammars = []grammar{
	{"epsg", parseEPSGTagged},
	{"decimal", parseDecimal},
	{"dms", parseDMS},
	{"projected", parseProjected},
}

// Parse interprets free-text input as a coordinate. fallback (zero for none)
// selects how a projected pair without zone is validated. The second result
// is false when no grammar recognizes the input.
func Parse(input string, fallback geo.ProjectionID) (ParsedCoordinate, bool) {
	if strings.TrimSpace(input) == "" {
		return ParsedCoordinate{}, false
	}

	s := normalize(input)
	for _, g := range grammars {
		if c, ok := g.parse(s, fallback); ok {
			log.Trace().
				Str("input", input).
				Str("grammar", g.name).
				Stringer("projection", c.Projection).
				Msg("Coordinate recognized")
			return c, true
		}
	}

	log.Trace().Str("input", input).Msg("Input is not a coordinate")
	return ParsedCoordinate{}, false
}
