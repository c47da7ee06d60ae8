package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/woozymasta/norcoord/internal/geo"
)

// Validation windows for projected pairs.
const (
	utmMinEasting  = -100_000
	utmMaxEasting  = 1_200_000
	utmMinNorthing = 5_000_000
	utmMaxNorthing = 9_000_000
	mercatorLimit  = 20_037_509
)

var (
	projectedLabels = regexp.MustCompile(`(?i)\b(?:sone|zone|utm|epsg)\s*[:=]?|\b(?:x|y)\s*[:=]`)
	zoneToken       = regexp.MustCompile(`(?i)^([A-Z])?(\d{1,2})([A-Z])?$`)
	epsgToken       = regexp.MustCompile(`^(?:3263[2-6]|2583[2-6])$`)
	brackets        = strings.NewReplacer("(", " ", ")", " ", "[", " ", "]", " ")
)

// parseProjected reads an easting/northing pair with an optional zone
// ("33", "32V", "sone 33") or EPSG token (25833, 32633). Without one the
// fallback projection decides between UTM and Web Mercator validation,
// defaulting to EPSG:25833.
func parseProjected(s string, fallback geo.ProjectionID) (ParsedCoordinate, bool) {
	fields := splitFields(brackets.Replace(stripAxisLabels(projectedLabels.ReplaceAllString(s, " "))))

	id, explicit := geo.ProjectionID(0), false
	if len(fields) >= 3 {
		var ok bool
		if fields, id, explicit, ok = takeZone(fields); !ok {
			return ParsedCoordinate{}, false
		}
	}

	toks, ok := tokenize(fields)
	if !ok || len(toks) != 2 {
		return ParsedCoordinate{}, false
	}
	east, north, ok := projectedPair(toks[0], toks[1], true)
	if !ok {
		return ParsedCoordinate{}, false
	}

	if !explicit {
		id = geo.EPSG25833
		if fallback == geo.EPSG3857 || fallback.IsUTM() {
			id = fallback
		}
	}
	if !inProjectedRange(east, north, id) {
		return ParsedCoordinate{}, false
	}
	return projected(east, north, id), true
}

// takeZone removes a leading zone token or a leading/trailing EPSG token.
// ok is false when a zone is given but not one of the supported ones.
func takeZone(fields []string) (rest []string, id geo.ProjectionID, explicit, ok bool) {
	if m := zoneToken.FindStringSubmatch(fields[0]); m != nil {
		zone, _ := strconv.Atoi(m[2])
		if band := strings.ToUpper(m[3]); band != "" && band < "N" {
			return nil, 0, false, false // southern hemisphere band
		}
		pid, supported := geo.UTMProjectionForZone(zone)
		if !supported {
			return nil, 0, false, false
		}
		return fields[1:], pid, true, true
	}

	for _, i := range []int{0, len(fields) - 1} {
		if !epsgToken.MatchString(fields[i]) {
			continue
		}
		code, _ := strconv.Atoi(fields[i])
		pid, _ := geo.UTMProjectionForZone(code % 100)
		rest = append(append([]string{}, fields[:i]...), fields[i+1:]...)
		return rest, pid, true, true
	}

	return fields, 0, false, true
}

func inProjectedRange(east, north float64, id geo.ProjectionID) bool {
	if id == geo.EPSG3857 {
		return east >= -mercatorLimit && east <= mercatorLimit &&
			north >= -mercatorLimit && north <= mercatorLimit
	}
	return east >= utmMinEasting && east <= utmMaxEasting &&
		north >= utmMinNorthing && north <= utmMaxNorthing
}
