package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/woozymasta/norcoord/internal/format"
	"github.com/woozymasta/norcoord/internal/geo"
)

// Building blocks for the degree/minute/second patterns. Marks are optional
// where whitespace can separate the parts instead.
const (
	reDir     = `([NSEW])`
	reDeg     = `(\d{1,3})`
	reSDeg    = `([-+]?\d{1,3})`
	reDegMark = `(?:\s*°\s*|\s+)`
	reMin     = `(\d{1,2})`
	reMinMark = `(?:\s*'\s*|\s+)`
	reDecMin  = `(\d{1,2}(?:\.\d+)?)`
	reSec     = `(\d{1,2}(?:\.\d+)?)`
	reOptMin  = `(?:\s*')?`
	reOptSec  = `(?:\s*")?`
	reSecEnd  = `(?:\s*"\s*|\s+)`
)

var (
	// N 59°54'45.8" E 10°44'45.9"
	dmsDirBefore = regexp.MustCompile(`^` + reDir + `\s*` + reDeg + reDegMark + reMin + reMinMark + reSec + reOptSec +
		`\s*` + reDir + `\s*` + reDeg + reDegMark + reMin + reMinMark + reSec + reOptSec + `$`)
	// N 59°54.763' E 10°44.765'
	dmDirBefore = regexp.MustCompile(`^` + reDir + `\s*` + reDeg + reDegMark + reDecMin + reOptMin +
		`\s*` + reDir + `\s*` + reDeg + reDegMark + reDecMin + reOptMin + `$`)
	// 59°54'45.8" 10°44'45.9"
	dmsPlain = regexp.MustCompile(`^` + reSDeg + reDegMark + reMin + reMinMark + reSec + reSecEnd +
		reSDeg + reDegMark + reMin + reMinMark + reSec + reOptSec + `$`)
	// 59°54.763' 10°44.765'
	dmPlain = regexp.MustCompile(`^` + reSDeg + reDegMark + reDecMin + `(?:\s*'\s*|\s+)` +
		reSDeg + reDegMark + reDecMin + reOptMin + `$`)
	// N59°54.763' 10°44.765' or 59°54.763'N 10°44.765'
	dmFirstDir = regexp.MustCompile(`^` + reDir + `?\s*` + reDeg + reDegMark + reDecMin + reOptMin + `\s*` + reDir + `?` +
		`\s*` + reDeg + reDegMark + reDecMin + reOptMin + `$`)
	// 59°54'45.8"N 10°44'45.9"E
	dmsDirAfter = regexp.MustCompile(`^` + reDeg + reDegMark + reMin + reMinMark + reSec + reOptSec + `\s*` + reDir +
		`\s*` + reDeg + reDegMark + reMin + reMinMark + reSec + reOptSec + `\s*` + reDir + `$`)
	// 59°54.763'N 10°44.765'E
	dmDirAfter = regexp.MustCompile(`^` + reDeg + reDegMark + reDecMin + reOptMin + `\s*` + reDir +
		`\s*` + reDeg + reDegMark + reDecMin + reOptMin + `\s*` + reDir + `$`)
)

// angle is one parsed half of a DMS/DM pair.
type angle struct {
	deg, min, sec string
	dir           byte
}

// decimal validates minutes and seconds (<60) and converts to signed degrees.
func (a angle) decimal() (float64, bool) {
	d, err := strconv.ParseFloat(strings.TrimPrefix(a.deg, "+"), 64)
	if err != nil {
		return 0, false
	}
	m, sec := 0.0, 0.0
	if a.min != "" {
		if m, err = strconv.ParseFloat(a.min, 64); err != nil || m >= 60 {
			return 0, false
		}
	}
	if a.sec != "" {
		if sec, err = strconv.ParseFloat(a.sec, 64); err != nil || sec >= 60 {
			return 0, false
		}
	}

	v := abs(d) + m/60 + sec/3600
	if strings.HasPrefix(a.deg, "-") || a.dir == 'S' || a.dir == 'W' {
		v = -v
	}
	return v, true
}

// dmsPattern pulls two angles out of a regexp match.
type dmsPattern struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) (angle, angle, bool)
}

var dmsPatterns = []dmsPattern{
	{"dms direction before", dmsDirBefore, func(m []string) (angle, angle, bool) {
		return angle{m[2], m[3], m[4], m[1][0]}, angle{m[6], m[7], m[8], m[5][0]}, true
	}},
	{"dm direction before", dmDirBefore, func(m []string) (angle, angle, bool) {
		return angle{m[2], m[3], "", m[1][0]}, angle{m[5], m[6], "", m[4][0]}, true
	}},
	{"dms", dmsPlain, func(m []string) (angle, angle, bool) {
		return angle{m[1], m[2], m[3], 0}, angle{m[4], m[5], m[6], 0}, true
	}},
	{"dm", dmPlain, func(m []string) (angle, angle, bool) {
		return angle{m[1], m[2], "", 0}, angle{m[3], m[4], "", 0}, true
	}},
	{"dm first direction", dmFirstDir, func(m []string) (angle, angle, bool) {
		dir := m[1] + m[4]
		if len(dir) != 1 {
			return angle{}, angle{}, false
		}
		// The unlabelled second axis is the other one, positive.
		second := byte('E')
		if dir[0] == 'E' || dir[0] == 'W' {
			second = 'N'
		}
		return angle{m[2], m[3], "", dir[0]}, angle{m[5], m[6], "", second}, true
	}},
	{"dms direction after", dmsDirAfter, func(m []string) (angle, angle, bool) {
		return angle{m[1], m[2], m[3], m[4][0]}, angle{m[5], m[6], m[7], m[8][0]}, true
	}},
	{"dm direction after", dmDirAfter, func(m []string) (angle, angle, bool) {
		return angle{m[1], m[2], "", m[3][0]}, angle{m[4], m[5], "", m[6][0]}, true
	}},
}

// parseDMS tries the degree/minute(/second) patterns in order. A pattern
// whose minutes or seconds reach 60 is rejected, not clamped, and the next
// pattern is tried.
func parseDMS(s string, _ geo.ProjectionID) (ParsedCoordinate, bool) {
	s = strings.TrimSpace(spaces.ReplaceAllString(strings.NewReplacer(",", " ", ";", " ").Replace(s), " "))

	for _, p := range dmsPatterns {
		m := p.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		a, b, ok := p.extract(m)
		if !ok {
			continue
		}
		lat, lon, ok := anglePair(a, b)
		if !ok {
			continue
		}
		return ParsedCoordinate{
			Lat:             lat,
			Lon:             lon,
			Projection:      geo.EPSG4326,
			FormattedString: format.DMSPair(lat, lon),
			InputFormat:     DMS,
		}, true
	}
	return ParsedCoordinate{}, false
}

// anglePair converts both halves and assigns axes by direction letter
// (latitude first when there are none).
func anglePair(a, b angle) (lat, lon float64, ok bool) {
	av, ok := a.decimal()
	if !ok {
		return 0, 0, false
	}
	bv, ok := b.decimal()
	if !ok {
		return 0, 0, false
	}

	aLat := a.dir == 0 || a.dir == 'N' || a.dir == 'S'
	bLat := b.dir == 'N' || b.dir == 'S'
	switch {
	case b.dir == 0 || (aLat && !bLat):
		if a.dir != 0 && !aLat {
			return 0, 0, false
		}
		lat, lon = av, bv
	case !aLat && bLat:
		lat, lon = bv, av
	default:
		return 0, 0, false
	}
	return lat, lon, validLatLon(lat, lon)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
