package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	numberToken = regexp.MustCompile(`^([NSEW])?([-+]?\d+(?:\.\d+)?)([NSEW])?$`)
	axisLabels  = regexp.MustCompile(`(?i)\b(?:latitude|longitude|breddegrad|lengdegrad|bredde|lengde|lat|lon|lng|long)\b\s*[:=]?|\b[xy]\s*[:=]`)
)

// token is a number with an optional direction letter.
type token struct {
	value float64
	dir   byte
}

func (t token) isLatAxis() bool { return t.dir == 'N' || t.dir == 'S' }

func (t token) isLonAxis() bool { return t.dir == 'E' || t.dir == 'W' }

// stripAxisLabels drops "lat:", "lon", "x=" and similar prefixes.
func stripAxisLabels(s string) string {
	return axisLabels.ReplaceAllString(s, " ")
}

// splitFields splits on whitespace, commas, semicolons, colons and equals.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == ':' || r == '='
	})
}

// tokenize reads fields as numbers with optional direction letters. A
// direction letter standing alone binds to the following number ("E 597000")
// or, if that leaves a letter dangling, to the preceding one ("597000 E").
func tokenize(fields []string) ([]token, bool) {
	if toks, ok := bindDirections(fields, true); ok {
		return toks, true
	}
	return bindDirections(fields, false)
}

func bindDirections(fields []string, forward bool) ([]token, bool) {
	if len(fields) == 0 {
		return nil, false
	}

	out := make([]token, 0, 2)
	var pending byte

	for _, f := range fields {
		if isDirection(f) {
			if forward {
				if pending != 0 {
					return nil, false
				}
				pending = f[0]
				continue
			}
			if len(out) == 0 || out[len(out)-1].dir != 0 {
				return nil, false
			}
			out[len(out)-1].dir = f[0]
			continue
		}

		t, ok := parseToken(f)
		if !ok {
			return nil, false
		}
		if pending != 0 {
			if t.dir != 0 {
				return nil, false
			}
			t.dir, pending = pending, 0
		}
		out = append(out, t)
	}

	return out, pending == 0
}

func parseToken(f string) (token, bool) {
	m := numberToken.FindStringSubmatch(f)
	if m == nil || (m[1] != "" && m[3] != "") {
		return token{}, false
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return token{}, false
	}
	t := token{value: v}
	switch {
	case m[1] != "":
		t.dir = m[1][0]
	case m[3] != "":
		t.dir = m[3][0]
	}
	return t, true
}

func isDirection(f string) bool {
	return len(f) == 1 && strings.ContainsRune("NSEW", rune(f[0]))
}

// geographicPair assigns two tokens to latitude and longitude. Direction
// letters decide the axes and signs when present; otherwise the first
// token is latitude.
func geographicPair(a, b token) (lat, lon float64, ok bool) {
	switch {
	case a.dir == 0 && b.dir == 0:
		lat, lon = a.value, b.value
	case a.isLatAxis() || b.isLonAxis():
		if a.isLonAxis() || b.isLatAxis() {
			return 0, 0, false
		}
		lat, lon = signed(a), signed(b)
	default:
		lat, lon = signed(b), signed(a)
	}
	return lat, lon, validLatLon(lat, lon)
}

// projectedPair assigns two tokens to easting and northing. An 'N' on the
// first token or an 'E' on the second swaps the order; without letters the
// first value is easting. With byMagnitude a first value that alone exceeds
// one million is taken as the northing instead.
func projectedPair(a, b token, byMagnitude bool) (east, north float64, ok bool) {
	for _, t := range []token{a, b} {
		if t.dir == 'S' || t.dir == 'W' {
			return 0, 0, false
		}
	}
	if a.dir != 0 && a.dir == b.dir {
		return 0, 0, false
	}

	switch {
	case a.dir == 'N' || b.dir == 'E':
		return b.value, a.value, true
	case a.dir == 'E' || b.dir == 'N':
		return a.value, b.value, true
	case byMagnitude && a.value > 1_000_000 && b.value < 1_000_000:
		return b.value, a.value, true
	default:
		return a.value, b.value, true
	}
}

func signed(t token) float64 {
	if t.dir == 'S' || t.dir == 'W' {
		if t.value > 0 {
			return -t.value
		}
	}
	return t.value
}

func validLatLon(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
