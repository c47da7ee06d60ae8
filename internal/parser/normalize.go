package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// directionWords maps lower-cased letter runs to a direction letter.
var directionWords = map[string]string{
	"n": "N", "nord": "N", "north": "N", "northing": "N",
	"s": "S", "syd": "S", "sør": "S", "sor": "S", "south": "S",
	"e": "E", "ø": "E", "øst": "E", "ost": "E", "east": "E", "easting": "E",
	"w": "W", "vest": "W", "west": "W",
}

var markReplacer = strings.NewReplacer(
	"′", "'", "’", "'", "‘", "'", "´", "'",
	"″", `"`, "”", `"`, "“", `"`,
	"º", "°", "˚", "°",
)

var (
	groupedDigits = regexp.MustCompile(`(\d)[\x{202F}\x{00A0}](\d)`)
	spaces        = regexp.MustCompile(`\s+`)
	commaDecimal  = regexp.MustCompile(`(\d+),(\d+)`)
)

// normalize rewrites raw input into the canonical form every grammar works
// on: direction words as N/S/E/W, ASCII prime marks, dot decimals, single
// spaces.
func normalize(input string) string {
	s := translateDirections(input)
	s = markReplacer.Replace(s)
	s = strings.ReplaceAll(s, "''", `"`)
	for groupedDigits.MatchString(s) {
		s = groupedDigits.ReplaceAllString(s, "$1$2")
	}
	s = spaces.ReplaceAllString(strings.TrimSpace(s), " ")
	return commaDecimals(s)
}

// translateDirections replaces whole letter runs found in directionWords.
// Runs are split on any non-letter, so "59.9N" and "Nord 59.9" both work
// while "32V" keeps its band letter.
func translateDirections(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); {
		if !unicode.IsLetter(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsLetter(runes[j]) {
			j++
		}
		word := string(runes[i:j])
		if d, ok := directionWords[strings.ToLower(word)]; ok {
			b.WriteString(d)
		} else {
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}

// commaDecimals turns "59,9127" into "59.9127" when the fraction is followed
// by a separator or the end of input. Thousands groups ("6,643,000") and
// unspaced projected pairs ("425917,7730314") are left alone.
func commaDecimals(s string) string {
	matches := commaDecimal.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	out := []byte(s)
	for _, m := range matches {
		start, end := m[0], m[1]
		intLen, fracLen := m[3]-m[2], m[5]-m[4]
		comma := m[3]

		if start > 0 && (s[start-1] == '.' || s[start-1] == ',') {
			continue
		}
		if intLen >= 4 && fracLen >= 4 {
			continue
		}
		if !separatorAt(s, end) {
			continue
		}
		out[comma] = '.'
	}
	return string(out)
}

func separatorAt(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	switch c := s[i]; {
	case c == ' ' || c == ';' || c == '\'' || c == '"':
		return true
	case c == ',':
		return i+1 >= len(s) || s[i+1] == ' '
	case c >= 'A' && c <= 'Z':
		return true
	}
	return strings.HasPrefix(s[i:], "°")
}
