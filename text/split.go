package text

import (
	"strings"
	"unicode"
)

// Split splits s around the matches of p. The text of capture groups is
// kept between the fields, with unmatched groups as empty strings.
//
// Matches are found as by FindAllStringSubmatchIndex, so an empty match
// directly after a previous match does not split. Python 3.7 and later keep
// that match: re.split("x*", "axbc") gives ['', 'a', '', 'b', 'c', ''] where
// Split gives ["" "a" "b" "c" ""].
func (p *Pattern) Split(s string) []string {
	fields := []string{}
	last := 0
	for _, loc := range p.re.FindAllStringSubmatchIndex(s, -1) {
		fields = append(fields, s[last:loc[0]])
		m := MatchResult{s: s, loc: loc}
		fields = append(fields, m.Groups()...)
		last = loc[1]
	}
	return append(fields, s[last:])
}

// Split compiles expr through the cache and splits s around its matches.
func Split(expr, s string) ([]string, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return p.Split(s), nil
}

// SplitKeep splits s around the matches of expr and also returns the
// delimiter that followed each value. The delimiter is the first capture
// group when expr has one, otherwise the whole match. The last delimiter is
// always "", so both slices have the same length and Rejoin restores s.
func SplitKeep(expr, s string) (values, delimiters []string, err error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, nil, err
	}

	last := 0
	for m := range p.FindIter(s) {
		values = append(values, s[last:m.Start()])
		if p.NumGroups() > 0 {
			delimiters = append(delimiters, m.Group(1))
		} else {
			delimiters = append(delimiters, m.Group(0))
		}
		last = m.End()
	}
	values = append(values, s[last:])
	delimiters = append(delimiters, "")
	return values, delimiters, nil
}

// Rejoin interleaves values and delimiters, stopping at the shorter slice.
func Rejoin(values, delimiters []string) string {
	var b strings.Builder
	for i := range min(len(values), len(delimiters)) {
		b.WriteString(values[i])
		b.WriteString(delimiters[i])
	}
	return b.String()
}

// SplitAny splits s on any rune in delims together with the whitespace that
// follows it. A space in delims stands for any whitespace.
func SplitAny(s, delims string) []string {
	if delims == "" {
		return []string{s}
	}
	return MustCompile(delimClass(delims) + `\s*`).Split(s)
}

func delimClass(delims string) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, r := range delims {
		switch {
		case unicode.IsSpace(r):
			b.WriteString(`\s`)
		case r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(']')
	return b.String()
}
