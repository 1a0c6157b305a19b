package text

import (
	"regexp"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"cookbook/sliceutil"
)

// TranslateWildcard converts a shell wildcard pattern into an anchored
// regular expression. '*' matches any run of characters, '?' any single
// character, "[seq]" any character in seq and "[!seq]" any character not in
// seq. A '[' without a closing ']' is literal.
func TranslateWildcard(pattern string) string {
	var b strings.Builder
	b.WriteString(`\A(?s:`)

	i, n := 0, len(pattern)
	for i < n {
		start := i
		r, size := utf8.DecodeRuneInString(pattern[i:])
		i += size
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteByte('.')
		case '[':
			j := i
			if j < n && pattern[j] == '!' {
				j++
			}
			if j < n && pattern[j] == ']' {
				j++
			}
			for j < n && pattern[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(translateClass(pattern[i:j]))
			i = j + 1
		default:
			// Quote the original bytes so multi-byte and invalid
			// sequences pass through unchanged.
			b.WriteString(regexp.QuoteMeta(pattern[start:i]))
		}
	}

	b.WriteString(`)\z`)
	return b.String()
}

// translateClass turns the body of a "[...]" wildcard into a character class.
func translateClass(body string) string {
	negate := strings.HasPrefix(body, "!")
	if negate {
		body = body[1:]
	}
	var b strings.Builder
	b.WriteByte('[')
	if negate {
		b.WriteByte('^')
	}
	for i, r := range body {
		switch {
		case r == '\\' || r == '[' || r == ']':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '^' && i == 0 && !negate:
			b.WriteString(`\^`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// WildcardMatchCase reports whether name matches the wildcard pattern,
// comparing case exactly. A malformed pattern, such as one with a reversed
// range, matches nothing.
func WildcardMatchCase(name, pattern string) bool {
	p, err := Compile(TranslateWildcard(pattern))
	if err != nil {
		return false
	}
	return p.re.MatchString(name)
}

// WildcardMatchFold is like WildcardMatchCase but ignores case.
func WildcardMatchFold(name, pattern string) bool {
	fold := cases.Fold()
	return WildcardMatchCase(fold.String(name), fold.String(pattern))
}

// WildcardMatch follows the case rule of the host file system: case is
// ignored on Windows and significant elsewhere.
func WildcardMatch(name, pattern string) bool {
	if foldsCase(runtime.GOOS) {
		return WildcardMatchFold(name, pattern)
	}
	return WildcardMatchCase(name, pattern)
}

func foldsCase(goos string) bool {
	return goos == "windows"
}

// WildcardFilter returns the names that match pattern under WildcardMatch.
func WildcardFilter(names []string, pattern string) []string {
	return sliceutil.Filter(names, func(name string) bool {
		return WildcardMatch(name, pattern)
	})
}
