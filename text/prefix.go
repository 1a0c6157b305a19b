package text

import (
	"slices"
	"strings"

	"cookbook/sliceutil"
)

// HasAnyPrefix reports whether s begins with any of prefixes.
func HasAnyPrefix(s string, prefixes ...string) bool {
	return slices.ContainsFunc(prefixes, func(p string) bool {
		return strings.HasPrefix(s, p)
	})
}

// HasAnySuffix reports whether s ends with any of suffixes.
func HasAnySuffix(s string, suffixes ...string) bool {
	return slices.ContainsFunc(suffixes, func(p string) bool {
		return strings.HasSuffix(s, p)
	})
}

// FilterSuffix returns the names ending with one of suffixes, in order.
func FilterSuffix(names []string, suffixes ...string) []string {
	return sliceutil.Filter(names, func(name string) bool {
		return HasAnySuffix(name, suffixes...)
	})
}
