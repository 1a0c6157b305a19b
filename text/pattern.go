// Package text holds string matching helpers: regular-expression search
// with a shared compile cache, shell wildcards, multi-delimiter splitting,
// and line scanning.
package text

import (
	"fmt"
	"iter"
	"regexp"

	lru "github.com/hashicorp/golang-lru"
)

// CacheSize is the number of compiled patterns kept by Compile.
const CacheSize = 512

var patterns = newPatternCache(CacheSize)

func newPatternCache(size int) *lru.ARCCache {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return cache
}

// Pattern is a compiled regular expression. Its methods mirror the common
// match/search/findall vocabulary: Match is anchored at the start of the
// input, FullMatch must consume all of it, and Search looks anywhere.
//
// A Pattern is safe for concurrent use.
type Pattern struct {
	expr   string
	re     *regexp.Regexp
	prefix *regexp.Regexp
	full   *regexp.Regexp
}

// Compile parses expr, returning a cached Pattern when expr was compiled
// recently.
func Compile(expr string) (*Pattern, error) {
	if p, ok := patterns.Get(expr); ok {
		return p.(*Pattern), nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("text: compile %q: %w", expr, err)
	}
	p := &Pattern{
		expr:   expr,
		re:     re,
		prefix: regexp.MustCompile(`\A(?:` + expr + `)`),
		full:   regexp.MustCompile(`\A(?:` + expr + `)\z`),
	}
	patterns.Add(expr, p)
	return p, nil
}

// MustCompile is like Compile but panics if expr cannot be parsed.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) String() string { return p.expr }

// NumGroups returns the number of capture groups.
func (p *Pattern) NumGroups() int { return p.re.NumSubexp() }

// Regexp returns the underlying expression.
func (p *Pattern) Regexp() *regexp.Regexp { return p.re }

// Match matches p at the start of s. It returns nil if there is no match.
func (p *Pattern) Match(s string) *MatchResult {
	return newMatch(s, p.prefix.FindStringSubmatchIndex(s))
}

// FullMatch returns a match only if p matches the whole of s.
func (p *Pattern) FullMatch(s string) *MatchResult {
	return newMatch(s, p.full.FindStringSubmatchIndex(s))
}

// Search returns the first match of p anywhere in s, or nil.
func (p *Pattern) Search(s string) *MatchResult {
	return newMatch(s, p.re.FindStringSubmatchIndex(s))
}

// FindAll returns every non-overlapping match in s. Each row holds the
// capture groups of one match, or the whole match when p has no groups.
// Unmatched groups are empty.
func (p *Pattern) FindAll(s string) [][]string {
	res := [][]string{}
	for m := range p.FindIter(s) {
		if p.NumGroups() == 0 {
			res = append(res, []string{m.Group(0)})
		} else {
			res = append(res, m.Groups())
		}
	}
	return res
}

// FindIter yields every non-overlapping match in s.
func (p *Pattern) FindIter(s string) iter.Seq[*MatchResult] {
	return func(yield func(*MatchResult) bool) {
		for _, loc := range p.re.FindAllStringSubmatchIndex(s, -1) {
			if !yield(newMatch(s, loc)) {
				return
			}
		}
	}
}

// MatchResult describes one match of a Pattern.
type MatchResult struct {
	s   string
	loc []int
}

func newMatch(s string, loc []int) *MatchResult {
	if loc == nil {
		return nil
	}
	return &MatchResult{s: s, loc: loc}
}

// Group returns the text of group i; group 0 is the whole match. A group
// that did not take part in the match is empty. Group panics if the
// pattern has no group i.
func (m *MatchResult) Group(i int) string {
	if i < 0 || 2*i+1 >= len(m.loc) {
		panic(fmt.Sprintf("text.MatchResult: no such group %d", i))
	}
	start, end := m.loc[2*i], m.loc[2*i+1]
	if start < 0 {
		return ""
	}
	return m.s[start:end]
}

// Groups returns the text of every capture group, in order.
func (m *MatchResult) Groups() []string {
	n := len(m.loc)/2 - 1
	groups := make([]string, n)
	for i := range groups {
		groups[i] = m.Group(i + 1)
	}
	return groups
}

// Start returns the byte offset where the match begins.
func (m *MatchResult) Start() int { return m.loc[0] }

// End returns the byte offset just past the match.
func (m *MatchResult) End() int { return m.loc[1] }

func (m *MatchResult) String() string {
	return fmt.Sprintf("Match(span=[%d,%d], match=%q)", m.Start(), m.End(), m.Group(0))
}

// Match compiles expr through the cache and matches it at the start of s.
func Match(expr, s string) (*MatchResult, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return p.Match(s), nil
}

// Search compiles expr through the cache and finds its first match in s.
func Search(expr, s string) (*MatchResult, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return p.Search(s), nil
}

// FindAll compiles expr through the cache and returns Pattern.FindAll.
func FindAll(expr, s string) ([][]string, error) {
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return p.FindAll(s), nil
}

// PurgeCache empties the compile cache.
func PurgeCache() {
	patterns.Purge()
}

// CachedPatterns returns the number of patterns in the compile cache.
func CachedPatterns() int {
	return patterns.Len()
}
