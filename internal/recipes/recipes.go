// Package recipes is the catalogue of runnable cookbook demos. Each recipe
// exercises one of the library packages and prints what it computed.
package recipes

import (
	"fmt"
	"io"

	"cookbook/mapsutil"
)

// Recipe is one catalogue entry.
type Recipe struct {
	Section string `json:"section" yaml:"section"`
	Title   string `json:"title" yaml:"title"`

	run func(p *printer) error
}

// Run writes the demo output of the recipe to w.
func (r Recipe) Run(w io.Writer) error {
	p := &printer{w: w}
	if err := r.run(p); err != nil {
		return err
	}
	return p.err
}

// printer remembers the first write error so recipes can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, a...)
	}
}

func (p *printer) printf(format string, a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, a...)
	}
}

var catalogue = build()

func build() *mapsutil.OrderedMap[string, Recipe] {
	c := mapsutil.NewOrderedMap[string, Recipe]()
	add := func(slug, section, title string, run func(p *printer) error) {
		if c.Has(slug) {
			panic("recipes: duplicate slug " + slug)
		}
		c.Set(slug, Recipe{Section: section, Title: title, run: run})
	}

	add("unpack-sequence", "1.1", "Unpacking a sequence into separate variables", unpackSequence)
	add("unpack-star", "1.2", "Unpacking elements from iterables of arbitrary length", unpackStar)
	add("keep-last-n", "1.3", "Keeping the last N items", keepLastN)
	add("largest-smallest", "1.4", "Finding the largest or smallest N items", largestSmallest)
	add("priority-queue", "1.5", "Implementing a priority queue", priorityQueue)
	add("multidict", "1.6", "Mapping keys to multiple values in a dictionary", multidict)
	add("ordered-dict", "1.7", "Keeping dictionaries in order", orderedDict)
	add("dict-calc", "1.8", "Calculating with dictionaries", dictCalc)
	add("dict-common", "1.9", "Finding commonalities in two dictionaries", dictCommon)
	add("dedupe", "1.10", "Removing duplicates from a sequence while maintaining order", dedupe)
	add("named-slice", "1.11", "Naming a slice", namedSlice)
	add("most-common", "1.12", "Determining the most frequently occurring items in a sequence", mostCommon)
	add("sort-by-key", "1.13", "Sorting a list of dictionaries by a common key", sortByKey)
	add("sort-objects", "1.14", "Sorting objects without native comparison support", sortObjects)
	add("filter", "1.16", "Filtering sequence elements", filterSequence)
	add("dict-subset", "1.17", "Extracting a subset of a dictionary", dictSubset)
	add("named-tuple", "1.18", "Mapping names to sequence elements", namedTuple)
	add("transform-reduce", "1.19", "Transforming and reducing data at the same time", transformReduce)
	add("chain-map", "1.20", "Combining multiple mappings into a single mapping", chainMap)
	add("split-delimiters", "2.1", "Splitting strings on any of multiple delimiters", splitDelimiters)
	add("prefix-suffix", "2.2", "Matching text at the start or end of a string", prefixSuffix)
	add("wildcards", "2.3", "Matching strings using shell wildcard patterns", wildcards)
	add("regex", "2.4", "Matching and searching for text patterns", regex)
	return c
}

// Catalogue returns every recipe keyed by slug, in section order.
func Catalogue() *mapsutil.OrderedMap[string, Recipe] {
	c := mapsutil.NewOrderedMap[string, Recipe]()
	for slug, r := range catalogue.All() {
		c.Set(slug, r)
	}
	return c
}

// Lookup returns the recipe registered under slug.
func Lookup(slug string) (Recipe, bool) {
	return catalogue.Get(slug)
}

// Slugs returns the recipe slugs in section order.
func Slugs() []string {
	return catalogue.Keys()
}

// UnknownRecipeError is returned by RunAll for a slug that is not in the
// catalogue.
type UnknownRecipeError struct {
	Slug string
}

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("unknown recipe %q", e.Slug)
}

// RunAll runs the named recipes in order, or every recipe if slugs is
// empty. Each recipe's output is preceded by a "== section title ==" header.
// Unknown slugs are reported before anything runs.
func RunAll(w io.Writer, slugs ...string) error {
	if len(slugs) == 0 {
		slugs = Slugs()
	}
	selected := make([]Recipe, 0, len(slugs))
	for _, slug := range slugs {
		r, ok := Lookup(slug)
		if !ok {
			return &UnknownRecipeError{Slug: slug}
		}
		selected = append(selected, r)
	}

	for i, r := range selected {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s %s ==\n", r.Section, r.Title); err != nil {
			return err
		}
		if err := r.Run(w); err != nil {
			return fmt.Errorf("recipe %s: %w", slugs[i], err)
		}
	}
	return nil
}
