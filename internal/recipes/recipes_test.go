package recipes_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"cookbook/internal/recipes"
)

func TestRecipesGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for slug, r := range recipes.Catalogue().All() {
		t.Run(slug, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Run(&buf))
			g.Assert(t, slug, buf.Bytes())
		})
	}
}

func TestCatalogue(t *testing.T) {
	slugs := recipes.Slugs()
	require.Len(t, slugs, 23)
	require.Equal(t, "unpack-sequence", slugs[0])
	require.Equal(t, "regex", slugs[len(slugs)-1])

	c := recipes.Catalogue()
	require.Equal(t, slugs, c.Keys())
	c.Delete("regex")
	require.Len(t, recipes.Slugs(), 23)

	r, ok := recipes.Lookup("priority-queue")
	require.True(t, ok)
	require.Equal(t, "1.5", r.Section)
	require.Equal(t, "Implementing a priority queue", r.Title)

	_, ok = recipes.Lookup("nope")
	require.False(t, ok)
}

func TestCatalogueJSON(t *testing.T) {
	data, err := recipes.Catalogue().MarshalJSON()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data),
		`{"unpack-sequence":{"section":"1.1","title":"Unpacking a sequence into separate variables"},`))
	require.True(t, strings.HasSuffix(string(data),
		`"regex":{"section":"2.4","title":"Matching and searching for text patterns"}}`))
}

func TestRunAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, recipes.RunAll(&buf, "priority-queue", "dedupe"))
	require.Equal(t, `== 1.5 Implementing a priority queue ==
Item("bar")
Item("spam")
Item("foo")
Item("grok")
error: queue is empty

== 1.10 Removing duplicates from a sequence while maintaining order ==
[1 5 2 9 10]
[{1 2} {1 3} {2 4}]
[{1 2} {2 4}]
`, buf.String())

	buf.Reset()
	require.NoError(t, recipes.RunAll(&buf))
	headers := 0
	for line := range strings.Lines(buf.String()) {
		if strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " ==\n") {
			headers++
		}
	}
	require.Equal(t, 23, headers)
}

func TestRunAll_UnknownRecipe(t *testing.T) {
	var buf bytes.Buffer
	err := recipes.RunAll(&buf, "dedupe", "missing")

	var unknown *recipes.UnknownRecipeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "missing", unknown.Slug)
	require.EqualError(t, err, `unknown recipe "missing"`)
	require.Zero(t, buf.Len())
}

var errClosed = errors.New("closed")

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errClosed
	}
	w.after--
	return len(p), nil
}

func TestRun_WriteError(t *testing.T) {
	r, ok := recipes.Lookup("regex")
	require.True(t, ok)
	require.ErrorIs(t, r.Run(&failingWriter{after: 2}), errClosed)

	err := recipes.RunAll(&failingWriter{after: 1}, "dedupe")
	require.ErrorIs(t, err, errClosed)
	require.ErrorContains(t, err, "recipe dedupe")

	require.ErrorIs(t, recipes.RunAll(&failingWriter{}, "dedupe"), errClosed)
}
