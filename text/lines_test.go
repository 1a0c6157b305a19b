package text_test

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"cookbook/text"
)

func TestLines(t *testing.T) {
	var got []string
	for line, err := range text.Lines(strings.NewReader("a\nb\r\n\nc")) {
		require.NoError(t, err)
		got = append(got, line)
	}
	require.Equal(t, []string{"a", "b", "", "c"}, got)

	long := strings.Repeat("x", 200_000)
	got = nil
	for line, err := range text.Lines(strings.NewReader(long + "\n")) {
		require.NoError(t, err)
		got = append(got, line)
	}
	require.Equal(t, []string{long}, got)
}

func TestLines_Error(t *testing.T) {
	errBoom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("x\n"), iotest.ErrReader(errBoom))

	var (
		lines []string
		errs  []error
	)
	for line, err := range text.Lines(r) {
		lines = append(lines, line)
		errs = append(errs, err)
	}
	require.Equal(t, []string{"x", ""}, lines)
	require.NoError(t, errs[0])
	require.ErrorIs(t, errs[1], errBoom)
}

type hit struct {
	line    string
	history []string
}

func TestSearchWithHistory(t *testing.T) {
	lines := []string{"a python", "b", "c", "d python", "e python"}

	collect := func(n int) []hit {
		var hits []hit
		for line, history := range text.SearchWithHistory(slices.Values(lines), "python", n) {
			hits = append(hits, hit{line, history})
		}
		return hits
	}

	require.Equal(t, []hit{
		{"a python", []string{}},
		{"d python", []string{"b", "c"}},
		{"e python", []string{"c", "d python"}},
	}, collect(2))

	require.Equal(t, []hit{
		{"a python", []string{}},
		{"d python", []string{}},
		{"e python", []string{}},
	}, collect(0))

	require.Equal(t, []string{"a python", "b", "c"}, collect(10)[1].history)

	var first string
	for line := range text.SearchWithHistory(slices.Values(lines), "python", 2) {
		first = line
		break
	}
	require.Equal(t, "a python", first)
}
