package sliceutil_test

import (
	"cmp"
	"slices"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"

	"cookbook/sliceutil"
)

type Stock struct {
	Name   string
	Shares int
	Price  float64
}

var portfolio = []Stock{
	{"IBM", 100, 91.1},
	{"AAPL", 50, 543.22},
	{"FB", 200, 21.09},
	{"HPQ", 35, 31.75},
	{"YHOO", 45, 16.35},
	{"ACME", 75, 115.65},
}

func TestLargestSmallest(t *testing.T) {
	nums := []int{1, 8, 2, 23, 7, -4, 18, 23, 42, 37, 2}

	tests := []struct {
		name string
		fn   func([]int, int) []int
		n    int
		want []int
	}{
		{"Largest3", sliceutil.Largest[int], 3, []int{42, 37, 23}},
		{"Smallest3", sliceutil.Smallest[int], 3, []int{-4, 1, 2}},
		{"LargestZero", sliceutil.Largest[int], 0, []int{}},
		{"SmallestNegative", sliceutil.Smallest[int], -1, []int{}},
		{"LargestAll", sliceutil.Largest[int], 100, []int{42, 37, 23, 23, 18, 8, 7, 2, 2, 1, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(nums, tt.n)
			if diff := gocmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLargestBy_Portfolio(t *testing.T) {
	price := func(s Stock) float64 { return s.Price }

	cheap := sliceutil.SmallestBy(portfolio, 3, price)
	expensive := sliceutil.LargestBy(portfolio, 3, price)

	names := func(ss []Stock) []string {
		return sliceutil.Map(ss, func(s Stock) string { return s.Name })
	}
	if diff := gocmp.Diff([]string{"YHOO", "FB", "HPQ"}, names(cheap)); diff != "" {
		t.Errorf("SmallestBy (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff([]string{"AAPL", "ACME", "IBM"}, names(expensive)); diff != "" {
		t.Errorf("LargestBy (-want +got):\n%s", diff)
	}
}

func TestLargestBy_StableTies(t *testing.T) {
	type pair struct {
		Key, ID int
	}
	input := []pair{{1, 0}, {2, 1}, {2, 2}, {1, 3}, {2, 4}, {3, 5}}
	key := func(p pair) int { return p.Key }

	got := sliceutil.LargestBy(input, 3, key)
	want := []pair{{3, 5}, {2, 1}, {2, 2}}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Errorf("LargestBy (-want +got):\n%s", diff)
	}

	got = sliceutil.SmallestBy(input, 3, key)
	want = []pair{{1, 0}, {1, 3}, {2, 1}}
	if diff := gocmp.Diff(want, got); diff != "" {
		t.Errorf("SmallestBy (-want +got):\n%s", diff)
	}
}

func TestTopN_MatchesStableSort(t *testing.T) {
	type pair struct {
		Key, ID int
	}
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOf(rapid.IntRange(-5, 5)).Draw(t, "keys")
		n := rapid.IntRange(-1, len(keys)+2).Draw(t, "n")

		input := make([]pair, len(keys))
		for i, k := range keys {
			input[i] = pair{k, i}
		}
		key := func(p pair) int { return p.Key }

		asc := slices.Clone(input)
		slices.SortStableFunc(asc, func(a, b pair) int { return cmp.Compare(a.Key, b.Key) })
		desc := slices.Clone(input)
		slices.SortStableFunc(desc, func(a, b pair) int { return cmp.Compare(b.Key, a.Key) })

		limit := max(0, min(n, len(input)))
		opts := cmpopts.EquateEmpty()
		if diff := gocmp.Diff(asc[:limit], sliceutil.SmallestBy(input, n, key), opts); diff != "" {
			t.Fatalf("SmallestBy(%d) (-want +got):\n%s", n, diff)
		}
		if diff := gocmp.Diff(desc[:limit], sliceutil.LargestBy(input, n, key), opts); diff != "" {
			t.Fatalf("LargestBy(%d) (-want +got):\n%s", n, diff)
		}
	})
}
