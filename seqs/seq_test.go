package seqs_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"cookbook/seqs"
)

func TestTryMap(t *testing.T) {
	input := []int{1, 2, 3, 4}
	expectedErr := errors.New("fail")

	t.Run("Success", func(t *testing.T) {
		seq := seqs.TryMap(slices.Values(input), func(x int) (int, error) {
			return x * 2, nil
		})

		var result []int
		for v, err := range seq {
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			result = append(result, v)
		}
		if !slices.Equal(result, []int{2, 4, 6, 8}) {
			t.Errorf("TryMap success mismatch: got %v", result)
		}
	})

	t.Run("Error", func(t *testing.T) {
		seqErr := seqs.TryMap(slices.Values(input), func(x int) (int, error) {
			if x == 3 {
				return 0, expectedErr
			}
			return x * 2, nil
		})

		var result []int
		var gotErr error
		for v, err := range seqErr {
			if err != nil {
				gotErr = err
				break
			}
			result = append(result, v)
		}

		if gotErr != expectedErr {
			t.Errorf("Expected error %v, got %v", expectedErr, gotErr)
		}
		// Should stop at 3, so we get results for 1 and 2
		if !slices.Equal(result, []int{2, 4}) {
			t.Errorf("TryMap error partial result mismatch: got %v", result)
		}
	})
}

func TestTryReduce(t *testing.T) {
	expectedErr := errors.New("fail")
	sum, err := seqs.TryReduce(slices.Values([]int{1, 2, 3, 4}), 0, func(acc, x int) (int, error) {
		if x == 4 {
			return acc, expectedErr
		}
		return acc + x, nil
	})
	require.ErrorIs(t, err, expectedErr)
	require.Equal(t, 6, sum, "partial accumulation is returned with the error")

	sum, err = seqs.TryReduce(slices.Values([]int{1, 2, 3, 4}), 0, func(acc, x int) (int, error) {
		return acc + x, nil
	})
	require.NoError(t, err)
	require.Equal(t, 10, sum)

	longest := seqs.Reduce(slices.Values([]string{"foo", "spam", "ab"}), "", func(acc, s string) string {
		if len(s) > len(acc) {
			return s
		}
		return acc
	})
	require.Equal(t, "spam", longest)
}

func TestDistinctBy(t *testing.T) {
	type point struct{ X, Y int }
	a := []map[string]int{
		{"x": 1, "y": 2},
		{"x": 1, "y": 3},
		{"x": 1, "y": 2},
		{"x": 2, "y": 4},
	}

	byXY := seqs.DistinctBy(slices.Values(a), func(d map[string]int) point {
		return point{d["x"], d["y"]}
	})
	require.Equal(t, []map[string]int{a[0], a[1], a[3]}, seqs.Collect(byXY))

	byX := seqs.DistinctBy(slices.Values(a), func(d map[string]int) int { return d["x"] })
	require.Equal(t, []map[string]int{a[0], a[3]}, seqs.Collect(byX))

	// early termination
	require.Equal(t, []int{1, 5}, seqs.Collect(seqs.Take(seqs.Distinct(slices.Values([]int{1, 1, 5, 2})), 2)))
}

func TestMinMaxBy(t *testing.T) {
	type stock struct {
		Name   string
		Shares int
	}
	portfolio := []stock{{"GOOG", 50}, {"YHOO", 75}, {"AOL", 20}, {"SCOX", 65}, {"IBM", 20}}
	shares := func(s stock) int { return s.Shares }

	lo, ok := seqs.MinBy(slices.Values(portfolio), shares)
	require.True(t, ok)
	require.Equal(t, "AOL", lo.Name, "first of equal keys wins")

	hi, ok := seqs.MaxBy(slices.Values(portfolio), shares)
	require.True(t, ok)
	require.Equal(t, "YHOO", hi.Name)

	minShares, _ := seqs.Min(seqs.Map(slices.Values(portfolio), shares))
	require.Equal(t, 20, minShares)

	first, ok := seqs.Min(slices.Values([]string{"pear", "apple", "fig"}))
	require.True(t, ok)
	require.Equal(t, "apple", first)

	_, ok = seqs.Max(slices.Values([]float64{}))
	require.False(t, ok)
}

func TestJoinCollect(t *testing.T) {
	require.Equal(t, "", seqs.Join(slices.Values([]string{}), ","))
	require.Equal(t, "a", seqs.Join(slices.Values([]string{"a"}), ","))
	require.Equal(t, "a-b-c", seqs.Join(slices.Values([]string{"a", "b", "c"}), "-"))

	empty := seqs.Collect(slices.Values([]int(nil)))
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestRange(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		want              []int
	}{
		{"Forward", 0, 5, 1, []int{0, 1, 2, 3, 4}},
		{"Stepped", 5, 10, 2, []int{5, 7, 9}},
		{"Backward", 5, 0, -2, []int{5, 3, 1}},
		{"BackwardToStart", 3, -1, -1, []int{3, 2, 1, 0}},
		{"EmptyForward", 5, 5, 1, []int{}},
		{"WrongDirection", 0, 5, -1, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, seqs.Collect(seqs.Range(tt.start, tt.stop, tt.step)))
		})
	}

	require.PanicsWithValue(t, "seqs.Range: step cannot be zero", func() { seqs.Range(0, 5, 0) })
}

func TestTake(t *testing.T) {
	dedupe := []int{1, 5, 2, 1, 9, 1, 5, 10}
	require.Equal(t, []int{1, 5, 2}, seqs.Collect(seqs.Take(slices.Values(dedupe), 3)))
	require.Equal(t, dedupe, seqs.Collect(seqs.Take(slices.Values(dedupe), 100)))
	require.Empty(t, seqs.Collect(seqs.Take(slices.Values(dedupe), 0)))
	require.Empty(t, seqs.Collect(seqs.Take(slices.Values(dedupe), -1)))

	// the source is not pulled past the n-th element
	pulled := 0
	counted := seqs.Map(slices.Values(dedupe), func(v int) int {
		pulled++
		return v
	})
	require.Equal(t, 2, seqs.Count(seqs.Take(counted, 2)))
	require.Equal(t, 2, pulled)
}

func TestTakeWhile(t *testing.T) {
	prices := []float64{612.78, 205.55, 45.23, 37.20, 10.75}
	over := func(limit float64) func(float64) bool {
		return func(p float64) bool { return p > limit }
	}

	require.Equal(t, []float64{612.78, 205.55}, seqs.Collect(seqs.TakeWhile(slices.Values(prices), over(200))))
	require.Empty(t, seqs.Collect(seqs.TakeWhile(slices.Values(prices), over(1000))))
	require.Equal(t, prices, seqs.Collect(seqs.TakeWhile(slices.Values(prices), over(0))))

	// stops at the first failure even when later elements would pass
	require.Equal(t, []int{3}, seqs.Collect(seqs.TakeWhile(slices.Values([]int{3, 1, 4}), func(n int) bool { return n > 2 })))
}
