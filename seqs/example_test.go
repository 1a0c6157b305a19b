package seqs_test

import (
	"fmt"
	"slices"
	"strings"

	"cookbook/seqs"
)

func ExampleRange() {
	// the characters picked out by s[5:50:2]
	const s = "HelloWorld"
	for i := range seqs.Range(5, len(s), 2) {
		fmt.Println(string(s[i]))
	}

	// Output:
	// W
	// r
	// d
}

func ExampleTakeWhile() {
	// counts arrive most common first
	counts := slices.Values([]int{8, 5, 4, 4, 3, 1, 1})
	fmt.Println(seqs.Collect(seqs.TakeWhile(counts, func(n int) bool { return n >= 4 })))
	fmt.Println(seqs.Collect(seqs.Take(counts, 2)))

	// Output:
	// [8 5 4 4]
	// [8 5]
}

func ExampleSum() {
	nums := slices.Values([]int{1, 2, 3, 4, 5})
	fmt.Println(seqs.Sum(seqs.Map(nums, func(x int) int { return x * x })))

	files := slices.Values([]string{"README.md", "main.go", "go.mod", "seq.go"})
	fmt.Println(seqs.Any(files, func(name string) bool { return strings.HasSuffix(name, ".go") }))

	// Output:
	// 55
	// true
}

func ExampleJoin() {
	data := []any{"ACME", 50, 91.1}
	fmt.Println(seqs.Join(seqs.Map(slices.Values(data), func(v any) string {
		return fmt.Sprint(v)
	}), ","))

	// Output:
	// ACME,50,91.1
}

func ExampleDistinct() {
	a := slices.Values([]int{1, 5, 2, 1, 9, 1, 5, 10})
	fmt.Println(seqs.Collect(seqs.Distinct(a)))

	// Output:
	// [1 5 2 9 10]
}
