package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-arrays/arr"
)

// makeRows creates n rows of {"id": i, "group": i % 10} for benchmarks.
func makeRows(n int) *arr.Array {
	rows := arr.New()
	for i := 0; i < n; i++ {
		rows.Append(arr.Of(arr.E("id", i), arr.E("group", i%10)))
	}
	return rows
}

func BenchmarkSortByKey(b *testing.B) {
	rows := makeRows(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.SortByKey(rows, "group", arr.Descending)
	}
}

func BenchmarkCategorize(b *testing.B) {
	rows := makeRows(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Categorize(rows, false, "group")
	}
}

func BenchmarkColumnDistinct(b *testing.B) {
	rows := makeRows(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Column(rows, "group", false, true)
	}
}

func BenchmarkGetPath(b *testing.B) {
	a := arr.Of(arr.E("a", arr.Of(arr.E("b", arr.Of(arr.E("c", 1))))))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.GetPath(a, "a/b/c", nil)
	}
}
