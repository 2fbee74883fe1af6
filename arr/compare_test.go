package arr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-arrays/arr"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		x, y any
		want int
	}{
		{"nil equal", nil, nil, 0},
		{"nil below truthy", nil, 1, -1},
		{"nil ties zero", nil, 0, 0},
		{"nil ties false", nil, false, 0},
		{"nil ties empty string", nil, "", 0},
		{"string above nil", "a", nil, 1},
		{"ints", 1, 2, -1},
		{"int float", 2, 1.5, 1},
		{"numeric strings", "10", "9", 1},
		{"int vs numeric string", 10, "10", 0},
		{"strings", "apple", "banana", -1},
		{"int vs word", 10, "abc", -1},
		{"bools", false, true, -1},
		{"bool vs truthy", true, "x", 0},
		{"bool vs zero", false, 0, 0},
		{"array above scalar", arr.List(), 100, 1},
		{"arrays by length", arr.List(1, 2), arr.List(9), 1},
		{"arrays by value", arr.List(1, 2), arr.List(1, 3), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, arr.Compare(tc.x, tc.y))
		})
	}
}

func TestIdentical(t *testing.T) {
	p := &struct{ N int }{1}
	q := &struct{ N int }{1}

	require.True(t, arr.Identical(1, 1))
	require.False(t, arr.Identical(1, "1"))
	require.False(t, arr.Identical(1, int64(1)))
	require.False(t, arr.Identical(0, false))
	require.False(t, arr.Identical(nil, false))
	require.True(t, arr.Identical(nil, nil))
	require.True(t, arr.Identical(p, p))
	require.False(t, arr.Identical(p, q))
	require.True(t, arr.Identical([]int{1, 2}, []int{1, 2}))
	require.True(t, arr.Identical(arr.List(1, arr.List("x")), arr.List(1, arr.List("x"))))
	require.False(t, arr.Identical(arr.List(1), arr.List("1")))
}
