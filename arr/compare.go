package arr

import (
	"cmp"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// numericString matches decimal numbers in the loose form PHP accepts as
// "numeric strings" (surrounding whitespace is trimmed before matching).
var numericString = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Compare orders two values the way [SortByKey] does. It returns -1, 0 or +1.
//
// The ordering follows PHP 8 comparison rules:
//
//   - nil compares with a string as "" and with anything else by
//     truthiness, so nil ties with 0, false and "" and sorts before
//     truthy values
//   - *Array sorts after scalars; two Arrays compare by length, then value
//     by value
//   - a bool compares with the truthiness of the other side (false < true)
//   - numbers and numeric strings compare numerically
//   - anything else compares as strings, so 10 vs "abc" is "10" vs "abc"
func Compare(x, y any) int {
	if x == nil || y == nil {
		return compareNil(x, y)
	}

	xa, xIsArray := x.(*Array)
	ya, yIsArray := y.(*Array)
	switch {
	case xIsArray && yIsArray:
		return compareArrays(xa, ya)
	case xIsArray:
		return 1
	case yIsArray:
		return -1
	}

	if xb, ok := x.(bool); ok {
		return compareBool(xb, truthy(y))
	}
	if yb, ok := y.(bool); ok {
		return compareBool(truthy(x), yb)
	}

	xi, xInt := integer(x)
	yi, yInt := integer(y)
	if xInt && yInt {
		return cmp.Compare(xi, yi)
	}
	xf, xNum := number(x)
	yf, yNum := number(y)
	if xNum && yNum {
		return cmp.Compare(xf, yf)
	}
	return strings.Compare(toString(x), toString(y))
}

// compareNil handles comparisons where at least one side is nil.
func compareNil(x, y any) int {
	if s, ok := y.(string); ok {
		return strings.Compare("", s)
	}
	if s, ok := x.(string); ok {
		return strings.Compare(s, "")
	}
	return compareBool(truthy(x), truthy(y))
}

func compareArrays(x, y *Array) int {
	if c := cmp.Compare(x.Len(), y.Len()); c != 0 {
		return c
	}
	for k, v := range x.All() {
		w, ok := y.Get(k)
		if !ok {
			return 1
		}
		if c := Compare(v, w); c != 0 {
			return c
		}
	}
	return 0
}

func compareBool(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}

// truthy converts v to bool with PHP semantics.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != "" && val != "0"
	case *Array:
		return val.Len() > 0
	}
	if f, ok := number(v); ok {
		return f != 0
	}
	return true
}

func integer(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint()), true
	}
	return 0, false
}

func number(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if !numericString.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	if i, ok := integer(v); ok {
		return float64(i), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}

// Identical reports whether x and y are strictly equal: same dynamic type
// and same value, like PHP's === operator.
//
// Two *Array values are identical when they hold the same keys in the same
// order with identical values. Other pointers are identical only when they
// point to the same object. Uncomparable values (slices, maps) are compared
// with [reflect.DeepEqual].
func Identical(x, y any) bool {
	if xa, ok := x.(*Array); ok {
		ya, ok := y.(*Array)
		if !ok {
			return false
		}
		if xa == nil || ya == nil {
			return xa == ya
		}
		return xa.Equal(ya)
	}
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	t := reflect.TypeOf(x)
	if t != reflect.TypeOf(y) {
		return false
	}
	if t.Kind() == reflect.Pointer {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}
