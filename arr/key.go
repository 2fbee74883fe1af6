package arr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// NormalizeKey converts key into the canonical form used by [Array]: either
// an int or a string.
//
// The rules follow PHP array-key coercion so that "5" and 5 address the same
// slot:
//
//   - integer kinds become int
//   - strings holding a canonical decimal integer ("0", "42", "-7") become
//     int; every other string ("007", "-0", "+1", "1.5") stays a string
//   - bool becomes 1 or 0
//   - floats with an integral value become int; other finite floats become
//     their shortest decimal string ("0.5")
//   - nil becomes ""
//
// NaN, ±Inf, unsigned values above math.MaxInt and any other type return
// [ErrInvalidArgument].
func NormalizeKey(key any) (any, error) {
	switch k := key.(type) {
	case nil:
		return "", nil
	case int:
		return k, nil
	case int8:
		return int(k), nil
	case int16:
		return int(k), nil
	case int32:
		return int(k), nil
	case int64:
		return int(k), nil
	case uint:
		return uintKey(uint64(k))
	case uint8:
		return int(k), nil
	case uint16:
		return int(k), nil
	case uint32:
		return uintKey(uint64(k))
	case uint64:
		return uintKey(uint64(k))
	case uintptr:
		return uintKey(uint64(k))
	case bool:
		if k {
			return 1, nil
		}
		return 0, nil
	case float32:
		return floatKey(float64(k), 32)
	case float64:
		return floatKey(k, 64)
	case string:
		if n, ok := integerString(k); ok {
			return n, nil
		}
		return k, nil
	}

	// named types such as `type ID string`
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintKey(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return floatKey(rv.Float(), rv.Type().Bits())
	case reflect.Bool:
		return NormalizeKey(rv.Bool())
	case reflect.String:
		return NormalizeKey(rv.String())
	}
	return nil, fmt.Errorf("%w: unsupported key type %T", ErrInvalidArgument, key)
}

func uintKey(u uint64) (any, error) {
	if u > math.MaxInt {
		return nil, fmt.Errorf("%w: key %d overflows int", ErrInvalidArgument, u)
	}
	return int(u), nil
}

// floatKey formats non-integral floats at their source precision, so
// float32(0.1) becomes "0.1".
func floatKey(f float64, bits int) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: non-finite key %v", ErrInvalidArgument, f)
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int(f), nil
	}
	return strconv.FormatFloat(f, 'f', -1, bits), nil
}

// integerString reports whether s is the canonical decimal form of an int.
func integerString(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && len(s) > 1) {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// lookupKey is NormalizeKey for callers that only read: an invalid key can
// never be present, so it reports false instead of failing.
func lookupKey(key any) (any, bool) {
	k, err := NormalizeKey(key)
	return k, err == nil
}
