package arr

import (
	"fmt"
	"math/rand/v2"
)

// Number is the set of types accepted by [Range].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Flat recursively flattens its arguments into a single list. Nested *Array
// and []any values are expanded at any depth in encounter order; the keys
// of nested Arrays are discarded. Everything else is kept as-is.
//
//	Flat(1, List(2, List(3, 4), 5)) // → [1 2 3 4 5]
func Flat(values ...any) *Array {
	out := New()
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case *Array:
			for _, elem := range val.All() {
				flatten(elem)
			}
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		default:
			out.Append(val)
		}
	}
	for _, v := range values {
		flatten(v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// GetFirst returns the first inserted value of a, or def when a is empty.
// Integer keys play no part: Of(E(5, "x"), E(0, "y")) yields "x".
func GetFirst(a *Array, def any) any {
	e, ok := a.First()
	if !ok {
		return def
	}
	return e.Value
}

// Get returns a[key] when key exists, otherwise def. A key that exists with
// a nil or false value is returned as such.
func Get(a *Array, key, def any) any {
	v, ok := a.Get(key)
	if !ok {
		return def
	}
	return v
}

// GetArray returns an Array mapping each requested key to its value in a,
// or to nil when absent. The result follows the order of keys. Keys that
// cannot be normalised are skipped.
func GetArray(a *Array, keys ...any) *Array {
	out := New()
	for _, key := range keys {
		k, ok := lookupKey(key)
		if !ok {
			continue
		}
		v, _ := a.Get(k)
		out.set(k, v)
	}
	return out
}

// GetRandom returns a uniformly chosen value of a, or nil when a is empty.
//
// The package-level math/rand/v2 source is used unless r[0] is supplied,
// which lets callers control seeding.
func GetRandom(a *Array, r ...*rand.Rand) any {
	n := a.Len()
	if n == 0 {
		return nil
	}
	var i int
	if len(r) > 0 && r[0] != nil {
		i = r[0].IntN(n)
	} else {
		i = rand.IntN(n)
	}
	return a.Values()[i]
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the numbers min, min+step, min+2·step, … up to and
// including max. Fractional steps are supported.
//
// With withKeys each number is also its own key (normalised with
// [NormalizeKey], so 0.5 is keyed "0.5"); otherwise keys run from 0.
//
// A zero or NaN step, or a negative step while min <= max, returns
// [ErrInvalidArgument]. When min > max the result is empty.
//
//	Range(0, 10, 2, false) // → [0 2 4 6 8 10]
func Range[N Number](min, max, step N, withKeys bool) (*Array, error) {
	if step == 0 || step != step {
		return nil, fmt.Errorf("%w: range step must be a non-zero number, got %v", ErrInvalidArgument, step)
	}
	out := New()
	if min > max {
		return out, nil
	}
	if step < 0 {
		return nil, fmt.Errorf("%w: negative step %v never reaches %v from %v", ErrInvalidArgument, step, max, min)
	}

	var prev N
	for k := 0; ; k++ {
		v := min + N(k)*step
		// v <= prev catches overflow and float steps too small to advance
		if v > max || (k > 0 && v <= prev) {
			break
		}
		prev = v
		if !withKeys {
			out.Append(v)
			continue
		}
		if err := out.Set(v, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining & Reordering
// ─────────────────────────────────────────────────────────────────────────────

// Combine builds an Array mapping keys[i] to values[i] for i in
// 0 … keys.Len()-1. Lookups are by integer key i, not by position. A missing
// values[i] maps to nil and a missing keys[i] becomes the key "".
//
// Returns [ErrInvalidArgument] when some keys[i] cannot be used as a key.
//
//	Combine(List("a", "b"), List(1)) // → {"a": 1, "b": nil}
func Combine(keys, values *Array) (*Array, error) {
	out := New()
	for i := 0; i < keys.Len(); i++ {
		k, _ := keys.Get(i)
		v, _ := values.Get(i)
		if err := out.Set(k, v); err != nil {
			return nil, fmt.Errorf("combine: key at index %d: %w", i, err)
		}
	}
	return out, nil
}

// Combine2 zips arrays by integer index: entry i of the result is a list
// holding arrays[0][i], arrays[1][i], … with nil for gaps. It stops at the
// first index that none of the arrays has.
//
//	Combine2(List(1, 2), List("a")) // → [[1 "a"] [2 nil]]
func Combine2(arrays ...*Array) *Array {
	out := New()
	if len(arrays) == 0 {
		return out
	}
	for i := 0; ; i++ {
		tuple := New()
		found := false
		for _, a := range arrays {
			v, ok := a.Get(i)
			if ok {
				found = true
			}
			tuple.Append(v)
		}
		if !found {
			return out
		}
		out.Append(tuple)
	}
}

// SortByPriority returns a copy of a whose entries named in priorities come
// first, in priority order, followed by every other entry in its original
// order. Priority keys absent from a are ignored.
//
//	SortByPriority(Of(E("x", 1), E("y", 2), E("z", 3)), "z", "x")
//	// → {"z": 3, "x": 1, "y": 2}
func SortByPriority(a *Array, priorities ...any) *Array {
	out := New()
	for _, p := range priorities {
		k, ok := lookupKey(p)
		if !ok {
			continue
		}
		if v, ok := a.Get(k); ok {
			out.set(k, v)
		}
	}
	for k, v := range a.All() {
		if !out.Has(k) {
			out.set(k, v)
		}
	}
	return out
}
