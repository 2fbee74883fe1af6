package arr

import (
	"fmt"
	"iter"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Array is an insertion-ordered mapping from a key to a value of any type.
//
// The same container serves as a list (keys 0, 1, 2, …) and as an
// associative map, like a PHP array. Keys are normalised with
// [NormalizeKey], so they are always an int or a string. Setting an existing
// key replaces its value without moving it.
//
// Values may themselves be *Array, which is how nested structures and row
// collections are represented. The helpers in this package never modify the
// Arrays they are given; nested values are shared, not copied.
//
// A nil *Array reads as empty. An Array is not safe for concurrent
// mutation.
type Array struct {
	m    *orderedmap.OrderedMap[any, any]
	next int
}

// Entry is a single key/value pair of an [Array].
type Entry struct {
	Key   any
	Value any
}

// E is shorthand for Entry{Key: key, Value: value}.
func E(key, value any) Entry { return Entry{Key: key, Value: value} }

// New creates an empty Array.
func New() *Array {
	return &Array{m: orderedmap.New[any, any]()}
}

// List creates an Array holding values under the keys 0 … len(values)-1.
func List(values ...any) *Array {
	a := New()
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// Of creates an Array from entries, in order. A later entry with the same
// (normalised) key replaces the earlier value.
//
// Of is meant for literals and panics if a key cannot be normalised; use
// [Array.Set] when keys come from untrusted data.
func Of(entries ...Entry) *Array {
	a := New()
	for _, e := range entries {
		if err := a.Set(e.Key, e.Value); err != nil {
			panic(err)
		}
	}
	return a
}

// FromMap converts a nested map[string]any (as produced by encoding/json or
// a config loader) into an Array. Go maps are unordered, so keys are inserted
// in sorted order. Nested map[string]any and []any values are converted
// recursively.
func FromMap(m map[string]any) *Array {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	a := New()
	for _, k := range keys {
		// string keys always normalise
		_ = a.Set(k, fromNative(m[k]))
	}
	return a
}

func fromNative(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return FromMap(val)
	case []any:
		out := New()
		for _, elem := range val {
			out.Append(fromNative(elem))
		}
		return out
	}
	return v
}

// Set stores value under key. It returns [ErrInvalidArgument] when key
// cannot be normalised.
func (a *Array) Set(key, value any) error {
	k, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	a.set(k, value)
	return nil
}

// set stores value under an already normalised key.
func (a *Array) set(k, value any) {
	if a.m == nil {
		a.m = orderedmap.New[any, any]()
	}
	a.m.Set(k, value)
	if n, ok := k.(int); ok && n >= a.next {
		a.next = n + 1
	}
}

// Append stores value under the next integer key: one past the largest
// integer key used so far, or 0.
func (a *Array) Append(value any) {
	a.set(a.next, value)
}

// Get returns the value stored under key and whether the key exists.
// A key that exists with a nil value reports true.
func (a *Array) Get(key any) (any, bool) {
	if a == nil || a.m == nil {
		return nil, false
	}
	k, ok := lookupKey(key)
	if !ok {
		return nil, false
	}
	return a.m.Get(k)
}

// Has reports whether key exists.
func (a *Array) Has(key any) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of entries.
func (a *Array) Len() int {
	if a == nil || a.m == nil {
		return 0
	}
	return a.m.Len()
}

// All iterates over the entries in insertion order.
func (a *Array) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for p := a.oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (a *Array) oldest() *orderedmap.Pair[any, any] {
	if a == nil || a.m == nil {
		return nil
	}
	return a.m.Oldest()
}

// Keys returns the keys in insertion order.
func (a *Array) Keys() []any {
	out := make([]any, 0, a.Len())
	for k := range a.All() {
		out = append(out, k)
	}
	return out
}

// Values returns the values in insertion order.
func (a *Array) Values() []any {
	out := make([]any, 0, a.Len())
	for _, v := range a.All() {
		out = append(out, v)
	}
	return out
}

// Entries returns the key/value pairs in insertion order.
func (a *Array) Entries() []Entry {
	out := make([]Entry, 0, a.Len())
	for k, v := range a.All() {
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

// First returns the first inserted entry.
// Returns the zero Entry and false when the Array is empty.
func (a *Array) First() (Entry, bool) {
	p := a.oldest()
	if p == nil {
		return Entry{}, false
	}
	return Entry{Key: p.Key, Value: p.Value}, true
}

// Clone returns a shallow copy: same keys and order, values shared.
func (a *Array) Clone() *Array {
	out := New()
	for k, v := range a.All() {
		out.m.Set(k, v)
	}
	if a != nil {
		out.next = a.next
	}
	return out
}

// IsList reports whether the keys are exactly 0 … Len()-1 in order.
func (a *Array) IsList() bool {
	i := 0
	for k := range a.All() {
		if n, ok := k.(int); !ok || n != i {
			return false
		}
		i++
	}
	return true
}

// Equal reports whether a and other hold identical entries in the same
// order. Values are compared with [Identical].
func (a *Array) Equal(other *Array) bool {
	if a.Len() != other.Len() {
		return false
	}
	p, q := a.oldest(), other.oldest()
	for p != nil && q != nil {
		if p.Key != q.Key || !Identical(p.Value, q.Value) {
			return false
		}
		p, q = p.Next(), q.Next()
	}
	return true
}

// String returns the JSON representation of the Array.
// It implements [fmt.Stringer].
func (a *Array) String() string {
	b, err := a.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", a.Entries())
	}
	return string(b)
}
