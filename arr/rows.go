package arr

import (
	"fmt"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Row collections
//
// The helpers below treat an Array as a collection of rows, each row being a
// nested *Array that shares a conventional set of keys:
//
//	users := List(
//	    Of(E("id", 1), E("name", "Alice"), E("role", "admin")),
//	    Of(E("id", 2), E("name", "Bob"), E("role", "user")),
//	)
//
// A value that is not an *Array behaves as a row without fields.
// ─────────────────────────────────────────────────────────────────────────────

// SortOrder selects the direction used by [SortByKey].
type SortOrder string

const (
	// Ascending sorts from the smallest value to the largest.
	Ascending SortOrder = "asc"
	// Descending sorts from the largest value to the smallest.
	Descending SortOrder = "desc"
)

// field returns row[key] when row is an *Array holding key.
func field(row, key any) (any, bool) {
	r, ok := row.(*Array)
	if !ok {
		return nil, false
	}
	return r.Get(key)
}

// SortByKey returns the rows of a ordered by row[key], re-indexed from 0.
//
// Values are ordered with [Compare]; a row without the field sorts as nil.
// The sort is stable in both directions: rows with equal values keep their
// relative order. Any order other than [Descending] sorts ascending.
func SortByKey(a *Array, key any, order SortOrder) *Array {
	type keyed struct {
		row any
		val any
	}
	rows := make([]keyed, 0, a.Len())
	for _, row := range a.All() {
		v, _ := field(row, key)
		rows = append(rows, keyed{row: row, val: v})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		c := Compare(rows[i].val, rows[j].val)
		if order == Descending {
			return c > 0
		}
		return c < 0
	})

	out := New()
	for _, r := range rows {
		out.Append(r.row)
	}
	return out
}

// Categorize groups rows into nested buckets: first by row[keys[0]], then
// within each bucket by row[keys[1]], and so on. Each innermost bucket lists
// its rows in input order, keyed from 0 or, with preserveKeys, by the rows'
// original keys.
//
// Bucket keys are normalised with [NormalizeKey]; a row without the field
// lands in the "" bucket. A field value that cannot be a key (for example a
// nested *Array) returns [ErrInvalidArgument]. With no keys the result is a
// flat list of every row.
//
//	Categorize(users, false, "role")
//	// → {"admin": [alice], "user": [bob]}
func Categorize(a *Array, preserveKeys bool, keys ...any) (*Array, error) {
	out := New()
	for rowKey, row := range a.All() {
		bucket := out
		for _, key := range keys {
			v, _ := field(row, key)
			k, err := NormalizeKey(v)
			if err != nil {
				return nil, fmt.Errorf("categorize: row %v, field %v: %w", rowKey, key, err)
			}
			existing, _ := bucket.Get(k)
			child, ok := existing.(*Array)
			if !ok {
				child = New()
				bucket.set(k, child)
			}
			bucket = child
		}
		if preserveKeys {
			bucket.set(rowKey, row)
		} else {
			bucket.Append(row)
		}
	}
	return out, nil
}

// AssignKeys re-keys the rows of a by row[key]. When several rows share a
// value the last one wins, at the position where that key first appeared.
// Key rules are those of [Categorize].
//
//	byID, _ := AssignKeys(users, "id") // → {1: alice, 2: bob}
func AssignKeys(a *Array, key any) (*Array, error) {
	out := New()
	for rowKey, row := range a.All() {
		v, _ := field(row, key)
		if err := out.Set(v, row); err != nil {
			return nil, fmt.Errorf("assign keys: row %v, field %v: %w", rowKey, key, err)
		}
	}
	return out, nil
}

// Column extracts row[key] from every row, in order.
//
// Rows without the key contribute nil unless skipEmpties is set. With
// distinct, a value [Identical] to one already emitted is dropped, keeping
// the first occurrence. Nil values are never dropped, whether stored or
// filled in for a missing key.
//
//	Column(List(Of(E("k", 1)), New(), Of(E("k", 2))), "k", false, false)
//	// → [1 nil 2]
func Column(a *Array, key any, skipEmpties, distinct bool) *Array {
	out := New()
	emitted := make([]any, 0, a.Len())
	for _, row := range a.All() {
		v, ok := field(row, key)
		if !ok {
			if !skipEmpties {
				out.Append(nil)
			}
			continue
		}
		if distinct && v != nil && containsIdentical(emitted, v) {
			continue
		}
		out.Append(v)
		emitted = append(emitted, v)
	}
	return out
}

func containsIdentical(items []any, v any) bool {
	for _, item := range items {
		if Identical(item, v) {
			return true
		}
	}
	return false
}

// Columns projects every row onto keys: each result row holds only the
// requested keys the source row actually has, in the order requested.
// The result lists one projected row per input row.
func Columns(a *Array, keys ...any) *Array {
	out := New()
	for _, row := range a.All() {
		projected := New()
		for _, key := range keys {
			if v, ok := field(row, key); ok {
				// a found key is already valid
				_ = projected.Set(key, v)
			}
		}
		out.Append(projected)
	}
	return out
}

// matches reports whether row[key] is identical to value, and whether row
// has key at all.
func matches(row, key, value any) (match, present bool) {
	v, ok := field(row, key)
	if !ok {
		return false, false
	}
	return Identical(v, value), true
}

// GetRow returns the first row whose key holds a value [Identical] to value.
// The row is returned as stored, not copied. Reports false when no row
// matches.
func GetRow(a *Array, key, value any) (*Array, bool) {
	for _, row := range a.All() {
		if ok, _ := matches(row, key, value); ok {
			return row.(*Array), true
		}
	}
	return nil, false
}

// GetRowKey returns the key of the row [GetRow] would return.
func GetRowKey(a *Array, key, value any) (any, bool) {
	for rowKey, row := range a.All() {
		if ok, _ := matches(row, key, value); ok {
			return rowKey, true
		}
	}
	return nil, false
}

// GetRows returns every row whose key holds a value [Identical] to value,
// under its original key and in original order.
func GetRows(a *Array, key, value any) *Array {
	out := New()
	for rowKey, row := range a.All() {
		if ok, _ := matches(row, key, value); ok {
			out.set(rowKey, row)
		}
	}
	return out
}

// GetRowsBut returns every row that has key with a value not identical to
// value, under its original key and in original order. Rows lacking key are
// left out, just as they never match in [GetRows].
func GetRowsBut(a *Array, key, value any) *Array {
	out := New()
	for rowKey, row := range a.All() {
		if ok, present := matches(row, key, value); present && !ok {
			out.set(rowKey, row)
		}
	}
	return out
}
