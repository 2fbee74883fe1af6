package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Path-notation helpers
//
// A path is a separator-delimited list of keys, each one descending into a
// nested *Array:
//
//	a := Of(E("db", Of(E("hosts", List("10.0.0.1", "10.0.0.2")))))
//
//	GetPath(a, "db/hosts/1", nil)     → "10.0.0.2"
//	GetPath(a, "db.hosts.0", nil, ".") → "10.0.0.1"
//	HasPath(a, "db/port")             → false
//
// Segments are normalised like any other key, so "1" addresses index 1.
// ─────────────────────────────────────────────────────────────────────────────

// DefaultSeparator is the path separator used when none is given.
const DefaultSeparator = "/"

// GetPath descends into a one path segment at a time and returns the value
// found at the end of path. It returns def as soon as a segment is missing or
// the value reached so far is not an *Array.
//
// sep[0] overrides [DefaultSeparator]; an empty separator falls back to it.
func GetPath(a *Array, path string, def any, sep ...string) any {
	v, ok := lookupPath(a, path, separator(sep))
	if !ok {
		return def
	}
	return v
}

// HasPath reports whether every segment of path exists, following the same
// descent as [GetPath].
func HasPath(a *Array, path string, sep ...string) bool {
	_, ok := lookupPath(a, path, separator(sep))
	return ok
}

// GetArrayPath resolves each path with [DefaultSeparator] and returns an
// Array mapping the path string to its value, or nil when unresolved.
//
//	GetArrayPath(a, "db/hosts/0", "db/port")
//	// → {"db/hosts/0": "10.0.0.1", "db/port": nil}
func GetArrayPath(a *Array, paths ...string) *Array {
	out := New()
	for _, path := range paths {
		v, _ := lookupPath(a, path, DefaultSeparator)
		// string keys always normalise
		_ = out.Set(path, v)
	}
	return out
}

func separator(sep []string) string {
	if len(sep) > 0 && sep[0] != "" {
		return sep[0]
	}
	return DefaultSeparator
}

func lookupPath(a *Array, path, sep string) (any, bool) {
	var current any = a
	for _, seg := range strings.Split(path, sep) {
		nested, ok := current.(*Array)
		if !ok {
			return nil, false
		}
		v, ok := nested.Get(seg)
		if !ok {
			return nil, false
		}
		current = v
	}
	return current, true
}
