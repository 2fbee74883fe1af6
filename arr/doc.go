// Package arr provides standalone helper functions over an insertion-ordered
// key/value container, modelled on PHP arrays and their array_* helpers.
//
// # The Array container
//
// [Array] plays both roles of a PHP array: a list keyed 0, 1, 2, … and an
// ordered map keyed by ints or strings. Keys are normalised with
// [NormalizeKey], so "5" and 5 address the same entry:
//
//	users := arr.List(
//	    arr.Of(arr.E("id", 1), arr.E("name", "Alice"), arr.E("role", "admin")),
//	    arr.Of(arr.E("id", 2), arr.E("name", "Bob"), arr.E("role", "user")),
//	    arr.Of(arr.E("id", 3), arr.E("name", "Carol"), arr.E("role", "user")),
//	)
//
// # Lookup
//
// Missing keys are never errors; callers supply a default or get a presence
// flag:
//
//	arr.Get(row, "email", "n/a")            // → "n/a"
//	arr.GetPath(cfg, "db/hosts/0", nil)     // → "10.0.0.1"
//	row, ok := arr.GetRow(users, "id", 2)   // → Bob, true
//
// # Row collections
//
//	arr.Column(users, "name", false, false)       // → ["Alice" "Bob" "Carol"]
//	arr.SortByKey(users, "name", arr.Descending)  // → Carol, Bob, Alice
//	byRole, _ := arr.Categorize(users, false, "role")
//	byID, _ := arr.AssignKeys(users, "id")
//
// # Purity
//
// No helper modifies its arguments. Results are new Arrays; the rows and
// nested values inside them are shared with the input.
//
// # Errors
//
// Only genuinely invalid input fails, with [ErrInvalidArgument]: a Range step
// that can never reach its bound, or a grouping value that cannot be a key.
package arr
