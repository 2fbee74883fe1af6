package arr_test

import (
	"fmt"
	"log"

	"github.com/hasbyte1/go-arrays/arr"
)

func exampleUsers() *arr.Array {
	return arr.List(
		arr.Of(arr.E("name", "Alice"), arr.E("role", "admin"), arr.E("age", 31)),
		arr.Of(arr.E("name", "Bob"), arr.E("role", "user"), arr.E("age", 25)),
		arr.Of(arr.E("name", "Carol"), arr.E("role", "user"), arr.E("age", 40)),
	)
}

func ExampleFlat() {
	fmt.Println(arr.Flat(1, arr.List(2, arr.List(3, 4), 5)))
	// Output: [1,2,3,4,5]
}

func ExampleGetPath() {
	cfg := arr.Of(arr.E("db", arr.Of(arr.E("hosts", arr.List("10.0.0.1", "10.0.0.2")))))
	fmt.Println(arr.GetPath(cfg, "db/hosts/1", nil))
	fmt.Println(arr.GetPath(cfg, "db/port", 5432))
	// Output:
	// 10.0.0.2
	// 5432
}

func ExampleRange() {
	r, err := arr.Range(0, 10, 2, false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(r)
	// Output: [0,2,4,6,8,10]
}

func ExampleSortByKey() {
	sorted := arr.SortByKey(exampleUsers(), "age", arr.Descending)
	fmt.Println(arr.Column(sorted, "name", false, false))
	// Output: ["Carol","Alice","Bob"]
}

func ExampleCategorize() {
	byRole, err := arr.Categorize(exampleUsers(), false, "role")
	if err != nil {
		log.Fatal(err)
	}
	for role, rows := range byRole.All() {
		fmt.Println(role, arr.Column(rows.(*arr.Array), "name", false, false))
	}
	// Output:
	// admin ["Alice"]
	// user ["Bob","Carol"]
}

func ExampleGetRow() {
	row, ok := arr.GetRow(exampleUsers(), "name", "Bob")
	fmt.Println(arr.Get(row, "age", nil), ok)
	// Output: 25 true
}

func ExampleCombine() {
	m, err := arr.Combine(arr.List("a", "b"), arr.List(1))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(m)
	// Output: {"a":1,"b":null}
}

func ExampleSortByPriority() {
	a := arr.Of(arr.E("x", 1), arr.E("y", 2), arr.E("z", 3))
	fmt.Println(arr.SortByPriority(a, "z", "x"))
	// Output: {"z":3,"x":1,"y":2}
}

func ExampleParse() {
	a, err := arr.Parse([]byte(`{"b": 1, "a": {"c": [true, null]}}`))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(a.Keys(), arr.GetPath(a, "a/c/0", false))
	// Output: [b a] true
}
