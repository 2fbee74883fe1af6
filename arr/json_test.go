package arr_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-arrays/arr"
)

func TestParseKeepsDocumentOrder(t *testing.T) {
	a, err := arr.Parse([]byte(`{"zeta": 1, "alpha": {"b": true, "a": null}, "list": [1, 2.5, "x\n"]}`))
	require.NoError(t, err)
	require.Equal(t, []any{"zeta", "alpha", "list"}, a.Keys())
	require.Equal(t, 1, arr.Get(a, "zeta", nil))
	require.Equal(t, []any{"b", "a"}, arr.Get(a, "alpha", nil).(*arr.Array).Keys())
	require.Equal(t, true, arr.GetPath(a, "alpha/b", nil))
	require.True(t, arr.HasPath(a, "alpha/a"))
	require.Equal(t, []any{1, 2.5, "x\n"}, arr.Get(a, "list", nil).(*arr.Array).Values())
}

func TestParseNormalisesKeys(t *testing.T) {
	a, err := arr.Parse([]byte(`{"1": "one", "01": "padded", "1": "again"}`))
	require.NoError(t, err)
	require.Equal(t, []arr.Entry{arr.E(1, "again"), arr.E("01", "padded")}, a.Entries())
}

func TestParseTopLevelArray(t *testing.T) {
	a, err := arr.Parse([]byte(` [ {"k": 1}, {"k": 2} ] `))
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, arr.Column(a, "k", false, false).Values())
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{``, `42`, `"str"`, `null`, `{"a": 1`, `[1, 2`, `{"a":1} trailing`, `[1] [2]`} {
		_, err := arr.Parse([]byte(in))
		require.ErrorIs(t, err, arr.ErrInvalidJSON, "input %q", in)
	}
}

func TestMarshalJSON(t *testing.T) {
	a := arr.Of(
		arr.E("name", "Alice"),
		arr.E(7, arr.List(1, "two", nil)),
		arr.E("empty", arr.New()),
	)
	b, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Alice","7":[1,"two",null],"empty":[]}`, string(b))
	require.Equal(t, `{"name":"Alice","7":[1,"two",null],"empty":[]}`, a.String())
}

func TestJSONRoundTrip(t *testing.T) {
	src := `{"b":1,"a":[{"x":"y"},2.5,false]}`
	a, err := arr.Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, src, a.String())

	var decoded arr.Array
	require.NoError(t, json.Unmarshal([]byte(src), &decoded))
	require.True(t, decoded.Equal(a))
}

func TestMarshalYAML(t *testing.T) {
	a := arr.Of(arr.E("name", "Alice"), arr.E("tags", arr.List("a", "b")))
	b, err := yaml.Marshal(a)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(b, &back))
	require.Equal(t, "Alice", back["name"])
	require.Equal(t, []any{"a", "b"}, back["tags"])

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(b, &node))
	mapping := node.Content[0]
	require.Equal(t, yaml.MappingNode, mapping.Kind)
	require.Equal(t, "name", mapping.Content[0].Value, "insertion order kept")
	require.Equal(t, "tags", mapping.Content[2].Value)
}
