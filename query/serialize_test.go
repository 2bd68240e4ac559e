package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/pauldx/quiz/typegraph"
)

func mustSerialize(t *testing.T, n Node) string {
	t.Helper()
	s, err := Serialize(n)
	require.NoError(t, err)
	return s
}

func TestSerializeSelectionSet(t *testing.T) {
	sel := New().
		Field("name").
		Field("knows_command").Args(Arg("command", typegraph.Enum("SIT")))

	want := "{\n" +
		"  name\n" +
		"  knows_command(command: SIT)\n" +
		"}"
	if diff := cmp.Diff(want, mustSerialize(t, sel)); diff != "" {
		t.Fatalf("unexpected text (-want +got):\n%s", diff)
	}
}

func TestSerializeNested(t *testing.T) {
	sel := New().
		Field("dog").Select(New().
		Field("name").
		Field("owner").Select(New().Field("name")))

	want := "{\n" +
		"  dog {\n" +
		"    name\n" +
		"    owner {\n" +
		"      name\n" +
		"    }\n" +
		"  }\n" +
		"}"
	if diff := cmp.Diff(want, mustSerialize(t, sel)); diff != "" {
		t.Fatalf("unexpected text (-want +got):\n%s", diff)
	}
}

func TestSerializeBareField(t *testing.T) {
	require.Equal(t, "name", mustSerialize(t, Field{Name: "name"}))
}

func TestSerializeOperation(t *testing.T) {
	op := Operation{Type: Query, Selections: New().Field("name")}
	require.Equal(t, "query {\n  name\n}", mustSerialize(t, op))

	mut := Operation{Type: Mutation, Selections: New().Field("sit")}
	require.Equal(t, "mutation {\n  sit\n}", mustSerialize(t, mut))
}

func TestSerializeDocument(t *testing.T) {
	doc := Document{Operations: []Operation{
		{Type: Query, Selections: New().Field("a")},
		{Type: Mutation, Selections: New().Field("b")},
	}}
	want := "query {\n  a\n}\n\nmutation {\n  b\n}"
	require.Equal(t, want, mustSerialize(t, doc))
}

func TestSerializeInlineFragment(t *testing.T) {
	dog := &typegraph.Type{Kind: typegraph.KindObject, Name: "Dog"}
	frag := InlineFragment{On: dog, Selections: New().Field("name")}
	sel := New().Add(frag)
	want := "{\n  ... on Dog {\n    name\n  }\n}"
	require.Equal(t, want, mustSerialize(t, sel))
}

func TestSerializeRaw(t *testing.T) {
	sel := New().Field("id").Add(Raw{Content: "...CommonFields"})
	want := "{\n  id\n  ...CommonFields\n}"
	require.Equal(t, want, mustSerialize(t, sel))
}

func TestSerializeValues(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, "null"},
		{"enum", typegraph.Enum("SIT"), "SIT"},
		{"id", typegraph.ID("d-1"), `"d-1"`},
		{"string", "fido", `"fido"`},
		{"escaped string", "say \"hi\"\nplease", `"say \"hi\"\nplease"`},
		{"bool", true, "true"},
		{"int", -4, "-4"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"uint", uint(7), "7"},
		{"uint64", uint64(1 << 40), "1099511627776"},
		{"float", 1.5, "1.5"},
		{"float32", float32(2.5), "2.5"},
		{"list", []any{1, "a", nil}, `[1, "a", null]`},
		{"string slice", []string{"a", "b"}, `["a", "b"]`},
		{"ordered object", []Argument{Arg("b", 2), Arg("a", 1)}, "{b: 2, a: 1}"},
		{"map object", map[string]any{"b": 2, "a": 1}, "{a: 1, b: 2}"},
		{"nested", map[string]any{"f": []any{typegraph.Enum("SIT")}}, "{f: [SIT]}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := mustSerialize(t, Field{Name: "f", Arguments: []Argument{Arg("x", c.v)}})
			require.Equal(t, "f(x: "+c.want+")", got)
		})
	}
}

func TestSerializeUnsupportedValue(t *testing.T) {
	type opaque struct{ X int }
	_, err := Serialize(Field{Name: "f", Arguments: []Argument{Arg("x", opaque{1})}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot serialize")
}

func TestSerializeArgumentOrder(t *testing.T) {
	// Insertion order is preserved exactly.
	sel := New().Field("f").Args(Arg("z", 1), Arg("a", 2), Arg("m", 3))
	require.Equal(t, "{\n  f(z: 1, a: 2, m: 3)\n}", mustSerialize(t, sel))
}
