package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pauldx/quiz/typegraph"
)

func TestBuilderChain(t *testing.T) {
	sel := New().
		Field("name").
		Field("knows_command").Args(Arg("command", typegraph.Enum("SIT")))

	require.NoError(t, sel.Err())
	require.Equal(t, 2, sel.Len())

	got := sel.Selections()
	require.Equal(t, Field{Name: "name"}, got[0])
	require.Equal(t, Field{
		Name:      "knows_command",
		Arguments: []Argument{Arg("command", typegraph.Enum("SIT"))},
	}, got[1])
}

func TestBuilderImmutability(t *testing.T) {
	base := New().Field("name")
	withOwner := base.Field("owner").Select(New().Field("name"))
	withVolume := base.Field("bark_volume")

	// base is a reusable template: extending it twice produces independent
	// sets and leaves base untouched.
	require.Equal(t, 1, base.Len())
	require.Equal(t, 2, withOwner.Len())
	require.Equal(t, 2, withVolume.Len())
	require.False(t, withOwner.Equal(withVolume))
}

func TestBuilderEquality(t *testing.T) {
	a := New().Field("name").Field("bark_volume")
	b := New().Field("name").Field("bark_volume")
	require.True(t, a.Equal(b))

	// Order matters.
	c := New().Field("bark_volume").Field("name")
	require.False(t, a.Equal(c))

	// Arguments compare by name, value, and position.
	d := New().Field("f").Args(Arg("a", 1), Arg("b", 2))
	e := New().Field("f").Args(Arg("a", 1), Arg("b", 2))
	f := New().Field("f").Args(Arg("b", 2), Arg("a", 1))
	require.True(t, d.Equal(e))
	require.False(t, d.Equal(f))
}

func TestArgsOverwrite(t *testing.T) {
	sel := New().Field("f").Args(Arg("a", 1)).Args(Arg("b", 2))
	require.NoError(t, sel.Err())
	require.Equal(t, []Argument{Arg("b", 2)}, sel.Selections()[0].(Field).Arguments)
}

func TestBuilderStickyErrors(t *testing.T) {
	t.Run("args on empty set", func(t *testing.T) {
		sel := New().Args(Arg("a", 1))
		var berr *BuilderError
		require.ErrorAs(t, sel.Err(), &berr)
		require.Equal(t, "query: cannot modify an empty selection set", berr.Error())

		// The error sticks through further building and surfaces at
		// serialization.
		sel = sel.Field("name")
		require.Error(t, sel.Err())
		_, err := Serialize(sel)
		require.ErrorAs(t, err, &berr)
	})

	t.Run("select on empty set", func(t *testing.T) {
		sel := New().Select(New().Field("name"))
		require.Error(t, sel.Err())
	})

	t.Run("empty nested set", func(t *testing.T) {
		sel := New().Field("owner").Select(New())
		var berr *BuilderError
		require.ErrorAs(t, sel.Err(), &berr)
		require.Equal(t, "query: nested selection set must select at least one field", berr.Error())
	})

	t.Run("last selection is not a field", func(t *testing.T) {
		sel := New().Add(Raw{Content: "id"}).Args(Arg("a", 1))
		var berr *BuilderError
		require.ErrorAs(t, sel.Err(), &berr)
		require.Equal(t, "query: last selection is not a field", berr.Error())
	})

	t.Run("nested error propagates", func(t *testing.T) {
		bad := New().Args(Arg("a", 1))
		sel := New().Field("owner").Select(bad)
		require.Error(t, sel.Err())
	})
}

func TestAdd(t *testing.T) {
	frag := InlineFragment{Selections: New().Field("name")}
	sel := New().Field("id").Add(frag)
	require.NoError(t, sel.Err())
	require.Equal(t, 2, sel.Len())
	require.True(t, sel.Equal(New().Field("id").Add(frag)))
}

func TestSelectionsIsACopy(t *testing.T) {
	sel := New().Field("a").Field("b")
	got := sel.Selections()
	got[0] = Field{Name: "mutated"}
	require.Equal(t, Field{Name: "a"}, sel.Selections()[0])
}
