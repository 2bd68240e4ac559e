// Package query builds GraphQL selection sets with an immutable fluent API
// and renders them to wire-format query text. Every builder operation
// returns a new value, so partial selections compose safely and can be
// reused as templates.
package query

import (
	"reflect"

	"github.com/pauldx/quiz/typegraph"
)

// Selection is one entry of a selection set: a Field, an InlineFragment, or
// a Raw text node.
type Selection interface {
	Node
	equalSelection(Selection) bool
}

// Argument is one named literal argument of a field. Arguments are kept as
// an ordered slice, so serialization preserves insertion order.
type Argument struct {
	Name  string
	Value any
}

// Arg constructs an Argument.
func Arg(name string, value any) Argument { return Argument{Name: name, Value: value} }

// Field selects one field, optionally with arguments and a nested selection
// set. An empty nested set means a leaf field.
type Field struct {
	Name       string
	Arguments  []Argument
	Selections SelectionSet
}

func (f Field) equalSelection(o Selection) bool {
	of, ok := o.(Field)
	if !ok || f.Name != of.Name || len(f.Arguments) != len(of.Arguments) {
		return false
	}
	for i, a := range f.Arguments {
		b := of.Arguments[i]
		if a.Name != b.Name || !reflect.DeepEqual(a.Value, b.Value) {
			return false
		}
	}
	return f.Selections.Equal(of.Selections)
}

// InlineFragment scopes a selection set to a concrete type. Produced by
// validation; serialized as "... on TypeName { ... }".
type InlineFragment struct {
	On         *typegraph.Type
	Selections SelectionSet
}

func (f InlineFragment) equalSelection(o Selection) bool {
	of, ok := o.(InlineFragment)
	return ok && typegraph.Same(f.On, of.On) && f.Selections.Equal(of.Selections)
}

// Raw is a pre-rendered GraphQL fragment emitted verbatim. It bypasses
// validation.
type Raw struct {
	Content string
}

func (r Raw) equalSelection(o Selection) bool {
	or, ok := o.(Raw)
	return ok && r.Content == or.Content
}

// SelectionSet is an ordered, immutable sequence of selections. The zero
// value is an empty set ready for building. Structural misuse (attaching
// arguments or a nested set to nothing, nesting an empty set) is recorded as
// a sticky BuilderError surfaced by Err, validation, and serialization.
type SelectionSet struct {
	selections []Selection
	err        error
}

// New returns an empty selection set to start a builder chain from.
func New() SelectionSet { return SelectionSet{} }

// Field appends a bare field selection.
func (s SelectionSet) Field(name string) SelectionSet {
	if s.err != nil {
		return s
	}
	return s.append(Field{Name: name})
}

// Args replaces the arguments of the most recently appended field. Calling
// it again without an intervening Field overwrites the previous arguments.
func (s SelectionSet) Args(args ...Argument) SelectionSet {
	f, rest, err := s.last()
	if err != nil {
		return SelectionSet{err: err}
	}
	f.Arguments = append([]Argument(nil), args...)
	return rest.append(f)
}

// Select attaches inner as the nested selection set of the most recently
// appended field. A nested set must select at least one field.
func (s SelectionSet) Select(inner SelectionSet) SelectionSet {
	f, rest, err := s.last()
	if err != nil {
		return SelectionSet{err: err}
	}
	if inner.err != nil {
		return SelectionSet{err: inner.err}
	}
	if inner.Len() == 0 {
		return SelectionSet{err: &BuilderError{Reason: "nested selection set must select at least one field"}}
	}
	f.Selections = inner
	return rest.append(f)
}

// Add appends an already built selection, e.g. a validated InlineFragment
// or a Raw node.
func (s SelectionSet) Add(sel Selection) SelectionSet {
	if s.err != nil {
		return s
	}
	return s.append(sel)
}

// Err reports the first structural error recorded while building, if any.
func (s SelectionSet) Err() error { return s.err }

// Len returns the number of selections.
func (s SelectionSet) Len() int { return len(s.selections) }

// Selections returns the selections in insertion order.
func (s SelectionSet) Selections() []Selection {
	return append([]Selection(nil), s.selections...)
}

// Equal reports structural equality: the same ordered sequence of equal
// selections.
func (s SelectionSet) Equal(o SelectionSet) bool {
	if len(s.selections) != len(o.selections) {
		return false
	}
	for i, sel := range s.selections {
		if !sel.equalSelection(o.selections[i]) {
			return false
		}
	}
	return true
}

// append copies the backing slice so sibling chains never share storage.
func (s SelectionSet) append(sel Selection) SelectionSet {
	out := make([]Selection, len(s.selections)+1)
	copy(out, s.selections)
	out[len(s.selections)] = sel
	return SelectionSet{selections: out}
}

// last splits off the most recently appended selection, which must be a
// Field, from the rest of the set.
func (s SelectionSet) last() (Field, SelectionSet, error) {
	if s.err != nil {
		return Field{}, SelectionSet{}, s.err
	}
	if len(s.selections) == 0 {
		return Field{}, SelectionSet{}, &BuilderError{Reason: "cannot modify an empty selection set"}
	}
	f, ok := s.selections[len(s.selections)-1].(Field)
	if !ok {
		return Field{}, SelectionSet{}, &BuilderError{Reason: "last selection is not a field"}
	}
	return f, SelectionSet{selections: s.selections[:len(s.selections)-1]}, nil
}
