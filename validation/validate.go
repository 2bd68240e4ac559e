// Package validation checks selection sets against a type graph. It
// approves, never rewrites: on success the original selection set is wrapped
// in an InlineFragment (or Operation at the root) unchanged, so validating
// the result again yields an identical outcome.
package validation

import (
	"github.com/pauldx/quiz/query"
	"github.com/pauldx/quiz/typegraph"
)

// Fragment validates sel against the given type and wraps it in an inline
// fragment scoped to that type. No automatic narrowing happens for unions or
// interfaces: selections are checked against exactly the type given.
func Fragment(on *typegraph.Type, sel query.SelectionSet) (query.InlineFragment, error) {
	if err := checkSet(on, sel); err != nil {
		return query.InlineFragment{}, err
	}
	return query.InlineFragment{On: on, Selections: sel}, nil
}

// Operation validates sel against the root type and assembles an executable
// operation of the given kind.
func Operation(op query.OperationType, root *typegraph.Type, sel query.SelectionSet) (query.Operation, error) {
	if err := checkSet(root, sel); err != nil {
		return query.Operation{}, err
	}
	return query.Operation{Type: op, Selections: sel}, nil
}

func checkSet(on *typegraph.Type, sel query.SelectionSet) error {
	if err := sel.Err(); err != nil {
		return err
	}
	for _, s := range sel.Selections() {
		switch node := s.(type) {
		case query.Field:
			if err := checkField(on, node); err != nil {
				return err
			}
		case query.InlineFragment:
			// Already validated against its own target type; re-checking
			// keeps validation idempotent over its own output.
			if err := checkSet(node.On, node.Selections); err != nil {
				return err
			}
		case query.Raw:
			// Raw text is emitted verbatim and cannot be checked.
		}
	}
	return nil
}

func checkField(on *typegraph.Type, f query.Field) error {
	def := on.FieldByName(f.Name)
	if def == nil {
		return &NoSuchFieldError{On: on, Name: f.Name}
	}
	if err := checkArgs(on, def, f.Arguments); err != nil {
		return err
	}
	if f.Selections.Len() > 0 {
		// Descend with the return type stripped of List/Nullable wrapping.
		// If that leaves a scalar or enum, the recursion reports the
		// attempted sub-field as missing on the leaf type.
		return checkSet(def.Type.Underlying(), f.Selections)
	}
	return nil
}

func checkArgs(on *typegraph.Type, def *typegraph.Field, args []query.Argument) error {
	for _, a := range args {
		if def.ArgByName(a.Name) == nil {
			return &NoSuchArgumentError{On: on, Field: def, Name: a.Name}
		}
	}
	for _, in := range def.Args {
		supplied, ok := lookupArg(args, in.Name)
		if !ok {
			if in.Type.Kind != typegraph.KindNullable {
				return &MissingArgumentError{On: on, Field: def, Name: in.Name}
			}
			continue
		}
		if !in.Type.Satisfies(hostValue(supplied.Value)) {
			return &InvalidArgumentTypeError{On: on, Field: def, Name: in.Name, Value: supplied.Value}
		}
	}
	return nil
}

// hostValue normalizes builder literals for membership testing: an ordered
// []query.Argument input object checks like its map form, recursively.
func hostValue(v any) any {
	switch x := v.(type) {
	case []query.Argument:
		m := make(map[string]any, len(x))
		for _, a := range x {
			m[a.Name] = hostValue(a.Value)
		}
		return m
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = hostValue(e)
		}
		return out
	}
	return v
}

func lookupArg(args []query.Argument, name string) (query.Argument, bool) {
	for _, a := range args {
		if a.Name == name {
			return a, true
		}
	}
	return query.Argument{}, false
}
