package validation

import (
	"fmt"

	"github.com/pauldx/quiz/typegraph"
)

// NoSuchFieldError indicates a selection referencing a field absent from its
// containing type. Selecting a sub-field on a scalar or enum reports the
// leaf type as On, since those types expose no fields at all.
type NoSuchFieldError struct {
	On   *typegraph.Type
	Name string
}

func (e *NoSuchFieldError) Error() string {
	return fmt.Sprintf("validation: no field %q on %s", e.Name, e.On)
}

// NoSuchArgumentError indicates a supplied argument not declared on the
// field.
type NoSuchArgumentError struct {
	On    *typegraph.Type
	Field *typegraph.Field
	Name  string
}

func (e *NoSuchArgumentError) Error() string {
	return fmt.Sprintf("validation: no argument %q on %s.%s", e.Name, e.On, e.Field.Name)
}

// MissingArgumentError indicates a required (non-nullable) argument that was
// not supplied.
type MissingArgumentError struct {
	On    *typegraph.Type
	Field *typegraph.Field
	Name  string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("validation: missing required argument %q on %s.%s", e.Name, e.On, e.Field.Name)
}

// InvalidArgumentTypeError indicates a supplied value whose shape does not
// satisfy the declared argument type.
type InvalidArgumentTypeError struct {
	On    *typegraph.Type
	Field *typegraph.Field
	Name  string
	Value any
}

func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("validation: value %v does not satisfy %s for argument %q on %s.%s",
		e.Value, e.Field.ArgByName(e.Name).Type, e.Name, e.On, e.Field.Name)
}
