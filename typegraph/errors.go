package typegraph

import "fmt"

// SchemaError indicates an internally inconsistent introspection document:
// a field, argument, interface, or union member references a type name the
// document never declares. It is fatal at build time.
type SchemaError struct {
	Name     string // the dangling type name
	Referrer string // the declaration that referenced it
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("typegraph: unknown type %q referenced by %s", e.Name, e.Referrer)
}
