package query

import "strings"

// OperationType is the kind of a top-level operation.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// Operation wraps a selection set into an executable unit.
type Operation struct {
	Type       OperationType
	Selections SelectionSet
}

func (o Operation) writeGQL(b *strings.Builder, prefix string) error {
	b.WriteString(string(o.Type))
	b.WriteString(" ")
	return o.Selections.writeGQL(b, prefix)
}

// Equal reports structural equality of two operations.
func (o Operation) Equal(other Operation) bool {
	return o.Type == other.Type && o.Selections.Equal(other.Selections)
}

// Document is an ordered sequence of operations. Fragments are deliberately
// unsupported.
type Document struct {
	Operations []Operation
}

func (d Document) writeGQL(b *strings.Builder, prefix string) error {
	for i, op := range d.Operations {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if err := op.writeGQL(b, prefix); err != nil {
			return err
		}
	}
	return nil
}
