package query

import "strings"

const indent = "  "

// Node is anything renderable to GraphQL text.
type Node interface {
	writeGQL(b *strings.Builder, prefix string) error
}

// Serialize renders a node to canonical GraphQL text: two-space indentation,
// arguments in insertion order, one selection per line.
func Serialize(n Node) (string, error) {
	var b strings.Builder
	if err := n.writeGQL(&b, ""); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s SelectionSet) writeGQL(b *strings.Builder, prefix string) error {
	if s.err != nil {
		return s.err
	}
	// An empty set renders as empty text; it only occurs transiently while
	// building, never in a validated operation.
	if len(s.selections) == 0 {
		return nil
	}
	b.WriteString("{\n")
	for _, sel := range s.selections {
		b.WriteString(prefix)
		b.WriteString(indent)
		if err := sel.writeGQL(b, prefix+indent); err != nil {
			return err
		}
		b.WriteString("\n")
	}
	b.WriteString(prefix)
	b.WriteString("}")
	return nil
}

func (f Field) writeGQL(b *strings.Builder, prefix string) error {
	b.WriteString(f.Name)
	if len(f.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range f.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			if err := writeValue(b, arg.Value); err != nil {
				return err
			}
		}
		b.WriteString(")")
	}
	if f.Selections.Len() > 0 {
		b.WriteString(" ")
		return f.Selections.writeGQL(b, prefix)
	}
	return nil
}

func (f InlineFragment) writeGQL(b *strings.Builder, prefix string) error {
	b.WriteString("... on ")
	b.WriteString(f.On.Name)
	b.WriteString(" ")
	return f.Selections.writeGQL(b, prefix)
}

func (r Raw) writeGQL(b *strings.Builder, _ string) error {
	b.WriteString(r.Content)
	return nil
}
