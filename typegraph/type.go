// Package typegraph turns an introspected schema document into a navigable
// graph of type descriptors. Descriptors are immutable once Build returns
// and safe for concurrent readers.
package typegraph

// Kind discriminates the variants of a Type descriptor.
type Kind int

const (
	KindScalar Kind = iota
	KindEnum
	KindUnion
	KindInterface
	KindObject
	KindInputObject
	KindList
	KindNullable
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "SCALAR"
	case KindEnum:
		return "ENUM"
	case KindUnion:
		return "UNION"
	case KindInterface:
		return "INTERFACE"
	case KindObject:
		return "OBJECT"
	case KindInputObject:
		return "INPUT_OBJECT"
	case KindList:
		return "LIST"
	case KindNullable:
		return "NULLABLE"
	}
	return "UNKNOWN"
}

// Type is a tagged-variant descriptor for one GraphQL type. Which fields are
// populated depends on Kind. Named descriptors are unique within a Graph, so
// pointer comparison works for them; wrapper descriptors (List, Nullable) are
// compared structurally with Same.
type Type struct {
	Kind        Kind
	Name        string // named kinds only
	Description string

	Rep         *ScalarRep    // Scalar
	EnumValues  []*EnumValue  // Enum
	Members     []*Type       // Union
	Fields      []*Field      // Object, Interface; declaration order
	Interfaces  []*Type       // Object
	InputFields []*InputValue // InputObject
	Elem        *Type         // List, Nullable

	fieldIndex map[string]*Field
	enumIndex  map[string]*EnumValue
	inputIndex map[string]*InputValue
}

// Field is an immutable record of one selectable field.
type Field struct {
	Name              string
	Description       string
	Type              *Type
	Args              []*InputValue // declaration order
	IsDeprecated      bool
	DeprecationReason string

	argIndex map[string]*InputValue
}

// ArgByName returns the declared argument, or nil.
func (f *Field) ArgByName(name string) *InputValue { return f.argIndex[name] }

// InputValue describes one accepted argument or input object field.
type InputValue struct {
	Name        string
	Description string
	Type        *Type
}

// EnumValue describes one member of an enum type.
type EnumValue struct {
	Name              string
	Description       string
	IsDeprecated      bool
	DeprecationReason string
}

// Enum is the host representation of a GraphQL enum member, rendered bare
// (unquoted) in query text.
type Enum string

// ID is the host representation of the GraphQL ID scalar. Serialized like a
// String; the distinct type signals the value is not meant to be
// human-readable.
type ID string

// FieldByName returns the field declared on an Object or Interface
// descriptor, or nil for unknown names and non-selectable kinds.
func (t *Type) FieldByName(name string) *Field { return t.fieldIndex[name] }

// HasEnumValue reports whether an Enum descriptor declares the named member.
func (t *Type) HasEnumValue(name string) bool { return t.enumIndex[name] != nil }

// String renders the descriptor for error messages: named types by name,
// wrappers as List[...] and Nullable[...].
func (t *Type) String() string {
	switch t.Kind {
	case KindList:
		return "List[" + t.Elem.String() + "]"
	case KindNullable:
		return "Nullable[" + t.Elem.String() + "]"
	default:
		return t.Name
	}
}

// Unwrap removes one layer of List or Nullable wrapping.
func (t *Type) Unwrap() *Type {
	if t.Kind == KindList || t.Kind == KindNullable {
		return t.Elem
	}
	return t
}

// Underlying strips all List and Nullable wrapping, yielding the named
// descriptor at the core of the reference.
func (t *Type) Underlying() *Type {
	for t.Kind == KindList || t.Kind == KindNullable {
		t = t.Elem
	}
	return t
}

// ListOf returns a descriptor for "ordered sequence of t".
func ListOf(t *Type) *Type { return &Type{Kind: KindList, Elem: t} }

// NullableOf returns a descriptor for "null or t".
func NullableOf(t *Type) *Type { return &Type{Kind: KindNullable, Elem: t} }

// UnionOf returns an anonymous union descriptor over the given members.
// Named unions come from Build; this constructor exists for ad hoc
// membership tests.
func UnionOf(members ...*Type) *Type { return &Type{Kind: KindUnion, Members: members} }

// Same reports structural equality: two wrapper descriptors of the same
// shape are interchangeable regardless of where they were constructed.
// Named descriptors compare by identity.
func Same(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindList, KindNullable:
		return Same(a.Elem, b.Elem)
	default:
		return false
	}
}

func (t *Type) index() {
	if len(t.Fields) > 0 {
		t.fieldIndex = make(map[string]*Field, len(t.Fields))
		for _, f := range t.Fields {
			t.fieldIndex[f.Name] = f
			if len(f.Args) > 0 {
				f.argIndex = make(map[string]*InputValue, len(f.Args))
				for _, a := range f.Args {
					f.argIndex[a.Name] = a
				}
			}
		}
	}
	if len(t.EnumValues) > 0 {
		t.enumIndex = make(map[string]*EnumValue, len(t.EnumValues))
		for _, v := range t.EnumValues {
			t.enumIndex[v.Name] = v
		}
	}
	if len(t.InputFields) > 0 {
		t.inputIndex = make(map[string]*InputValue, len(t.InputFields))
		for _, v := range t.InputFields {
			t.inputIndex[v.Name] = v
		}
	}
}
