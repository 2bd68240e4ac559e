// Package introspection models the result of the standard GraphQL
// introspection query and provides ways to obtain one: parsing a raw
// response, or loading a schema written in SDL.
package introspection

// TypeKind is the __TypeKind of an introspected type or type reference.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindList        TypeKind = "LIST"
	KindNonNull     TypeKind = "NON_NULL"
)

// Document is a flattened introspection result: every named type keyed by
// name, plus the names of the root operation types.
type Document struct {
	QueryType        string
	MutationType     string
	SubscriptionType string
	Types            map[string]*Type
}

// Lookup returns the named type, or nil if the document does not declare it.
func (d *Document) Lookup(name string) *Type { return d.Types[name] }

// Type is one introspected named type. Which payload slices are populated
// depends on Kind, mirroring the __Type shape.
type Type struct {
	Kind          TypeKind      `json:"kind"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Fields        []*Field      `json:"fields"`        // OBJECT, INTERFACE
	Interfaces    []*TypeRef    `json:"interfaces"`    // OBJECT
	PossibleTypes []*TypeRef    `json:"possibleTypes"` // UNION, INTERFACE
	EnumValues    []*EnumValue  `json:"enumValues"`    // ENUM
	InputFields   []*InputValue `json:"inputFields"`   // INPUT_OBJECT
}

// TypeRef is a possibly wrapped reference to a named type. LIST and NON_NULL
// carry OfType and no Name; every other kind carries Name and no OfType.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// NamedType returns the innermost type name of the reference.
func (r *TypeRef) NamedType() string {
	for r != nil {
		if r.Name != "" {
			return r.Name
		}
		r = r.OfType
	}
	return ""
}

// NonNullOf wraps ref in a NON_NULL reference.
func NonNullOf(ref *TypeRef) *TypeRef { return &TypeRef{Kind: KindNonNull, OfType: ref} }

// ListOf wraps ref in a LIST reference.
func ListOf(ref *TypeRef) *TypeRef { return &TypeRef{Kind: KindList, OfType: ref} }

// Named returns a reference to a named type of the given kind.
func Named(kind TypeKind, name string) *TypeRef { return &TypeRef{Kind: kind, Name: name} }

// Field describes one field of an object or interface type.
type Field struct {
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Args              []*InputValue `json:"args"`
	Type              *TypeRef      `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason string        `json:"deprecationReason"`
}

// InputValue describes one accepted argument or input object field.
type InputValue struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
}

// EnumValue describes one member of an enum type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason"`
}
