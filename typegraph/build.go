package typegraph

import (
	"fmt"

	"github.com/pauldx/quiz/introspection"
)

// Options configures Build.
type Options struct {
	// Scalars maps custom scalar names to their host representations.
	// Custom scalars without an entry fall back to OpaqueRep.
	Scalars map[string]*ScalarRep
}

// Graph is the complete name-to-descriptor mapping for one schema. It is
// read-only after Build.
type Graph struct {
	types            map[string]*Type
	queryType        string
	mutationType     string
	subscriptionType string
}

// Lookup returns the named descriptor and whether it exists.
func (g *Graph) Lookup(name string) (*Type, bool) {
	t, ok := g.types[name]
	return t, ok
}

// MustLookup returns the named descriptor or panics. Intended for schema
// names the caller knows are present.
func (g *Graph) MustLookup(name string) *Type {
	t, ok := g.types[name]
	if !ok {
		panic(fmt.Sprintf("typegraph: no type named %q", name))
	}
	return t
}

// QueryType returns the root query type, or nil if the document named none.
func (g *Graph) QueryType() *Type { return g.types[g.queryType] }

// MutationType returns the root mutation type (may be nil).
func (g *Graph) MutationType() *Type { return g.types[g.mutationType] }

// SubscriptionType returns the root subscription type (may be nil).
func (g *Graph) SubscriptionType() *Type { return g.types[g.subscriptionType] }

// Build converts an introspection document into a type graph. Construction
// is two-phase: dependency-free types (scalars, enums) first, then shell
// descriptors for the mutually referencing kinds, then field population, so
// forward references always resolve. A reference to an undeclared type name
// fails with SchemaError.
func Build(doc *introspection.Document, opts Options) (*Graph, error) {
	b := &builder{
		doc:   doc,
		types: make(map[string]*Type, len(doc.Types)+5),
	}

	b.registerScalars(opts.Scalars)
	b.registerEnums()

	// Objects, interfaces, unions, and input objects reference each other
	// freely; create all shells before resolving anything.
	for _, t := range doc.Types {
		if isIntrospectionName(t.Name) {
			continue
		}
		switch t.Kind {
		case introspection.KindObject:
			b.shell(t, KindObject)
		case introspection.KindInterface:
			b.shell(t, KindInterface)
		case introspection.KindUnion:
			b.shell(t, KindUnion)
		case introspection.KindInputObject:
			b.shell(t, KindInputObject)
		}
	}

	for _, t := range doc.Types {
		if isIntrospectionName(t.Name) {
			continue
		}
		if err := b.populate(t); err != nil {
			return nil, err
		}
	}

	return &Graph{
		types:            b.types,
		queryType:        doc.QueryType,
		mutationType:     doc.MutationType,
		subscriptionType: doc.SubscriptionType,
	}, nil
}

type builder struct {
	doc   *introspection.Document
	types map[string]*Type
}

func isIntrospectionName(name string) bool {
	return len(name) >= 2 && name[0] == '_' && name[1] == '_'
}

var builtinReps = map[string]*ScalarRep{
	"Boolean": BooleanRep,
	"String":  StringRep,
	"ID":      IDRep,
	"Float":   FloatRep,
	"Int":     IntRep,
}

func (b *builder) registerScalars(overrides map[string]*ScalarRep) {
	// Built-ins are always present, whether or not the document lists them.
	for name, rep := range builtinReps {
		desc := ""
		if t := b.doc.Lookup(name); t != nil {
			desc = t.Description
		}
		b.types[name] = &Type{Kind: KindScalar, Name: name, Description: desc, Rep: rep}
	}
	for _, t := range b.doc.Types {
		if t.Kind != introspection.KindScalar || builtinReps[t.Name] != nil || isIntrospectionName(t.Name) {
			continue
		}
		rep := overrides[t.Name]
		if rep == nil {
			rep = OpaqueRep
		}
		b.types[t.Name] = &Type{Kind: KindScalar, Name: t.Name, Description: t.Description, Rep: rep}
	}
}

func (b *builder) registerEnums() {
	for _, t := range b.doc.Types {
		if t.Kind != introspection.KindEnum || isIntrospectionName(t.Name) {
			continue
		}
		e := &Type{Kind: KindEnum, Name: t.Name, Description: t.Description}
		for _, v := range t.EnumValues {
			e.EnumValues = append(e.EnumValues, &EnumValue{
				Name:              v.Name,
				Description:       v.Description,
				IsDeprecated:      v.IsDeprecated,
				DeprecationReason: v.DeprecationReason,
			})
		}
		e.index()
		b.types[t.Name] = e
	}
}

func (b *builder) shell(t *introspection.Type, kind Kind) {
	b.types[t.Name] = &Type{Kind: kind, Name: t.Name, Description: t.Description}
}

func (b *builder) populate(src *introspection.Type) error {
	t := b.types[src.Name]
	if t == nil {
		return nil // scalar or enum, already complete
	}
	switch t.Kind {
	case KindObject, KindInterface:
		for _, f := range src.Fields {
			field, err := b.buildField(src.Name, f)
			if err != nil {
				return err
			}
			t.Fields = append(t.Fields, field)
		}
		for _, ref := range src.Interfaces {
			iface, err := b.named(ref.NamedType(), src.Name)
			if err != nil {
				return err
			}
			t.Interfaces = append(t.Interfaces, iface)
		}
	case KindUnion:
		for _, ref := range src.PossibleTypes {
			member, err := b.named(ref.NamedType(), src.Name)
			if err != nil {
				return err
			}
			t.Members = append(t.Members, member)
		}
	case KindInputObject:
		for _, in := range src.InputFields {
			iv, err := b.buildInputValue(src.Name, in)
			if err != nil {
				return err
			}
			t.InputFields = append(t.InputFields, iv)
		}
	}
	t.index()
	return nil
}

func (b *builder) buildField(owner string, f *introspection.Field) (*Field, error) {
	referrer := owner + "." + f.Name
	typ, err := b.resolveRef(f.Type, referrer)
	if err != nil {
		return nil, err
	}
	field := &Field{
		Name:              f.Name,
		Description:       f.Description,
		Type:              typ,
		IsDeprecated:      f.IsDeprecated,
		DeprecationReason: f.DeprecationReason,
	}
	for _, arg := range f.Args {
		iv, err := b.buildInputValue(referrer, arg)
		if err != nil {
			return nil, err
		}
		field.Args = append(field.Args, iv)
	}
	return field, nil
}

func (b *builder) buildInputValue(owner string, in *introspection.InputValue) (*InputValue, error) {
	typ, err := b.resolveRef(in.Type, owner+"("+in.Name+")")
	if err != nil {
		return nil, err
	}
	return &InputValue{Name: in.Name, Description: in.Description, Type: typ}, nil
}

// resolveRef resolves a type reference into a live descriptor. NON_NULL
// unwraps to the inner type directly; any position not wrapped in NON_NULL
// resolves to Nullable of the inner type, the list itself included.
func (b *builder) resolveRef(ref *introspection.TypeRef, referrer string) (*Type, error) {
	if ref == nil {
		return nil, &SchemaError{Referrer: referrer}
	}
	if ref.Kind == introspection.KindNonNull {
		return b.resolveInner(ref.OfType, referrer)
	}
	inner, err := b.resolveInner(ref, referrer)
	if err != nil {
		return nil, err
	}
	return NullableOf(inner), nil
}

func (b *builder) resolveInner(ref *introspection.TypeRef, referrer string) (*Type, error) {
	if ref == nil {
		return nil, &SchemaError{Referrer: referrer}
	}
	if ref.Kind == introspection.KindList {
		elem, err := b.resolveRef(ref.OfType, referrer)
		if err != nil {
			return nil, err
		}
		return ListOf(elem), nil
	}
	return b.named(ref.Name, referrer)
}

func (b *builder) named(name, referrer string) (*Type, error) {
	t, ok := b.types[name]
	if !ok {
		return nil, &SchemaError{Name: name, Referrer: referrer}
	}
	return t, nil
}
