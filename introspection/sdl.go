package introspection

import (
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// ParseSDL builds a Document from a schema written in the GraphQL schema
// definition language. The result is interchangeable with one parsed from a
// live introspection response, so a schema file can serve as the type source
// without a round trip to the endpoint.
func ParseSDL(src string) (*Document, error) {
	schema, gerr := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: src})
	if gerr != nil {
		return nil, fmt.Errorf("introspection: parse SDL: %w", gerr)
	}

	doc := &Document{Types: make(map[string]*Type, len(schema.Types))}
	if schema.Query != nil {
		doc.QueryType = schema.Query.Name
	}
	if schema.Mutation != nil {
		doc.MutationType = schema.Mutation.Name
	}
	if schema.Subscription != nil {
		doc.SubscriptionType = schema.Subscription.Name
	}

	for name, def := range schema.Types {
		if isIntrospectionName(name) {
			continue
		}
		doc.Types[name] = convertDefinition(def, schema)
	}
	return doc, nil
}

func isIntrospectionName(name string) bool {
	return len(name) >= 2 && name[0] == '_' && name[1] == '_'
}

func convertDefinition(def *ast.Definition, schema *ast.Schema) *Type {
	t := &Type{
		Kind:        TypeKind(def.Kind),
		Name:        def.Name,
		Description: def.Description,
	}
	switch def.Kind {
	case ast.Object, ast.Interface:
		for _, fd := range def.Fields {
			if isIntrospectionName(fd.Name) {
				continue
			}
			t.Fields = append(t.Fields, convertField(fd, schema))
		}
		for _, iface := range def.Interfaces {
			t.Interfaces = append(t.Interfaces, namedRef(iface, schema))
		}
		for _, pt := range schema.PossibleTypes[def.Name] {
			if def.Kind == ast.Interface {
				t.PossibleTypes = append(t.PossibleTypes, namedRef(pt.Name, schema))
			}
		}
	case ast.Union:
		for _, member := range def.Types {
			t.PossibleTypes = append(t.PossibleTypes, namedRef(member, schema))
		}
	case ast.Enum:
		for _, ev := range def.EnumValues {
			deprecated, reason := deprecation(ev.Directives)
			t.EnumValues = append(t.EnumValues, &EnumValue{
				Name:              ev.Name,
				Description:       ev.Description,
				IsDeprecated:      deprecated,
				DeprecationReason: reason,
			})
		}
	case ast.InputObject:
		for _, fd := range def.Fields {
			t.InputFields = append(t.InputFields, &InputValue{
				Name:         fd.Name,
				Description:  fd.Description,
				Type:         convertTypeRef(fd.Type, schema),
				DefaultValue: defaultValue(fd.DefaultValue),
			})
		}
	}
	return t
}

func convertField(fd *ast.FieldDefinition, schema *ast.Schema) *Field {
	deprecated, reason := deprecation(fd.Directives)
	f := &Field{
		Name:              fd.Name,
		Description:       fd.Description,
		Type:              convertTypeRef(fd.Type, schema),
		IsDeprecated:      deprecated,
		DeprecationReason: reason,
	}
	for _, arg := range fd.Arguments {
		f.Args = append(f.Args, &InputValue{
			Name:         arg.Name,
			Description:  arg.Description,
			Type:         convertTypeRef(arg.Type, schema),
			DefaultValue: defaultValue(arg.DefaultValue),
		})
	}
	return f
}

// convertTypeRef translates the SDL type syntax into the introspection
// NON_NULL/LIST/named nesting.
func convertTypeRef(t *ast.Type, schema *ast.Schema) *TypeRef {
	var inner *TypeRef
	if t.Elem != nil {
		inner = ListOf(convertTypeRef(t.Elem, schema))
	} else {
		inner = namedRef(t.NamedType, schema)
	}
	if t.NonNull {
		return NonNullOf(inner)
	}
	return inner
}

func namedRef(name string, schema *ast.Schema) *TypeRef {
	kind := KindScalar
	if def, ok := schema.Types[name]; ok {
		kind = TypeKind(def.Kind)
	}
	return Named(kind, name)
}

func deprecation(directives ast.DirectiveList) (bool, string) {
	d := directives.ForName("deprecated")
	if d == nil {
		return false, ""
	}
	if reason := d.Arguments.ForName("reason"); reason != nil && reason.Value != nil {
		return true, reason.Value.Raw
	}
	return true, ""
}

func defaultValue(v *ast.Value) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
