package introspection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "data": {
    "__schema": {
      "queryType": { "name": "Query" },
      "mutationType": null,
      "subscriptionType": null,
      "types": [
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [
            {
              "name": "dog",
              "args": [],
              "type": { "kind": "OBJECT", "name": "Dog", "ofType": null },
              "isDeprecated": false,
              "deprecationReason": null
            }
          ]
        },
        {
          "kind": "OBJECT",
          "name": "Dog",
          "fields": [
            {
              "name": "name",
              "args": [],
              "type": {
                "kind": "NON_NULL",
                "name": null,
                "ofType": { "kind": "SCALAR", "name": "String", "ofType": null }
              },
              "isDeprecated": false,
              "deprecationReason": null
            },
            {
              "name": "nicknames",
              "args": [],
              "type": {
                "kind": "NON_NULL",
                "name": null,
                "ofType": {
                  "kind": "LIST",
                  "name": null,
                  "ofType": {
                    "kind": "NON_NULL",
                    "name": null,
                    "ofType": { "kind": "SCALAR", "name": "String", "ofType": null }
                  }
                }
              },
              "isDeprecated": true,
              "deprecationReason": "use name"
            }
          ]
        },
        {
          "kind": "ENUM",
          "name": "Command",
          "enumValues": [
            { "name": "SIT", "isDeprecated": false },
            { "name": "DOWN", "isDeprecated": false }
          ]
        },
        { "kind": "SCALAR", "name": "String" }
      ]
    }
  }
}`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleResponse))
	require.NoError(t, err)

	require.Equal(t, "Query", doc.QueryType)
	require.Empty(t, doc.MutationType)
	require.Len(t, doc.Types, 4)

	dog := doc.Lookup("Dog")
	require.NotNil(t, dog)
	require.Equal(t, KindObject, dog.Kind)
	require.Len(t, dog.Fields, 2)

	name := dog.Fields[0]
	require.Equal(t, "name", name.Name)
	require.Equal(t, KindNonNull, name.Type.Kind)
	require.Equal(t, "String", name.Type.NamedType())

	nicknames := dog.Fields[1]
	require.True(t, nicknames.IsDeprecated)
	require.Equal(t, "use name", nicknames.DeprecationReason)
	require.Equal(t, KindNonNull, nicknames.Type.Kind)
	require.Equal(t, KindList, nicknames.Type.OfType.Kind)

	command := doc.Lookup("Command")
	require.NotNil(t, command)
	require.Equal(t, KindEnum, command.Kind)
	require.Len(t, command.EnumValues, 2)
}

func TestParseUnwrapped(t *testing.T) {
	// The same payload without the response envelope parses identically.
	full, err := Parse([]byte(sampleResponse))
	require.NoError(t, err)

	bare := `{"queryType": {"name": "Query"}, "types": [{"kind": "SCALAR", "name": "String"}]}`
	doc, err := Parse([]byte(bare))
	require.NoError(t, err)
	require.Equal(t, full.QueryType, doc.QueryType)
	require.NotNil(t, doc.Lookup("String"))
}

func TestParseErrors(t *testing.T) {
	for name, input := range map[string]string{
		"invalid JSON": `{`,
		"no types":     `{"queryType": {"name": "Query"}}`,
		"unnamed type": `{"types": [{"kind": "OBJECT"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			require.Error(t, err)
		})
	}
}

func TestTypeRefNamedType(t *testing.T) {
	ref := NonNullOf(ListOf(NonNullOf(Named(KindObject, "Foo"))))
	require.Equal(t, "Foo", ref.NamedType())
	require.Equal(t, "", (&TypeRef{Kind: KindNonNull}).NamedType())
}
