package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunUnknownCommand(t *testing.T) {
	err := run([]string{"frobnicate"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "frobnicate")
}

func TestRunNoCommand(t *testing.T) {
	require.Error(t, run(nil))
}

func TestHelp(t *testing.T) {
	require.NoError(t, run([]string{"help"}))
	require.NoError(t, run([]string{"help", "sdl"}))
	require.Error(t, run([]string{"help", "nope"}))
}

func TestHeaderFlag(t *testing.T) {
	var h headerFlag
	require.NoError(t, h.Set("Authorization: Bearer tok"))
	require.NoError(t, h.Set("X-Team:platform"))
	require.Error(t, h.Set("no-colon"))

	opts, err := h.options()
	require.NoError(t, err)
	require.Len(t, opts, 2)

	_, err = headerFlag{":value"}.options()
	require.Error(t, err)
}

func TestFlagValidation(t *testing.T) {
	// missing -endpoint
	require.Error(t, run([]string{"introspect"}))
	// neither -schema nor -endpoint
	require.Error(t, run([]string{"sdl"}))
	// neither -query nor -file
	require.Error(t, run([]string{"exec", "-endpoint", "http://x"}))
	// both -query and -file
	require.Error(t, run([]string{"exec", "-endpoint", "http://x", "-query", "{ a }", "-file", "q.graphql"}))
}

func TestSDLFromFile(t *testing.T) {
	schema := `{"__schema": {
	  "queryType": {"name": "Query"},
	  "types": [
	    {"kind": "OBJECT", "name": "Query", "fields": [
	      {"name": "ok", "type": {"kind": "NON_NULL", "ofType": {"kind": "SCALAR", "name": "Boolean"}}}
	    ]},
	    {"kind": "SCALAR", "name": "Boolean"}
	  ]
	}}`

	dir := t.TempDir()
	in := filepath.Join(dir, "schema.json")
	out := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(in, []byte(schema), 0644))

	require.NoError(t, run([]string{"sdl", "-schema", in, "-out", out}))

	rendered, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(rendered), "type Query {")
	require.Contains(t, string(rendered), "ok: Boolean!")
}

func TestExecRejectsInvalidQuery(t *testing.T) {
	err := run([]string{"exec", "-endpoint", "http://127.0.0.1:1", "-query", "{ dog {"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid query")
}
