package introspection

import (
	"encoding/json"
	"fmt"
)

// rawSchema mirrors the wire shape of the __schema object.
type rawSchema struct {
	QueryType        *rawNamed `json:"queryType"`
	MutationType     *rawNamed `json:"mutationType"`
	SubscriptionType *rawNamed `json:"subscriptionType"`
	Types            []*Type   `json:"types"`
}

type rawNamed struct {
	Name string `json:"name"`
}

// envelope matches the layers an introspection response may still be
// wrapped in when handed to Parse.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Schema json.RawMessage `json:"__schema"`
}

// Parse decodes an introspection result into a Document. It accepts the full
// HTTP response body ({"data": {"__schema": ...}}), the bare data object
// ({"__schema": ...}), or the __schema object itself.
func Parse(data []byte) (*Document, error) {
	body := data
	for i := 0; i < 2; i++ {
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("introspection: invalid JSON: %w", err)
		}
		switch {
		case env.Schema != nil:
			body = env.Schema
		case env.Data != nil:
			body = env.Data
			continue
		}
		break
	}

	var raw rawSchema
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("introspection: invalid JSON: %w", err)
	}
	if raw.Types == nil {
		return nil, fmt.Errorf("introspection: document has no types")
	}

	doc := &Document{Types: make(map[string]*Type, len(raw.Types))}
	if raw.QueryType != nil {
		doc.QueryType = raw.QueryType.Name
	}
	if raw.MutationType != nil {
		doc.MutationType = raw.MutationType.Name
	}
	if raw.SubscriptionType != nil {
		doc.SubscriptionType = raw.SubscriptionType.Name
	}
	for _, t := range raw.Types {
		if t.Name == "" {
			return nil, fmt.Errorf("introspection: type with empty name")
		}
		doc.Types[t.Name] = t
	}
	return doc, nil
}
