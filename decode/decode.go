// Package decode loads a raw JSON response into typed host values, guided
// by the type descriptor and the selection set the query was built from.
// Only requested selections are decoded; shape disagreements between the
// payload and the schema surface as NullResultError or TypeMismatchError.
package decode

import (
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/pauldx/quiz/query"
	"github.com/pauldx/quiz/typegraph"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode unmarshals data and decodes it against the descriptor and
// selections. The data is the value for the type itself, e.g. the "data"
// object of a response when t is the root query type.
func Decode(t *typegraph.Type, sel query.SelectionSet, data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return DecodeValue(t, sel, raw)
}

// DecodeValue decodes an already unmarshaled JSON value.
func DecodeValue(t *typegraph.Type, sel query.SelectionSet, v any) (any, error) {
	return walk(t, sel, v, "")
}

func walk(t *typegraph.Type, sel query.SelectionSet, v any, path string) (any, error) {
	if t.Kind == typegraph.KindNullable {
		if v == nil {
			return nil, nil
		}
		return walk(t.Elem, sel, v, path)
	}
	if v == nil {
		// Includes fields missing from the payload entirely.
		return nil, &NullResultError{Path: path}
	}

	switch t.Kind {
	case typegraph.KindList:
		arr, ok := v.([]any)
		if !ok {
			return nil, &TypeMismatchError{Path: path, Want: t.String(), Got: v}
		}
		out := make([]any, len(arr))
		for i, elem := range arr {
			decoded, err := walk(t.Elem, sel, elem, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = decoded
		}
		return out, nil

	case typegraph.KindObject, typegraph.KindInterface:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &TypeMismatchError{Path: path, Want: t.String(), Got: v}
		}
		out := make(map[string]any, sel.Len())
		if err := walkSelections(t, sel, m, out, path); err != nil {
			return nil, err
		}
		return out, nil

	case typegraph.KindUnion:
		// Without __typename there is nothing to narrow by; the payload is
		// passed through as decoded JSON.
		return v, nil

	case typegraph.KindScalar:
		return decodeScalar(t, v, path)

	case typegraph.KindEnum:
		name, ok := v.(string)
		if !ok || !t.HasEnumValue(name) {
			return nil, &TypeMismatchError{Path: path, Want: t.String(), Got: v}
		}
		return typegraph.Enum(name), nil
	}

	return nil, &TypeMismatchError{Path: path, Want: t.String(), Got: v}
}

func walkSelections(t *typegraph.Type, sel query.SelectionSet, m map[string]any, out map[string]any, path string) error {
	for _, s := range sel.Selections() {
		switch node := s.(type) {
		case query.Field:
			def := t.FieldByName(node.Name)
			if def == nil {
				return &TypeMismatchError{Path: childPath(path, node.Name), Want: "a field of " + t.String(), Got: node.Name}
			}
			decoded, err := walk(def.Type, node.Selections, m[node.Name], childPath(path, node.Name))
			if err != nil {
				return err
			}
			out[node.Name] = decoded
		case query.InlineFragment:
			// Fragment fields decode against the fragment's own target type.
			if err := walkSelections(node.On, node.Selections, m, out, path); err != nil {
				return err
			}
		case query.Raw:
			// Unknowable shape; left to the caller.
		}
	}
	return nil
}

func decodeScalar(t *typegraph.Type, v any, path string) (any, error) {
	mismatch := func() (any, error) {
		return nil, &TypeMismatchError{Path: path, Want: t.String(), Got: v}
	}
	switch t.Rep {
	case typegraph.IntRep:
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return mismatch()
		}
		return int(f), nil
	case typegraph.FloatRep:
		f, ok := v.(float64)
		if !ok {
			return mismatch()
		}
		return f, nil
	case typegraph.BooleanRep:
		bv, ok := v.(bool)
		if !ok {
			return mismatch()
		}
		return bv, nil
	case typegraph.IDRep:
		s, ok := v.(string)
		if !ok {
			return mismatch()
		}
		return typegraph.ID(s), nil
	default:
		// String, Opaque, and custom representations: the wire value must
		// already satisfy the representation.
		if t.Rep == nil || !t.Rep.Accepts(v) {
			return mismatch()
		}
		return v, nil
	}
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
