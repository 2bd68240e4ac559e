package query

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pauldx/quiz/typegraph"
)

// writeValue renders a host value as a GraphQL literal. Strings are quoted
// with full escaping, enum members render bare, nil renders as null.
func writeValue(b *strings.Builder, v any) error {
	switch x := v.(type) {
	case nil:
		b.WriteString("null")
	case typegraph.Enum:
		b.WriteString(string(x))
	case typegraph.ID:
		b.WriteString(strconv.Quote(string(x)))
	case string:
		b.WriteString(strconv.Quote(x))
	case bool:
		b.WriteString(strconv.FormatBool(x))
	case int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int8:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int16:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int32:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		b.WriteString(strconv.FormatInt(x, 10))
	case uint:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint16:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		b.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		b.WriteString(strconv.FormatUint(x, 10))
	case float32:
		b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	case []Argument:
		// Ordered input object literal.
		b.WriteString("{")
		for i, arg := range x {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name)
			b.WriteString(": ")
			if err := writeValue(b, arg.Value); err != nil {
				return err
			}
		}
		b.WriteString("}")
	case map[string]any:
		// Input object literal; keys sorted for deterministic output.
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("{")
		for i, name := range names {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(name)
			b.WriteString(": ")
			if err := writeValue(b, x[name]); err != nil {
				return err
			}
		}
		b.WriteString("}")
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			b.WriteString("[")
			for i := 0; i < rv.Len(); i++ {
				if i > 0 {
					b.WriteString(", ")
				}
				if err := writeValue(b, rv.Index(i).Interface()); err != nil {
					return err
				}
			}
			b.WriteString("]")
			return nil
		}
		return fmt.Errorf("query: cannot serialize %T as a GraphQL literal", v)
	}
	return nil
}
