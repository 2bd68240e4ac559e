package typegraph

import "math"

// ScalarRep describes the host-side representation of a scalar type: a
// stable name for error messages and a predicate over host values.
type ScalarRep struct {
	Name    string
	Accepts func(v any) bool
}

// Built-in scalar representations. IntRep enforces the protocol's 32-bit
// integer limit.
var (
	BooleanRep = &ScalarRep{Name: "Boolean", Accepts: func(v any) bool {
		_, ok := v.(bool)
		return ok
	}}

	StringRep = &ScalarRep{Name: "String", Accepts: func(v any) bool {
		_, ok := v.(string)
		return ok
	}}

	IDRep = &ScalarRep{Name: "ID", Accepts: func(v any) bool {
		switch v.(type) {
		case ID, string:
			return true
		}
		if i, ok := asInt64(v); ok {
			return i >= math.MinInt32 && i <= math.MaxInt32
		}
		return false
	}}

	IntRep = &ScalarRep{Name: "Int", Accepts: func(v any) bool {
		i, ok := asInt64(v)
		return ok && i >= math.MinInt32 && i <= math.MaxInt32
	}}

	FloatRep = &ScalarRep{Name: "Float", Accepts: func(v any) bool {
		switch v.(type) {
		case float32, float64:
			return true
		}
		_, ok := asInt64(v)
		return ok
	}}

	// OpaqueRep is the fallback for custom scalars without an override:
	// a generic string-like value.
	OpaqueRep = &ScalarRep{Name: "Opaque", Accepts: func(v any) bool {
		switch v.(type) {
		case string, ID:
			return true
		}
		return false
	}}
)

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}
