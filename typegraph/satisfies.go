package typegraph

import "reflect"

// Satisfies reports whether the host value v is acceptable for the type the
// descriptor denotes. It is the membership test driving argument validation:
// Nullable accepts nil or its inner type, List accepts any slice or array
// whose elements all satisfy the element type, Union accepts a value
// satisfying at least one member.
func (t *Type) Satisfies(v any) bool {
	switch t.Kind {
	case KindNullable:
		return v == nil || t.Elem.Satisfies(v)
	case KindList:
		if v == nil {
			return false
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if !t.Elem.Satisfies(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case KindUnion:
		for _, m := range t.Members {
			if m.Satisfies(v) {
				return true
			}
		}
		return false
	case KindScalar:
		return t.Rep != nil && t.Rep.Accepts(v)
	case KindEnum:
		m, ok := v.(Enum)
		return ok && t.enumIndex[string(m)] != nil
	case KindInputObject:
		fields, ok := v.(map[string]any)
		if !ok {
			return false
		}
		for name := range fields {
			if t.inputIndex[name] == nil {
				return false
			}
		}
		for _, in := range t.InputFields {
			fv, supplied := fields[in.Name]
			if !supplied {
				if in.Type.Kind != KindNullable {
					return false
				}
				continue
			}
			if !in.Type.Satisfies(fv) {
				return false
			}
		}
		return true
	default:
		// Object, Interface: host values for output types never appear as
		// arguments.
		return false
	}
}
