package decode

import "fmt"

// NullResultError indicates a null (or absent) payload value where the
// selection's type does not permit one.
type NullResultError struct {
	Path string
}

func (e *NullResultError) Error() string {
	if e.Path == "" {
		return "decode: unexpected null result"
	}
	return fmt.Sprintf("decode: unexpected null at %s", e.Path)
}

// TypeMismatchError indicates a payload value whose JSON shape disagrees
// with the selection's type.
type TypeMismatchError struct {
	Path string
	Want string
	Got  any
}

func (e *TypeMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode: cannot decode %v (%T) as %s", e.Got, e.Got, e.Want)
	}
	return fmt.Sprintf("decode: cannot decode %v (%T) as %s at %s", e.Got, e.Got, e.Want, e.Path)
}
