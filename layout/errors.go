package layout

import "fmt"

// LayoutConflictError is returned when a struct field's annotations are self-inconsistent:
// an explicit alignment that is smaller than the field's natural alignment or is not a
// power of two, or an explicit size that is smaller than the field's natural size. It is
// always discovered while deriving metadata, before any byte is read or written.
type LayoutConflictError struct {
	Field  string
	Reason string
}

func (e *LayoutConflictError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("layout: conflict: %s", e.Reason)
	}
	return fmt.Sprintf("layout: conflict on field %q: %s", e.Field, e.Reason)
}

// RuntimeFieldNotLastError is returned when a field annotated size(runtime) is not the
// terminal field of its struct, or when more than one field is so annotated.
type RuntimeFieldNotLastError struct {
	Field string
}

func (e *RuntimeFieldNotLastError) Error() string {
	return fmt.Sprintf("layout: runtime-sized field %q must be the last field of its struct", e.Field)
}

// UniformCompatError is returned when a type fails the uniform-address-space restrictions
// on stored values (most commonly: it contains a runtime-sized array somewhere in its
// field tree). It is discovered before any byte is touched.
type UniformCompatError struct {
	Reason string
}

func (e *UniformCompatError) Error() string {
	return fmt.Sprintf("layout: not compatible with the uniform address space: %s", e.Reason)
}
