package schema

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-wgsl/hostlayout/layout"
)

// Field is one struct field's declared shape plus its solved placement, for both the storage
// and (if compatible) uniform address spaces.
type Field struct {
	Name    string
	GoIndex int
	Shape   *Shape

	StorageOffset  uint64
	StorageEffSize uint64
	UniformOffset  uint64
	UniformEffSize uint64

	IsArrayLength  bool
	IsRuntimeArray bool
}

// Offset returns this field's byte offset within its struct for the given address space.
func (f Field) Offset(space layout.AddressSpace) uint64 {
	if space == layout.Uniform {
		return f.UniformOffset
	}
	return f.StorageOffset
}

// EffSize returns this field's effective occupied size within its struct for the given
// address space (after any explicit size override).
func (f Field) EffSize(space layout.AddressSpace) uint64 {
	if space == layout.Uniform {
		return f.UniformEffSize
	}
	return f.StorageEffSize
}

// Schema is the cached, reflection-derived declaration for one Go struct type: its fields in
// declaration order plus the solved struct layout for each address space.
type Schema struct {
	GoType  reflect.Type
	Fields  []Field
	Storage *layout.StructLayout
	Uniform *layout.StructLayout
	// UniformErr is non-nil if this type cannot be used in the uniform address space (most
	// commonly because it contains a runtime-sized array).
	UniformErr error

	arrayLengthField  int // index into Fields, -1 if none
	runtimeArrayField int // index into Fields, -1 if none
}

var cache sync.Map // reflect.Type -> *Schema or error

type cacheEntry struct {
	schema *Schema
	err    error
}

// Of derives (or returns the cached derivation of) the schema for a Go struct type. t must be
// a struct type, not a pointer to one.
func Of(t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", t)
	}
	if v, ok := cache.Load(t); ok {
		e := v.(cacheEntry)
		return e.schema, e.err
	}

	s, err := derive(t)
	cache.Store(t, cacheEntry{schema: s, err: err})
	return s, err
}

func derive(t reflect.Type) (*Schema, error) {
	s := &Schema{
		GoType:            t,
		arrayLengthField:  -1,
		runtimeArrayField: -1,
	}

	n := t.NumField()
	storageFields := make([]layout.Field, 0, n)

	for i := 0; i < n; i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			return nil, fmt.Errorf("schema: field %s.%s is unexported", t, sf.Name)
		}

		tg, err := parseTag(sf.Tag.Get("wgsl"))
		if err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", t, sf.Name, err)
		}

		if tg.runtime && i != n-1 {
			return nil, fmt.Errorf("schema: %s.%s: %w", t, sf.Name, &layout.RuntimeFieldNotLastError{Field: sf.Name})
		}
		runtimeAllowed := tg.runtime && i == n-1
		sh, err := deriveShape(sf.Type, runtimeAllowed)
		if err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", t, sf.Name, err)
		}
		if tg.runtime && sh.cat != CatRuntimeArray {
			return nil, fmt.Errorf("schema: %s.%s: size=runtime requires a slice field", t, sf.Name)
		}
		if sh.cat == CatRuntimeArray && !tg.runtime {
			return nil, &layout.RuntimeFieldNotLastError{Field: sf.Name}
		}

		natural, err := sh.naturalLayout(layout.Storage)
		if err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", t, sf.Name, err)
		}

		f := layout.Field{Name: sf.Name, Layout: natural}
		if tg.hasAlign {
			a := tg.align
			f.UserAlign = &a
		}
		if tg.hasSize {
			sz := tg.size
			f.UserSize = &sz
		}
		storageFields = append(storageFields, f)

		field := Field{Name: sf.Name, GoIndex: i, Shape: sh}
		if sh.cat == CatArrayLength {
			if s.arrayLengthField != -1 {
				return nil, fmt.Errorf("schema: %s has more than one ArrayLength field", t)
			}
			s.arrayLengthField = i
			field.IsArrayLength = true
		}
		if sh.cat == CatRuntimeArray {
			s.runtimeArrayField = i
			field.IsRuntimeArray = true
		}
		s.Fields = append(s.Fields, field)
	}

	storageLayout, err := layout.SolveStruct(storageFields, layout.Storage)
	if err != nil {
		return nil, err
	}
	s.Storage = storageLayout
	for i := range s.Fields {
		s.Fields[i].StorageOffset = storageLayout.Offsets[i]
		s.Fields[i].StorageEffSize = storageLayout.EffSizes[i]
	}

	if s.arrayLengthField != -1 && s.runtimeArrayField == -1 {
		return nil, fmt.Errorf("schema: %s declares ArrayLength without a trailing runtime array", t)
	}

	uniformFields := make([]layout.Field, n)
	uniformErr := error(nil)
	for i := 0; i < n; i++ {
		sh := s.Fields[i].Shape
		natural, err := sh.naturalLayout(layout.Uniform)
		if err != nil {
			uniformErr = err
			break
		}
		uniformFields[i] = layout.Field{Name: storageFields[i].Name, Layout: natural, UserAlign: storageFields[i].UserAlign, UserSize: storageFields[i].UserSize}
	}
	if uniformErr == nil {
		uniformLayout, err := layout.SolveStruct(uniformFields, layout.Uniform)
		if err != nil {
			uniformErr = err
		} else {
			s.Uniform = uniformLayout
			for i := range s.Fields {
				s.Fields[i].UniformOffset = uniformLayout.Offsets[i]
				s.Fields[i].UniformEffSize = uniformLayout.EffSizes[i]
			}
		}
	}
	s.UniformErr = uniformErr

	return s, nil
}

// ArrayLengthField returns the field holding the ArrayLength marker, and whether one exists.
func (s *Schema) ArrayLengthField() (Field, bool) {
	if s.arrayLengthField == -1 {
		return Field{}, false
	}
	return s.Fields[s.arrayLengthField], true
}

// RuntimeArrayField returns the trailing runtime-sized array field, and whether one exists.
func (s *Schema) RuntimeArrayField() (Field, bool) {
	if s.runtimeArrayField == -1 {
		return Field{}, false
	}
	return s.Fields[s.runtimeArrayField], true
}
