package schema

import (
	"fmt"
	"reflect"

	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/vecmat"
)

// Category classifies the shape of a Go type the way package wire needs to traverse it.
type Category int

const (
	CatScalar Category = iota
	CatNilableScalar
	CatVector
	CatMatrix
	CatFixedArray
	CatRuntimeArray
	CatStruct
	CatArrayLength
)

// Shape is the space-agnostic description of one Go type's wire layout: enough for package
// wire to decide, for any field or array element, how to read or write it without reflecting
// on the type a second time.
type Shape struct {
	cat Category

	scalarKind layout.ScalarKind // CatScalar, CatNilableScalar, CatVector leaf component kind
	vecN       int               // CatVector
	matCols    int               // CatMatrix
	matRows    int               // CatMatrix

	arrayLen int    // CatFixedArray element count
	elem     *Shape // CatFixedArray, CatRuntimeArray

	nested *Schema // CatStruct
}

func (s *Shape) Category() Category          { return s.cat }
func (s *Shape) ScalarKind() layout.ScalarKind { return s.scalarKind }
func (s *Shape) VectorLen() int               { return s.vecN }
func (s *Shape) MatrixCols() int              { return s.matCols }
func (s *Shape) MatrixRows() int              { return s.matRows }
func (s *Shape) ArrayLen() int                { return s.arrayLen }
func (s *Shape) Elem() *Shape                 { return s.elem }
func (s *Shape) Nested() *Schema              { return s.nested }

// ShapeOf derives the Shape for any Go type a caller might hand to package wire directly —
// a struct, or a bare scalar/vector/matrix/fixed-array value. A top-level runtime-sized
// slice is not permitted; only a struct's last field may be runtime-sized.
func ShapeOf(t reflect.Type) (*Shape, error) {
	return deriveShape(t, false)
}

var (
	vectorValueType = reflect.TypeOf((*vecmat.VectorValue)(nil)).Elem()
	matrixValueType = reflect.TypeOf((*vecmat.MatrixValue)(nil)).Elem()
	arrayLengthType = reflect.TypeOf(vecmat.ArrayLength(0))
)

// deriveShape inspects a Go type and returns its Shape. runtimeAllowed permits a trailing
// slice to be treated as a runtime-sized array; it is only true for a struct's last field
// when that field's tag says size=runtime.
func deriveShape(t reflect.Type, runtimeAllowed bool) (*Shape, error) {
	if t == arrayLengthType {
		return &Shape{cat: CatArrayLength, scalarKind: layout.U32}, nil
	}

	ptr := reflect.PointerTo(t)
	switch {
	case ptr.Implements(matrixValueType):
		m := reflect.New(t).Interface().(vecmat.MatrixValue)
		return &Shape{cat: CatMatrix, matCols: m.Cols(), matRows: m.Rows()}, nil
	case ptr.Implements(vectorValueType):
		v := reflect.New(t).Interface().(vecmat.VectorValue)
		return &Shape{cat: CatVector, vecN: v.Len(), scalarKind: v.Kind()}, nil
	}

	switch t.Kind() {
	case reflect.Float32:
		return &Shape{cat: CatScalar, scalarKind: layout.F32}, nil
	case reflect.Uint32:
		return &Shape{cat: CatScalar, scalarKind: layout.U32}, nil
	case reflect.Int32:
		return &Shape{cat: CatScalar, scalarKind: layout.I32}, nil
	case reflect.Pointer:
		switch t.Elem().Kind() {
		case reflect.Uint32:
			return &Shape{cat: CatNilableScalar, scalarKind: layout.U32}, nil
		case reflect.Int32:
			return &Shape{cat: CatNilableScalar, scalarKind: layout.I32}, nil
		default:
			return nil, fmt.Errorf("schema: unsupported pointer element type %s", t.Elem())
		}
	case reflect.Array:
		elem, err := deriveShape(t.Elem(), false)
		if err != nil {
			return nil, err
		}
		return &Shape{cat: CatFixedArray, arrayLen: t.Len(), elem: elem}, nil
	case reflect.Slice:
		if !runtimeAllowed {
			return nil, fmt.Errorf("schema: slice field %s is only allowed as a struct's last field, tagged wgsl:\"size=runtime\"", t)
		}
		elem, err := deriveShape(t.Elem(), false)
		if err != nil {
			return nil, err
		}
		return &Shape{cat: CatRuntimeArray, elem: elem}, nil
	case reflect.Struct:
		nested, err := Of(t)
		if err != nil {
			return nil, err
		}
		return &Shape{cat: CatStruct, nested: nested}, nil
	default:
		return nil, fmt.Errorf("schema: unsupported field type %s", t)
	}
}

// naturalLayout returns this shape's Layout in the given address space (array strides and
// nested struct layouts differ between storage and uniform): the metadata used both to
// compose the containing struct's field list and, for arrays, to compute element stride.
func (s *Shape) naturalLayout(space layout.AddressSpace) (layout.Layout, error) {
	switch s.cat {
	case CatArrayLength:
		return layout.ScalarLayout(layout.U32), nil
	case CatScalar, CatNilableScalar:
		return layout.ScalarLayout(s.scalarKind), nil
	case CatVector:
		return layout.VectorLayout(s.vecN, s.scalarKind), nil
	case CatMatrix:
		return layout.ComposeMatrix(s.matCols, s.matRows).Layout, nil
	case CatFixedArray:
		elemLayout, err := s.elem.naturalLayout(space)
		if err != nil {
			return layout.Layout{}, err
		}
		return layout.ComposeFixedArray(s.arrayLen, elemLayout, space).Layout, nil
	case CatRuntimeArray:
		elemLayout, err := s.elem.naturalLayout(space)
		if err != nil {
			return layout.Layout{}, err
		}
		arr, err := layout.ComposeRuntimeArray(elemLayout, space)
		if err != nil {
			return layout.Layout{}, err
		}
		return arr.Layout, nil
	case CatStruct:
		if space == layout.Uniform {
			if s.nested.UniformErr != nil {
				return layout.Layout{}, s.nested.UniformErr
			}
			return s.nested.Uniform.Layout, nil
		}
		return s.nested.Storage.Layout, nil
	default:
		return layout.Layout{}, fmt.Errorf("schema: unknown category %d", s.cat)
	}
}

// NaturalLayout exposes this shape's address-space layout (size and alignment) to callers
// outside the package, such as gpubuffer computing how far a dynamic buffer's cursor must
// advance after writing a bare (non-struct) value.
func (s *Shape) NaturalLayout(space layout.AddressSpace) (layout.Layout, error) {
	return s.naturalLayout(space)
}

// ArrayLayout returns the per-element stride and per-element trailing padding for a fixed or
// runtime array shape in the given address space; used by package wire to step through array
// elements during traversal.
func (s *Shape) ArrayLayout(space layout.AddressSpace) (stride, elemPadding uint64, err error) {
	elemLayout, err := s.elem.naturalLayout(space)
	if err != nil {
		return 0, 0, err
	}
	switch s.cat {
	case CatFixedArray:
		a := layout.ComposeFixedArray(s.arrayLen, elemLayout, space)
		return a.Stride, a.ElemPadding, nil
	case CatRuntimeArray:
		a, err := layout.ComposeRuntimeArray(elemLayout, space)
		if err != nil {
			return 0, 0, err
		}
		return a.Stride, a.ElemPadding, nil
	default:
		return 0, 0, fmt.Errorf("schema: ArrayLayout called on non-array category %d", s.cat)
	}
}
