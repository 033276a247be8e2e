// Package layout implements the address-space-aware type metadata and the struct layout
// solver: given a declared field list, it computes each field's offset, the padding that
// follows it, and the struct's own alignment and size, following WGSL's host-shareable
// layout rules for the uniform and storage address spaces.
//
// This package never reflects over a Go value; it operates purely on the Layout values and
// Field descriptions handed to it. Deriving a Field list from a Go struct type is the job of
// package schema, one layer up.
package layout

import "github.com/go-wgsl/hostlayout/align"

// AddressSpace selects which WGSL address-space rules apply to a composition.
type AddressSpace int

const (
	Storage AddressSpace = iota
	Uniform
)

func (s AddressSpace) String() string {
	if s == Uniform {
		return "uniform"
	}
	return "storage"
}

// ScalarKind enumerates the three host-shareable scalar types this engine understands.
type ScalarKind int

const (
	F32 ScalarKind = iota
	U32
	I32
)

func (k ScalarKind) String() string {
	switch k {
	case F32:
		return "f32"
	case U32:
		return "u32"
	case I32:
		return "i32"
	default:
		return "unknown"
	}
}

// Size is 4 for every scalar kind this engine supports. Kept as a function rather than
// a bare constant so a future scalar kind of a different width has one place to change.
func (k ScalarKind) Size() uint64 { return 4 }

// Align of a scalar equals its size; WGSL has no sub-4-byte host-shareable scalars.
func (k ScalarKind) Align() uint64 { return k.Size() }

// Layout is the address-space-agnostic metadata shared by every category of value this
// engine lays out: scalars, vectors, matrices, arrays, and structs.
type Layout struct {
	// Align is the value's natural alignment in bytes.
	Align uint64
	// Size is the value's fixed size in bytes. Meaningless when Runtime is true; use MinSize.
	Size uint64
	// MinSize is the size to use when this value appears as an unknown-length field: equal to
	// Size for fixed-size types, equal to one element's stride for runtime-sized types.
	MinSize uint64
	// Runtime is true if this value's own size is unbounded (a runtime-sized array, or a
	// struct whose last field is runtime-sized).
	Runtime bool
	// UniformMinAlign is true for arrays and structs: when a value of this kind is placed as
	// a struct field and that struct is solved for the uniform address space, the field's
	// effective alignment — and the byte distance to the next field — must be at least 16,
	// regardless of the value's own natural Align.
	UniformMinAlign bool
}

// ScalarLayout returns the metadata for a bare scalar.
func ScalarLayout(kind ScalarKind) Layout {
	sz := kind.Size()
	return Layout{Align: sz, Size: sz, MinSize: sz}
}

// VectorLayout returns the metadata for a vecN of the given scalar kind. WGSL vector
// alignment is the next power of two at or above n * elemAlign; vector size has no internal
// padding, it is exactly n * elemSize.
func VectorLayout(n int, kind ScalarKind) Layout {
	elemAlign := kind.Align()
	elemSize := kind.Size()
	size := uint64(n) * elemSize
	a := align.NextPowerOfTwo(uint64(n) * elemAlign)
	return Layout{Align: a, Size: size, MinSize: size}
}

// MatrixLayout is VectorLayout's counterpart for column-major matrices: WGSL represents a
// CxR matrix as an array of C column vectors, so its alignment is the column vector's
// alignment and its size is C columns each padded up to ColStride.
type MatrixLayout struct {
	Layout
	// ColStride is the byte distance between the start of one column and the next:
	// round_up(column align, column size).
	ColStride uint64
	// ColPadding is the padding appended after each column's live bytes.
	ColPadding uint64
}

// ComposeMatrix returns the metadata for a cols x rows matrix of f32 columns. WGSL only
// allows floating-point matrices, so the column scalar kind is fixed to F32.
func ComposeMatrix(cols, rows int) MatrixLayout {
	col := VectorLayout(rows, F32)
	stride := align.RoundUp(col.Align, col.Size)
	padding := stride - col.Size
	return MatrixLayout{
		Layout: Layout{
			Align: col.Align,
			Size:  uint64(cols) * stride,
			MinSize: uint64(cols) * stride,
		},
		ColStride:  stride,
		ColPadding: padding,
	}
}

// ArrayLayout is the metadata for a fixed-length or runtime-sized array, plus the per-element
// stride the traversal layer needs to step through elements.
type ArrayLayout struct {
	Layout
	// Stride is the byte distance between consecutive elements: round_up(element align,
	// element size), additionally rounded up to a multiple of 16 when composed for the
	// uniform address space.
	Stride uint64
	// ElemPadding is the padding appended after each element's live bytes.
	ElemPadding uint64
}

func elementStride(elem Layout, space AddressSpace) uint64 {
	stride := align.RoundUp(elem.Align, elem.Size)
	if space == Uniform {
		stride = align.RoundUp(16, stride)
	}
	return stride
}

// ComposeFixedArray returns the metadata for a [length]T array of elements with layout elem,
// in the given address space.
func ComposeFixedArray(length int, elem Layout, space AddressSpace) ArrayLayout {
	stride := elementStride(elem, space)
	return ArrayLayout{
		Layout: Layout{
			Align:           elem.Align,
			Size:            uint64(length) * stride,
			MinSize:         uint64(length) * stride,
			UniformMinAlign: true,
		},
		Stride:      stride,
		ElemPadding: stride - elem.Size,
	}
}

// ComposeRuntimeArray returns the metadata for a []T runtime-sized array of elements with
// layout elem. Runtime arrays are only valid in the storage address space; composing one for
// Uniform always fails with UniformCompatError.
func ComposeRuntimeArray(elem Layout, space AddressSpace) (ArrayLayout, error) {
	if space == Uniform {
		return ArrayLayout{}, &UniformCompatError{Reason: "runtime-sized arrays cannot appear in the uniform address space"}
	}
	stride := elementStride(elem, space)
	return ArrayLayout{
		Layout: Layout{
			Align:           elem.Align,
			Size:            0,
			MinSize:         stride,
			Runtime:         true,
			UniformMinAlign: true,
		},
		Stride:      stride,
		ElemPadding: stride - elem.Size,
	}, nil
}
