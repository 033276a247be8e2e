// Package wire implements the value traversal layer: writing a Go value into a byte region
// at a given base offset and address space, and reading one back. It never allocates a
// backing region itself — callers (typically package gpubuffer) own the []byte and decide
// where the base offset falls.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/go-wgsl/hostlayout/align"
	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/schema"
	"github.com/go-wgsl/hostlayout/vecmat"
)

// Write lays v out into dst starting at byte offset base, in the given address space. v must
// not be a pointer. Padding bytes within v's layout are zeroed; bytes in dst outside v's
// layout are left untouched.
func Write(dst []byte, base uint64, v any, space layout.AddressSpace) error {
	rv := reflect.ValueOf(v)
	sh, err := schema.ShapeOf(rv.Type())
	if err != nil {
		return err
	}
	return writeValue(dst, base, rv, sh, space)
}

func checkBound(buf []byte, off, need uint64) error {
	if off+need > uint64(len(buf)) {
		return &BufferTooSmallError{Offset: off, Required: need, Len: uint64(len(buf))}
	}
	return nil
}

func zeroRange(dst []byte, off, n uint64) error {
	if err := checkBound(dst, off, n); err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		dst[off+i] = 0
	}
	return nil
}

func writeValue(dst []byte, off uint64, v reflect.Value, sh *schema.Shape, space layout.AddressSpace) error {
	switch sh.Category() {
	case schema.CatScalar:
		return writeScalar(dst, off, v, sh.ScalarKind())
	case schema.CatNilableScalar:
		return writeNilableScalar(dst, off, v, sh.ScalarKind())
	case schema.CatVector:
		return writeVector(dst, off, v, sh)
	case schema.CatMatrix:
		return writeMatrix(dst, off, v, sh)
	case schema.CatFixedArray:
		return writeFixedArray(dst, off, v, sh, space)
	case schema.CatStruct:
		return writeStruct(dst, off, v, sh.Nested(), space)
	case schema.CatArrayLength:
		return writeScalar(dst, off, v, layout.U32)
	default:
		return fmt.Errorf("wire: write: unsupported category %v", sh.Category())
	}
}

func writeScalar(dst []byte, off uint64, v reflect.Value, kind layout.ScalarKind) error {
	if err := checkBound(dst, off, 4); err != nil {
		return err
	}
	var bits uint32
	switch kind {
	case layout.F32:
		bits = math.Float32bits(float32(v.Float()))
	case layout.U32:
		bits = uint32(v.Uint())
	case layout.I32:
		bits = uint32(int32(v.Int()))
	}
	binary.LittleEndian.PutUint32(dst[off:], bits)
	return nil
}

func writeNilableScalar(dst []byte, off uint64, v reflect.Value, kind layout.ScalarKind) error {
	if err := checkBound(dst, off, 4); err != nil {
		return err
	}
	var bits uint32
	if !v.IsNil() {
		elem := v.Elem()
		switch kind {
		case layout.U32:
			bits = uint32(elem.Uint())
		case layout.I32:
			bits = uint32(int32(elem.Int()))
		}
	}
	binary.LittleEndian.PutUint32(dst[off:], bits)
	return nil
}

func asVectorValue(v reflect.Value) vecmat.VectorValue {
	if v.CanAddr() {
		return v.Addr().Interface().(vecmat.VectorValue)
	}
	cp := reflect.New(v.Type())
	cp.Elem().Set(v)
	return cp.Interface().(vecmat.VectorValue)
}

func asMatrixValue(v reflect.Value) vecmat.MatrixValue {
	if v.CanAddr() {
		return v.Addr().Interface().(vecmat.MatrixValue)
	}
	cp := reflect.New(v.Type())
	cp.Elem().Set(v)
	return cp.Interface().(vecmat.MatrixValue)
}

func writeVector(dst []byte, off uint64, v reflect.Value, sh *schema.Shape) error {
	vv := asVectorValue(v)
	n := sh.VectorLen()
	if err := checkBound(dst, off, uint64(n)*4); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(dst[off+uint64(i)*4:], vv.At(i))
	}
	return nil
}

func writeMatrix(dst []byte, off uint64, v reflect.Value, sh *schema.Shape) error {
	mv := asMatrixValue(v)
	cols, rows := sh.MatrixCols(), sh.MatrixRows()
	mc := layout.ComposeMatrix(cols, rows)
	for i := 0; i < cols; i++ {
		col := mv.Column(i)
		colOff := off + uint64(i)*mc.ColStride
		need := uint64(rows) * 4
		if err := checkBound(dst, colOff, need); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			binary.LittleEndian.PutUint32(dst[colOff+uint64(r)*4:], col.At(r))
		}
		if mc.ColPadding > 0 {
			if err := zeroRange(dst, colOff+need, mc.ColPadding); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFixedArray(dst []byte, off uint64, v reflect.Value, sh *schema.Shape, space layout.AddressSpace) error {
	n := sh.ArrayLen()
	stride, elemPad, err := sh.ArrayLayout(space)
	if err != nil {
		return err
	}
	elemShape := sh.Elem()
	for i := 0; i < n; i++ {
		elemOff := off + uint64(i)*stride
		if err := writeValue(dst, elemOff, v.Index(i), elemShape, space); err != nil {
			return err
		}
		if elemPad > 0 {
			if err := zeroRange(dst, elemOff+(stride-elemPad), elemPad); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRuntimeArraySlice(dst []byte, off uint64, v reflect.Value, elemShape *schema.Shape, space layout.AddressSpace, stride, elemPad uint64) error {
	n := v.Len()
	for i := 0; i < n; i++ {
		elemOff := off + uint64(i)*stride
		if err := writeValue(dst, elemOff, v.Index(i), elemShape, space); err != nil {
			return err
		}
		if elemPad > 0 {
			if err := zeroRange(dst, elemOff+(stride-elemPad), elemPad); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStruct(dst []byte, off uint64, v reflect.Value, sch *schema.Schema, space layout.AddressSpace) error {
	sl := sch.Storage
	if space == layout.Uniform {
		if sch.UniformErr != nil {
			return sch.UniformErr
		}
		sl = sch.Uniform
	}

	for i, f := range sch.Fields {
		fieldOff := off + f.Offset(space)
		fv := v.Field(f.GoIndex)

		switch {
		case f.IsArrayLength:
			arrField, ok := sch.RuntimeArrayField()
			var n uint64
			if ok {
				n = uint64(v.Field(arrField.GoIndex).Len())
			}
			if fv.CanSet() {
				fv.SetUint(n)
			}
			if err := checkBound(dst, fieldOff, 4); err != nil {
				return err
			}
			binary.LittleEndian.PutUint32(dst[fieldOff:], uint32(n))
		case f.IsRuntimeArray:
			stride, elemPad, err := f.Shape.ArrayLayout(space)
			if err != nil {
				return err
			}
			if err := writeRuntimeArraySlice(dst, fieldOff, fv, f.Shape.Elem(), space, stride, elemPad); err != nil {
				return err
			}
			// The static Paddings/EffSizes entries assume a single trailing element; the real
			// tail end depends on how many elements fv actually holds, so the trailing zero-fill
			// up to the struct's own alignment has to be recomputed from fv's live length rather
			// than read off sl.
			n := uint64(fv.Len())
			tailEndRel := f.Offset(space) + n*stride
			structEndRel := align.AlignUp(tailEndRel, sl.Align)
			if structEndRel > tailEndRel {
				if err := zeroRange(dst, off+tailEndRel, structEndRel-tailEndRel); err != nil {
					return err
				}
			}
			continue
		default:
			if err := writeValue(dst, fieldOff, fv, f.Shape, space); err != nil {
				return err
			}
		}

		pad := sl.Paddings[i]
		if pad > 0 {
			effSize := sl.EffSizes[i]
			if err := zeroRange(dst, f.Offset(space)+off+effSize, pad); err != nil {
				return err
			}
		}
	}
	return nil
}
