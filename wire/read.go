package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/schema"
	"github.com/go-wgsl/hostlayout/vecmat"
)

// Read decodes src starting at byte offset base into v, in the given address space. v must
// be a non-nil pointer. A trailing runtime-sized array field is resized to fit the number of
// elements available (capped by a preceding ArrayLength field's decoded value, if any) before
// being filled.
func Read(src []byte, base uint64, v any, space layout.AddressSpace) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("wire: Read requires a non-nil pointer, got %T", v)
	}
	elem := rv.Elem()
	sh, err := schema.ShapeOf(elem.Type())
	if err != nil {
		return err
	}
	if base > uint64(len(src)) {
		return &BufferTooSmallError{Offset: base, Required: 0, Len: uint64(len(src))}
	}
	return readValue(src, base, elem, sh, space)
}

func remainingFrom(buf []byte, off uint64) uint64 {
	if off > uint64(len(buf)) {
		return 0
	}
	return uint64(len(buf)) - off
}

func readValue(src []byte, off uint64, v reflect.Value, sh *schema.Shape, space layout.AddressSpace) error {
	switch sh.Category() {
	case schema.CatScalar:
		return readScalar(src, off, v, sh.ScalarKind())
	case schema.CatNilableScalar:
		return readNilableScalar(src, off, v, sh.ScalarKind())
	case schema.CatVector:
		return readVector(src, off, v, sh)
	case schema.CatMatrix:
		return readMatrix(src, off, v, sh)
	case schema.CatFixedArray:
		return readFixedArray(src, off, v, sh, space)
	case schema.CatStruct:
		return readStruct(src, off, v, sh.Nested(), space)
	case schema.CatArrayLength:
		return readScalar(src, off, v, layout.U32)
	default:
		return fmt.Errorf("wire: read: unsupported category %v", sh.Category())
	}
}

func readScalar(src []byte, off uint64, v reflect.Value, kind layout.ScalarKind) error {
	if err := checkBound(src, off, 4); err != nil {
		return err
	}
	bits := binary.LittleEndian.Uint32(src[off:])
	switch kind {
	case layout.F32:
		v.SetFloat(float64(math.Float32frombits(bits)))
	case layout.U32:
		v.SetUint(uint64(bits))
	case layout.I32:
		v.SetInt(int64(int32(bits)))
	}
	return nil
}

func readNilableScalar(src []byte, off uint64, v reflect.Value, kind layout.ScalarKind) error {
	if err := checkBound(src, off, 4); err != nil {
		return err
	}
	bits := binary.LittleEndian.Uint32(src[off:])
	if bits == 0 {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	ptr := reflect.New(v.Type().Elem())
	switch kind {
	case layout.U32:
		ptr.Elem().SetUint(uint64(bits))
	case layout.I32:
		ptr.Elem().SetInt(int64(int32(bits)))
	}
	v.Set(ptr)
	return nil
}

func readVector(src []byte, off uint64, v reflect.Value, sh *schema.Shape) error {
	n := sh.VectorLen()
	if err := checkBound(src, off, uint64(n)*4); err != nil {
		return err
	}
	vv := v.Addr().Interface().(vecmat.VectorValue)
	for i := 0; i < n; i++ {
		vv.SetAt(i, binary.LittleEndian.Uint32(src[off+uint64(i)*4:]))
	}
	return nil
}

func readMatrix(src []byte, off uint64, v reflect.Value, sh *schema.Shape) error {
	cols, rows := sh.MatrixCols(), sh.MatrixRows()
	mc := layout.ComposeMatrix(cols, rows)
	mv := v.Addr().Interface().(vecmat.MatrixValue)
	for i := 0; i < cols; i++ {
		colOff := off + uint64(i)*mc.ColStride
		need := uint64(rows) * 4
		if err := checkBound(src, colOff, need); err != nil {
			return err
		}
		col := mv.Column(i)
		for r := 0; r < rows; r++ {
			col.SetAt(r, binary.LittleEndian.Uint32(src[colOff+uint64(r)*4:]))
		}
	}
	return nil
}

func readFixedArray(src []byte, off uint64, v reflect.Value, sh *schema.Shape, space layout.AddressSpace) error {
	n := sh.ArrayLen()
	stride, elemPad, err := sh.ArrayLayout(space)
	if err != nil {
		return err
	}
	elemShape := sh.Elem()
	for i := 0; i < n; i++ {
		elemOff := off + uint64(i)*stride
		if err := checkBound(src, elemOff, stride-elemPad); err != nil {
			return err
		}
		if err := readValue(src, elemOff, v.Index(i), elemShape, space); err != nil {
			return err
		}
	}
	return nil
}

func readStruct(src []byte, off uint64, v reflect.Value, sch *schema.Schema, space layout.AddressSpace) error {
	if space == layout.Uniform && sch.UniformErr != nil {
		return sch.UniformErr
	}

	var lengthCap uint64
	haveCap := false

	for _, f := range sch.Fields {
		fieldOff := off + f.Offset(space)
		fv := v.Field(f.GoIndex)

		if f.IsRuntimeArray {
			stride, elemPad, err := f.Shape.ArrayLayout(space)
			if err != nil {
				return err
			}
			var n uint64
			if haveCap {
				n = lengthCap
				// The declared count may exceed what remains on the wire; cap it so a
				// corrupt or truncated length does not read out of bounds.
				if maxN := remainingFrom(src, fieldOff) / stride; n > maxN {
					n = maxN
				}
			} else {
				n = remainingFrom(src, fieldOff) / stride
			}
			if err := readRuntimeArraySlice(src, fieldOff, n, stride, elemPad, fv, f.Shape.Elem(), space); err != nil {
				return err
			}
			continue
		}

		if err := readValue(src, fieldOff, fv, f.Shape, space); err != nil {
			return err
		}

		if f.IsArrayLength {
			lengthCap = fv.Uint()
			haveCap = true
		}
	}
	return nil
}

func readRuntimeArraySlice(src []byte, off, n, stride, elemPad uint64, fv reflect.Value, elemShape *schema.Shape, space layout.AddressSpace) error {
	newSlice := reflect.MakeSlice(fv.Type(), int(n), int(n))
	for i := uint64(0); i < n; i++ {
		elemOff := off + i*stride
		if err := checkBound(src, elemOff, stride-elemPad); err != nil {
			return err
		}
		if err := readValue(src, elemOff, newSlice.Index(int(i)), elemShape, space); err != nil {
			return err
		}
	}
	fv.Set(newSlice)
	return nil
}
