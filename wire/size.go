package wire

import (
	"reflect"

	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/schema"
)

// SizeOf returns the number of bytes Write would produce for v in the given address space.
// For a type with a trailing runtime-sized array this depends on the slice length currently
// held by v, not just its static metadata, matching the "query the value's tail" size rule
// runtime-sized arrays require.
func SizeOf(v any, space layout.AddressSpace) (uint64, error) {
	rv := reflect.ValueOf(v)
	sh, err := schema.ShapeOf(rv.Type())
	if err != nil {
		return 0, err
	}
	return sizeOfValue(rv, sh, space)
}

func sizeOfValue(v reflect.Value, sh *schema.Shape, space layout.AddressSpace) (uint64, error) {
	if sh.Category() != schema.CatStruct {
		l, err := sh.NaturalLayout(space)
		if err != nil {
			return 0, err
		}
		return l.Size, nil
	}

	sch := sh.Nested()
	sl := sch.Storage
	if space == layout.Uniform {
		if sch.UniformErr != nil {
			return 0, sch.UniformErr
		}
		sl = sch.Uniform
	}
	if !sl.Runtime {
		return sl.Size, nil
	}

	arrField, _ := sch.RuntimeArrayField()
	stride, _, err := arrField.Shape.ArrayLayout(space)
	if err != nil {
		return 0, err
	}
	n := uint64(v.Field(arrField.GoIndex).Len())
	return sl.CalculateSizeForLength(n, stride), nil
}
