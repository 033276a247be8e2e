package vecmat

import (
	"math"

	"github.com/go-wgsl/hostlayout/layout"
)

// Number is the set of scalar kinds this module's vector and matrix types can hold. WGSL
// vectors are built from f32, u32, or i32 components.
type Number interface {
	float32 | uint32 | int32
}

// VectorValue is satisfied only by this package's Vec2/Vec3/Vec4 types. Package wire
// dispatches its traversal of a struct field to the vector path when the field's value
// implements this interface, regardless of the field's component scalar kind.
type VectorValue interface {
	isVectorValue()
	Len() int
	Kind() layout.ScalarKind
	At(i int) uint32
	SetAt(i int, bits uint32)
}

func scalarKindOf[T Number]() layout.ScalarKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return layout.F32
	case uint32:
		return layout.U32
	case int32:
		return layout.I32
	default:
		panic("vecmat: unsupported scalar kind")
	}
}

func toBits[T Number](v T) uint32 {
	switch x := any(v).(type) {
	case float32:
		return math.Float32bits(x)
	case uint32:
		return x
	case int32:
		return uint32(x)
	default:
		panic("vecmat: unsupported scalar kind")
	}
}

func fromBits[T Number](bits uint32) T {
	var out T
	switch any(out).(type) {
	case float32:
		return any(math.Float32frombits(bits)).(T)
	case uint32:
		return any(bits).(T)
	case int32:
		return any(int32(bits)).(T)
	default:
		panic("vecmat: unsupported scalar kind")
	}
}

// Vec2 is a WGSL vec2<T>.
type Vec2[T Number] struct {
	X, Y T
}

func (Vec2[T]) isVectorValue()         {}
func (Vec2[T]) Len() int              { return 2 }
func (Vec2[T]) Kind() layout.ScalarKind { return scalarKindOf[T]() }

func (v Vec2[T]) At(i int) uint32 {
	switch i {
	case 0:
		return toBits(v.X)
	case 1:
		return toBits(v.Y)
	default:
		panic("vecmat: Vec2 index out of range")
	}
}

func (v *Vec2[T]) SetAt(i int, bits uint32) {
	switch i {
	case 0:
		v.X = fromBits[T](bits)
	case 1:
		v.Y = fromBits[T](bits)
	default:
		panic("vecmat: Vec2 index out of range")
	}
}

// Vec3 is a WGSL vec3<T>.
type Vec3[T Number] struct {
	X, Y, Z T
}

func (Vec3[T]) isVectorValue()         {}
func (Vec3[T]) Len() int              { return 3 }
func (Vec3[T]) Kind() layout.ScalarKind { return scalarKindOf[T]() }

func (v Vec3[T]) At(i int) uint32 {
	switch i {
	case 0:
		return toBits(v.X)
	case 1:
		return toBits(v.Y)
	case 2:
		return toBits(v.Z)
	default:
		panic("vecmat: Vec3 index out of range")
	}
}

func (v *Vec3[T]) SetAt(i int, bits uint32) {
	switch i {
	case 0:
		v.X = fromBits[T](bits)
	case 1:
		v.Y = fromBits[T](bits)
	case 2:
		v.Z = fromBits[T](bits)
	default:
		panic("vecmat: Vec3 index out of range")
	}
}

// Vec4 is a WGSL vec4<T>.
type Vec4[T Number] struct {
	X, Y, Z, W T
}

func (Vec4[T]) isVectorValue()         {}
func (Vec4[T]) Len() int              { return 4 }
func (Vec4[T]) Kind() layout.ScalarKind { return scalarKindOf[T]() }

func (v Vec4[T]) At(i int) uint32 {
	switch i {
	case 0:
		return toBits(v.X)
	case 1:
		return toBits(v.Y)
	case 2:
		return toBits(v.Z)
	case 3:
		return toBits(v.W)
	default:
		panic("vecmat: Vec4 index out of range")
	}
}

func (v *Vec4[T]) SetAt(i int, bits uint32) {
	switch i {
	case 0:
		v.X = fromBits[T](bits)
	case 1:
		v.Y = fromBits[T](bits)
	case 2:
		v.Z = fromBits[T](bits)
	case 3:
		v.W = fromBits[T](bits)
	default:
		panic("vecmat: Vec4 index out of range")
	}
}
