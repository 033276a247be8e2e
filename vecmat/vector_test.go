package vecmat

import (
	"math"
	"testing"

	"github.com/go-wgsl/hostlayout/layout"
)

func TestVec3FloatRoundTrip(t *testing.T) {
	v := Vec3[float32]{X: 1, Y: 2, Z: 3}
	if n, kind := v.Len(), v.Kind(); n != 3 || kind != layout.F32 {
		t.Fatalf("Len/Kind = (%d, %v), want (3, f32)", n, kind)
	}

	var out Vec3[float32]
	for i := 0; i < 3; i++ {
		out.SetAt(i, v.At(i))
	}
	if out != v {
		t.Fatalf("round trip = %+v, want %+v", out, v)
	}
}

func TestVec2IntRoundTrip(t *testing.T) {
	v := Vec2[int32]{X: -1, Y: 42}
	var out Vec2[int32]
	out.SetAt(0, v.At(0))
	out.SetAt(1, v.At(1))
	if out != v {
		t.Fatalf("round trip = %+v, want %+v", out, v)
	}
}

func TestVec4UintAllOnes(t *testing.T) {
	// Matches the dynamic-uniform-offset scenario: reading an all-0x01 backing yields
	// component value 0x01010101 in every lane.
	var v Vec4[uint32]
	for i := 0; i < 4; i++ {
		v.SetAt(i, 0x01010101)
	}
	for i := 0; i < 4; i++ {
		if v.At(i) != 0x01010101 {
			t.Errorf("At(%d) = %#x, want 0x01010101", i, v.At(i))
		}
	}
}

func TestVectorValueInterfaceSatisfied(t *testing.T) {
	var _ VectorValue = &Vec2[float32]{}
	var _ VectorValue = &Vec3[uint32]{}
	var _ VectorValue = &Vec4[int32]{}
}

func TestFloat32BitPattern(t *testing.T) {
	v := Vec2[float32]{X: 1.0}
	if v.At(0) != math.Float32bits(1.0) {
		t.Errorf("At(0) = %#x, want %#x", v.At(0), math.Float32bits(1.0))
	}
}
