package gpuformat

import (
	"reflect"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-wgsl/hostlayout/vecmat"
)

type meshVertex struct {
	Position vecmat.Vec3[float32]
	Normal   vecmat.Vec3[float32]
	UV       vecmat.Vec2[float32]
}

func TestVertexBufferLayoutForDefaultLocations(t *testing.T) {
	l, err := VertexBufferLayoutFor(reflect.TypeOf(meshVertex{}), nil)
	if err != nil {
		t.Fatalf("VertexBufferLayoutFor: %v", err)
	}
	if len(l.Attributes) != 3 {
		t.Fatalf("len(Attributes) = %d, want 3", len(l.Attributes))
	}
	if l.StepMode != wgpu.VertexStepModeVertex {
		t.Fatalf("StepMode = %v, want Vertex", l.StepMode)
	}
	for i, want := range []uint32{0, 1, 2} {
		if l.Attributes[i].ShaderLocation != want {
			t.Errorf("Attributes[%d].ShaderLocation = %d, want %d", i, l.Attributes[i].ShaderLocation, want)
		}
	}
	// Position (vec3<f32>) is offset 0; Normal starts at the struct's solved offset for
	// its field, which accounts for vec3's 16-byte alignment, not a naive running sum of
	// unpadded sizes.
	if l.Attributes[0].Offset != 0 {
		t.Fatalf("Position offset = %d, want 0", l.Attributes[0].Offset)
	}
	if l.Attributes[0].Format != wgpu.VertexFormatFloat32x3 {
		t.Fatalf("Position format = %v, want Float32x3", l.Attributes[0].Format)
	}
}

func TestVertexBufferLayoutForExplicitLocations(t *testing.T) {
	l, err := VertexBufferLayoutFor(reflect.TypeOf(meshVertex{}), []uint32{3, 4, 5})
	if err != nil {
		t.Fatalf("VertexBufferLayoutFor: %v", err)
	}
	for i, want := range []uint32{3, 4, 5} {
		if l.Attributes[i].ShaderLocation != want {
			t.Errorf("Attributes[%d].ShaderLocation = %d, want %d", i, l.Attributes[i].ShaderLocation, want)
		}
	}
}

func TestVertexBufferLayoutForRejectsMismatchedLocationCount(t *testing.T) {
	if _, err := VertexBufferLayoutFor(reflect.TypeOf(meshVertex{}), []uint32{0, 1}); err == nil {
		t.Fatal("expected an error for a locations slice shorter than the field count")
	}
}
