package gpuformat

import (
	"reflect"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-wgsl/hostlayout/schema"
	"github.com/go-wgsl/hostlayout/vecmat"
)

func shapeOf(t *testing.T, v any) *schema.Shape {
	sh, err := schema.ShapeOf(reflect.TypeOf(v))
	if err != nil {
		t.Fatalf("ShapeOf: %v", err)
	}
	return sh
}

func TestVertexFormatForScalars(t *testing.T) {
	cases := []struct {
		v    any
		want wgpu.VertexFormat
	}{
		{float32(0), wgpu.VertexFormatFloat32},
		{int32(0), wgpu.VertexFormatSint32},
		{uint32(0), wgpu.VertexFormatUint32},
	}
	for _, c := range cases {
		got, err := VertexFormatFor(shapeOf(t, c.v))
		if err != nil {
			t.Fatalf("VertexFormatFor(%T): %v", c.v, err)
		}
		if got != c.want {
			t.Errorf("VertexFormatFor(%T) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestVertexFormatForVectors(t *testing.T) {
	cases := []struct {
		v    any
		want wgpu.VertexFormat
	}{
		{vecmat.Vec2[float32]{}, wgpu.VertexFormatFloat32x2},
		{vecmat.Vec3[float32]{}, wgpu.VertexFormatFloat32x3},
		{vecmat.Vec4[float32]{}, wgpu.VertexFormatFloat32x4},
		{vecmat.Vec3[int32]{}, wgpu.VertexFormatSint32x3},
		{vecmat.Vec4[uint32]{}, wgpu.VertexFormatUint32x4},
	}
	for _, c := range cases {
		got, err := VertexFormatFor(shapeOf(t, c.v))
		if err != nil {
			t.Fatalf("VertexFormatFor(%T): %v", c.v, err)
		}
		if got != c.want {
			t.Errorf("VertexFormatFor(%T) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestVertexFormatForMatrixErrors(t *testing.T) {
	if _, err := VertexFormatFor(shapeOf(t, vecmat.Mat4x4{})); err == nil {
		t.Fatal("expected an error for a matrix shape")
	}
}
