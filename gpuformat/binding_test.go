package gpuformat

import (
	"reflect"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/vecmat"
)

type cameraUniform struct {
	ViewProj vecmat.Mat4x4
	Position vecmat.Vec3[float32]
}

func TestDescribeBindingUniform(t *testing.T) {
	entry, err := DescribeBinding(reflect.TypeOf(cameraUniform{}), layout.Uniform, 0, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, BindingOptions{})
	if err != nil {
		t.Fatalf("DescribeBinding: %v", err)
	}
	if entry.Binding != 0 {
		t.Fatalf("Binding = %d, want 0", entry.Binding)
	}
	if entry.Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Fatalf("Buffer.Type = %v, want Uniform", entry.Buffer.Type)
	}
	if entry.Buffer.HasDynamicOffset {
		t.Fatal("HasDynamicOffset should default to false")
	}
	if entry.Buffer.MinBindingSize == 0 {
		t.Fatal("MinBindingSize should be nonzero")
	}
}

type particles struct {
	Length    vecmat.ArrayLength
	Positions []vecmat.Vec3[float32] `wgsl:"size=runtime"`
}

func TestDescribeBindingStorageReadOnlyDynamic(t *testing.T) {
	entry, err := DescribeBinding(reflect.TypeOf(particles{}), layout.Storage, 2, wgpu.ShaderStageCompute, BindingOptions{ReadOnly: true, DynamicOffset: true})
	if err != nil {
		t.Fatalf("DescribeBinding: %v", err)
	}
	if entry.Buffer.Type != wgpu.BufferBindingTypeReadOnlyStorage {
		t.Fatalf("Buffer.Type = %v, want ReadOnlyStorage", entry.Buffer.Type)
	}
	if !entry.Buffer.HasDynamicOffset {
		t.Fatal("HasDynamicOffset should be true")
	}
}

func TestDescribeBindingUniformRejectsRuntimeArray(t *testing.T) {
	_, err := DescribeBinding(reflect.TypeOf(particles{}), layout.Uniform, 0, wgpu.ShaderStageCompute, BindingOptions{})
	if _, ok := err.(*layout.UniformCompatError); !ok {
		t.Fatalf("expected *layout.UniformCompatError, got %v (%T)", err, err)
	}
}
