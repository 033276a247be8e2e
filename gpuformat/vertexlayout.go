package gpuformat

import (
	"fmt"
	"reflect"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-wgsl/hostlayout/schema"
)

// VertexBufferLayoutFor derives a wgpu.VertexBufferLayout from a Go struct type's schema,
// with per-field offsets taken directly from the struct's storage-space layout solve.
//
// locations assigns a @location index to each field in declaration order; pass nil to
// default to the field's declaration index (0, 1, 2, ...).
func VertexBufferLayoutFor(t reflect.Type, locations []uint32) (wgpu.VertexBufferLayout, error) {
	sch, err := schema.Of(t)
	if err != nil {
		return wgpu.VertexBufferLayout{}, err
	}
	if locations != nil && len(locations) != len(sch.Fields) {
		return wgpu.VertexBufferLayout{}, fmt.Errorf("gpuformat: %d locations for %d fields", len(locations), len(sch.Fields))
	}

	attrs := make([]wgpu.VertexAttribute, len(sch.Fields))
	for i, f := range sch.Fields {
		format, err := VertexFormatFor(f.Shape)
		if err != nil {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("gpuformat: field %s: %w", f.Name, err)
		}
		loc := uint32(i)
		if locations != nil {
			loc = locations[i]
		}
		attrs[i] = wgpu.VertexAttribute{
			Format:         format,
			Offset:         f.StorageOffset,
			ShaderLocation: loc,
		}
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: sch.Storage.Size,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}, nil
}
