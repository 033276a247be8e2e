package gpuformat

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/schema"
)

// VertexFormatFor returns the wgpu.VertexFormat for a scalar or vector leaf shape. Matrices,
// arrays, and structs have no single vertex format; callers wanting a vertex buffer layout
// for an entire struct should use VertexBufferLayoutFor instead.
func VertexFormatFor(sh *schema.Shape) (wgpu.VertexFormat, error) {
	switch sh.Category() {
	case schema.CatScalar:
		switch sh.ScalarKind() {
		case layout.F32:
			return wgpu.VertexFormatFloat32, nil
		case layout.I32:
			return wgpu.VertexFormatSint32, nil
		case layout.U32:
			return wgpu.VertexFormatUint32, nil
		}
	case schema.CatVector:
		return vectorVertexFormat(sh.VectorLen(), sh.ScalarKind())
	}
	return 0, fmt.Errorf("gpuformat: no vertex format for category %v", sh.Category())
}

func vectorVertexFormat(n int, kind layout.ScalarKind) (wgpu.VertexFormat, error) {
	switch kind {
	case layout.F32:
		switch n {
		case 2:
			return wgpu.VertexFormatFloat32x2, nil
		case 3:
			return wgpu.VertexFormatFloat32x3, nil
		case 4:
			return wgpu.VertexFormatFloat32x4, nil
		}
	case layout.I32:
		switch n {
		case 2:
			return wgpu.VertexFormatSint32x2, nil
		case 3:
			return wgpu.VertexFormatSint32x3, nil
		case 4:
			return wgpu.VertexFormatSint32x4, nil
		}
	case layout.U32:
		switch n {
		case 2:
			return wgpu.VertexFormatUint32x2, nil
		case 3:
			return wgpu.VertexFormatUint32x3, nil
		case 4:
			return wgpu.VertexFormatUint32x4, nil
		}
	}
	return 0, fmt.Errorf("gpuformat: no vertex format for vec%d<%s>", n, kind)
}
