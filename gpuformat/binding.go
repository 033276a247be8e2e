package gpuformat

import (
	"reflect"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/schema"
)

// BindingOptions controls the parts of a buffer binding description that are not derivable
// from a Go type's schema alone: whether a storage binding is read-only, and whether the
// binding uses a dynamic offset (as with gpubuffer's dynamic buffer wrappers).
type BindingOptions struct {
	ReadOnly      bool
	DynamicOffset bool
}

// DescribeBinding produces the wgpu.BindGroupLayoutEntry for binding a value of type t at
// the given binding index and shader-stage visibility, in the given address space. The
// binding type and minimum size come from this engine's own schema and layout solver rather
// than a parsed WGSL address-space qualifier and type name.
func DescribeBinding(t reflect.Type, space layout.AddressSpace, binding uint32, visibility wgpu.ShaderStage, opts BindingOptions) (wgpu.BindGroupLayoutEntry, error) {
	minSize, err := minBindingSize(t, space)
	if err != nil {
		return wgpu.BindGroupLayoutEntry{}, err
	}

	entry := wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
	}
	switch {
	case space == layout.Uniform:
		entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	case opts.ReadOnly:
		entry.Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage
	default:
		entry.Buffer.Type = wgpu.BufferBindingTypeStorage
	}
	entry.Buffer.HasDynamicOffset = opts.DynamicOffset
	entry.Buffer.MinBindingSize = minSize
	return entry, nil
}

func minBindingSize(t reflect.Type, space layout.AddressSpace) (uint64, error) {
	sch, err := schema.Of(t)
	if err != nil {
		return 0, err
	}
	if space == layout.Uniform {
		if sch.UniformErr != nil {
			return 0, sch.UniformErr
		}
		return sch.Uniform.MinSize, nil
	}
	return sch.Storage.MinSize, nil
}
