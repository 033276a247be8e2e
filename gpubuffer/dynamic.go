package gpubuffer

import (
	"reflect"

	"github.com/go-wgsl/hostlayout/align"
	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/wire"
)

const defaultDynamicAlignment = 256

// DynamicStorageBuffer wraps a byte backing with an append cursor for concatenating
// independently-aligned storage values. Each write advances the cursor to the next
// multiple of the buffer's alignment before writing, so callers can later bind any
// recorded offset as a dynamic storage buffer offset.
type DynamicStorageBuffer struct {
	backing   []byte
	alignment uint64
	offset    uint64
}

// NewDynamicStorageBuffer wraps backing with the WebGPU default dynamic alignment of 256.
func NewDynamicStorageBuffer(backing []byte) *DynamicStorageBuffer {
	b, err := NewDynamicStorageBufferWithAlignment(backing, defaultDynamicAlignment)
	if err != nil {
		panic(err)
	}
	return b
}

// NewDynamicStorageBufferWithAlignment wraps backing with the given alignment, which must
// be a power of two and at least 32 (the minimum dynamic offset alignment the WebGPU spec
// imposes for storage buffers).
func NewDynamicStorageBufferWithAlignment(backing []byte, alignment uint64) (*DynamicStorageBuffer, error) {
	if alignment < 32 {
		return nil, &InvalidAlignmentError{Alignment: alignment, Reason: "must be at least 32"}
	}
	if !align.IsPowerOfTwo(alignment) {
		return nil, &InvalidAlignmentError{Alignment: alignment, Reason: "must be a power of two"}
	}
	return &DynamicStorageBuffer{backing: backing, alignment: alignment}, nil
}

// Backing returns the wrapped byte slice.
func (b *DynamicStorageBuffer) Backing() []byte { return b.backing }

// Alignment returns the buffer's dynamic-offset alignment.
func (b *DynamicStorageBuffer) Alignment() uint64 { return b.alignment }

// Offset returns the buffer's current append cursor.
func (b *DynamicStorageBuffer) Offset() uint64 { return b.offset }

// SetOffset seeks the cursor to an explicit, already-aligned position for a subsequent
// Read or Create.
func (b *DynamicStorageBuffer) SetOffset(offset uint64) error {
	if offset%b.alignment != 0 {
		return &UnalignedOffsetError{Offset: offset, Alignment: b.alignment}
	}
	b.offset = offset
	return nil
}

// Write advances the cursor to the next alignment boundary, writes v there, advances the
// cursor past the written value, and returns the offset v was written at.
func (b *DynamicStorageBuffer) Write(v any) (uint64, error) {
	offset := align.AlignUp(b.offset, b.alignment)
	if err := wire.Write(b.backing, offset, v, layout.Storage); err != nil {
		return 0, err
	}
	size, err := wire.SizeOf(v, layout.Storage)
	if err != nil {
		return 0, err
	}
	b.offset = offset + align.RoundUp(b.alignment, size)
	return offset, nil
}

// Read deserializes the backing at the current cursor into v, then advances the cursor
// past the decoded value.
func (b *DynamicStorageBuffer) Read(v any) error {
	if err := wire.Read(b.backing, b.offset, v, layout.Storage); err != nil {
		return err
	}
	size, err := wire.SizeOf(reflect.ValueOf(v).Elem().Interface(), layout.Storage)
	if err != nil {
		return err
	}
	b.offset += align.RoundUp(b.alignment, size)
	return nil
}

// CreateDynamicStorage decodes a fresh value of T from the backing at the buffer's current
// cursor, then advances the cursor past it.
func CreateDynamicStorage[T any](b *DynamicStorageBuffer) (T, error) {
	var v T
	err := b.Read(&v)
	return v, err
}

// DynamicUniformBuffer is a DynamicStorageBuffer whose contained values are additionally
// checked for uniform compatibility on every write, read, and create.
type DynamicUniformBuffer struct {
	inner DynamicStorageBuffer
}

// NewDynamicUniformBuffer wraps backing with the WebGPU default dynamic alignment of 256.
func NewDynamicUniformBuffer(backing []byte) *DynamicUniformBuffer {
	b, err := NewDynamicUniformBufferWithAlignment(backing, defaultDynamicAlignment)
	if err != nil {
		panic(err)
	}
	return b
}

// NewDynamicUniformBufferWithAlignment wraps backing with the given alignment, which must
// be a power of two, a multiple of 16, and at least 32.
func NewDynamicUniformBufferWithAlignment(backing []byte, alignment uint64) (*DynamicUniformBuffer, error) {
	if alignment%16 != 0 {
		return nil, &InvalidAlignmentError{Alignment: alignment, Reason: "must be a multiple of 16"}
	}
	inner, err := NewDynamicStorageBufferWithAlignment(backing, alignment)
	if err != nil {
		return nil, err
	}
	return &DynamicUniformBuffer{inner: *inner}, nil
}

// Backing returns the wrapped byte slice.
func (b *DynamicUniformBuffer) Backing() []byte { return b.inner.backing }

// Alignment returns the buffer's dynamic-offset alignment.
func (b *DynamicUniformBuffer) Alignment() uint64 { return b.inner.alignment }

// Offset returns the buffer's current append cursor.
func (b *DynamicUniformBuffer) Offset() uint64 { return b.inner.offset }

// SetOffset seeks the cursor to an explicit, already-aligned position.
func (b *DynamicUniformBuffer) SetOffset(offset uint64) error {
	return b.inner.SetOffset(offset)
}

// Write advances the cursor to the next alignment boundary, checks v's type for uniform
// compatibility, writes v there, and returns the offset written.
func (b *DynamicUniformBuffer) Write(v any) (uint64, error) {
	offset := align.AlignUp(b.inner.offset, b.inner.alignment)
	if err := wire.Write(b.inner.backing, offset, v, layout.Uniform); err != nil {
		return 0, err
	}
	size, err := wire.SizeOf(v, layout.Uniform)
	if err != nil {
		return 0, err
	}
	b.inner.offset = offset + align.RoundUp(b.inner.alignment, size)
	return offset, nil
}

// Read deserializes the backing at the current cursor into v, checking v's type for
// uniform compatibility, then advances the cursor past the decoded value.
func (b *DynamicUniformBuffer) Read(v any) error {
	if err := wire.Read(b.inner.backing, b.inner.offset, v, layout.Uniform); err != nil {
		return err
	}
	size, err := wire.SizeOf(reflect.ValueOf(v).Elem().Interface(), layout.Uniform)
	if err != nil {
		return err
	}
	b.inner.offset += align.RoundUp(b.inner.alignment, size)
	return nil
}

// CreateDynamicUniform decodes a fresh value of T from the backing at the buffer's current
// cursor, checking T for uniform compatibility, then advances the cursor past it.
func CreateDynamicUniform[T any](b *DynamicUniformBuffer) (T, error) {
	var v T
	err := b.Read(&v)
	return v, err
}
