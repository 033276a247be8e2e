package gpubuffer

import (
	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/wire"
)

// StorageBuffer wraps a byte backing for storage-address-space access at a fixed base
// offset of zero. Runtime-sized arrays are permitted.
type StorageBuffer struct {
	backing []byte
}

// NewStorageBuffer wraps backing for storage-space reads and writes.
func NewStorageBuffer(backing []byte) *StorageBuffer {
	return &StorageBuffer{backing: backing}
}

// Backing returns the wrapped byte slice.
func (b *StorageBuffer) Backing() []byte { return b.backing }

// Write serializes v into the backing at offset 0.
func (b *StorageBuffer) Write(v any) error {
	return wire.Write(b.backing, 0, v, layout.Storage)
}

// Read deserializes the backing at offset 0 into v. v must be a non-nil pointer.
func (b *StorageBuffer) Read(v any) error {
	return wire.Read(b.backing, 0, v, layout.Storage)
}

// Create decodes a fresh value of T from the backing at offset 0.
func Create[T any](b *StorageBuffer) (T, error) {
	var v T
	err := b.Read(&v)
	return v, err
}

// UniformBuffer wraps a byte backing for uniform-address-space access at a fixed base
// offset of zero. Every write, read, and create is preceded by a uniform-compatibility
// check of the value's type: violations surface as layout.UniformCompatError.
type UniformBuffer struct {
	inner StorageBuffer
}

// NewUniformBuffer wraps backing for uniform-space reads and writes.
func NewUniformBuffer(backing []byte) *UniformBuffer {
	return &UniformBuffer{inner: StorageBuffer{backing: backing}}
}

// Backing returns the wrapped byte slice.
func (b *UniformBuffer) Backing() []byte { return b.inner.backing }

// Write serializes v into the backing at offset 0, after checking v's type is uniform
// compatible.
func (b *UniformBuffer) Write(v any) error {
	return wire.Write(b.inner.backing, 0, v, layout.Uniform)
}

// Read deserializes the backing at offset 0 into v, after checking v's type is uniform
// compatible.
func (b *UniformBuffer) Read(v any) error {
	return wire.Read(b.inner.backing, 0, v, layout.Uniform)
}

// CreateUniform decodes a fresh value of T from the backing at offset 0, after checking T
// is uniform compatible.
func CreateUniform[T any](b *UniformBuffer) (T, error) {
	var v T
	err := b.Read(&v)
	return v, err
}
