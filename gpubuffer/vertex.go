package gpubuffer

import (
	"reflect"

	"github.com/go-wgsl/hostlayout/layout"
	"github.com/go-wgsl/hostlayout/wire"
)

// VertexBuffer wraps a byte backing with an append cursor for per-vertex attribute data.
// WGSL vertex-stage input is host-shareable but belongs to neither the uniform nor the
// storage address space, so VertexBuffer imposes no minimum alignment and performs no
// uniform-compatibility check; each value is packed immediately after the previous one.
type VertexBuffer struct {
	backing []byte
	offset  uint64
}

// NewVertexBuffer wraps backing with the cursor starting at zero.
func NewVertexBuffer(backing []byte) *VertexBuffer {
	return &VertexBuffer{backing: backing}
}

// Backing returns the wrapped byte slice.
func (b *VertexBuffer) Backing() []byte { return b.backing }

// Offset returns the buffer's current append cursor.
func (b *VertexBuffer) Offset() uint64 { return b.offset }

// SetOffset seeks the cursor to an arbitrary byte position for a subsequent Read or Create.
func (b *VertexBuffer) SetOffset(offset uint64) {
	b.offset = offset
}

// Write packs v at the current cursor, advances the cursor past it, and returns the offset
// v was written at. Vertex attributes use the storage-space layout rules (no extra uniform
// padding).
func (b *VertexBuffer) Write(v any) (uint64, error) {
	offset := b.offset
	if err := wire.Write(b.backing, offset, v, layout.Storage); err != nil {
		return 0, err
	}
	size, err := wire.SizeOf(v, layout.Storage)
	if err != nil {
		return 0, err
	}
	b.offset = offset + size
	return offset, nil
}

// Read deserializes the backing at the current cursor into v, then advances the cursor
// past the decoded value.
func (b *VertexBuffer) Read(v any) error {
	if err := wire.Read(b.backing, b.offset, v, layout.Storage); err != nil {
		return err
	}
	size, err := wire.SizeOf(reflect.ValueOf(v).Elem().Interface(), layout.Storage)
	if err != nil {
		return err
	}
	b.offset += size
	return nil
}

// CreateVertex decodes a fresh value of T from the backing at the buffer's current cursor,
// then advances the cursor past it.
func CreateVertex[T any](b *VertexBuffer) (T, error) {
	var v T
	err := b.Read(&v)
	return v, err
}
