package gpubuffer

import (
	"bytes"
	"testing"

	"github.com/go-wgsl/hostlayout/vecmat"
)

// Scenario: backing length 264, alignment 256. After SetOffset(256), create a vec2<i32>
// from an all-0x01 backing: yields (16843009, 16843009).
func TestDynamicUniformBufferSetOffsetAndCreate(t *testing.T) {
	backing := bytes.Repeat([]byte{0x01}, 264)
	buf := NewDynamicUniformBuffer(backing)
	if err := buf.SetOffset(256); err != nil {
		t.Fatalf("SetOffset: %v", err)
	}

	out, err := CreateDynamicUniform[vecmat.Vec2[int32]](buf)
	if err != nil {
		t.Fatalf("CreateDynamicUniform: %v", err)
	}
	if out.X != 16843009 || out.Y != 16843009 {
		t.Fatalf("out = %+v, want {16843009 16843009}", out)
	}
}

func TestDynamicUniformBufferSetOffsetRejectsUnaligned(t *testing.T) {
	buf := NewDynamicUniformBuffer(make([]byte, 512))
	if err := buf.SetOffset(100); err == nil {
		t.Fatal("expected an error for an unaligned offset")
	}
}

// Scenario: alignment 64. Write [f32; 10] (size 40) -> offset 0, cursor advances to 64.
// Write [u32; 20] (size 80) -> offset 64, cursor advances to 192. Write vec3<f32>
// (size 12, align 16) -> offset 192. Returned offsets = [0, 64, 192].
func TestDynamicStorageBufferConcatenation(t *testing.T) {
	buf, err := NewDynamicStorageBufferWithAlignment(make([]byte, 256), 64)
	if err != nil {
		t.Fatalf("NewDynamicStorageBufferWithAlignment: %v", err)
	}

	off1, err := buf.Write([10]float32{})
	if err != nil {
		t.Fatalf("Write 1: %v", err)
	}
	off2, err := buf.Write([20]uint32{})
	if err != nil {
		t.Fatalf("Write 2: %v", err)
	}
	off3, err := buf.Write(vecmat.Vec3[float32]{})
	if err != nil {
		t.Fatalf("Write 3: %v", err)
	}

	if off1 != 0 || off2 != 64 || off3 != 192 {
		t.Fatalf("offsets = [%d %d %d], want [0 64 192]", off1, off2, off3)
	}
	if buf.Offset() != 256 {
		t.Fatalf("final cursor = %d, want 256", buf.Offset())
	}
}

func TestNewDynamicStorageBufferWithAlignmentRejectsBelowMinimum(t *testing.T) {
	if _, err := NewDynamicStorageBufferWithAlignment(make([]byte, 64), 16); err == nil {
		t.Fatal("expected an error for an alignment below the minimum of 32")
	}
}

func TestNewDynamicStorageBufferWithAlignmentRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := NewDynamicStorageBufferWithAlignment(make([]byte, 256), 96); err == nil {
		t.Fatal("expected an error for a non-power-of-two alignment")
	}
}

func TestNewDynamicUniformBufferWithAlignmentAcceptsValidAlignment(t *testing.T) {
	if _, err := NewDynamicUniformBufferWithAlignment(make([]byte, 256), 64); err != nil {
		t.Fatalf("64 is a valid power-of-two multiple of 16 >= 32: %v", err)
	}
}

func TestNewDynamicUniformBufferWithAlignmentRejectsNonPowerOfTwoMultipleOf16(t *testing.T) {
	if _, err := NewDynamicUniformBufferWithAlignment(make([]byte, 256), 48); err == nil {
		t.Fatal("expected an error: 48 is a multiple of 16 but not a power of two")
	}
}
