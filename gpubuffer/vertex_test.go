package gpubuffer

import (
	"testing"

	"github.com/go-wgsl/hostlayout/vecmat"
)

type vertexAttrs struct {
	Position vecmat.Vec3[float32]
	UV       vecmat.Vec2[float32]
}

func TestVertexBufferAppendsWithoutAlignmentFloor(t *testing.T) {
	a := vertexAttrs{Position: vecmat.Vec3[float32]{X: 1, Y: 2, Z: 3}, UV: vecmat.Vec2[float32]{X: 0.5, Y: 0.5}}
	b := vertexAttrs{Position: vecmat.Vec3[float32]{X: 4, Y: 5, Z: 6}, UV: vecmat.Vec2[float32]{X: 1, Y: 1}}

	buf := NewVertexBuffer(make([]byte, 200))
	off1, err := buf.Write(a)
	if err != nil {
		t.Fatalf("Write a: %v", err)
	}
	off2, err := buf.Write(b)
	if err != nil {
		t.Fatalf("Write b: %v", err)
	}
	if off1 != 0 {
		t.Fatalf("off1 = %d, want 0", off1)
	}
	// vec3<f32>'s natural alignment of 16 makes the struct's own alignment 16 regardless of
	// address space, so the second value starts at the first struct's rounded-up size of 32,
	// not immediately after its last occupied byte.
	if off2 != 32 {
		t.Fatalf("off2 = %d, want 32", off2)
	}

	buf.SetOffset(0)
	outA, err := CreateVertex[vertexAttrs](buf)
	if err != nil {
		t.Fatalf("CreateVertex a: %v", err)
	}
	outB, err := CreateVertex[vertexAttrs](buf)
	if err != nil {
		t.Fatalf("CreateVertex b: %v", err)
	}
	if outA != a || outB != b {
		t.Fatalf("round trip = %+v, %+v, want %+v, %+v", outA, outB, a, b)
	}
}
