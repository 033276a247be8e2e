package align

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		n    uint64
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{15, false},
		{16, true},
		{256, true},
	}
	for _, c := range cases {
		if got := IsPowerOfTwo(c.n); got != c.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := []struct {
		n    uint64
		want uint64
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{7, 8},
		{8, 8},
		{9, 16},
	}
	for _, c := range cases {
		if got := NextPowerOfTwo(c.n); got != c.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct {
		offset, alignment, want uint64
	}{
		{0, 8, 0},
		{1, 8, 8},
		{7, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{12, 16, 16},
		{20, 8, 24},
	}
	for _, c := range cases {
		if got := AlignUp(c.offset, c.alignment); got != c.want {
			t.Errorf("AlignUp(%d, %d) = %d, want %d", c.offset, c.alignment, got, c.want)
		}
	}
}

func TestPaddingNeededFor(t *testing.T) {
	if got := PaddingNeededFor(7, 8); got != 1 {
		t.Errorf("PaddingNeededFor(7, 8) = %d, want 1", got)
	}
	if got := PaddingNeededFor(9, 8); got != 16-9 {
		t.Errorf("PaddingNeededFor(9, 8) = %d, want %d", got, 16-9)
	}
	if got := PaddingNeededFor(16, 8); got != 0 {
		t.Errorf("PaddingNeededFor(16, 8) = %d, want 0", got)
	}
}

func TestRoundUp(t *testing.T) {
	if got := RoundUp(8, 20); got != 24 {
		t.Errorf("RoundUp(8, 20) = %d, want 24", got)
	}
	if got := RoundUp(16, 7); got != 16 {
		t.Errorf("RoundUp(16, 7) = %d, want 16", got)
	}
	// Vector3<f32> stride: align 16, size 12 -> 16.
	if got := RoundUp(16, 12); got != 16 {
		t.Errorf("RoundUp(16, 12) = %d, want 16", got)
	}
	// f32 array stride in storage space: align 4, size 4 -> 4.
	if got := RoundUp(4, 4); got != 4 {
		t.Errorf("RoundUp(4, 4) = %d, want 4", got)
	}
}

func TestMax(t *testing.T) {
	if got := Max(2, 8, 32); got != 32 {
		t.Errorf("Max(2, 8, 32) = %d, want 32", got)
	}
	if got := Max(4); got != 4 {
		t.Errorf("Max(4) = %d, want 4", got)
	}
}

func TestAlignUpPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AlignUp(0, 3) did not panic")
		}
	}()
	AlignUp(0, 3)
}
