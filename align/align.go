// Package align implements the compile-time arithmetic that every other package in this
// module builds on: rounding offsets up to an alignment boundary, rounding sizes up to a
// multiple of an alignment, and power-of-two helpers. No function here returns an error; the
// only failures are panics on misuse (a non-power-of-two alignment passed to AlignUp,
// PaddingNeededFor or RoundUp, NextPowerOfTwo(0), or Max with no values). Callers are
// responsible for validating that an alignment value is a power of two before calling AlignUp
// or RoundUp with it (IsPowerOfTwo is provided for that purpose).
package align

// IsPowerOfTwo reports whether n is a power of two. Zero is not a power of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to n. n must be
// greater than zero and small enough that the result does not overflow a uint64; callers in
// this module only ever feed it WGSL component sizes (4, 8, 12, 16), so overflow cannot
// occur in practice.
func NextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		panic("align: NextPowerOfTwo(0) is undefined")
	}
	if IsPowerOfTwo(n) {
		return n
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// AlignUp returns the smallest value that is greater than or equal to offset and a multiple
// of alignment. alignment must be a power of two.
func AlignUp(offset, alignment uint64) uint64 {
	mustPowerOfTwo(alignment)
	r := offset % alignment
	if r == 0 {
		return offset
	}
	return offset + (alignment - r)
}

// PaddingNeededFor returns the number of bytes that must be added to offset so that
// offset+result is a multiple of alignment. alignment must be a power of two.
func PaddingNeededFor(offset, alignment uint64) uint64 {
	mustPowerOfTwo(alignment)
	r := offset % alignment
	if r == 0 {
		return 0
	}
	return alignment - r
}

// RoundUp returns the smallest multiple of alignment that is greater than or equal to size.
// This is the array/matrix stride rule: round_up(element.align, element.size). alignment
// must be a power of two.
func RoundUp(alignment, size uint64) uint64 {
	return AlignUp(size, alignment)
}

// Max returns the largest value in vals. Max panics if vals is empty.
func Max(vals ...uint64) uint64 {
	if len(vals) == 0 {
		panic("align: Max called with no values")
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func mustPowerOfTwo(alignment uint64) {
	if !IsPowerOfTwo(alignment) {
		panic("align: alignment must be a power of two")
	}
}
