package layout

import "github.com/go-wgsl/hostlayout/align"

// Field is one declared member of a struct being solved: its natural layout plus whatever
// explicit annotations the declaration layer attached to it.
type Field struct {
	Name string
	Layout Layout
	// UserAlign, if non-nil, overrides the field's natural alignment. Must be a power of two
	// no smaller than Layout.Align.
	UserAlign *uint64
	// UserSize, if non-nil, overrides the field's natural size. Must be no smaller than
	// Layout.Size. Setting it on a field whose Layout.Runtime is true is a LayoutConflictError.
	UserSize *uint64
}

// StructLayout is the solved metadata for one struct: its own Layout plus, for each field in
// declaration order, the byte offset it was placed at, the effective size occupied there
// (after any UserSize override), and the padding inserted after it.
type StructLayout struct {
	Layout
	Offsets  []uint64
	EffSizes []uint64
	Paddings []uint64
}

// SolveStruct computes offsets, padding, and overall alignment/size for fields, in the given
// address space. Fields are visited in declaration order; at most the last field may be
// runtime-sized.
//
// For the uniform address space, the solver raises the struct's own alignment to at least 16,
// raises the effective alignment of any field whose type carries UniformMinAlign to at least
// 16, and ensures at least 16 bytes separate the start of such a field from the start of the
// next one — the combination of WGSL's "host-shareable types used in the uniform address
// space round their alignment up to 16" rule and the derive-time uniform-compatibility check
// it is modeled on.
func SolveStruct(fields []Field, space AddressSpace) (*StructLayout, error) {
	offsets := make([]uint64, len(fields))
	effSizes := make([]uint64, len(fields))

	var cur uint64
	var structAlign uint64 = 1
	runtime := false

	for i, f := range fields {
		if f.Layout.Runtime && i != len(fields)-1 {
			return nil, &RuntimeFieldNotLastError{Field: f.Name}
		}

		effAlign := f.Layout.Align
		if f.UserAlign != nil {
			if !align.IsPowerOfTwo(*f.UserAlign) {
				return nil, &LayoutConflictError{Field: f.Name, Reason: "explicit align is not a power of two"}
			}
			if *f.UserAlign < f.Layout.Align {
				return nil, &LayoutConflictError{Field: f.Name, Reason: "explicit align is smaller than the natural alignment"}
			}
			effAlign = *f.UserAlign
		}
		if space == Uniform && f.Layout.UniformMinAlign {
			effAlign = align.Max(effAlign, 16)
		}

		effSize := f.Layout.Size
		if f.Layout.Runtime {
			effSize = f.Layout.MinSize
		}
		if f.UserSize != nil {
			if f.Layout.Runtime {
				return nil, &LayoutConflictError{Field: f.Name, Reason: "explicit size cannot be combined with size(runtime)"}
			}
			if *f.UserSize < f.Layout.Size {
				return nil, &LayoutConflictError{Field: f.Name, Reason: "explicit size is smaller than the natural size"}
			}
			effSize = *f.UserSize
		}

		offset := align.AlignUp(cur, effAlign)
		offsets[i] = offset
		effSizes[i] = effSize

		structAlign = align.Max(structAlign, effAlign)

		if f.Layout.Runtime {
			runtime = true
			cur = offset + effSize
			continue
		}

		consumed := effSize
		if space == Uniform && f.Layout.UniformMinAlign {
			consumed = align.RoundUp(16, effSize)
		}
		cur = offset + consumed
	}

	if space == Uniform {
		structAlign = align.Max(structAlign, 16)
	}

	paddings := make([]uint64, len(fields))
	for i := 0; i < len(fields); i++ {
		end := offsets[i] + effSizes[i]
		if i+1 < len(fields) {
			paddings[i] = offsets[i+1] - end
		}
	}

	var size, minSize uint64
	if len(fields) > 0 {
		last := len(fields) - 1
		lastEnd := offsets[last] + effSizes[last]
		minSize = align.AlignUp(lastEnd, structAlign)
		if !runtime {
			size = minSize
		}
		paddings[last] = minSize - lastEnd
	} else {
		size = 0
		minSize = 0
	}

	return &StructLayout{
		Layout: Layout{
			Align:           structAlign,
			Size:            size,
			MinSize:         minSize,
			Runtime:         runtime,
			UniformMinAlign: true,
		},
		Offsets:  offsets,
		EffSizes: effSizes,
		Paddings: paddings,
	}, nil
}

// CalculateSizeForLength returns the total byte size of a value of this struct's type when
// its trailing runtime-sized array holds exactly n elements. Only meaningful when the struct
// is Runtime; for fixed-size structs this always equals Size regardless of n.
func (s *StructLayout) CalculateSizeForLength(n uint64, elemStride uint64) uint64 {
	if !s.Runtime {
		return s.Size
	}
	last := len(s.Offsets) - 1
	base := s.Offsets[last] + n*elemStride
	return align.AlignUp(base, s.Align)
}
