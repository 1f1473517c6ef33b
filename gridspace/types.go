package gridspace

// Index is an ordered N-tuple of signed integers identifying a grid cell.
// Components may be negative during intermediate computation (the
// dilation grid in package components is padded by +/-1); use Inside
// before dereferencing through a View.
type Index []int

// Size is an ordered N-tuple of positive extents, one per axis.
type Size []int

// Clone returns a copy of idx, so callers can mutate the result without
// aliasing the original.
func (idx Index) Clone() Index {
	out := make(Index, len(idx))
	copy(out, idx)
	return out
}

// Add returns a new Index offset by delta component-wise. Panics if the
// lengths differ, mirroring slice index-out-of-range semantics for
// mismatched-rank arithmetic that should never occur within this module.
func (idx Index) Add(delta Index) Index {
	out := make(Index, len(idx))
	for i := range idx {
		out[i] = idx[i] + delta[i]
	}
	return out
}

// LinearExtent returns the product of the Size's components, i.e. the
// total number of cells in a grid of this Size. Integer overflow is not
// checked; callers with astronomically large grids are responsible for
// staying within platform int range.
func (s Size) LinearExtent() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}
