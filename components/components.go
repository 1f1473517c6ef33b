package components

import "github.com/eikonal-go/fastmarch/gridspace"

// Cell states shared by the two grids in this package: ConnectedComponents'
// visited-tracking label grid, and DilationBands' foreground/dilated grid.
// The third state means "labelled" in the former and "dilated" in the
// latter; both uses share one byte-sized enum since a cell is never in
// both grids at once.
const (
	background byte = iota
	foreground
	marked
)

// ConnectedComponents partitions indices into maximally connected sets
// under the given neighbor offsets (vertex offsets for seed clustering,
// face offsets for dilation-band extraction). indices must all lie inside
// a grid of the given size; the returned components preserve no
// particular cell order within each component, but their relative
// discovery order matches the order indices were scanned.
//
// A BFS-queue flood fill generalized to any offset set over any
// dimension count, rather than fixed 4- or 8-neighbor 2D offsets.
//
// Complexity: O(len(indices) * len(offsets)).
func ConnectedComponents(indices []gridspace.Index, size gridspace.Size, offsets []gridspace.Index) [][]gridspace.Index {
	if len(indices) == 0 {
		return nil
	}

	labels, err := gridspace.New(size, make([]byte, size.LinearExtent()))
	if err != nil {
		// Callers only ever pass an already validated grid size (or a
		// padded copy of one), so a malformed size here indicates a
		// programming error upstream rather than bad user input.
		panic(err)
	}

	for _, idx := range indices {
		_ = labels.Set(idx, foreground)
	}

	var out [][]gridspace.Index
	for _, start := range indices {
		v, _ := labels.At(start)
		if v != foreground {
			continue
		}

		_ = labels.Set(start, marked)
		queue := []gridspace.Index{start}
		component := []gridspace.Index{start}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			for _, off := range offsets {
				n := cur.Add(off)
				if !labels.Inside(n) {
					continue
				}
				nv, _ := labels.At(n)
				if nv != foreground {
					continue
				}
				_ = labels.Set(n, marked)
				queue = append(queue, n)
				component = append(component, n)
			}
		}

		out = append(out, component)
	}

	return out
}
