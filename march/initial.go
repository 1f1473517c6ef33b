package march

import (
	"github.com/eikonal-go/fastmarch/components"
	"github.com/eikonal-go/fastmarch/eikonal"
	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
	"github.com/eikonal-go/fastmarch/narrowband"
)

// Cell states for the scratch label grids used while building an
// initial band; kept separate from components' background/foreground/
// marked trio since these grids never need a "foreground" state.
const (
	background byte = iota
	frozenCell
	inBand
)

// InitialUnsignedBand computes the initial narrow band for the unsigned
// driver: the face neighbors of seeds, each solved once against grid and
// deduplicated via a scratch label grid so a cell touching multiple
// seeds is only enqueued once. A neighbor whose solver call fails is
// skipped rather than enqueued; it may still be reached later through a
// different neighbor during marching.
func InitialUnsignedBand(seeds []gridspace.Index, grid *gridspace.View[float64], solver *eikonal.Solver) ([]narrowband.Entry, error) {
	size := grid.Size()
	labels, err := gridspace.New(size, make([]byte, size.LinearExtent()))
	if err != nil {
		return nil, err
	}

	offsets := gridspace.FaceOffsets(len(size))
	var entries []narrowband.Entry

	for _, seed := range seeds {
		for _, off := range offsets {
			n := seed.Add(off)
			if !labels.Inside(n) {
				continue
			}
			lv, _ := labels.At(n)
			if lv != background {
				continue
			}

			u, err := solver.Solve(n, grid)
			if err != nil {
				continue
			}
			_ = labels.Set(n, inBand)
			entries = append(entries, narrowband.Entry{Distance: u, Index: n})
		}
	}

	return entries, nil
}

// InitialSignedBands partitions seeds into connected components (vertex
// adjacency), computes dilation bands per component, and classifies each
// component's bands by bounding-box hypervolume into the single outer
// (outside) band and zero or more inner (inside) bands. It returns the
// outer-band cells that face-touch a seed — candidates for the signed
// driver's second march, run after the sign flip — and the inner-band
// cells that face-touch a seed — candidates for the first march, run
// while seeds are still negated. A cell reachable from more than one
// component is only ever assigned once, on first encounter.
//
// A component with only one dilation band cannot be disambiguated into
// inside and outside and is reported as fmerr.ErrOpenComponent.
func InitialSignedBands(seeds []gridspace.Index, size gridspace.Size) (outside, inside []gridspace.Index, err error) {
	n := len(size)
	labels, err := gridspace.New(size, make([]byte, size.LinearExtent()))
	if err != nil {
		return nil, nil, err
	}
	for _, s := range seeds {
		_ = labels.Set(s, frozenCell)
	}

	faceOffsets := gridspace.FaceOffsets(n)
	touchesFrozen := func(idx gridspace.Index) bool {
		for _, off := range faceOffsets {
			nb := idx.Add(off)
			if !labels.Inside(nb) {
				continue
			}
			v, _ := labels.At(nb)
			if v == frozenCell {
				return true
			}
		}
		return false
	}

	ccs := components.ConnectedComponents(seeds, size, gridspace.VertexOffsets(n))
	for _, cc := range ccs {
		bands := components.DilationBands(cc, size)
		if len(bands) == 1 {
			return nil, nil, fmerr.New(fmerr.OpenComponent)
		}

		outerIdx := 0
		outerVol := components.HyperVolume(components.BoundingBox(bands[0]))
		for i := 1; i < len(bands); i++ {
			if vol := components.HyperVolume(components.BoundingBox(bands[i])); vol > outerVol {
				outerVol = vol
				outerIdx = i
			}
		}

		for i, band := range bands {
			for _, idx := range band {
				lv, _ := labels.At(idx)
				if lv != background || !touchesFrozen(idx) {
					continue
				}
				_ = labels.Set(idx, inBand)
				if i == outerIdx {
					outside = append(outside, idx)
				} else {
					inside = append(inside, idx)
				}
			}
		}
	}

	return outside, inside, nil
}

// SolveEntries computes solver.Solve for each of indices against grid,
// returning one Entry per index that solved successfully. An index whose
// solve fails is silently omitted, mirroring InitialUnsignedBand's
// treatment of unsolvable candidates; used by the signed driver to seed
// each phase's narrow band from InitialSignedBands' candidate lists.
func SolveEntries(indices []gridspace.Index, grid *gridspace.View[float64], solver *eikonal.Solver) []narrowband.Entry {
	var entries []narrowband.Entry
	for _, idx := range indices {
		u, err := solver.Solve(idx, grid)
		if err != nil {
			continue
		}
		entries = append(entries, narrowband.Entry{Distance: u, Index: idx})
	}
	return entries
}
