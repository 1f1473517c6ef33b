package march

import (
	"github.com/eikonal-go/fastmarch/distance"
	"github.com/eikonal-go/fastmarch/eikonal"
	"github.com/eikonal-go/fastmarch/gridspace"
	"github.com/eikonal-go/fastmarch/narrowband"
)

// Marcher drives the freeze-smallest/relax-neighbors main loop against a
// distance grid, using solver to compute candidate distances for
// newly-reachable cells. A Marcher is single-use: callers seed it once
// via Seed and drain it once via Run.
type Marcher struct {
	solver  *eikonal.Solver
	grid    *gridspace.View[float64]
	band    *narrowband.Band
	offsets []gridspace.Index
}

// New constructs a Marcher over grid, using solver for local updates.
func New(solver *eikonal.Solver, grid *gridspace.View[float64]) *Marcher {
	return &Marcher{
		solver:  solver,
		grid:    grid,
		band:    narrowband.New(),
		offsets: gridspace.FaceOffsets(grid.Dims()),
	}
}

// Seed pushes entries into the narrow band without touching the distance
// grid. Callers are responsible for having frozen the corresponding seed
// cells beforehand, per the driver's own protocol.
func (m *Marcher) Seed(entries []narrowband.Entry) {
	for _, e := range entries {
		m.band.Push(e)
	}
}

// Run drains the narrow band: at each step it pops the smallest entry,
// discards it if the target cell froze via an earlier pop, freezes it
// otherwise, and relaxes its face neighbors.
//
// Run does not itself check that every cell ends up frozen: the signed
// driver runs two Marchers in sequence over disjoint regions of the same
// grid, so completeness is only meaningful after both have run. Callers
// check AllFrozen once they are done marching.
func (m *Marcher) Run() error {
	for !m.band.IsEmpty() {
		entry := m.band.Pop()

		cur, err := m.grid.At(entry.Index)
		if err != nil {
			return err
		}
		if distance.Frozen(cur) {
			continue
		}

		if err := m.grid.Set(entry.Index, entry.Distance); err != nil {
			return err
		}

		m.relax(entry.Index)
	}

	return nil
}

// AllFrozen reports whether every cell of grid is frozen.
func AllFrozen(grid *gridspace.View[float64]) bool {
	for _, v := range grid.Buffer() {
		if !distance.Frozen(v) {
			return false
		}
	}
	return true
}

func (m *Marcher) relax(idx gridspace.Index) {
	for _, off := range m.offsets {
		n := idx.Add(off)
		if !m.grid.Inside(n) {
			continue
		}
		v, _ := m.grid.At(n)
		if distance.Frozen(v) {
			continue
		}

		u, err := m.solver.Solve(n, m.grid)
		if err != nil {
			// An unsolvable local update at n is not fatal: a different
			// neighbor may still produce a valid update for n before it
			// needs to freeze.
			continue
		}
		m.band.Push(narrowband.Entry{Distance: u, Index: n})
	}
}
