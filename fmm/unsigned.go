package fmm

import (
	"github.com/eikonal-go/fastmarch/distance"
	"github.com/eikonal-go/fastmarch/eikonal"
	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
	"github.com/eikonal-go/fastmarch/march"
	"github.com/eikonal-go/fastmarch/seed"
)

// UnsignedDistance solves the unsigned Eikonal equation over a grid of
// the given size and spacing, driven by speedField and the seed
// indices/distances, at the given accuracy. Seed distances must be
// finite, non-NaN and non-negative.
//
// Grid size, spacing and speed are checked before the distance grid is
// allocated. The seed checks run against the freshly allocated grid, so
// they are not ahead of that allocation; a failure of any check returns
// a nil buffer and no other side effect.
func UnsignedDistance(size gridspace.Size, spacing []float64, speedField SpeedField, seedIndices []gridspace.Index, seedDistances []float64, algorithm Algorithm) ([]float64, error) {
	if err := validateGridSize(size); err != nil {
		return nil, err
	}
	if err := validateSpacing(spacing, size); err != nil {
		return nil, err
	}
	if err := speedField.validate(size); err != nil {
		return nil, err
	}

	sp, err := speedField.resolve(size)
	if err != nil {
		return nil, err
	}

	grid, err := gridspace.New(size, distance.NewBuffer(size.LinearExtent()))
	if err != nil {
		return nil, err
	}

	if err := seed.Install(seedIndices, seedDistances, 1, unsignedSeedPredicate, grid); err != nil {
		return nil, err
	}

	solver := eikonal.New(spacing, sp, algorithm.order())
	entries, err := march.InitialUnsignedBand(seedIndices, grid, solver)
	if err != nil {
		return nil, err
	}

	m := march.New(solver, grid)
	m.Seed(entries)
	if err := m.Run(); err != nil {
		return nil, err
	}

	if !march.AllFrozen(grid) {
		return nil, fmerr.New(fmerr.IncompleteMarch)
	}

	return grid.Buffer(), nil
}
