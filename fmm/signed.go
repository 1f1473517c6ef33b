package fmm

import (
	"github.com/eikonal-go/fastmarch/distance"
	"github.com/eikonal-go/fastmarch/eikonal"
	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
	"github.com/eikonal-go/fastmarch/march"
	"github.com/eikonal-go/fastmarch/seed"
)

// SignedDistance solves the signed Eikonal equation over a grid of the
// given size and spacing, driven by speedField and the seed
// indices/distances, at the given accuracy. Seed distances must be
// finite and non-NaN; sign carries inside/outside information, so seeds
// near an interface typically have both signs.
//
// The driver runs two independent marches in sequence:
//
//  1. Seeds are installed negated, so they read smaller than the
//     distance.Sentinel placeholder but hold the opposite of their
//     eventual sign.
//  2. The first march starts from the inner dilation band of each seed
//     component (the enclosed interior) and grows outward from the
//     negated seeds; each upwind step adds a positive increment, so
//     this march's raw output trends toward the negated seeds' opposite
//     sign the deeper it grows into the interior.
//  3. Every frozen cell (seeds included) is negated: seeds regain their
//     true sign, and the interior — grown while seeds were negated —
//     ends up with its true (generally negative) sign.
//  4. The second march starts from the outer dilation band, now growing
//     from the correctly-signed (positive) seeds outward, giving the
//     exterior region its true positive sign.
//
// A seed component whose dilation leaves only one band inside the grid —
// so its outer and inner regions cannot be disambiguated, as for an
// isolated seed cell — is reported as fmerr.ErrOpenComponent before any
// marching happens.
func SignedDistance(size gridspace.Size, spacing []float64, speedField SpeedField, seedIndices []gridspace.Index, seedDistances []float64, algorithm Algorithm) ([]float64, error) {
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

	if err := seed.Install(seedIndices, seedDistances, -1, signedSeedPredicate, grid); err != nil {
		return nil, err
	}

	outside, inside, err := march.InitialSignedBands(seedIndices, size)
	if err != nil {
		return nil, err
	}

	solver := eikonal.New(spacing, sp, algorithm.order())

	interior := march.New(solver, grid)
	interior.Seed(march.SolveEntries(inside, grid, solver))
	if err := interior.Run(); err != nil {
		return nil, err
	}

	flipSign(grid)

	exterior := march.New(solver, grid)
	exterior.Seed(march.SolveEntries(outside, grid, solver))
	if err := exterior.Run(); err != nil {
		return nil, err
	}

	if !march.AllFrozen(grid) {
		return nil, fmerr.New(fmerr.IncompleteMarch)
	}

	return grid.Buffer(), nil
}

// flipSign negates every frozen cell of grid in place; unfrozen
// (distance.Sentinel) cells are left untouched.
func flipSign(grid *gridspace.View[float64]) {
	buf := grid.Buffer()
	for i, v := range buf {
		if distance.Frozen(v) {
			buf[i] = -v
		}
	}
}
