package fmm

import (
	"math"

	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
)

// validateGridSize rejects a grid size with any non-positive component,
// before any allocation.
func validateGridSize(size gridspace.Size) error {
	if len(size) == 0 {
		return fmerr.New(fmerr.InvalidGridSize)
	}
	for _, d := range size {
		if d <= 0 {
			return fmerr.Newf(fmerr.InvalidGridSize, "size=%v", size)
		}
	}
	return nil
}

// validateSpacing rejects a spacing slice whose rank doesn't match size,
// or that contains a non-positive or NaN entry.
func validateSpacing(spacing []float64, size gridspace.Size) error {
	if len(spacing) != len(size) {
		return fmerr.Newf(fmerr.InvalidGridSpacing, "spacing has %d axes, size has %d", len(spacing), len(size))
	}
	for i, h := range spacing {
		if math.IsNaN(h) || h <= 0 {
			return fmerr.Newf(fmerr.InvalidGridSpacing, "spacing[%d]=%v", i, h)
		}
	}
	return nil
}

// unsignedSeedPredicate accepts a seed distance for the unsigned driver:
// finite, non-NaN and non-negative.
func unsignedSeedPredicate(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d >= 0
}

// signedSeedPredicate accepts a seed distance for the signed driver:
// finite and non-NaN, sign carries inside/outside information.
func signedSeedPredicate(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0)
}
