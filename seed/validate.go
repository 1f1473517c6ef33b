package seed

import (
	"strconv"
	"strings"

	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
)

// Predicate reports whether a raw (unmultiplied) seed distance is
// acceptable, e.g. "finite, non-NaN, >= 0" for the unsigned driver.
type Predicate func(d float64) bool

// Install validates indices/distances against grid and, on success,
// writes multiplier*distance into grid at each index. Validation runs in
// a fixed order, so the first violated precondition is always the one
// reported:
//
//  1. indices must be non-empty (fmerr.SeedEmpty).
//  2. len(indices) == len(distances) (fmerr.SeedMismatch).
//  3. every index inside grid (fmerr.SeedOutOfBounds) and no duplicate
//     index (fmerr.SeedDuplicate), both checked index by index in list
//     order, so whichever of the two fails first in the list is reported.
//  4. every distance passes predicate (fmerr.SeedDistanceRejected).
//  5. indices must not cover the entire grid (fmerr.WholeGridFrozen).
//
// No cell is written unless every check above passes, so a failed Install
// leaves grid untouched.
func Install(indices []gridspace.Index, distances []float64, multiplier float64, predicate Predicate, grid *gridspace.View[float64]) error {
	if len(indices) == 0 {
		return fmerr.New(fmerr.SeedEmpty)
	}
	if len(indices) != len(distances) {
		return fmerr.Newf(fmerr.SeedMismatch, "%d indices, %d distances", len(indices), len(distances))
	}

	seen := make(map[string]struct{}, len(indices))
	for _, idx := range indices {
		if !grid.Inside(idx) {
			return fmerr.Newf(fmerr.SeedOutOfBounds, "index %v", idx)
		}
		key := indexKey(idx)
		if _, dup := seen[key]; dup {
			return fmerr.Newf(fmerr.SeedDuplicate, "index %v", idx)
		}
		seen[key] = struct{}{}
	}

	for i, d := range distances {
		if !predicate(d) {
			return fmerr.Newf(fmerr.SeedDistanceRejected, "distance %v at index %v", d, indices[i])
		}
	}

	if len(indices) == grid.Size().LinearExtent() {
		return fmerr.New(fmerr.WholeGridFrozen)
	}

	for i, idx := range indices {
		if err := grid.Set(idx, multiplier*distances[i]); err != nil {
			return err
		}
	}

	return nil
}

// indexKey renders idx as a separator-joined string usable as a map key;
// the comma separator makes widths unambiguous (unlike concatenating
// digits directly).
func indexKey(idx gridspace.Index) string {
	var b strings.Builder
	for _, c := range idx {
		b.WriteString(strconv.Itoa(c))
		b.WriteByte(',')
	}
	return b.String()
}
