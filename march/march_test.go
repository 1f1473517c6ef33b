package march_test

import (
	"errors"
	"math"
	"testing"

	"github.com/eikonal-go/fastmarch/distance"
	"github.com/eikonal-go/fastmarch/eikonal"
	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
	"github.com/eikonal-go/fastmarch/march"
	"github.com/eikonal-go/fastmarch/narrowband"
)

func newDistanceGrid(t *testing.T, size gridspace.Size) *gridspace.View[float64] {
	t.Helper()
	v, err := gridspace.New(size, distance.NewBuffer(size.LinearExtent()))
	if err != nil {
		t.Fatalf("gridspace.New failed: %v", err)
	}
	return v
}

func approxEqual(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("got %v; want %v (tol %v)", got, want, tol)
	}
}

func TestUnsignedMarch_CornerDistanceFromCenterSeed(t *testing.T) {
	// 5x5 grid, unit spacing, unit speed, single seed at (2,2). Expected
	// U(0,0) = 2*sqrt(2) within first-order tolerance.
	size := gridspace.Size{5, 5}
	grid := newDistanceGrid(t, size)
	seed := gridspace.Index{2, 2}
	if err := grid.Set(seed, 0); err != nil {
		t.Fatalf("Set(seed) failed: %v", err)
	}

	solver := eikonal.New([]float64{1, 1}, eikonal.UniformSpeed(1), eikonal.FirstOrder)
	entries, err := march.InitialUnsignedBand([]gridspace.Index{seed}, grid, solver)
	if err != nil {
		t.Fatalf("InitialUnsignedBand failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d initial entries; want 4 (face neighbors of the seed)", len(entries))
	}

	m := march.New(solver, grid)
	m.Seed(entries)
	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, _ := grid.At(gridspace.Index{0, 0})
	approxEqual(t, got, 2*math.Sqrt2, 0.08)

	for _, v := range grid.Buffer() {
		if !distance.Frozen(v) {
			t.Fatalf("cell left unfrozen after Run: %v", v)
		}
	}
}

func TestUnsignedMarch_HighOrderTighterThanFirstOrder(t *testing.T) {
	size := gridspace.Size{5, 5}
	seed := gridspace.Index{2, 2}

	run := func(order eikonal.Order) float64 {
		grid := newDistanceGrid(t, size)
		if err := grid.Set(seed, 0); err != nil {
			t.Fatalf("Set(seed) failed: %v", err)
		}
		solver := eikonal.New([]float64{1, 1}, eikonal.UniformSpeed(1), order)
		entries, err := march.InitialUnsignedBand([]gridspace.Index{seed}, grid, solver)
		if err != nil {
			t.Fatalf("InitialUnsignedBand failed: %v", err)
		}
		m := march.New(solver, grid)
		m.Seed(entries)
		if err := m.Run(); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		got, _ := grid.At(gridspace.Index{0, 0})
		return got
	}

	want := 2 * math.Sqrt2
	firstOrder := run(eikonal.FirstOrder)
	highOrder := run(eikonal.HighOrder)

	if math.Abs(highOrder-want) > math.Abs(firstOrder-want) {
		t.Errorf("high-order error %v exceeds first-order error %v", math.Abs(highOrder-want), math.Abs(firstOrder-want))
	}
}

func TestInitialUnsignedBand_DedupesSharedNeighbor(t *testing.T) {
	size := gridspace.Size{3, 3}
	grid := newDistanceGrid(t, size)
	seeds := []gridspace.Index{{0, 1}, {1, 0}}
	for _, s := range seeds {
		if err := grid.Set(s, 0); err != nil {
			t.Fatalf("Set(seed) failed: %v", err)
		}
	}

	solver := eikonal.New([]float64{1, 1}, eikonal.UniformSpeed(1), eikonal.FirstOrder)
	entries, err := march.InitialUnsignedBand(seeds, grid, solver)
	if err != nil {
		t.Fatalf("InitialUnsignedBand failed: %v", err)
	}

	seen := map[[2]int]int{}
	for _, e := range entries {
		seen[[2]int{e.Index[0], e.Index[1]}]++
	}
	// (1,1) is a face neighbor of both seeds but must appear only once.
	if seen[[2]int{1, 1}] != 1 {
		t.Errorf("(1,1) enqueued %d times; want exactly 1", seen[[2]int{1, 1}])
	}
}

func TestInitialSignedBands_ClosedComponentSplitsInsideOutside(t *testing.T) {
	size := gridspace.Size{5, 5}
	ring := []gridspace.Index{
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 3},
		{3, 1}, {3, 2}, {3, 3},
	}

	outside, inside, err := march.InitialSignedBands(ring, size)
	if err != nil {
		t.Fatalf("InitialSignedBands failed: %v", err)
	}
	if len(inside) != 1 || inside[0][0] != 2 || inside[0][1] != 2 {
		t.Fatalf("inside = %v; want a single cell at (2,2)", inside)
	}
	if len(outside) != 12 {
		t.Fatalf("got %d outside cells; want 12", len(outside))
	}
}

func TestInitialSignedBands_IsolatedSeedIsOpenComponent(t *testing.T) {
	// A single isolated seed cell is an OpenComponent error.
	size := gridspace.Size{5, 5}
	seeds := []gridspace.Index{{2, 2}}

	_, _, err := march.InitialSignedBands(seeds, size)
	if !errors.Is(err, fmerr.ErrOpenComponent) {
		t.Fatalf("InitialSignedBands error = %v; want ErrOpenComponent", err)
	}
}

func TestMarcher_SkipsAlreadyFrozenDuplicates(t *testing.T) {
	size := gridspace.Size{3, 3}
	grid := newDistanceGrid(t, size)
	seed := gridspace.Index{1, 1}
	if err := grid.Set(seed, 0); err != nil {
		t.Fatalf("Set(seed) failed: %v", err)
	}

	solver := eikonal.New([]float64{1, 1}, eikonal.UniformSpeed(1), eikonal.FirstOrder)
	m := march.New(solver, grid)

	// Push the same neighbor twice at different (deliberately wrong)
	// distances; only the smaller one should ever take effect (I2).
	m.Seed([]narrowband.Entry{
		{Distance: 5, Index: gridspace.Index{0, 1}},
		{Distance: 1, Index: gridspace.Index{0, 1}},
	})
	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, _ := grid.At(gridspace.Index{0, 1})
	if got != 1 {
		t.Errorf("At(0,1) = %v; want 1 (the smaller of the two pushed values)", got)
	}
}
