package eikonal

import (
	"math"

	"github.com/eikonal-go/fastmarch/distance"
	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
)

// Order selects between the first-order and high-order upwind stencils.
type Order int

const (
	// FirstOrder uses a one-sided difference against the single nearest
	// frozen neighbor along each axis.
	FirstOrder Order = iota
	// HighOrder additionally uses the neighbor two steps away when it is
	// frozen and monotonically upwind (value <= the one-step neighbor),
	// giving O(h^2) accuracy on smooth regions.
	HighOrder
)

// Solver computes the local Eikonal update at a single cell. It holds the
// per-axis physical spacing, a Speed source and an Order; the same Solver
// value serves the uniform or varying speed case depending on which Speed
// implementation it was built with.
type Solver struct {
	spacing []float64
	speed   Speed
	order   Order
}

// New constructs a Solver. spacing must have one positive entry per grid
// axis; validity is assumed to have already been checked by the caller
// (see fmm's precondition pass) rather than re-checked on every Solve.
func New(spacing []float64, speed Speed, order Order) *Solver {
	return &Solver{spacing: spacing, speed: speed, order: order}
}

// Solve returns the Eikonal distance at idx given the current frozen
// state of u. idx itself need not be frozen; its own value in u is
// ignored. Returns fmerr.ErrUnsolvableQuadratic if the local quadratic has
// no valid (non-negative, real) root — the caller should skip enqueuing
// idx with this result rather than treat it as fatal.
func (s *Solver) Solve(idx gridspace.Index, u *gridspace.View[float64]) (float64, error) {
	speedAtX, err := s.speed.At(idx)
	if err != nil {
		return 0, err
	}

	a0 := -1 / (speedAtX * speedAtX)
	a1 := 0.0
	a2 := 0.0

	for axis := 0; axis < len(idx); axis++ {
		c0, c1, c2, ok := s.axisContribution(idx, axis, u)
		if !ok {
			continue
		}
		a0 += c0
		a1 += c1
		a2 += c2
	}

	return solveQuadratic(a0, a1, a2)
}

// axisContribution computes one axis's contribution to the quadratic
// coefficients, or ok=false if neither face neighbor along axis is
// frozen.
func (s *Solver) axisContribution(idx gridspace.Index, axis int, u *gridspace.View[float64]) (a0, a1, a2 float64, ok bool) {
	h := s.spacing[axis]
	invH2 := 1 / (h * h)

	m1 := distance.Sentinel
	m2 := distance.Sentinel
	haveM1 := false
	haveM2 := false

	for _, step := range [2]int{-1, 1} {
		n1 := idx.Clone()
		n1[axis] += step
		if !u.Inside(n1) {
			continue
		}
		v1, _ := u.At(n1)
		if !distance.Frozen(v1) || v1 >= m1 {
			continue
		}

		m1 = v1
		haveM1 = true
		haveM2 = false

		n2 := n1.Clone()
		n2[axis] += step
		if u.Inside(n2) {
			v2, _ := u.At(n2)
			if distance.Frozen(v2) && v2 <= v1 {
				m2 = v2
				haveM2 = true
			}
		}
	}

	if !haveM1 {
		return 0, 0, 0, false
	}

	if s.order == HighOrder && haveM2 {
		alpha := 9.0 / (4.0 * h * h)
		t := (4*m1 - m2) / 3
		return t * t * alpha, -2 * t * alpha, alpha, true
	}

	return m1 * m1 * invH2, -2 * m1 * invH2, invH2, true
}

// solveQuadratic solves a2*u^2 + a1*u + a0 = 0 and returns the larger
// root. a2 == 0 (no axis contributed, which should not occur once at
// least one face neighbor of idx is frozen) is treated the same as a
// negative discriminant: unsolvable.
func solveQuadratic(a0, a1, a2 float64) (float64, error) {
	if a2 == 0 {
		return 0, fmerr.New(fmerr.UnsolvableQuadratic)
	}

	discriminant := a1*a1 - 4*a2*a0
	if discriminant < 0 {
		return 0, fmerr.New(fmerr.UnsolvableQuadratic)
	}

	root := (-a1 + math.Sqrt(discriminant)) / (2 * a2)
	if root < 0 {
		return 0, fmerr.New(fmerr.UnsolvableQuadratic)
	}

	return root, nil
}
