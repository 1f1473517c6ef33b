// Package fastmarch computes approximate solutions of the Eikonal
// equation |∇T(x)| = 1/F(x) on a regular N-dimensional Cartesian grid,
// producing a scalar field of arrival times — equivalently, signed or
// unsigned distances — from a prescribed boundary condition. It
// implements the Fast Marching Method: a single-pass, O(M log M)
// algorithm that propagates distance information monotonically outward
// from known-value cells through an ordered narrow band.
//
// The two entry points, both in package fmm, are pure functions of their
// arguments and allocate no state beyond the returned buffer:
//
//	fmm.UnsignedDistance(size, spacing, speedField, seedIndices, seedDistances, algorithm)
//	fmm.SignedDistance(size, spacing, speedField, seedIndices, seedDistances, algorithm)
//
// Under the hood, the engine is organized bottom-up:
//
//	gridspace/   — non-owning N-dimensional grid view, face/vertex neighbor offsets
//	fmerr/       — the engine's single error taxonomy
//	distance/    — the max-float "unfrozen" sentinel and frozen-cell predicate
//	eikonal/     — the local quadratic solver, uniform and per-cell speed, first- and high-order
//	narrowband/  — the (distance, index) min-priority queue
//	seed/        — boundary-condition validation and installation
//	components/  — connected-components labelling and dilation-band extraction, signed driver only
//	march/       — the freeze-smallest/relax-neighbors main loop and initial-band builders
//	fmm/         — the two driver entry points
//
// A grid with N dimensions, once its size, spacing and seed set are
// validated, is marched to completion in one pass; there is no
// incremental update, no re-entrancy and no parallelism (see each
// package's doc comment for the invariants it upholds).
package fastmarch
