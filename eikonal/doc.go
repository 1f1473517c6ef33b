// Package eikonal implements the local quadratic update at the heart of
// the fast marching method: given a focal cell, the current distance
// field and a speed value, it solves |grad T| = 1/F for T at that cell
// using only its already-frozen neighbors.
//
// Four solver variants arise from a 2x2 cross product rather than a class
// hierarchy:
//
//   - Speed: UniformSpeed (one scalar for the whole grid) or FieldSpeed
//     (one value per cell, read from a gridspace.View[float64]).
//   - Order: FirstOrder (one-sided upwind difference per axis) or
//     HighOrder (upgrades to a second-order upwind stencil per axis when
//     a monotone two-step neighbor is available).
//
// Solver combines a Speed and an Order behind one type; callers select the
// variant by constructing the right Speed and passing the right Order,
// rather than picking among four concrete types.
//
// Complexity: O(N) per Solve call, where N is the number of grid
// dimensions — each axis reads its two face neighbors and, for each frozen
// one, the cell two steps beyond it: at most four lookups per axis.
package eikonal
