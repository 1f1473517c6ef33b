// Package fmm exposes the two pure entry points of the engine —
// UnsignedDistance and SignedDistance — that validate their inputs, wire
// together a Solver, an initial narrow band and a Marcher, and return a
// dense distance buffer.
//
// Grid size, spacing and speed are checked before the distance grid is
// allocated; seed checks (and, for SignedDistance, the open-component
// check) run after that allocation but before marching begins. A rejected
// call returns a nil buffer, so it never hands back a partially built
// grid.
package fmm
