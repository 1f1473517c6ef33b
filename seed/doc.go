// Package seed validates and installs the boundary condition — the
// caller-supplied seed indices and distances — into a fresh distance
// grid.
//
// Every precondition is checked, in order, before any cell is written,
// so a rejected call leaves the grid untouched.
package seed
