// Package distance defines the shared vocabulary for arrival-time values
// that every other fastmarch package builds on: the "unfrozen" sentinel,
// the frozen predicate, and the dense buffer type a driver ultimately
// returns.
//
// A cell is frozen iff its value is strictly less than Sentinel. Sentinel
// doubles as "no distance computed yet" and "outside the reachable set";
// NaN must never be used for either meaning.
package distance
