// Package narrowband implements the min-priority queue of (distance,
// index) pairs the marcher drains: push freely, pop the smallest, and
// tolerate stale entries for an index that was already frozen by an
// earlier pop.
//
// Built on container/heap with a "lazy decrease-key" tolerance of
// duplicate entries for one index rather than a true decrease-key heap —
// a simple min-heap is both correct and faster here.
package narrowband
