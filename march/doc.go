// Package march implements the narrow-band marching loop that drains a
// priority queue of candidate cells, freezing the smallest distance at
// each step and relaxing its face neighbors, plus the initial-band
// builders that seed that loop for the unsigned and signed drivers.
//
// The main loop pops the smallest candidate, freezes it, and relaxes its
// neighbors back into the queue, one cell at a time until the queue runs
// dry.
package march
