// Package components implements the flood-fill and dilation analysis the
// signed distance driver uses to tell inside from outside: connected
// components under a caller-chosen adjacency, and the dilation shells
// (bands) surrounding each component, classified by bounding-box
// hypervolume into one outer band and zero or more inner bands.
package components
