package distance

import "math"

// Sentinel marks a cell as not yet frozen: the maximum finite float64.
// Using the maximum finite value rather than +Inf keeps every unfrozen
// cell representable and comparable without special-casing infinities in
// the solver's arithmetic.
const Sentinel = math.MaxFloat64

// Buffer is a dense, row-major sequence of arrival-time values, one per
// grid cell, matching the layout of the gridspace.View it backs.
type Buffer = []float64

// Frozen reports whether d represents a computed distance rather than the
// Sentinel placeholder. NaN is never frozen.
func Frozen(d float64) bool {
	return d < Sentinel
}

// NewBuffer returns a Buffer of the given length, every cell initialized
// to Sentinel (i.e. unfrozen).
func NewBuffer(n int) Buffer {
	buf := make(Buffer, n)
	for i := range buf {
		buf[i] = Sentinel
	}
	return buf
}
