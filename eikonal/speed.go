package eikonal

import (
	"math"

	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
)

// Speed supplies the local propagation speed F(x) the solver divides into
// the Eikonal equation |grad T| = 1/F(x). Two implementations exist below,
// a uniform scalar and a per-cell grid — a small interface rather than a
// boolean flag, so Solver need not branch on which kind it holds.
type Speed interface {
	// At returns the speed at idx. FieldSpeed propagates
	// gridspace.ErrIndexOutOfBounds for an out-of-range idx; UniformSpeed
	// never errors.
	At(idx gridspace.Index) (float64, error)
}

// UniformSpeed is a single positive, finite speed shared by every cell.
type UniformSpeed float64

// At always returns the constant speed value.
func (s UniformSpeed) At(gridspace.Index) (float64, error) {
	return float64(s), nil
}

// FieldSpeed reads a per-cell speed from a dense grid matching the
// distance grid's shape.
type FieldSpeed struct {
	view *gridspace.View[float64]
}

// NewFieldSpeed wraps view as a Speed.
func NewFieldSpeed(view *gridspace.View[float64]) FieldSpeed {
	return FieldSpeed{view: view}
}

// At looks up the speed at idx in the underlying grid.
func (s FieldSpeed) At(idx gridspace.Index) (float64, error) {
	return s.view.At(idx)
}

// ValidateUniformSpeed rejects a non-positive or NaN scalar speed.
func ValidateUniformSpeed(s float64) error {
	if math.IsNaN(s) || s <= 0 {
		return fmerr.Newf(fmerr.InvalidSpeed, "speed=%v", s)
	}
	return nil
}

// ValidateFieldSpeed rejects a speed buffer containing any non-positive or
// NaN value, reporting the first offending cell's linear index.
func ValidateFieldSpeed(buf []float64) error {
	for i, s := range buf {
		if math.IsNaN(s) || s <= 0 {
			return fmerr.Newf(fmerr.InvalidSpeed, "speed[%d]=%v", i, s)
		}
	}
	return nil
}
