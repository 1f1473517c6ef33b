package fmm

import (
	"github.com/eikonal-go/fastmarch/eikonal"
	"github.com/eikonal-go/fastmarch/fmerr"
	"github.com/eikonal-go/fastmarch/gridspace"
)

// SpeedField is either a single uniform scalar speed or a per-cell speed
// buffer matching the grid's linear extent. Build one with
// UniformSpeedField or VaryingSpeedField.
type SpeedField struct {
	uniform float64
	field   []float64
	varying bool
}

// UniformSpeedField returns a SpeedField backed by a single scalar speed
// shared by every cell.
func UniformSpeedField(s float64) SpeedField {
	return SpeedField{uniform: s}
}

// VaryingSpeedField returns a SpeedField backed by a per-cell speed
// buffer. buf must have one entry per grid cell, in the same row-major
// layout as the distance buffer.
func VaryingSpeedField(buf []float64) SpeedField {
	return SpeedField{field: buf, varying: true}
}

// validate rejects a speed field with the wrong length, or containing any
// non-positive or NaN value, before any grid is allocated.
func (f SpeedField) validate(size gridspace.Size) error {
	if !f.varying {
		return eikonal.ValidateUniformSpeed(f.uniform)
	}
	if len(f.field) != size.LinearExtent() {
		return fmerr.Newf(fmerr.InvalidSpeed, "speed field has %d cells, grid has %d", len(f.field), size.LinearExtent())
	}
	return eikonal.ValidateFieldSpeed(f.field)
}

// resolve converts f into the eikonal.Speed the solver consumes.
func (f SpeedField) resolve(size gridspace.Size) (eikonal.Speed, error) {
	if !f.varying {
		return eikonal.UniformSpeed(f.uniform), nil
	}
	view, err := gridspace.New(size, f.field)
	if err != nil {
		return nil, err
	}
	return eikonal.NewFieldSpeed(view), nil
}
