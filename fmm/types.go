package fmm

import "github.com/eikonal-go/fastmarch/eikonal"

// Algorithm selects the accuracy of the local Eikonal solver used by both
// drivers.
type Algorithm int

const (
	// FirstOrder uses a one-sided difference against the nearest frozen
	// neighbor along each axis.
	FirstOrder Algorithm = iota
	// HighOrder additionally uses the two-step neighbor when available and
	// monotonically upwind, giving O(h^2) accuracy on smooth regions.
	HighOrder
)

func (a Algorithm) order() eikonal.Order {
	if a == HighOrder {
		return eikonal.HighOrder
	}
	return eikonal.FirstOrder
}
