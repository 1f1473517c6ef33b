package fmerr

// Kind identifies which precondition or runtime failure occurred.
type Kind int

const (
	// InvalidGridSize indicates a grid size with a zero (or negative)
	// element.
	InvalidGridSize Kind = iota
	// InvalidGridSpacing indicates a grid spacing component that is
	// non-positive or NaN.
	InvalidGridSpacing
	// InvalidSpeed indicates a speed value (scalar or per-cell) that is
	// non-positive or NaN.
	InvalidSpeed
	// SeedMismatch indicates seed indices and seed distances of unequal
	// length.
	SeedMismatch
	// SeedEmpty indicates an empty seed list.
	SeedEmpty
	// SeedOutOfBounds indicates a seed index outside the grid.
	SeedOutOfBounds
	// SeedDuplicate indicates the same index appearing twice in the seed
	// list.
	SeedDuplicate
	// SeedDistanceRejected indicates a seed distance that failed the
	// driver's predicate (e.g. negative for an unsigned distance, or NaN).
	SeedDistanceRejected
	// WholeGridFrozen indicates the seed set already covers every cell.
	WholeGridFrozen
	// OpenComponent indicates a signed-distance connected component with
	// only one dilation band, so inside/outside cannot be disambiguated.
	OpenComponent
	// UnsolvableQuadratic indicates the local Eikonal quadratic had a
	// negative discriminant or a negative root.
	UnsolvableQuadratic
	// IncompleteMarch indicates the marcher terminated with at least one
	// cell still unfrozen.
	IncompleteMarch
)

// String renders the Kind's name, e.g. "SeedOutOfBounds".
func (k Kind) String() string {
	switch k {
	case InvalidGridSize:
		return "InvalidGridSize"
	case InvalidGridSpacing:
		return "InvalidGridSpacing"
	case InvalidSpeed:
		return "InvalidSpeed"
	case SeedMismatch:
		return "SeedMismatch"
	case SeedEmpty:
		return "SeedEmpty"
	case SeedOutOfBounds:
		return "SeedOutOfBounds"
	case SeedDuplicate:
		return "SeedDuplicate"
	case SeedDistanceRejected:
		return "SeedDistanceRejected"
	case WholeGridFrozen:
		return "WholeGridFrozen"
	case OpenComponent:
		return "OpenComponent"
	case UnsolvableQuadratic:
		return "UnsolvableQuadratic"
	case IncompleteMarch:
		return "IncompleteMarch"
	default:
		return "Unknown"
	}
}
