package fmerr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per Kind. Wrap these with fmt.Errorf("%w: ...", Err...)
// or with New/Newf for structured context; errors.Is(err, fmerr.ErrSeedEmpty)
// keeps working either way.
var (
	ErrInvalidGridSize      = errors.New("fastmarch: grid size has a non-positive element")
	ErrInvalidGridSpacing   = errors.New("fastmarch: grid spacing has a non-positive or NaN element")
	ErrInvalidSpeed         = errors.New("fastmarch: speed is non-positive or NaN")
	ErrSeedMismatch         = errors.New("fastmarch: seed indices and distances have different lengths")
	ErrSeedEmpty            = errors.New("fastmarch: seed list is empty")
	ErrSeedOutOfBounds      = errors.New("fastmarch: seed index is outside the grid")
	ErrSeedDuplicate        = errors.New("fastmarch: duplicate seed index")
	ErrSeedDistanceRejected = errors.New("fastmarch: seed distance rejected by predicate")
	ErrWholeGridFrozen      = errors.New("fastmarch: seed set already covers the entire grid")
	ErrOpenComponent        = errors.New("fastmarch: connected component has only one dilation band")
	ErrUnsolvableQuadratic  = errors.New("fastmarch: eikonal quadratic has no valid root")
	ErrIncompleteMarch      = errors.New("fastmarch: march finished with unfrozen cells remaining")
)

var sentinels = map[Kind]error{
	InvalidGridSize:       ErrInvalidGridSize,
	InvalidGridSpacing:    ErrInvalidGridSpacing,
	InvalidSpeed:          ErrInvalidSpeed,
	SeedMismatch:          ErrSeedMismatch,
	SeedEmpty:             ErrSeedEmpty,
	SeedOutOfBounds:       ErrSeedOutOfBounds,
	SeedDuplicate:         ErrSeedDuplicate,
	SeedDistanceRejected:  ErrSeedDistanceRejected,
	WholeGridFrozen:       ErrWholeGridFrozen,
	OpenComponent:         ErrOpenComponent,
	UnsolvableQuadratic:   ErrUnsolvableQuadratic,
	IncompleteMarch:       ErrIncompleteMarch,
}

// Error carries a Kind plus optional, human-readable context (an offending
// index rendered as e.g. "[2 3]", or a rejected value) about a single
// failure. It unwraps to the Kind's sentinel error so callers can keep
// using errors.Is against the package-level Err* values.
type Error struct {
	Kind    Kind
	Context string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Context == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.cause.Error(), e.Context)
}

// Unwrap exposes the underlying sentinel so errors.Is/errors.As work
// against the package-level Err* values.
func (e *Error) Unwrap() error {
	return e.cause
}

// New returns an *Error for the given Kind with no additional context.
func New(kind Kind) error {
	return &Error{Kind: kind, cause: sentinels[kind]}
}

// Newf returns an *Error for the given Kind with a formatted context
// string, e.g. fmerr.Newf(fmerr.SeedOutOfBounds, "index %v", idx).
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Context: fmt.Sprintf(format, args...), cause: sentinels[kind]}
}
