// Package fmerr defines fastmarch's single error taxonomy: one Kind and
// one sentinel error per precondition or runtime failure the module can
// raise. The engine's packages return these sentinels (optionally wrapped
// in *Error for context) instead of ad-hoc errors, so callers can branch
// with errors.Is against the values exported here. The one exception is
// gridspace, which keeps its own view-level sentinels (e.g.
// gridspace.ErrIndexOutOfBounds); those can also surface through other
// packages, such as a per-cell speed lookup in eikonal.
//
// Errors are wrapped with fmt.Errorf("%w: ...", Err...) or via New/Newf
// for structured context; errors.Is keeps working either way.
package fmerr
