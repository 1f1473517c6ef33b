// Package gridspace provides a non-owning, N-dimensional view over a
// linear buffer, plus the face- and vertex-neighbor offset tables the rest
// of the fastmarch engine walks.
//
// What:
//
//   - View[T] wraps a []T with a Size tuple, computing row-major strides
//     once at construction and translating Index tuples to linear offsets.
//   - FaceOffsets(n) returns the 2n unit offsets ±e_i for an n-dimensional
//     grid; VertexOffsets(n) returns all 3^n-1 non-zero offsets in
//     {-1,0,1}^n.
//
// Why:
//
//   - Every other package in this module (eikonal, narrowband, seed,
//     components, march) addresses cells by Index and needs the same
//     bounds-checked translation to a linear buffer slot; centralizing it
//     here keeps that arithmetic in one place.
//
// Complexity:
//
//   - View construction: O(len(size)).
//   - At/Set: O(len(size)) to compute the linear offset, O(1) to
//     dereference.
//   - FaceOffsets: O(n). VertexOffsets: O(3^n).
//
// Errors:
//
//   - ErrZeroDimension: a Size component is <= 0.
//   - ErrBufferSizeMismatch: buffer length != product of Size.
//   - ErrIndexOutOfBounds: At/Set called with an Index outside the view.
package gridspace
