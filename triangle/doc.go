// SPDX-License-Identifier: MIT

// Package triangle maps triangular matrix coordinates onto packed one-dimensional storage.
//
// What:
//
//   - Layout pairs an Orientation (Upper or Lower) with the axis length n of a
//     conceptual n×n matrix and computes, by pure arithmetic, where every
//     element of that half (diagonal included) lives in a flat collection of
//     length TriNum(n) = n(n+1)/2.
//   - View and Matrix bind a Layout to an externally owned storage collaborator
//     (any Storage / MutableStorage, or a plain []T through Slice) and read or
//     write elements by (row, col).
//   - Checked wraps a Layout and validates coordinates before delegating, for
//     callers that want recoverable errors instead of unspecified results.
//
// Why:
//
//   - Symmetric data (distance tables, covariance, pairwise scores) only needs
//     one half of the square; packing halves the memory and keeps rows contiguous.
//
// Coordinate convention:
//
//	Upper (row ≤ col), n=4:      Lower (row ≥ col), n=4:
//
//	  0  1  2  3                   0
//	     4  5  6                   1  2
//	        7  8                   3  4  5
//	           9                   6  7  8  9
//
//	Upper: pos = RowStart(row) + (col - row), RowStart(i) = i·n − i(i−1)/2
//	Lower: pos = RowStart(row) + col,         RowStart(i) = i(i+1)/2
//
// Complexity:
//
//   - ElementIndex, RowStart, ColStart, Coord: O(1).
//   - RowIndices / ColIndices: O(1) to build, O(length) to drain; every call of
//     the returned sequence recomputes from (orientation, n, index), so sequences
//     are restartable and never share a cursor.
//
// Errors:
//
//   - ErrInvalidCoordinate: row/col outside [0,n) or on the wrong side of the diagonal.
//   - ErrOutOfRange: packed position outside [0, TriNum(n)).
//   - ErrBadShape, ErrBadOrientation: invalid Layout parameters.
//   - ErrNilStorage, ErrStorageLength: unusable storage collaborator.
//   - ErrNotSquare: Pack input is not n×n.
//
// Concurrency:
//
//	Layouts are immutable values and safe for concurrent use. The storage
//	collaborator is owned by the caller: any number of goroutines may read
//	through a View at once, or exactly one may write through a Matrix, never
//	both. The package takes no locks.
package triangle
