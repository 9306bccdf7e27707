// SPDX-License-Identifier: MIT

// Package strict packs triangles that exclude their diagonal and builds a
// symmetric, diagonal-free adapter on top of them.
//
// What:
//
//   - Layout addresses the strict upper (row < col) or strict lower
//     (row > col) triangle of an N×N matrix. It owns no arithmetic of its
//     own: every coordinate is remapped onto a triangle.Layout of axis N−1
//     (Upper: (i, j) → (i, j−1); Lower: (i, j) → (i−1, j)).
//   - Symmetric reads and writes element (a, b) and (b, a) through the same
//     packed position, rejecting a == b with ErrDiagonal.
//
// Why:
//
//   - Pairwise relations without a meaningful self-relation (distances,
//     similarity scores, collision pairs) need N(N−1)/2 slots, not N(N+1)/2.
//
// Layout of the strict lower triangle over N=5 (core Lower, n=4):
//
//	   .
//	   0  .
//	   1  2  .
//	   3  4  5  .
//	   6  7  8  9  .
//
// Errors:
//
//   - ErrDiagonal: a == b; also matches triangle.ErrInvalidCoordinate.
//   - ErrReadOnly: Set on a Symmetric whose storage is not writable.
//   - triangle.ErrInvalidCoordinate, triangle.ErrBadShape,
//     triangle.ErrNilStorage, triangle.ErrStorageLength: as in package triangle.
package strict
