// SPDX-License-Identifier: MIT
// Package triangle: index arithmetic.
//
// Purpose:
//   - Compute packed positions for (row, col), rows and columns of a triangle.
//   - Stay branch-free apart from the single orientation dispatch; no method
//     here validates its arguments (see checked.go for the validating path).
//
// Determinism & Performance:
//   - All methods are pure functions of (orientation, n, arguments).
//   - Nothing allocates except the closures backing the returned sequences.

package triangle

import (
	"fmt"
	"iter"
	"math"
)

// TriNum returns the n-th triangular number n(n+1)/2: the number of packed
// elements of an n×n triangle including its diagonal. TriNum(0) == 0.
// Defined for 0 ≤ n where n(n+1) fits in an int; NewLayout rejects larger n.
// Complexity: O(1).
func TriNum(n int) int {
	return n * (n + 1) / 2
}

// layoutErrorf wraps an underlying error with the given call-site tag.
func layoutErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Layout describes one packed triangle: its orientation and its axis length.
// The zero value is an Upper layout with n == 0. Layouts are immutable and
// cheap to copy; pass them by value.
type Layout struct {
	orient Orientation // Upper or Lower, fixed at construction
	n      int         // axis length, >= 0
}

// NewLayout returns the layout of an n×n triangle with orientation o.
// Stage 1 (Validate): o must be Upper or Lower, n must be >= 0 and small
// enough that n(n+1) fits in an int.
// Stage 2 (Finalize): return the immutable Layout value.
// Complexity: O(1).
func NewLayout(o Orientation, n int) (Layout, error) {
	if !o.Valid() {
		return Layout{}, layoutErrorf("NewLayout", ErrBadOrientation)
	}
	if n < 0 || !fitsTriNum(n) {
		return Layout{}, layoutErrorf("NewLayout", ErrBadShape)
	}

	return Layout{orient: o, n: n}, nil
}

// NewUpper returns the Upper layout of axis length n.
// It panics if NewLayout would reject n.
func NewUpper(n int) Layout {
	return mustLayout(Upper, n)
}

// NewLower returns the Lower layout of axis length n.
// It panics if NewLayout would reject n.
func NewLower(n int) Layout {
	return mustLayout(Lower, n)
}

// fitsTriNum reports whether n(n+1) is representable, so TriNum(n) and every
// RowStart of an n-axis layout are exact.
func fitsTriNum(n int) bool {
	return n == 0 || n <= math.MaxInt/(n+1)
}

func mustLayout(o Orientation, n int) Layout {
	l, err := NewLayout(o, n)
	if err != nil {
		panic(err)
	}

	return l
}

// N returns the axis length. Layout satisfies Shape.
func (l Layout) N() int {
	return l.n
}

// Orientation returns the packed half.
func (l Layout) Orientation() Orientation {
	return l.orient
}

// Len returns the required storage length, TriNum(n).
func (l Layout) Len() int {
	return TriNum(l.n)
}

// Transpose returns the layout of the opposite orientation with the same n.
// Element (row, col) of l corresponds to (col, row) of the result. The two
// packed orders differ once n > 2, so data must be copied across, not
// reinterpreted in place.
func (l Layout) Transpose() Layout {
	return Layout{orient: l.orient.Transpose(), n: l.n}
}

// String implements fmt.Stringer, e.g. "upper(4)".
func (l Layout) String() string {
	return fmt.Sprintf("%s(%d)", l.orient, l.n)
}

// RowStart returns the packed position of the first element of row i, which
// equals the total length of rows 0..i-1.
//
//	Upper: i·n − i(i−1)/2   (row k holds n−k elements)
//	Lower: i(i+1)/2         (row k holds k+1 elements)
//
// Defined for 0 ≤ i ≤ n; RowStart(n) == Len().
// Complexity: O(1).
func (l Layout) RowStart(i int) int {
	if l.orient == Upper {
		return i*l.n - i*(i-1)/2
	}

	return TriNum(i)
}

// ColStart returns the packed position of the first element of column j:
// (0, j) for Upper, the diagonal (j, j) for Lower.
// Complexity: O(1).
func (l Layout) ColStart(j int) int {
	if l.orient == Upper {
		return j
	}

	return TriNum(j) + j
}

// RowLen returns the number of packed elements in row i: n−i (Upper) or i+1 (Lower).
func (l Layout) RowLen(i int) int {
	if l.orient == Upper {
		return l.n - i
	}

	return i + 1
}

// ColLen returns the number of packed elements in column j: j+1 (Upper) or n−j (Lower).
func (l Layout) ColLen(j int) int {
	if l.orient == Upper {
		return j + 1
	}

	return l.n - j
}

// ElementIndex returns the packed position of (row, col).
//
//	Upper: RowStart(row) + (col − row), requires row ≤ col
//	Lower: RowStart(row) + col,         requires row ≥ col
//
// Coordinates outside [0,n) or on the wrong side of the diagonal yield an
// unspecified position; use Checked for a validated lookup.
// Complexity: O(1).
func (l Layout) ElementIndex(row, col int) int {
	if l.orient == Upper {
		return l.RowStart(row) + col - row
	}

	return l.RowStart(row) + col
}

// RowIndices returns the ascending packed positions of row i, one per column
// i..n-1 (Upper) or 0..i (Lower). Requires 0 ≤ i < n.
//
// The sequence is lazy and restartable: each range over it starts afresh.
// Complexity: O(1) to build; O(RowLen(i)) to drain.
func (l Layout) RowIndices(i int) iter.Seq[int] {
	start, length := l.RowStart(i), l.RowLen(i)

	return func(yield func(int) bool) {
		for k := 0; k < length; k++ {
			if !yield(start + k) {
				return
			}
		}
	}
}

// ColIndices returns the ascending packed positions of column j, one per row
// 0..j (Upper) or j..n-1 (Lower). Requires 0 ≤ j < n.
//
// Each position is computed directly from (row, j); the sequence keeps no
// state between runs.
// Complexity: O(1) to build; O(ColLen(j)) to drain.
func (l Layout) ColIndices(j int) iter.Seq[int] {
	first, last := 0, j // Upper: rows 0..j
	if l.orient == Lower {
		first, last = j, l.n-1 // Lower: rows j..n-1
	}

	return func(yield func(int) bool) {
		for row := first; row <= last; row++ {
			if !yield(l.ElementIndex(row, j)) {
				return
			}
		}
	}
}

// Coord is the inverse of ElementIndex: it returns the (row, col) stored at
// packed position pos. Requires 0 ≤ pos < Len().
// Complexity: O(1).
func (l Layout) Coord(pos int) (row, col int) {
	if l.orient == Lower {
		row = triRoot(pos)
		return row, pos - TriNum(row)
	}

	// Read the Upper triangle backwards: the last row has one element, the
	// one before it two, and so on, which is a Lower triangle in reverse.
	q := l.Len() - 1 - pos
	r := triRoot(q)
	k := q - TriNum(r) // offset from the end of the row
	row = l.n - 1 - r

	return row, row + r - k
}

// Coords returns every valid (row, col) of the triangle in storage order, so
// the k-th pair yielded lives at packed position k.
// Complexity: O(1) to build; O(Len()) to drain.
func (l Layout) Coords() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := 0; row < l.n; row++ {
			first, last := row, l.n-1
			if l.orient == Lower {
				first, last = 0, row
			}
			for col := first; col <= last; col++ {
				if !yield(row, col) {
					return
				}
			}
		}
	}
}

// triRoot returns the largest r with TriNum(r) ≤ p, for 0 ≤ p < Len() of a
// valid layout.
func triRoot(p int) int {
	// floor((sqrt(8p+1)-1)/2) rearranged so no intermediate exceeds 2p
	r := int(math.Sqrt(2*float64(p)+0.25) - 0.5)
	// float rounding can be off by one for very large p
	for r > 0 && TriNum(r) > p {
		r--
	}
	for TriNum(r+1) <= p {
		r++
	}

	return r
}
