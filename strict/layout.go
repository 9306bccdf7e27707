// SPDX-License-Identifier: MIT
package strict

import (
	"fmt"
	"iter"

	"github.com/cedtwo/triangle-matrix/triangle"
)

// Layout is a triangle without its diagonal over an N×N matrix, N ≥ 1.
// The zero value is the empty strict upper triangle of N == 1.
type Layout struct {
	core triangle.Layout // axis N−1, same orientation
}

// NewLayout returns the strict layout of orientation o over an n×n matrix.
// It fails with triangle.ErrBadShape when n < 1.
func NewLayout(o triangle.Orientation, n int) (Layout, error) {
	if n < 1 {
		return Layout{}, fmt.Errorf("NewLayout(%d): axis must be >= 1: %w", n, triangle.ErrBadShape)
	}
	core, err := triangle.NewLayout(o, n-1)
	if err != nil {
		return Layout{}, fmt.Errorf("NewLayout(%d): %w", n, err)
	}

	return Layout{core: core}, nil
}

// NewUpper returns the strict upper layout (row < col) over n×n. Panics if n < 1.
func NewUpper(n int) Layout { return mustLayout(triangle.Upper, n) }

// NewLower returns the strict lower layout (row > col) over n×n. Panics if n < 1.
func NewLower(n int) Layout { return mustLayout(triangle.Lower, n) }

func mustLayout(o triangle.Orientation, n int) Layout {
	l, err := NewLayout(o, n)
	if err != nil {
		panic(err)
	}

	return l
}

// FromCore returns the strict layout whose packed storage is that of core:
// the axis grows by one and the diagonal disappears.
func FromCore(core triangle.Layout) Layout {
	return Layout{core: core}
}

// N returns the axis length of the full matrix.
func (l Layout) N() int { return l.core.N() + 1 }

// Core returns the diagonal-inclusive layout of axis N−1 backing l.
func (l Layout) Core() triangle.Layout { return l.core }

// Orientation returns the packed half.
func (l Layout) Orientation() triangle.Orientation { return l.core.Orientation() }

// Len returns the required storage length, N(N−1)/2.
func (l Layout) Len() int { return l.core.Len() }

// Contains reports whether (row, col) is strictly on the packed side of the
// diagonal. Axis bounds are not checked.
func (l Layout) Contains(row, col int) bool {
	if l.core.Orientation() == triangle.Upper {
		return row < col
	}

	return row > col
}

// toCore shifts (row, col) onto the backing layout.
func (l Layout) toCore(row, col int) (int, int) {
	if l.core.Orientation() == triangle.Upper {
		return row, col - 1
	}

	return row - 1, col
}

// fromCore is the inverse of toCore.
func (l Layout) fromCore(row, col int) (int, int) {
	if l.core.Orientation() == triangle.Upper {
		return row, col + 1
	}

	return row + 1, col
}

// ElementIndex returns the packed position of (row, col). Requires
// Contains(row, col) and both indices in [0, N); unchecked.
func (l Layout) ElementIndex(row, col int) int {
	r, c := l.toCore(row, col)
	return l.core.ElementIndex(r, c)
}

// RowIndices returns the ascending positions of row i, 0 ≤ i < N. The last
// Upper row and the first Lower row hold nothing and yield an empty sequence.
func (l Layout) RowIndices(i int) iter.Seq[int] {
	if l.core.Orientation() == triangle.Upper {
		if i >= l.core.N() {
			return none
		}
		return l.core.RowIndices(i)
	}
	if i == 0 {
		return none
	}

	return l.core.RowIndices(i - 1)
}

// ColIndices returns the ascending positions of column j, 0 ≤ j < N. The
// first Upper column and the last Lower column are empty.
func (l Layout) ColIndices(j int) iter.Seq[int] {
	if l.core.Orientation() == triangle.Upper {
		if j == 0 {
			return none
		}
		return l.core.ColIndices(j - 1)
	}
	if j >= l.core.N() {
		return none
	}

	return l.core.ColIndices(j)
}

// Coord returns the (row, col) stored at pos, 0 ≤ pos < Len().
func (l Layout) Coord(pos int) (row, col int) {
	return l.fromCore(l.core.Coord(pos))
}

// Coords returns every stored (row, col) in storage order.
func (l Layout) Coords() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, c := range l.core.Coords() {
			if !yield(l.fromCore(r, c)) {
				return
			}
		}
	}
}

// Validate reports whether (row, col) is addressable: both indices in
// [0, N) and strictly on the packed side of the diagonal.
//
// Errors: ErrDiagonal when row == col, triangle.ErrInvalidCoordinate otherwise.
func (l Layout) Validate(row, col int) error {
	n := l.N()
	if row < 0 || row >= n || col < 0 || col >= n {
		return strictErrorf("Validate", row, col, triangle.ErrInvalidCoordinate)
	}
	if row == col {
		return strictErrorf("Validate", row, col, ErrDiagonal)
	}
	if !l.Contains(row, col) {
		return strictErrorf("Validate", row, col, triangle.ErrInvalidCoordinate)
	}

	return nil
}

// CheckedIndex is ElementIndex after Validate.
func (l Layout) CheckedIndex(row, col int) (int, error) {
	if err := l.Validate(row, col); err != nil {
		return 0, err
	}

	return l.ElementIndex(row, col), nil
}

// none is the empty position sequence.
func none(func(int) bool) {}
