// SPDX-License-Identifier: MIT
// Package triangle: accessor capability.
//
// Purpose:
//   - Bind a Layout to a caller-owned storage collaborator and address
//     elements by (row, col).
//   - View borrows the storage for reads; Matrix borrows it exclusively for
//     writes. Neither copies, grows or caches anything from it.
//
// Contract:
//   - Unchecked methods (Element, SetElement, Update, ElementPtr) inherit the
//     Layout preconditions and are meant for hot loops over known-valid
//     coordinates.
//   - Checked methods (At, Set) validate first and return wrapped sentinels.
//   - Many goroutines may read through Views at once, or one may write
//     through a Matrix; the caller enforces that, no locks are taken here.

package triangle

import (
	"fmt"
	"iter"
)

// accessorErrorf wraps an underlying error with constructor/method context.
func accessorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Coord is one (row, col) coordinate of the conceptual square matrix.
type Coord struct {
	Row, Col int
}

// View is a read accessor over a packed triangle.
type View[T any] struct {
	layout Layout     // orientation and axis length
	store  Storage[T] // borrowed, never copied
}

// NewView binds layout to store for reading.
// Stage 1 (Validate): store non-nil and of length TriNum(n).
// Stage 2 (Finalize): return the accessor.
// Complexity: O(1).
func NewView[T any](layout Layout, store Storage[T]) (*View[T], error) {
	if err := ValidateStorage(layout, store); err != nil {
		return nil, accessorErrorf("NewView", err)
	}

	return &View[T]{layout: layout, store: store}, nil
}

// Layout returns the bound layout.
func (v *View[T]) Layout() Layout { return v.layout }

// N returns the axis length. View satisfies Shape.
func (v *View[T]) N() int { return v.layout.n }

// RowIndices returns the packed positions of row i. See Layout.RowIndices.
func (v *View[T]) RowIndices(i int) iter.Seq[int] { return v.layout.RowIndices(i) }

// ColIndices returns the packed positions of column j. See Layout.ColIndices.
func (v *View[T]) ColIndices(j int) iter.Seq[int] { return v.layout.ColIndices(j) }

// ElementIndex returns the packed position of (row, col). See Layout.ElementIndex.
func (v *View[T]) ElementIndex(row, col int) int { return v.layout.ElementIndex(row, col) }

// Element returns the value at (row, col) without validation.
// Complexity: O(1).
func (v *View[T]) Element(row, col int) T {
	return v.store.At(v.layout.ElementIndex(row, col))
}

// At returns the value at (row, col), or ErrInvalidCoordinate if (row, col)
// is outside the matrix or on the unpacked side of the diagonal.
// Complexity: O(1).
func (v *View[T]) At(row, col int) (T, error) {
	pos, err := v.layout.Checked().ElementIndex(row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return v.store.At(pos), nil
}

// Row returns the values of row i in ascending column order. Requires 0 ≤ i < n.
func (v *View[T]) Row(i int) iter.Seq[T] {
	return v.values(v.layout.RowIndices(i))
}

// Col returns the values of column j in ascending row order. Requires 0 ≤ j < n.
func (v *View[T]) Col(j int) iter.Seq[T] {
	return v.values(v.layout.ColIndices(j))
}

// All returns every (coordinate, value) pair in storage order.
// Complexity: O(TriNum(n)) to drain.
func (v *View[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		pos := 0
		for row, col := range v.layout.Coords() {
			if !yield(Coord{Row: row, Col: col}, v.store.At(pos)) {
				return
			}
			pos++
		}
	}
}

// values maps a position sequence onto the stored values.
func (v *View[T]) values(positions iter.Seq[int]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := range positions {
			if !yield(v.store.At(pos)) {
				return
			}
		}
	}
}

// Matrix is the exclusive accessor: everything View offers plus writes.
type Matrix[T any] struct {
	View[T]
	mut MutableStorage[T] // same collaborator as View.store, write side
}

// NewMatrix binds layout to store for reading and writing.
// Stage 1 (Validate): store non-nil and of length TriNum(n).
// Stage 2 (Finalize): return the accessor.
// Complexity: O(1).
func NewMatrix[T any](layout Layout, store MutableStorage[T]) (*Matrix[T], error) {
	if err := ValidateStorage[T](layout, store); err != nil {
		return nil, accessorErrorf("NewMatrix", err)
	}

	return &Matrix[T]{View: View[T]{layout: layout, store: store}, mut: store}, nil
}

// SetElement stores val at (row, col) without validation.
// Complexity: O(1).
func (m *Matrix[T]) SetElement(row, col int, val T) {
	m.mut.Set(m.layout.ElementIndex(row, col), val)
}

// Set stores val at (row, col), or returns ErrInvalidCoordinate.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, val T) error {
	pos, err := m.layout.Checked().ElementIndex(row, col)
	if err != nil {
		return err
	}
	m.mut.Set(pos, val)

	return nil
}

// Update replaces the value at (row, col) with fn(old), resolving the packed
// position once. No validation.
func (m *Matrix[T]) Update(row, col int, fn func(T) T) {
	pos := m.layout.ElementIndex(row, col)
	m.mut.Set(pos, fn(m.mut.At(pos)))
}

// ElementPtr returns a pointer to the element at (row, col) when the storage
// implements Addressable, and nil otherwise. No validation. The pointer is
// valid for as long as the caller keeps the storage alive and unresized.
func (m *Matrix[T]) ElementPtr(row, col int) *T {
	a, ok := m.mut.(Addressable[T])
	if !ok {
		return nil
	}

	return a.Ptr(m.layout.ElementIndex(row, col))
}
