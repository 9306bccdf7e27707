// SPDX-License-Identifier: MIT
package strict

import (
	"fmt"
	"iter"

	"github.com/cedtwo/triangle-matrix/triangle"
)

// Symmetric presents a strict triangle as a symmetric N×N matrix with no
// diagonal: (a, b) and (b, a) resolve to the same packed position. Like the
// accessors of package triangle it borrows its storage and holds no other state.
type Symmetric[T any] struct {
	layout Layout
	store  triangle.Storage[T]
}

// NewSymmetric binds layout to store, which must hold exactly layout.Len()
// elements. Writes through Set additionally require store to implement
// triangle.MutableStorage.
func NewSymmetric[T any](layout Layout, store triangle.Storage[T]) (*Symmetric[T], error) {
	if err := triangle.ValidateStorage(layout.core, store); err != nil {
		return nil, fmt.Errorf("NewSymmetric: %w", err)
	}

	return &Symmetric[T]{layout: layout, store: store}, nil
}

// Layout returns the underlying strict layout.
func (s *Symmetric[T]) Layout() Layout { return s.layout }

// N returns the axis length of the symmetric matrix.
func (s *Symmetric[T]) N() int { return s.layout.N() }

// order moves (a, b) onto the packed side of the diagonal.
func (s *Symmetric[T]) order(a, b int) (row, col int) {
	if (s.layout.Orientation() == triangle.Upper) == (a < b) {
		return a, b
	}

	return b, a
}

// ElementIndex returns the packed position shared by (a, b) and (b, a).
// Requires a != b, both in [0, N); unchecked.
func (s *Symmetric[T]) ElementIndex(a, b int) int {
	return s.layout.ElementIndex(s.order(a, b))
}

// Index is the validating form of ElementIndex.
//
// Errors: ErrDiagonal when a == b, triangle.ErrInvalidCoordinate when an
// index is outside [0, N).
func (s *Symmetric[T]) Index(a, b int) (int, error) {
	row, col := s.order(a, b)
	pos, err := s.layout.CheckedIndex(row, col)
	if err != nil {
		return 0, fmt.Errorf("Symmetric.Index: %w", err)
	}

	return pos, nil
}

// Element returns the value at (a, b) without validation.
func (s *Symmetric[T]) Element(a, b int) T {
	return s.store.At(s.ElementIndex(a, b))
}

// At returns the value at (a, b) == (b, a).
func (s *Symmetric[T]) At(a, b int) (T, error) {
	pos, err := s.Index(a, b)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.store.At(pos), nil
}

// Set stores v at (a, b), which is also (b, a).
//
// Errors: ErrReadOnly, ErrDiagonal, triangle.ErrInvalidCoordinate.
func (s *Symmetric[T]) Set(a, b int, v T) error {
	mut, ok := s.store.(triangle.MutableStorage[T])
	if !ok {
		return strictErrorf("Symmetric.Set", a, b, ErrReadOnly)
	}
	pos, err := s.Index(a, b)
	if err != nil {
		return err
	}
	mut.Set(pos, v)

	return nil
}

// RowIndices returns the positions of every off-diagonal element of row i,
// ordered by column. Positions are not ascending: the part left of the
// diagonal comes from one packed column, the part right of it from one
// packed row (or the other way round for Lower). Requires 0 ≤ i < N.
func (s *Symmetric[T]) RowIndices(i int) iter.Seq[int] {
	if s.layout.Orientation() == triangle.Upper {
		return chain(s.layout.ColIndices(i), s.layout.RowIndices(i))
	}

	return chain(s.layout.RowIndices(i), s.layout.ColIndices(i))
}

// ColIndices equals RowIndices(j) by symmetry.
func (s *Symmetric[T]) ColIndices(j int) iter.Seq[int] {
	return s.RowIndices(j)
}

// Row returns the off-diagonal values of row i ordered by column.
func (s *Symmetric[T]) Row(i int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := range s.RowIndices(i) {
			if !yield(s.store.At(pos)) {
				return
			}
		}
	}
}

// chain yields a then b.
func chain(a, b iter.Seq[int]) iter.Seq[int] {
	return func(yield func(int) bool) {
		for p := range a {
			if !yield(p) {
				return
			}
		}
		for p := range b {
			if !yield(p) {
				return
			}
		}
	}
}
