// SPDX-License-Identifier: MIT

package triangle

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Checked is the validating counterpart of Layout. Every method checks its
// arguments with the validators and only then delegates to the unchecked
// arithmetic, returning a wrapped ErrInvalidCoordinate or ErrOutOfRange
// instead of an unspecified result.
type Checked struct {
	layout Layout
}

// Checked returns the validating wrapper of l.
func (l Layout) Checked() Checked {
	return Checked{layout: l}
}

// Layout returns the wrapped layout.
func (c Checked) Layout() Layout {
	return c.layout
}

// checkedErrorf wraps an underlying error with Checked method context,
// e.g. "Checked.ElementIndex(2,1): ...".
func checkedErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for k, a := range args {
		parts[k] = strconv.Itoa(a)
	}

	return fmt.Errorf("Checked.%s(%s): %w", method, strings.Join(parts, ","), err)
}

// ElementIndex returns the packed position of (row, col) after ValidateCoord.
// Complexity: O(1).
func (c Checked) ElementIndex(row, col int) (int, error) {
	if err := ValidateCoord(c.layout, row, col); err != nil {
		return 0, checkedErrorf("ElementIndex", err, row, col)
	}

	return c.layout.ElementIndex(row, col), nil
}

// RowIndices returns the positions of row i after ValidateAxis.
func (c Checked) RowIndices(i int) (iter.Seq[int], error) {
	if err := ValidateAxis(c.layout, i); err != nil {
		return nil, checkedErrorf("RowIndices", err, i)
	}

	return c.layout.RowIndices(i), nil
}

// ColIndices returns the positions of column j after ValidateAxis.
func (c Checked) ColIndices(j int) (iter.Seq[int], error) {
	if err := ValidateAxis(c.layout, j); err != nil {
		return nil, checkedErrorf("ColIndices", err, j)
	}

	return c.layout.ColIndices(j), nil
}

// Coord returns the (row, col) stored at pos after ValidatePosition.
func (c Checked) Coord(pos int) (row, col int, err error) {
	if err = ValidatePosition(c.layout, pos); err != nil {
		return 0, 0, checkedErrorf("Coord", err, pos)
	}
	row, col = c.layout.Coord(pos)

	return row, col, nil
}
