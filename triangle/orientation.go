// SPDX-License-Identifier: MIT

package triangle

import "strconv"

// Orientation selects which half of the square matrix is packed.
// The diagonal always belongs to the packed half.
type Orientation uint8

const (
	// Upper packs every (row, col) with row ≤ col, row by row, each row from
	// the diagonal rightwards.
	Upper Orientation = iota

	// Lower packs every (row, col) with row ≥ col, row by row, each row from
	// column 0 up to the diagonal.
	Lower
)

// String returns "upper", "lower", or "Orientation(<n>)" for unknown values.
func (o Orientation) String() string {
	switch o {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "Orientation(" + strconv.Itoa(int(o)) + ")"
	}
}

// Valid reports whether o is Upper or Lower.
func (o Orientation) Valid() bool {
	return o == Upper || o == Lower
}

// Contains reports whether (row, col) satisfies the ordering predicate of o.
// It does not look at the axis bounds; see ValidateCoord for the full check.
func (o Orientation) Contains(row, col int) bool {
	if o == Upper {
		return row <= col
	}

	return row >= col
}

// Transpose returns the opposite orientation. Element (row, col) of an Upper
// triangle is element (col, row) of the transposed Lower one.
func (o Orientation) Transpose() Orientation {
	if o == Upper {
		return Lower
	}

	return Upper
}

// Shape is the capability that exposes the axis length n of a conceptual n×n
// matrix. N must be pure and return the same value on every call.
type Shape interface {
	N() int
}
