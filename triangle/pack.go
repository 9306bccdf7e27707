// SPDX-License-Identifier: MIT

package triangle

// Pack copies the packed half of an n×n square, where n == layout.N(), into a
// fresh slice of length TriNum(n) ordered as layout prescribes. Elements on
// the other side of the diagonal are ignored.
//
// Errors: ErrNotSquare if square does not have n rows of n columns.
// Complexity: O(n²) validation, O(TriNum(n)) copy.
func Pack[T any](layout Layout, square [][]T) ([]T, error) {
	n := layout.N()
	if len(square) != n {
		return nil, accessorErrorf("Pack: rows", ErrNotSquare)
	}
	for _, r := range square {
		if len(r) != n {
			return nil, accessorErrorf("Pack: cols", ErrNotSquare)
		}
	}

	packed := make([]T, 0, layout.Len())
	for row, col := range layout.Coords() {
		packed = append(packed, square[row][col])
	}

	return packed, nil
}

// Unpack expands v into a freshly allocated n×n square. Cells outside the
// packed half are set to fill.
// Complexity: O(n²).
func Unpack[T any](v *View[T], fill T) [][]T {
	n := v.N()
	square := make([][]T, n)
	for i := range square {
		square[i] = make([]T, n)
		for j := range square[i] {
			square[i][j] = fill
		}
	}
	for c, val := range v.All() {
		square[c.Row][c.Col] = val
	}

	return square
}
