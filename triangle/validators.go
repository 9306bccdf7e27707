// SPDX-License-Identifier: MIT
// Package: triangle
//
// Purpose:
//   - Single source of truth for coordinate, axis, position and storage checks.
//   - Keep Layout arithmetic free of guards by concentrating them here.
//   - Return sentinels wrapped with the validator tag so errors.Is keeps working.
//
// Note:
//   - All validators are pure and allocate nothing on the success path.

package triangle

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateCoord ensures 0 ≤ row, col < n and that (row, col) lies on the
// packed side of the diagonal for l's orientation.
//
// Errors: ErrInvalidCoordinate.
// Complexity: O(1).
func ValidateCoord(l Layout, row, col int) error {
	if row < 0 || row >= l.n {
		return validatorErrorf("ValidateCoord: row", ErrInvalidCoordinate)
	}
	if col < 0 || col >= l.n {
		return validatorErrorf("ValidateCoord: col", ErrInvalidCoordinate)
	}
	if !l.orient.Contains(row, col) {
		return validatorErrorf("ValidateCoord: "+l.orient.String(), ErrInvalidCoordinate)
	}

	return nil
}

// ValidateAxis ensures a row or column index i satisfies 0 ≤ i < n.
//
// Errors: ErrInvalidCoordinate.
// Complexity: O(1).
func ValidateAxis(l Layout, i int) error {
	if i < 0 || i >= l.n {
		return validatorErrorf("ValidateAxis", ErrInvalidCoordinate)
	}

	return nil
}

// ValidatePosition ensures 0 ≤ pos < TriNum(n).
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidatePosition(l Layout, pos int) error {
	if pos < 0 || pos >= l.Len() {
		return validatorErrorf("ValidatePosition", ErrOutOfRange)
	}

	return nil
}

// ValidateStorage ensures s is non-nil and holds exactly TriNum(n) elements.
// Only a nil interface is detected: a typed nil pointer wrapped in Storage
// (e.g. (*myStore)(nil)) is a caller error and panics in s.Len.
//
// Errors: ErrNilStorage, ErrStorageLength.
// Complexity: O(1) plus whatever s.Len costs.
func ValidateStorage[T any](l Layout, s Storage[T]) error {
	if s == nil {
		return validatorErrorf("ValidateStorage", ErrNilStorage)
	}
	if got, want := s.Len(), l.Len(); got != want {
		return validatorErrorf(fmt.Sprintf("ValidateStorage: len %d, want %d", got, want), ErrStorageLength)
	}

	return nil
}
