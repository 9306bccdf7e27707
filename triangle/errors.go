// SPDX-License-Identifier: MIT
// Package triangle: sentinel error set.
// Every exported function returns one of these sentinels, optionally wrapped
// with call-site context via fmt.Errorf("...: %w", ErrX). Callers match with
// errors.Is. Unchecked hot paths (Layout.ElementIndex and friends) never
// return errors; validation lives in Checked and validators.go.

package triangle

import "errors"

var (
	// ErrInvalidCoordinate indicates a row or column outside [0,n), or a
	// coordinate violating the orientation's ordering predicate
	// (row > col for Upper, row < col for Lower).
	ErrInvalidCoordinate = errors.New("triangle: invalid coordinate")

	// ErrOutOfRange indicates a packed position outside [0, TriNum(n)).
	ErrOutOfRange = errors.New("triangle: position out of range")

	// ErrBadShape is returned when the axis length is negative or its
	// triangular number overflows int.
	ErrBadShape = errors.New("triangle: axis length out of range")

	// ErrBadOrientation is returned for an Orientation other than Upper or Lower.
	ErrBadOrientation = errors.New("triangle: unknown orientation")

	// ErrNilStorage indicates that a nil storage collaborator was supplied.
	ErrNilStorage = errors.New("triangle: nil storage")

	// ErrStorageLength indicates a storage collaborator whose length is not TriNum(n).
	ErrStorageLength = errors.New("triangle: storage length mismatch")

	// ErrNotSquare indicates that a square input did not have n rows of n columns.
	ErrNotSquare = errors.New("triangle: input is not n×n")
)
