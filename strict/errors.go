// SPDX-License-Identifier: MIT
package strict

import (
	"errors"
	"fmt"

	"github.com/cedtwo/triangle-matrix/triangle"
)

var (
	// ErrDiagonal indicates access to a diagonal element, which strict
	// layouts do not store. It wraps triangle.ErrInvalidCoordinate.
	ErrDiagonal = fmt.Errorf("strict: diagonal element not represented: %w", triangle.ErrInvalidCoordinate)

	// ErrReadOnly indicates a write through a Symmetric whose storage only
	// implements triangle.Storage.
	ErrReadOnly = errors.New("strict: storage is read-only")
)

// strictErrorf wraps an underlying error with method context.
func strictErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, a, b, err)
}
