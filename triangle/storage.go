// SPDX-License-Identifier: MIT

package triangle

// Storage is the read side of the storage collaborator: a one-dimensional,
// caller-owned container indexed by packed position. The package never
// copies, grows or retains ownership of it.
type Storage[T any] interface {
	// Len returns the number of elements; it must equal TriNum(n).
	Len() int

	// At returns the element at packed position pos.
	At(pos int) T
}

// MutableStorage adds the write side of the collaborator.
type MutableStorage[T any] interface {
	Storage[T]

	// Set stores v at packed position pos.
	Set(pos int, v T)
}

// Addressable is implemented by storage that can hand out a pointer to an
// element in place, so callers can mutate large values without a copy.
type Addressable[T any] interface {
	Ptr(pos int) *T
}

// Slice adapts a plain []T to MutableStorage and Addressable. Converting
// does not copy: Slice(s) shares the backing array of s.
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[pos].
func (s Slice[T]) At(pos int) T { return s[pos] }

// Set assigns s[pos] = v.
func (s Slice[T]) Set(pos int, v T) { s[pos] = v }

// Ptr returns &s[pos].
func (s Slice[T]) Ptr(pos int) *T { return &s[pos] }
