// SPDX-License-Identifier: MIT
// Package triangle_test contains test helpers
//
// Purpose:
//   • Small deterministic fixtures shared by the layout and accessor tests.

package triangle_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/cedtwo/triangle-matrix/triangle"
)

// axisSizes covers the empty triangle, the single cell and a few irregular sizes.
var axisSizes = []int{0, 1, 2, 3, 4, 5, 8, 13}

// orientations lists both packed halves for table loops.
var orientations = []triangle.Orientation{triangle.Upper, triangle.Lower}

// sequential RETURNS a Slice of length TriNum(n) holding 0..TriNum(n)-1, so
// the value stored at every position equals the position itself.
func sequential(n int) triangle.Slice[int] {
	s := make(triangle.Slice[int], triangle.TriNum(n))
	for i := range s {
		s[i] = i
	}

	return s
}

// collect drains a position sequence into a slice (nil when empty).
func collect(seq iter.Seq[int]) []int {
	return slices.Collect(seq)
}

// mustMatrix BINDS a fresh sequential storage of axis n or fails the test.
func mustMatrix(t testing.TB, o triangle.Orientation, n int) (*triangle.Matrix[int], triangle.Slice[int]) {
	t.Helper()
	l, err := triangle.NewLayout(o, n)
	if err != nil {
		t.Fatalf("NewLayout(%v,%d): %v", o, n, err)
	}
	store := sequential(n)
	m, err := triangle.NewMatrix[int](l, store)
	if err != nil {
		t.Fatalf("NewMatrix(%v): %v", l, err)
	}

	return m, store
}

// readOnly hides the write side of a Slice so only Storage is visible.
type readOnly struct{ s triangle.Slice[int] }

func (r readOnly) Len() int { return r.s.Len() }
func (r readOnly) At(pos int) int { return r.s.At(pos) }

// mapStore is a MutableStorage that is not Addressable.
type mapStore struct {
	n    int
	vals map[int]string
}

func (m *mapStore) Len() int { return m.n }
func (m *mapStore) At(pos int) string { return m.vals[pos] }
func (m *mapStore) Set(pos int, v string) { m.vals[pos] = v }
