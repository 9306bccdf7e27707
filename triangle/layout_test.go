// Package triangle_test contains unit tests for Layout index arithmetic.
package triangle_test

import (
	"iter"
	"math"
	"strconv"
	"testing"

	"github.com/cedtwo/triangle-matrix/triangle"
	"github.com/stretchr/testify/require"
)

// TestTriNum compares TriNum against an accumulated sum 0+1+…+n.
func TestTriNum(t *testing.T) {
	acc := 0
	for n := 0; n <= 64; n++ {
		acc += n
		require.Equal(t, acc, triangle.TriNum(n), "n=%d", n)
		require.Equal(t, n*(n+1)/2, triangle.TriNum(n), "n=%d", n)
	}
	require.Equal(t, 10, triangle.TriNum(4))
}

// TestNewLayoutInvalid rejects negative axis lengths and unknown orientations.
func TestNewLayoutInvalid(t *testing.T) {
	_, err := triangle.NewLayout(triangle.Upper, -1)
	require.ErrorIs(t, err, triangle.ErrBadShape)

	_, err = triangle.NewLayout(triangle.Orientation(9), 3)
	require.ErrorIs(t, err, triangle.ErrBadOrientation)

	require.Panics(t, func() { triangle.NewUpper(-2) })
	require.Panics(t, func() { triangle.NewLower(-2) })

	// TriNum would overflow int.
	for _, o := range orientations {
		_, err = triangle.NewLayout(o, math.MaxInt)
		require.ErrorIs(t, err, triangle.ErrBadShape, "%v", o)
		_, err = triangle.NewLayout(o, math.MaxInt/2)
		require.ErrorIs(t, err, triangle.ErrBadShape, "%v", o)
	}
	require.Panics(t, func() { triangle.NewUpper(math.MaxInt) })
}

// TestLayoutAccessors checks N, Orientation, Len, String and Transpose.
func TestLayoutAccessors(t *testing.T) {
	l := triangle.NewUpper(4)
	require.Equal(t, 4, l.N())
	require.Equal(t, triangle.Upper, l.Orientation())
	require.Equal(t, 10, l.Len())
	require.Equal(t, "upper(4)", l.String())

	tr := l.Transpose()
	require.Equal(t, triangle.Lower, tr.Orientation())
	require.Equal(t, 4, tr.N())

	var zero triangle.Layout
	require.Equal(t, 0, zero.Len())
	require.Equal(t, triangle.Upper, zero.Orientation())

	var _ triangle.Shape = l
}

// TestUpperScenario pins the n=4 Upper layout:
//
//	0 1 2 3
//	  4 5 6
//	    7 8
//	      9
func TestUpperScenario(t *testing.T) {
	l := triangle.NewUpper(4)

	require.Equal(t, []int{0, 1, 2, 3}, collect(l.RowIndices(0)))
	require.Equal(t, []int{4, 5, 6}, collect(l.RowIndices(1)))
	require.Equal(t, []int{7, 8}, collect(l.RowIndices(2)))
	require.Equal(t, []int{9}, collect(l.RowIndices(3)))

	require.Equal(t, []int{0}, collect(l.ColIndices(0)))
	require.Equal(t, []int{1, 4}, collect(l.ColIndices(1)))
	require.Equal(t, []int{2, 5, 7}, collect(l.ColIndices(2)))
	require.Equal(t, []int{3, 6, 8, 9}, collect(l.ColIndices(3)))

	for i, want := range []int{0, 4, 7, 9, 10} {
		require.Equal(t, want, l.RowStart(i), "RowStart(%d)", i)
	}
	for j, want := range []int{0, 1, 2, 3} {
		require.Equal(t, want, l.ColStart(j), "ColStart(%d)", j)
	}

	require.Equal(t, 0, l.ElementIndex(0, 0))
	require.Equal(t, 3, l.ElementIndex(0, 3))
	require.Equal(t, 4, l.ElementIndex(1, 1))
	require.Equal(t, 6, l.ElementIndex(1, 3))
	require.Equal(t, 8, l.ElementIndex(2, 3))
	require.Equal(t, 9, l.ElementIndex(3, 3))
}

// TestLowerScenario pins the n=4 Lower layout:
//
//	0
//	1 2
//	3 4 5
//	6 7 8 9
func TestLowerScenario(t *testing.T) {
	l := triangle.NewLower(4)

	require.Equal(t, []int{0}, collect(l.RowIndices(0)))
	require.Equal(t, []int{1, 2}, collect(l.RowIndices(1)))
	require.Equal(t, []int{3, 4, 5}, collect(l.RowIndices(2)))
	require.Equal(t, []int{6, 7, 8, 9}, collect(l.RowIndices(3)))

	require.Equal(t, []int{0, 1, 3, 6}, collect(l.ColIndices(0)))
	require.Equal(t, []int{2, 4, 7}, collect(l.ColIndices(1)))
	require.Equal(t, []int{5, 8}, collect(l.ColIndices(2)))
	require.Equal(t, []int{9}, collect(l.ColIndices(3)))

	for i, want := range []int{0, 1, 3, 6, 10} {
		require.Equal(t, want, l.RowStart(i), "RowStart(%d)", i)
	}
	for j, want := range []int{0, 2, 5, 9} {
		require.Equal(t, want, l.ColStart(j), "ColStart(%d)", j)
	}

	require.Equal(t, 0, l.ElementIndex(0, 0))
	require.Equal(t, 1, l.ElementIndex(1, 0))
	require.Equal(t, 2, l.ElementIndex(1, 1))
	require.Equal(t, 4, l.ElementIndex(2, 1))
	require.Equal(t, 6, l.ElementIndex(3, 0))
	require.Equal(t, 9, l.ElementIndex(3, 3))
}

// TestRowPartition concatenates all rows and expects every position in
// [0, TriNum(n)) exactly once, ascending, for both orientations.
func TestRowPartition(t *testing.T) {
	for _, o := range orientations {
		for _, n := range axisSizes {
			l, err := triangle.NewLayout(o, n)
			require.NoError(t, err)

			var got, want []int
			for i := 0; i < n; i++ {
				got = append(got, collect(l.RowIndices(i))...)
			}
			for p := 0; p < l.Len(); p++ {
				want = append(want, p)
			}
			require.Equal(t, want, got, "%v", l)
			require.Equal(t, l.Len(), l.RowStart(n), "%v", l)
		}
	}
}

// TestColumnCover checks that the columns also cover every position once.
func TestColumnCover(t *testing.T) {
	for _, o := range orientations {
		for _, n := range axisSizes {
			l, err := triangle.NewLayout(o, n)
			require.NoError(t, err)

			seen := make([]int, l.Len())
			for j := 0; j < n; j++ {
				prev := -1
				for p := range l.ColIndices(j) {
					require.Greater(t, p, prev, "%v col %d not ascending", l, j)
					prev = p
					seen[p]++
				}
			}
			for p, c := range seen {
				require.Equal(t, 1, c, "%v position %d", l, p)
			}
		}
	}
}

// TestLengthLaws checks RowLen/ColLen against the drained sequences.
func TestLengthLaws(t *testing.T) {
	for _, n := range axisSizes {
		up, low := triangle.NewUpper(n), triangle.NewLower(n)
		for i := 0; i < n; i++ {
			require.Len(t, collect(up.RowIndices(i)), n-i)
			require.Len(t, collect(up.ColIndices(i)), i+1)
			require.Len(t, collect(low.RowIndices(i)), i+1)
			require.Len(t, collect(low.ColIndices(i)), n-i)

			require.Equal(t, n-i, up.RowLen(i))
			require.Equal(t, i+1, up.ColLen(i))
			require.Equal(t, i+1, low.RowLen(i))
			require.Equal(t, n-i, low.ColLen(i))
		}
	}
}

// TestCrossConsistency ties RowIndices, ColIndices, ColStart and ElementIndex
// together for every valid coordinate.
func TestCrossConsistency(t *testing.T) {
	for _, o := range orientations {
		for _, n := range axisSizes {
			l, _ := triangle.NewLayout(o, n)
			for row := 0; row < n; row++ {
				rowPos := collect(l.RowIndices(row))
				for col := 0; col < n; col++ {
					if !o.Contains(row, col) {
						continue
					}
					colPos := collect(l.ColIndices(col))
					want := l.ElementIndex(row, col)
					if o == triangle.Upper {
						require.Equal(t, want, rowPos[col-row], "%v (%d,%d)", l, row, col)
						require.Equal(t, want, colPos[row], "%v (%d,%d)", l, row, col)
					} else {
						require.Equal(t, want, rowPos[col], "%v (%d,%d)", l, row, col)
						require.Equal(t, want, colPos[row-col], "%v (%d,%d)", l, row, col)
					}
				}
				require.Equal(t, collect(l.ColIndices(row))[0], l.ColStart(row))
			}
		}
	}
}

// TestCoordInverse round-trips every position through Coord and ElementIndex.
func TestCoordInverse(t *testing.T) {
	for _, o := range orientations {
		for _, n := range []int{0, 1, 2, 7, 31, 100} {
			l, _ := triangle.NewLayout(o, n)
			for p := 0; p < l.Len(); p++ {
				row, col := l.Coord(p)
				require.True(t, o.Contains(row, col), "%v pos %d -> (%d,%d)", l, p, row, col)
				require.Equal(t, p, l.ElementIndex(row, col), "%v pos %d", l, p)
			}
		}
	}
}

// TestCoordLargeAxis samples the first and last rows of a big triangle where
// float rounding in the square root matters.
func TestCoordLargeAxis(t *testing.T) {
	const n = 200_000
	for _, o := range orientations {
		l, _ := triangle.NewLayout(o, n)
		for _, d := range []int{0, 1, n / 2, n - 2, n - 1} {
			row, col := l.Coord(l.ElementIndex(d, d))
			require.Equal(t, [2]int{d, d}, [2]int{row, col}, "%v diagonal %d", l, d)
		}
		for _, p := range []int{0, 1, l.Len() / 3, l.Len() / 2, l.Len() - 2, l.Len() - 1} {
			row, col := l.Coord(p)
			require.Equal(t, p, l.ElementIndex(row, col), "%v pos %d", l, p)
		}
	}
}

// TestCoordHugeAxis covers axes whose packed length is close to MaxInt/2:
// construction must reject overflowing axes, and Coord must stay exact and
// terminate on the ones it accepts.
func TestCoordHugeAxis(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	big := 1 << (strconv.IntSize / 2) // n(n+1) > MaxInt
	for _, o := range orientations {
		_, err := triangle.NewLayout(o, big)
		require.ErrorIs(t, err, triangle.ErrBadShape, "%v", o)
		_, err = triangle.NewLayout(o, 2*big)
		require.ErrorIs(t, err, triangle.ErrBadShape, "%v", o)
	}

	for _, n := range []int{2_000_000_000, big/2 + big/8} {
		for _, o := range orientations {
			l, err := triangle.NewLayout(o, n)
			require.NoError(t, err)
			require.Equal(t, n/2*(n+1), l.Len(), "%v", l)
			require.Positive(t, l.Len())

			row, col := l.Coord(l.Len() - 1)
			require.Equal(t, [2]int{n - 1, n - 1}, [2]int{row, col}, "%v last", l)
			row, col = l.Coord(0)
			require.Equal(t, [2]int{0, 0}, [2]int{row, col}, "%v first", l)
			for _, p := range []int{1, l.Len() / 3, l.Len() / 2, l.Len() - 2} {
				row, col = l.Coord(p)
				require.Equal(t, p, l.ElementIndex(row, col), "%v pos %d", l, p)
			}
			for _, d := range []int{1, n / 2, n - 2} {
				row, col = l.Coord(l.ElementIndex(d, d))
				require.Equal(t, [2]int{d, d}, [2]int{row, col}, "%v diagonal %d", l, d)
			}
		}
	}
}

// TestCoordsStorageOrder expects the k-th yielded pair to live at position k.
func TestCoordsStorageOrder(t *testing.T) {
	for _, o := range orientations {
		l, _ := triangle.NewLayout(o, 6)
		k := 0
		for row, col := range l.Coords() {
			require.Equal(t, k, l.ElementIndex(row, col))
			k++
		}
		require.Equal(t, l.Len(), k)
	}
}

// TestSequencesRestartable ranges over one sequence twice and interleaves two
// sequences from the same layout; neither run disturbs the other.
func TestSequencesRestartable(t *testing.T) {
	l := triangle.NewUpper(4)
	row := l.RowIndices(0)
	require.Equal(t, collect(row), collect(row))

	col := l.ColIndices(3)
	nextRow, stopRow := iter.Pull(row)
	defer stopRow()
	nextCol, stopCol := iter.Pull(col)
	defer stopCol()

	var rows, cols []int
	for {
		r, okR := nextRow()
		c, okC := nextCol()
		if !okR && !okC {
			break
		}
		if okR {
			rows = append(rows, r)
		}
		if okC {
			cols = append(cols, c)
		}
	}
	require.Equal(t, []int{0, 1, 2, 3}, rows)
	require.Equal(t, []int{3, 6, 8, 9}, cols)
}

// TestSequencesEarlyBreak stops ranging midway and restarts from the beginning.
func TestSequencesEarlyBreak(t *testing.T) {
	l := triangle.NewLower(5)
	var first []int
	for p := range l.ColIndices(0) {
		first = append(first, p)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []int{0, 1}, first)
	require.Equal(t, []int{0, 1, 3, 6, 10}, collect(l.ColIndices(0)))

	n := 0
	for range l.Coords() {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}
