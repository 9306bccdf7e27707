// Package trianglematrix stores the non-redundant half of a square matrix in
// a flat collection and still addresses elements by (row, col).
//
// What is inside?
//
//	triangle/  the core: Upper/Lower orientation, packed index arithmetic
//	           (TriNum, RowStart, RowIndices, ColIndices, ElementIndex, Coord),
//	           the validating Checked wrapper, and the View/Matrix accessors
//	           over any caller-owned Storage.
//	strict/    triangles without a diagonal and a symmetric adapter on top,
//	           for pairwise data where (a, b) == (b, a) and (a, a) is undefined.
//	examples/  runnable programs: packed covariance, city distance table.
//
// Quick picture (Upper, n=4, positions in storage):
//
//	0 1 2 3
//	  4 5 6
//	    7 8
//	      9
//
// The library performs no I/O, allocates nothing on its lookup paths and
// never owns the storage it indexes.
//
//	go get github.com/cedtwo/triangle-matrix
package trianglematrix
