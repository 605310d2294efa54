// Package geom is the algebraic core of segview.
//
// Vectors and matrices are plain values. Matrices use the row-vector convention:
// a point is a row on the left (v' = v * M), and composite transforms read left to
// right in the order they are applied.
//
// Pipeline (fixed):
//
//	world → view (translate, then rotate Z·X·Y) → projection → viewport → pixels.
//
// Nothing here allocates or returns errors. Degenerate inputs have defined results:
// Project onto a zero vector is zero, Transform skips the homogeneous divide when
// w == 0, and ClosestPoint on a zero-length segment is the segment origin.
package geom
