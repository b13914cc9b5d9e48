// Package grid implements a fixed-size 2D container over a generic cell type.
//
// Cells are stored flat in row-major order and addressed by (x, y) with x as
// the column and y as the row, both 0-based. The shape is fixed at
// construction; cell values may be mutated in place.
//
// Row and column views are non-owning projections into the grid: they hold a
// reference, never copy storage, and observe later cell mutation. The package
// is not safe for concurrent use; callers that share a grid across goroutines
// must synchronize externally.
package grid
