package grid

import "fmt"

// Row is a non-owning view of one grid row. It holds a reference to the
// grid, so cells read through it observe later mutation.
type Row[V any] struct {
	grid *Grid[V]
	y    int
}

// Row returns a view of row y.
func (g *Grid[V]) Row(y int) (Row[V], error) {
	if y < 0 || y >= g.height {
		return Row[V]{}, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, y, g.height)
	}
	return Row[V]{grid: g, y: y}, nil
}

// MustRow is Row, panicking on an out-of-range index.
func (g *Grid[V]) MustRow(y int) Row[V] {
	r, err := g.Row(y)
	if err != nil {
		panic(err)
	}
	return r
}

// Index returns the row index this view is bound to.
func (r Row[V]) Index() int { return r.y }

// Len returns the number of cells in the row, which is the grid width.
func (r Row[V]) Len() int { return r.grid.width }

// At returns the cell at column x, panicking on an out-of-range index.
func (r Row[V]) At(x int) V { return r.grid.At(x, r.y) }

// Iter returns a fresh cursor over the row's cells in increasing column
// order.
func (r Row[V]) Iter() *RowIter[V] {
	return &RowIter[V]{grid: r.grid, y: r.y}
}

// Values returns a newly allocated snapshot of the row's cells.
func (r Row[V]) Values() []V {
	out := make([]V, 0, r.grid.width)
	for x := 0; x < r.grid.width; x++ {
		out = append(out, r.grid.At(x, r.y))
	}
	return out
}

// Col is a non-owning view of one grid column. It holds a reference to the
// grid, so cells read through it observe later mutation.
type Col[V any] struct {
	grid *Grid[V]
	x    int
}

// Col returns a view of column x.
func (g *Grid[V]) Col(x int) (Col[V], error) {
	if x < 0 || x >= g.width {
		return Col[V]{}, fmt.Errorf("%w: column %d of %d", ErrOutOfBounds, x, g.width)
	}
	return Col[V]{grid: g, x: x}, nil
}

// MustCol is Col, panicking on an out-of-range index.
func (g *Grid[V]) MustCol(x int) Col[V] {
	c, err := g.Col(x)
	if err != nil {
		panic(err)
	}
	return c
}

// Index returns the column index this view is bound to.
func (c Col[V]) Index() int { return c.x }

// Len returns the number of cells in the column, which is the grid height.
func (c Col[V]) Len() int { return c.grid.height }

// At returns the cell at row y, panicking on an out-of-range index.
func (c Col[V]) At(y int) V { return c.grid.At(c.x, y) }

// Iter returns a fresh cursor over the column's cells in increasing row
// order.
func (c Col[V]) Iter() *ColIter[V] {
	return &ColIter[V]{grid: c.grid, x: c.x}
}

// Values returns a newly allocated snapshot of the column's cells.
func (c Col[V]) Values() []V {
	out := make([]V, 0, c.grid.height)
	for y := 0; y < c.grid.height; y++ {
		out = append(out, c.grid.At(c.x, y))
	}
	return out
}

// RowIter is a cursor over the cells of one row. Cursors are independent:
// each call to Row.Iter starts a fresh one without affecting the grid or
// other cursors.
type RowIter[V any] struct {
	grid *Grid[V]
	y    int
	x    int
}

// Next returns the next cell and true, or the zero value and false once the
// row is exhausted. Cells are read from the grid at call time.
func (it *RowIter[V]) Next() (V, bool) {
	if it.x >= it.grid.width {
		var zero V
		return zero, false
	}
	v := it.grid.At(it.x, it.y)
	it.x++
	return v, true
}

// ColIter is a cursor over the cells of one column.
type ColIter[V any] struct {
	grid *Grid[V]
	x    int
	y    int
}

// Next returns the next cell and true, or the zero value and false once the
// column is exhausted. Cells are read from the grid at call time.
func (it *ColIter[V]) Next() (V, bool) {
	if it.y >= it.grid.height {
		var zero V
		return zero, false
	}
	v := it.grid.At(it.x, it.y)
	it.y++
	return v, true
}

// Rows is a cursor over all row views of a grid, in increasing row order.
type Rows[V any] struct {
	grid *Grid[V]
	y    int
}

// RowsIter returns a fresh cursor over all rows. The grid is not consumed;
// calling RowsIter again restarts from the first row.
func (g *Grid[V]) RowsIter() *Rows[V] {
	return &Rows[V]{grid: g}
}

// Next returns the next row view and true, or a zero view and false once all
// rows have been yielded.
func (it *Rows[V]) Next() (Row[V], bool) {
	if it.y >= it.grid.height {
		return Row[V]{}, false
	}
	r := Row[V]{grid: it.grid, y: it.y}
	it.y++
	return r, true
}

// Cols is a cursor over all column views of a grid, in increasing column
// order.
type Cols[V any] struct {
	grid *Grid[V]
	x    int
}

// ColsIter returns a fresh cursor over all columns. The grid is not
// consumed; calling ColsIter again restarts from the first column.
func (g *Grid[V]) ColsIter() *Cols[V] {
	return &Cols[V]{grid: g}
}

// Next returns the next column view and true, or a zero view and false once
// all columns have been yielded.
func (it *Cols[V]) Next() (Col[V], bool) {
	if it.x >= it.grid.width {
		return Col[V]{}, false
	}
	c := Col[V]{grid: it.grid, x: it.x}
	it.x++
	return c, true
}
