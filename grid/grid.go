package grid

import "fmt"

// Grid is a fixed-size 2D container with cells of type V.
//
// The zero value is the empty grid (width 0, height 0).
type Grid[V any] struct {
	values []V
	width  int
	height int
}

// New returns a grid of the given dimensions with zero-valued cells.
func New[V any](width, height int) (*Grid[V], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrOutOfBounds, width, height)
	}
	if width == 0 || height == 0 {
		return &Grid[V]{}, nil
	}
	return &Grid[V]{
		values: make([]V, width*height),
		width:  width,
		height: height,
	}, nil
}

// MustNew is New, panicking on negative dimensions.
func MustNew[V any](width, height int) *Grid[V] {
	g, err := New[V](width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[V]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[V]) Height() int { return g.height }

// Len returns the total number of cells.
func (g *Grid[V]) Len() int { return len(g.values) }

// Get returns the cell at column x, row y.
func (g *Grid[V]) Get(x, y int) (V, error) {
	i, err := g.index(x, y)
	if err != nil {
		var zero V
		return zero, err
	}
	return g.values[i], nil
}

// Set stores v in the cell at column x, row y.
func (g *Grid[V]) Set(x, y int, v V) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.values[i] = v
	return nil
}

// At is Get, panicking on out-of-range coordinates.
func (g *Grid[V]) At(x, y int) V {
	v, err := g.Get(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// SetAt is Set, panicking on out-of-range coordinates.
func (g *Grid[V]) SetAt(x, y int, v V) {
	if err := g.Set(x, y, v); err != nil {
		panic(err)
	}
}

// Ptr returns a pointer to the cell at column x, row y, panicking on
// out-of-range coordinates. The pointer stays valid for the lifetime of the
// grid.
func (g *Grid[V]) Ptr(x, y int) *V {
	i, err := g.index(x, y)
	if err != nil {
		panic(err)
	}
	return &g.values[i]
}

// index maps (x, y) to the flat row-major index.
func (g *Grid[V]) index(x, y int) (int, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return y*g.width + x, nil
}

// coords maps a flat row-major index back to (x, y).
func (g *Grid[V]) coords(i int) (x, y int) {
	return i % g.width, i / g.width
}
