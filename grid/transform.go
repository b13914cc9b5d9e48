package grid

// Map returns a new grid of the same dimensions with every cell replaced by
// f(cell). The source grid is not modified.
//
// Map is a free function because Go methods cannot introduce the result cell
// type W.
func Map[V, W any](g *Grid[V], f func(V) W) *Grid[W] {
	values := make([]W, len(g.values))
	for i, v := range g.values {
		values[i] = f(v)
	}
	return &Grid[W]{
		values: values,
		width:  g.width,
		height: g.height,
	}
}

// MapIndexed is Map with the cell's (x, y) coordinates passed to f.
func MapIndexed[V, W any](g *Grid[V], f func(v V, x, y int) W) *Grid[W] {
	values := make([]W, len(g.values))
	for i, v := range g.values {
		x, y := g.coords(i)
		values[i] = f(v, x, y)
	}
	return &Grid[W]{
		values: values,
		width:  g.width,
		height: g.height,
	}
}
