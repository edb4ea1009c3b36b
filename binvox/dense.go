package binvox

// DenseGrid is a full 3D boolean occupancy array. Cells are stored row
// major: the first axis varies slowest, the last axis fastest, which makes
// a grid shaped (dx, dz, dy) a direct reshape of the native binvox payload.
type DenseGrid struct {
	dims [3]int
	vals []bool
}

// NewDenseGrid returns an all-empty grid of the given shape.
func NewDenseGrid(dims [3]int) *DenseGrid {
	return &DenseGrid{
		dims: dims,
		vals: make([]bool, dims[0]*dims[1]*dims[2]),
	}
}

// newDenseGridFromLinear wraps an existing row-major linear buffer. The
// buffer is owned by the grid afterwards.
func newDenseGridFromLinear(vals []bool, dims [3]int) *DenseGrid {
	return &DenseGrid{dims: dims, vals: vals}
}

// Dims returns the shape of the grid.
func (g *DenseGrid) Dims() [3]int {
	return g.dims
}

func (g *DenseGrid) index(i, j, k int) int {
	return (i*g.dims[1]+j)*g.dims[2] + k
}

// At reports whether the cell at (i, j, k) is solid.
func (g *DenseGrid) At(i, j, k int) bool {
	return g.vals[g.index(i, j, k)]
}

// Set marks the cell at (i, j, k).
func (g *DenseGrid) Set(i, j, k int, solid bool) {
	g.vals[g.index(i, j, k)] = solid
}

// SwapYZ returns a new grid with axes 1 and 2 transposed. Applying it twice
// reproduces the original grid, so the same call converts in both
// directions between the native (x, z, y) and conventional (x, y, z)
// layouts.
func (g *DenseGrid) SwapYZ() *DenseGrid {
	out := NewDenseGrid([3]int{g.dims[0], g.dims[2], g.dims[1]})
	for i := 0; i < g.dims[0]; i++ {
		for j := 0; j < g.dims[1]; j++ {
			for k := 0; k < g.dims[2]; k++ {
				out.Set(i, k, j, g.At(i, j, k))
			}
		}
	}
	return out
}

// Flatten returns a copy of the cells as a row-major linear sequence.
func (g *DenseGrid) Flatten() []bool {
	out := make([]bool, len(g.vals))
	copy(out, g.vals)
	return out
}

// NumOccupied returns the number of solid cells.
func (g *DenseGrid) NumOccupied() int {
	count := 0
	for _, v := range g.vals {
		if v {
			count++
		}
	}
	return count
}

// CloneGrid returns a deep copy of the grid.
func (g *DenseGrid) CloneGrid() Grid {
	return newDenseGridFromLinear(g.Flatten(), g.dims)
}

// Equal reports whether two grids have the same shape and cells.
func (g *DenseGrid) Equal(other *DenseGrid) bool {
	if g.dims != other.dims {
		return false
	}
	for i, v := range g.vals {
		if v != other.vals[i] {
			return false
		}
	}
	return true
}
