package binvox

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pkg/errors"
)

// DenseToSparse returns the coordinates of all solid cells of a grid as a
// 3xN matrix, one column per cell, in the grid's own axis order. No sort
// order is implied. Returns nil when the grid has no solid cells.
func DenseToSparse(g *DenseGrid) *mat.Dense {
	n := g.NumOccupied()
	if n == 0 {
		return nil
	}
	data := make([]float64, 3*n)
	xs, ys, zs := data[:n], data[n:2*n], data[2*n:]
	c := 0
	for i := 0; i < g.dims[0]; i++ {
		for j := 0; j < g.dims[1]; j++ {
			for k := 0; k < g.dims[2]; k++ {
				if g.At(i, j, k) {
					xs[c], ys[c], zs[c] = float64(i), float64(j), float64(k)
					c++
				}
			}
		}
	}
	return mat.NewDense(3, n, data)
}

// SparseToDense builds a dense grid from a 3xN coordinate matrix. dims is
// either a single extent, broadcast to all three axes, or one extent per
// axis. Coordinates are truncated to integers; any column falling outside
// the grid on any axis is silently discarded. A nil coords matrix yields an
// all-empty grid.
func SparseToDense(coords *mat.Dense, dims ...int) (*DenseGrid, error) {
	var shape [3]int
	switch len(dims) {
	case 1:
		shape = [3]int{dims[0], dims[0], dims[0]}
	case 3:
		shape = [3]int{dims[0], dims[1], dims[2]}
	default:
		return nil, errors.Wrapf(ErrShape, "need 1 or 3 dims, got %d", len(dims))
	}
	for _, d := range shape {
		if d <= 0 {
			return nil, errors.Wrapf(ErrShape, "non-positive dim %d", d)
		}
	}

	out := NewDenseGrid(shape)
	if coords == nil {
		return out, nil
	}
	r, n := coords.Dims()
	if r != 3 {
		return nil, errors.Wrapf(ErrShape, "coordinates must be 3xN, got %d rows", r)
	}
	for c := 0; c < n; c++ {
		i, j, k := int(coords.At(0, c)), int(coords.At(1, c)), int(coords.At(2, c))
		if i < 0 || i >= shape[0] || j < 0 || j >= shape[1] || k < 0 || k >= shape[2] {
			continue
		}
		out.Set(i, j, k, true)
	}
	return out, nil
}
