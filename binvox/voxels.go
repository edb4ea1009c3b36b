// Package binvox reads and writes the binvox voxel grid file format.
//
// A binvox file is a short ASCII header (dimensions, translation, scale)
// followed by a run-length encoded binary occupancy payload. The payload is
// laid out with x varying slowest, then z, then y; most callers want the
// conventional (x, y, z) ordering instead, which the read functions produce
// by default.
package binvox

import (
	"github.com/golang/geo/r3"
)

// AxisOrder records which axis permutation the voxel data of a model
// currently uses.
type AxisOrder int

const (
	// AxisOrderNative is the order the payload is stored in on disk:
	// x slowest, then z, then y fastest.
	AxisOrderNative AxisOrder = iota
	// AxisOrderXYZ is the conventional (x, y, z) order, obtained from the
	// native order by swapping the y and z axes.
	AxisOrderXYZ
)

func (o AxisOrder) String() string {
	if o == AxisOrderNative {
		return "xzy"
	}
	return "xyz"
}

// Grid is the occupancy payload of a Voxels model. Exactly one of the two
// concrete representations backs a given model: *DenseGrid, a full 3D
// boolean array, or *SparseCoords, a 3xN matrix of occupied cell
// coordinates. Conversion between the two is explicit, via DenseToSparse
// and SparseToDense.
type Grid interface {
	// NumOccupied returns the number of solid cells.
	NumOccupied() int
	// CloneGrid returns a deep copy of the payload.
	CloneGrid() Grid
}

// Voxels holds a binvox model: the occupancy payload plus the metadata
// relating grid coordinates to model space.
type Voxels struct {
	// Dims are the grid extents as written in the file header, e.g.
	// {32, 32, 32} for a 32x32x32 model.
	Dims [3]int
	// Translate and Scale relate voxel indices to model coordinates, see
	// WorldCoordinate.
	Translate [3]float64
	Scale     float64
	// AxisOrder is the permutation Data currently uses.
	AxisOrder AxisOrder
	// Data is the occupancy payload, dense or sparse.
	Data Grid
}

// New constructs a model from an already realized payload.
func New(data Grid, dims [3]int, translate [3]float64, scale float64, order AxisOrder) *Voxels {
	return &Voxels{
		Dims:      dims,
		Translate: translate,
		Scale:     scale,
		AxisOrder: order,
		Data:      data,
	}
}

// Clone returns a deep copy of the model. The copy shares no storage with
// the original.
func (v *Voxels) Clone() *Voxels {
	clone := *v
	if v.Data != nil {
		clone.Data = v.Data.CloneGrid()
	}
	return &clone
}

// NumVoxels returns the total cell count of the grid, occupied or not.
func (v *Voxels) NumVoxels() int {
	return v.Dims[0] * v.Dims[1] * v.Dims[2]
}

// NumOccupied returns the number of solid cells.
func (v *Voxels) NumOccupied() int {
	if v.Data == nil {
		return 0
	}
	return v.Data.NumOccupied()
}

// WorldCoordinate maps the voxel index (i, j, k) to the center of that cell
// in model space:
//
//	x = scale*(i+0.5)/dims[0] + translate[0]
//
// and symmetrically for y and z.
func (v *Voxels) WorldCoordinate(i, j, k int) r3.Vector {
	return v.worldCoordinate(float64(i), float64(j), float64(k))
}

func (v *Voxels) worldCoordinate(i, j, k float64) r3.Vector {
	return r3.Vector{
		X: v.Scale*(i+0.5)/float64(v.Dims[0]) + v.Translate[0],
		Y: v.Scale*(j+0.5)/float64(v.Dims[1]) + v.Translate[1],
		Z: v.Scale*(k+0.5)/float64(v.Dims[2]) + v.Translate[2],
	}
}

// WorldPoints returns the model-space centers of all occupied cells, in the
// model's current axis order.
func (v *Voxels) WorldPoints() []r3.Vector {
	switch g := v.Data.(type) {
	case *DenseGrid:
		pts := make([]r3.Vector, 0, g.NumOccupied())
		dims := g.Dims()
		for i := 0; i < dims[0]; i++ {
			for j := 0; j < dims[1]; j++ {
				for k := 0; k < dims[2]; k++ {
					if g.At(i, j, k) {
						pts = append(pts, v.WorldCoordinate(i, j, k))
					}
				}
			}
		}
		return pts
	case *SparseCoords:
		m := g.Matrix()
		if m == nil {
			return nil
		}
		_, n := m.Dims()
		pts := make([]r3.Vector, 0, n)
		for c := 0; c < n; c++ {
			pts = append(pts, v.worldCoordinate(m.At(0, c), m.At(1, c), m.At(2, c)))
		}
		return pts
	default:
		return nil
	}
}
