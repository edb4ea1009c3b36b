package binvox

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pkg/errors"
)

// SparseCoords is the coordinate representation of a voxel payload: a 3xN
// matrix with one column per occupied cell. Row order follows the owning
// model's axis order. A model that is mostly empty is far cheaper to hold
// this way than as a DenseGrid.
type SparseCoords struct {
	// coords is nil when no cell is occupied, since a 3x0 matrix cannot
	// be represented.
	coords *mat.Dense
}

// NewSparseCoords wraps a 3xN coordinate matrix. A nil matrix means an
// empty payload.
func NewSparseCoords(coords *mat.Dense) (*SparseCoords, error) {
	if coords != nil {
		if r, _ := coords.Dims(); r != 3 {
			return nil, errors.Wrapf(ErrShape, "coordinates must be 3xN, got %d rows", r)
		}
	}
	return &SparseCoords{coords: coords}, nil
}

// Matrix returns the underlying 3xN coordinate matrix, nil when empty.
func (s *SparseCoords) Matrix() *mat.Dense {
	return s.coords
}

// NumOccupied returns the number of coordinate columns.
func (s *SparseCoords) NumOccupied() int {
	if s.coords == nil {
		return 0
	}
	_, n := s.coords.Dims()
	return n
}

// CloneGrid returns a deep copy of the coordinate set.
func (s *SparseCoords) CloneGrid() Grid {
	if s.coords == nil {
		return &SparseCoords{}
	}
	return &SparseCoords{coords: mat.DenseCopyOf(s.coords)}
}
