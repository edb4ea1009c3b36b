package binvox

import "github.com/pkg/errors"

// Common errors.
var (
	// ErrNotBinvox is returned when the input does not start with the
	// "#binvox" magic line.
	ErrNotBinvox = errors.New("not a binvox file")
	// ErrCorruptPayload is returned when the run-length payload does not
	// cover exactly one value per grid cell.
	ErrCorruptPayload = errors.New("corrupt binvox payload")
	// ErrShape is returned when a matrix or grid argument has the wrong
	// dimensions for the operation.
	ErrShape = errors.New("wrong shape")
	// ErrSparseWrite is returned when writing a model whose data is in the
	// sparse coordinate representation. Convert with SparseToDense first.
	ErrSparseWrite = errors.New("sparse model write not supported")
	// ErrEmptyUnion is returned by Overlap when both grids are entirely
	// empty and the Jaccard ratio is undefined.
	ErrEmptyUnion = errors.New("overlap undefined for two empty grids")
)
