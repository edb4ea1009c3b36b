package binvox

import (
	"io"

	"github.com/pkg/errors"
)

// Write serializes the model to the binvox wire format. Only dense payloads
// can be written; a sparse model fails with ErrSparseWrite rather than
// silently dropping data. Reading the output back reproduces the same
// dims, translate, scale, and cells.
func (v *Voxels) Write(w io.Writer) error {
	grid, ok := v.Data.(*DenseGrid)
	if !ok {
		return ErrSparseWrite
	}
	if n := len(grid.vals); n != v.NumVoxels() {
		return errors.Wrapf(ErrShape, "grid holds %d cells but dims say %d", n, v.NumVoxels())
	}

	if err := writeHeader(w, header{
		version:   binvoxVersion,
		dims:      v.Dims,
		translate: v.Translate,
		scale:     v.Scale,
	}); err != nil {
		return err
	}

	// the payload is laid out natively; undo the read-time axis fix
	if v.AxisOrder == AxisOrderXYZ {
		grid = grid.SwapYZ()
	}
	return rleEncode(grid.vals, w)
}
