package binvox

import (
	"bufio"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/pkg/errors"
)

// Read decodes a binvox stream into a model with a dense payload. The full
// payload is read before decoding; nothing is streamed. With fixCoords the
// grid is permuted from the file's native (x, z, y) layout to the
// conventional (x, y, z) layout and the model tagged accordingly.
func Read(r io.Reader, fixCoords bool) (*Voxels, error) {
	in := bufio.NewReader(r)
	h, err := readHeader(in)
	if err != nil {
		return nil, err
	}
	payload, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading payload")
	}

	linear, err := rleDecode(payload, h.dims[0]*h.dims[1]*h.dims[2])
	if err != nil {
		return nil, err
	}

	// the payload reshapes directly into a (dx, dz, dy) grid
	grid := newDenseGridFromLinear(linear, [3]int{h.dims[0], h.dims[2], h.dims[1]})
	order := AxisOrderNative
	if fixCoords {
		grid = grid.SwapYZ()
		order = AxisOrderXYZ
	}
	return New(grid, h.dims, h.translate, h.scale, order), nil
}

// ReadCoords decodes a binvox stream into a model with a sparse payload,
// one coordinate column per solid cell. Use this instead of Read to save
// memory when the model is mostly empty. Coordinates refer to voxel
// indices, without any scaling or translation.
func ReadCoords(r io.Reader, fixCoords bool) (*Voxels, error) {
	in := bufio.NewReader(r)
	h, err := readHeader(in)
	if err != nil {
		return nil, err
	}
	payload, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading payload")
	}

	solid, err := rleDecodeSparse(payload, h.dims[0]*h.dims[1]*h.dims[2])
	if err != nil {
		return nil, err
	}

	order := AxisOrderNative
	if fixCoords {
		order = AxisOrderXYZ
	}
	coords, err := NewSparseCoords(linearToCoords(solid, h.dims, fixCoords))
	if err != nil {
		return nil, err
	}
	return New(coords, h.dims, h.translate, h.scale, order), nil
}

// linearToCoords recovers per-axis voxel indices from linear payload
// indices. The divisor pattern mirrors the native storage layout: x is the
// slowest axis, then z, then y. Returns nil when no cell is solid.
func linearToCoords(solid []int, dims [3]int, fixCoords bool) *mat.Dense {
	if len(solid) == 0 {
		return nil
	}
	n := len(solid)
	data := make([]float64, 3*n)
	xs, row1, row2 := data[:n], data[n:2*n], data[2*n:]
	for i, idx := range solid {
		x := idx / (dims[0] * dims[1])
		rem := idx % (dims[0] * dims[1])
		z := rem / dims[0]
		y := rem % dims[0]
		xs[i] = float64(x)
		if fixCoords {
			row1[i], row2[i] = float64(y), float64(z)
		} else {
			row1[i], row2[i] = float64(z), float64(y)
		}
	}
	return mat.NewDense(3, n, data)
}
