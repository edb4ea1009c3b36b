package binvox

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/pkg/errors"
)

// TransformOption configures TransformCoords.
type TransformOption func(*transformOptions)

type transformOptions struct {
	truncate bool
	clipDim  int
}

// WithTruncation truncates every transformed coordinate to an integer,
// toward zero.
func WithTruncation() TransformOption {
	return func(o *transformOptions) {
		o.truncate = true
	}
}

// WithClipDim discards any transformed column with a coordinate that is
// negative or >= dim on any axis, so the result stays inside a dim-sized
// volume. Non-positive values disable clipping.
func WithClipDim(dim int) TransformOption {
	return func(o *transformOptions) {
		o.clipDim = dim
	}
}

// TransformCoords applies a 4x4 affine matrix to a 3xN coordinate set:
// each column is lifted to homogeneous form, multiplied through, and
// normalized by its homogeneous component. No axis reordering is performed.
// Returns the surviving 3xM columns, nil when none survive clipping or
// coords is nil.
func TransformCoords(coords, t *mat.Dense, opts ...TransformOption) (*mat.Dense, error) {
	var options transformOptions
	for _, opt := range opts {
		opt(&options)
	}

	if tr, tc := t.Dims(); tr != 4 || tc != 4 {
		return nil, errors.Wrapf(ErrShape, "transform must be 4x4, got %dx%d", tr, tc)
	}
	if coords == nil {
		return nil, nil
	}
	r, n := coords.Dims()
	if r != 3 {
		return nil, errors.Wrapf(ErrShape, "coordinates must be 3xN, got %d rows", r)
	}

	homogeneous := mat.NewDense(4, n, nil)
	for c := 0; c < n; c++ {
		homogeneous.Set(0, c, coords.At(0, c))
		homogeneous.Set(1, c, coords.At(1, c))
		homogeneous.Set(2, c, coords.At(2, c))
		homogeneous.Set(3, c, 1)
	}
	var product mat.Dense
	product.Mul(t, homogeneous)

	out := make([][3]float64, 0, n)
	for c := 0; c < n; c++ {
		w := product.At(3, c)
		col := [3]float64{
			product.At(0, c) / w,
			product.At(1, c) / w,
			product.At(2, c) / w,
		}
		if options.truncate {
			col[0] = math.Trunc(col[0])
			col[1] = math.Trunc(col[1])
			col[2] = math.Trunc(col[2])
		}
		if options.clipDim > 0 && outsideCube(col, options.clipDim) {
			continue
		}
		out = append(out, col)
	}
	if len(out) == 0 {
		return nil, nil
	}

	result := mat.NewDense(3, len(out), nil)
	for c, col := range out {
		result.Set(0, c, col[0])
		result.Set(1, c, col[1])
		result.Set(2, c, col[2])
	}
	return result, nil
}

func outsideCube(col [3]float64, dim int) bool {
	for _, v := range col {
		if v < 0 || v >= float64(dim) {
			return true
		}
	}
	return false
}
