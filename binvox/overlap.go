package binvox

import "github.com/pkg/errors"

// Overlap computes the Jaccard similarity of two dense grids of the same
// shape: the number of cells solid in both divided by the number of cells
// solid in either, a value in [0, 1]. 0 means completely disjoint, 1 means
// equal. When both grids are entirely empty the ratio is undefined and
// ErrEmptyUnion is returned.
func Overlap(a, b *DenseGrid) (float64, error) {
	if a.dims != b.dims {
		return 0, errors.Wrapf(ErrShape, "grid shapes %v and %v differ", a.dims, b.dims)
	}
	intersection, union := 0, 0
	for i, av := range a.vals {
		bv := b.vals[i]
		if av && bv {
			intersection++
		}
		if av || bv {
			union++
		}
	}
	if union == 0 {
		return 0, ErrEmptyUnion
	}
	return float64(intersection) / float64(union), nil
}
