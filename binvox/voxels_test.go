package binvox

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestCloneIsDeep(t *testing.T) {
	grid := NewDenseGrid([3]int{2, 2, 2})
	grid.Set(0, 0, 0, true)
	v := New(grid, [3]int{2, 2, 2}, [3]float64{1, 2, 3}, 4, AxisOrderXYZ)

	clone := v.Clone()
	test.That(t, clone.Dims, test.ShouldResemble, v.Dims)
	test.That(t, clone.Translate, test.ShouldResemble, v.Translate)
	test.That(t, clone.Scale, test.ShouldEqual, v.Scale)
	test.That(t, clone.Data.(*DenseGrid).Equal(grid), test.ShouldBeTrue)

	clone.Data.(*DenseGrid).Set(1, 1, 1, true)
	test.That(t, grid.At(1, 1, 1), test.ShouldBeFalse)
}

func TestCloneSparse(t *testing.T) {
	coords, err := NewSparseCoords(mat.NewDense(3, 1, []float64{1, 0, 1}))
	test.That(t, err, test.ShouldBeNil)
	v := New(coords, [3]int{2, 2, 2}, [3]float64{}, 1, AxisOrderXYZ)

	clone := v.Clone()
	clone.Data.(*SparseCoords).Matrix().Set(0, 0, 7)
	test.That(t, coords.Matrix().At(0, 0), test.ShouldEqual, 1.0)
}

func TestSwapYZBijection(t *testing.T) {
	g := checkered([3]int{3, 4, 5})
	test.That(t, g.SwapYZ().SwapYZ().Equal(g), test.ShouldBeTrue)
	test.That(t, g.SwapYZ().Dims(), test.ShouldResemble, [3]int{3, 5, 4})
}

func TestWorldCoordinate(t *testing.T) {
	v := New(nil, [3]int{2, 2, 2}, [3]float64{1, 2, 3}, 4, AxisOrderXYZ)
	test.That(t, v.WorldCoordinate(0, 0, 0), test.ShouldResemble, r3.Vector{X: 2, Y: 3, Z: 4})
	test.That(t, v.WorldCoordinate(1, 1, 1), test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})
}

func TestWorldPoints(t *testing.T) {
	grid := NewDenseGrid([3]int{2, 2, 2})
	grid.Set(0, 0, 0, true)
	grid.Set(1, 0, 1, true)
	v := New(grid, [3]int{2, 2, 2}, [3]float64{0, 0, 0}, 1, AxisOrderXYZ)

	pts := v.WorldPoints()
	test.That(t, pts, test.ShouldResemble, []r3.Vector{
		{X: 0.25, Y: 0.25, Z: 0.25},
		{X: 0.75, Y: 0.25, Z: 0.75},
	})

	// the sparse representation of the same cells maps to the same points
	coords, err := NewSparseCoords(DenseToSparse(grid))
	test.That(t, err, test.ShouldBeNil)
	vs := New(coords, [3]int{2, 2, 2}, [3]float64{0, 0, 0}, 1, AxisOrderXYZ)
	test.That(t, vs.WorldPoints(), test.ShouldResemble, pts)
}

func TestNumVoxels(t *testing.T) {
	v := New(nil, [3]int{3, 4, 5}, [3]float64{}, 1, AxisOrderXYZ)
	test.That(t, v.NumVoxels(), test.ShouldEqual, 60)
	test.That(t, v.NumOccupied(), test.ShouldEqual, 0)
}
