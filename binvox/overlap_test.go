package binvox

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestOverlapSelf(t *testing.T) {
	g := checkered([3]int{4, 4, 4})
	score, err := Overlap(g, g)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, score, test.ShouldEqual, 1.0)
}

func TestOverlapDisjoint(t *testing.T) {
	a := NewDenseGrid([3]int{2, 2, 2})
	a.Set(0, 0, 0, true)
	b := NewDenseGrid([3]int{2, 2, 2})
	b.Set(1, 1, 1, true)

	score, err := Overlap(a, b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, score, test.ShouldEqual, 0.0)
}

func TestOverlapPartial(t *testing.T) {
	a := NewDenseGrid([3]int{2, 2, 2})
	a.Set(0, 0, 0, true)
	a.Set(0, 0, 1, true)
	b := NewDenseGrid([3]int{2, 2, 2})
	b.Set(0, 0, 1, true)
	b.Set(1, 0, 0, true)

	// one shared cell out of three occupied overall
	score, err := Overlap(a, b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, score, test.ShouldAlmostEqual, 1.0/3.0)
}

func TestOverlapEmpty(t *testing.T) {
	a := NewDenseGrid([3]int{2, 2, 2})
	b := NewDenseGrid([3]int{2, 2, 2})
	_, err := Overlap(a, b)
	test.That(t, errors.Is(err, ErrEmptyUnion), test.ShouldBeTrue)
}

func TestOverlapShapeMismatch(t *testing.T) {
	_, err := Overlap(NewDenseGrid([3]int{2, 2, 2}), NewDenseGrid([3]int{2, 2, 3}))
	test.That(t, errors.Is(err, ErrShape), test.ShouldBeTrue)
}
