package binvox

import (
	"path/filepath"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
)

func TestFileRoundTrip(t *testing.T) {
	logger := golog.NewTestLogger(t)
	grid := checkered([3]int{8, 8, 8})
	v := New(grid, [3]int{8, 8, 8}, [3]float64{0, 0, 0.5}, 41.133, AxisOrderXYZ)

	fn := filepath.Join(t.TempDir(), "model.binvox")
	test.That(t, WriteToFile(v, fn), test.ShouldBeNil)

	v2, err := NewFromFile(fn, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v2.Dims, test.ShouldResemble, v.Dims)
	test.That(t, v2.Translate, test.ShouldResemble, v.Translate)
	test.That(t, v2.Scale, test.ShouldEqual, v.Scale)
	test.That(t, v2.Data.(*DenseGrid).Equal(grid), test.ShouldBeTrue)
}

func TestNewFromFileUnknownExtension(t *testing.T) {
	logger := golog.NewTestLogger(t)
	_, err := NewFromFile("model.vox", logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "do not know how to read")
}
