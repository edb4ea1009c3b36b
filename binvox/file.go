package binvox

import (
	"os"
	"path/filepath"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// NewFromFile reads a dense model from the given .binvox file, with the
// axis order fixed to (x, y, z).
func NewFromFile(fn string, logger golog.Logger) (*Voxels, error) {
	if filepath.Ext(fn) != ".binvox" {
		return nil, errors.Errorf("do not know how to read file %q", fn)
	}
	f, err := os.Open(fn) //nolint:gosec
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)

	v, err := Read(f, true)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", fn)
	}
	logger.Debugf("read %dx%dx%d model with %d solid voxels from %s",
		v.Dims[0], v.Dims[1], v.Dims[2], v.NumOccupied(), fn)
	return v, nil
}

// WriteToFile writes the model out to the given file.
func WriteToFile(v *Voxels, fn string) (err error) {
	f, err := os.Create(fn) //nolint:gosec
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return v.Write(f)
}
