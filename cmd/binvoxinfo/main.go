// Command binvoxinfo prints the metadata and occupancy statistics of a
// binvox file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/edaniels/golog"

	"github.com/voxelio/binvox/binvox"
)

var (
	sparse = flag.Bool("sparse", false, "decode to the coordinate representation")
	points = flag.Bool("points", false, "print the model-space centers of all solid voxels")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: binvoxinfo [-sparse] [-points] <file.binvox>\n")
		os.Exit(2)
	}
	logger := golog.NewDevelopmentLogger("binvoxinfo")
	if err := run(flag.Arg(0), logger); err != nil {
		logger.Fatal(err)
	}
}

func run(fn string, logger golog.Logger) error {
	var v *binvox.Voxels
	var err error
	if *sparse {
		var f *os.File
		if f, err = os.Open(fn); err != nil { //nolint:gosec
			return err
		}
		defer f.Close() //nolint:errcheck
		v, err = binvox.ReadCoords(f, true)
	} else {
		v, err = binvox.NewFromFile(fn, logger)
	}
	if err != nil {
		return err
	}

	total := v.NumVoxels()
	occupied := v.NumOccupied()
	fmt.Printf("dims:       %d %d %d\n", v.Dims[0], v.Dims[1], v.Dims[2])
	fmt.Printf("translate:  %g %g %g\n", v.Translate[0], v.Translate[1], v.Translate[2])
	fmt.Printf("scale:      %g\n", v.Scale)
	fmt.Printf("axis order: %s\n", v.AxisOrder)
	if total > 0 {
		fmt.Printf("occupied:   %d of %d (%.2f%%)\n", occupied, total, 100*float64(occupied)/float64(total))
	} else {
		fmt.Printf("occupied:   0 of 0\n")
	}

	if *points {
		for _, pt := range v.WorldPoints() {
			fmt.Printf("%g %g %g\n", pt.X, pt.Y, pt.Z)
		}
	}
	return nil
}
