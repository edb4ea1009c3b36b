package binvox

import (
	"io"

	"github.com/pkg/errors"
)

// maxRunLength is the largest run a single pair can carry, fixed by the
// one-byte count field.
const maxRunLength = 255

// rleDecode expands a payload of (value, count) byte pairs into a linear
// occupancy sequence of exactly numCells cells. The counts must tile the
// sequence with no gap and no overrun.
func rleDecode(payload []byte, numCells int) ([]bool, error) {
	if len(payload)%2 != 0 {
		return nil, errors.Wrapf(ErrCorruptPayload, "odd payload length %d", len(payload))
	}
	linear := make([]bool, numCells)
	cursor := 0
	for i := 0; i < len(payload); i += 2 {
		value, count := payload[i], int(payload[i+1])
		if value > 1 {
			return nil, errors.Wrapf(ErrCorruptPayload, "run value %d is not 0 or 1", value)
		}
		if count == 0 {
			return nil, errors.Wrap(ErrCorruptPayload, "zero run count")
		}
		if cursor+count > numCells {
			return nil, errors.Wrapf(ErrCorruptPayload,
				"runs cover more than %d cells", numCells)
		}
		if value == 1 {
			for j := cursor; j < cursor+count; j++ {
				linear[j] = true
			}
		}
		cursor += count
	}
	if cursor != numCells {
		return nil, errors.Wrapf(ErrCorruptPayload,
			"runs cover %d of %d cells", cursor, numCells)
	}
	return linear, nil
}

// rleDecodeSparse is the decode path that never materializes the dense
// sequence: it returns the linear indices of the solid cells only.
func rleDecodeSparse(payload []byte, numCells int) ([]int, error) {
	if len(payload)%2 != 0 {
		return nil, errors.Wrapf(ErrCorruptPayload, "odd payload length %d", len(payload))
	}
	var solid []int
	cursor := 0
	for i := 0; i < len(payload); i += 2 {
		value, count := payload[i], int(payload[i+1])
		if value > 1 {
			return nil, errors.Wrapf(ErrCorruptPayload, "run value %d is not 0 or 1", value)
		}
		if count == 0 {
			return nil, errors.Wrap(ErrCorruptPayload, "zero run count")
		}
		if cursor+count > numCells {
			return nil, errors.Wrapf(ErrCorruptPayload,
				"runs cover more than %d cells", numCells)
		}
		if value == 1 {
			for j := cursor; j < cursor+count; j++ {
				solid = append(solid, j)
			}
		}
		cursor += count
	}
	if cursor != numCells {
		return nil, errors.Wrapf(ErrCorruptPayload,
			"runs cover %d of %d cells", cursor, numCells)
	}
	return solid, nil
}

// rleEncode writes a linear occupancy sequence as (value, count) byte
// pairs. Runs longer than 255 cells are split greedily: the counter is
// flushed the moment it reaches 255, then restarted at zero for the rest
// of the run. An empty sequence produces no pairs.
func rleEncode(linear []bool, out io.Writer) error {
	if len(linear) == 0 {
		return nil
	}
	writePair := func(state bool, count int) error {
		_, err := out.Write([]byte{boolByte(state), byte(count)})
		return err
	}
	state := linear[0]
	counter := 0
	for _, cell := range linear {
		if cell == state {
			counter++
			if counter == maxRunLength {
				if err := writePair(state, counter); err != nil {
					return err
				}
				counter = 0
			}
			continue
		}
		// state switch; a zero counter means the run was already
		// flushed at exactly 255
		if counter > 0 {
			if err := writePair(state, counter); err != nil {
				return err
			}
		}
		state = cell
		counter = 1
	}
	if counter > 0 {
		return writePair(state, counter)
	}
	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
