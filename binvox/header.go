package binvox

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	binvoxMagic    = "#binvox"
	binvoxVersion  = 1
	headerDataMark = "data"
)

// header holds the parsed fields of the ASCII preamble.
type header struct {
	version   int
	dims      [3]int
	translate [3]float64
	scale     float64
}

func readHeaderLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "reading header line")
	}
	return strings.TrimSpace(line), nil
}

// readHeader parses the six-line preamble up to and including the "data"
// marker, leaving in positioned at the first payload byte.
func readHeader(in *bufio.Reader) (header, error) {
	var h header

	line, err := readHeaderLine(in)
	if err != nil {
		return h, err
	}
	if !strings.HasPrefix(line, binvoxMagic) {
		return h, ErrNotBinvox
	}
	if _, version, ok := strings.Cut(line, " "); ok {
		h.version, err = strconv.Atoi(strings.TrimSpace(version))
		if err != nil {
			return h, errors.Errorf("invalid binvox version %q", version)
		}
	}

	if line, err = readHeaderLine(in); err != nil {
		return h, err
	}
	tokens := strings.Fields(line)
	if len(tokens) != 4 || tokens[0] != "dim" {
		return h, errors.Errorf("line is supposed to be \"dim <dx> <dy> <dz>\" but is %q", line)
	}
	for i, token := range tokens[1:] {
		h.dims[i], err = strconv.Atoi(token)
		if err != nil {
			return h, errors.Errorf("invalid dim field %q", token)
		}
		if h.dims[i] < 0 {
			return h, errors.Errorf("negative dim field %q", token)
		}
	}

	if line, err = readHeaderLine(in); err != nil {
		return h, err
	}
	tokens = strings.Fields(line)
	if len(tokens) != 4 || tokens[0] != "translate" {
		return h, errors.Errorf("line is supposed to be \"translate <tx> <ty> <tz>\" but is %q", line)
	}
	for i, token := range tokens[1:] {
		h.translate[i], err = strconv.ParseFloat(token, 64)
		if err != nil {
			return h, errors.Errorf("invalid translate field %q", token)
		}
	}

	if line, err = readHeaderLine(in); err != nil {
		return h, err
	}
	tokens = strings.Fields(line)
	// scale carries exactly one value; extra fields are ignored.
	if len(tokens) < 2 || tokens[0] != "scale" {
		return h, errors.Errorf("line is supposed to be \"scale <s>\" but is %q", line)
	}
	h.scale, err = strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return h, errors.Errorf("invalid scale field %q", tokens[1])
	}

	if line, err = readHeaderLine(in); err != nil {
		return h, err
	}
	if line != headerDataMark {
		return h, errors.Errorf("line is supposed to be %q but is %q", headerDataMark, line)
	}
	return h, nil
}

// writeHeader serializes the preamble, terminated by the "data" marker, so
// the payload bytes can follow directly.
func writeHeader(out io.Writer, h header) error {
	_, err := fmt.Fprintf(out, "%s %d\n", binvoxMagic, binvoxVersion)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(out, "dim %d %d %d\n", h.dims[0], h.dims[1], h.dims[2]); err != nil {
		return err
	}
	if _, err = fmt.Fprintf(out, "translate %s %s %s\n",
		formatFloat(h.translate[0]), formatFloat(h.translate[1]), formatFloat(h.translate[2]),
	); err != nil {
		return err
	}
	if _, err = fmt.Fprintf(out, "scale %s\n", formatFloat(h.scale)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", headerDataMark)
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
