package grid

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iw2rmb/puzzlekit/internal/ascii"
)

// Parse builds a byte grid from ASCII grid text.
//
// Lines are separated by '\n' and must all have the length of the first
// line. A single trailing newline after the last row is allowed. Empty input
// yields the empty grid.
func Parse(text []byte) (*Grid[byte], error) {
	if len(text) == 0 {
		return &Grid[byte]{}, nil
	}

	lines := bytes.Split(text, []byte{'\n'})
	width := len(lines[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: first line is empty", ErrInvalidGrid)
	}

	values := make([]byte, 0, len(text))
	values = append(values, lines[0]...)
	for i, line := range lines[1:] {
		if len(line) != width {
			// The last line is allowed to be terminated by a newline.
			if len(line) == 0 && i == len(lines)-2 {
				break
			}
			return nil, fmt.Errorf("%w: line %d has length %d, want %d", ErrInvalidGrid, i+1, len(line), width)
		}
		values = append(values, line...)
	}

	return &Grid[byte]{
		values: values,
		width:  width,
		height: len(values) / width,
	}, nil
}

// MustParse is Parse, panicking on invalid grid text.
func MustParse(text []byte) *Grid[byte] {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

// FormatASCII renders a byte grid as ASCII text.
//
// Rows are separated by '\n' and the last row is newline-terminated, so
// FormatASCII is the inverse of Parse for unmodified ASCII grids. Cells may
// have been mutated since parsing, so the ASCII check happens here: any byte
// outside the ASCII range fails.
func FormatASCII(g *Grid[byte]) (string, error) {
	if !ascii.Valid(g.values) {
		return "", ErrNonASCII
	}

	var sb strings.Builder
	sb.Grow(len(g.values) + g.height)
	for y := 0; y < g.height; y++ {
		sb.Write(g.values[y*g.width : (y+1)*g.width])
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// MustFormatASCII is FormatASCII, panicking on non-ASCII cell values.
func MustFormatASCII(g *Grid[byte]) string {
	s, err := FormatASCII(g)
	if err != nil {
		panic(err)
	}
	return s
}
