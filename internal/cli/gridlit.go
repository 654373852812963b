package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrEmptyLiteral indicates a grid literal without any cell.
var ErrEmptyLiteral = errors.New("cli: grid literal is empty")

// sampleGrid is the 5×5 raster traced when no --grid is given.
var sampleGrid = [][]uint8{
	{1, 1, 1, 1, 4},
	{1, 255, 1, 255, 4},
	{1, 1, 4, 16, 16},
	{1, 255, 1, 255, 1},
	{1, 1, 1, 1, 1},
}

// parseGrid reads a grid literal: rows split on ';' or newlines, cells on
// spaces, tabs or commas. Blank rows are skipped. Values must fit in a byte;
// whether they are legal D8 codes is left to the tracer.
func parseGrid(lit string) ([][]uint8, error) {
	rowSep := func(r rune) bool { return r == ';' || r == '\n' || r == '\r' }
	cellSep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	var rows [][]uint8
	for i, line := range strings.FieldsFunc(lit, rowSep) {
		fields := strings.FieldsFunc(line, cellSep)
		if len(fields) == 0 {
			continue
		}
		row := make([]uint8, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("cli: grid literal row %d cell %d: %w", i, j, err)
			}
			row[j] = uint8(v)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLiteral
	}

	return rows, nil
}
