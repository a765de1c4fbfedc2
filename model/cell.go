package model

import (
	"fmt"
	"strconv"
)

// Cell represents a user-confirmed grid cell.
// ID is assigned at creation and never reused or mutated. Name is freely
// editable and may transiently fail to parse as a CellPosition. BBox is
// fixed at creation.
type Cell struct {
	ID   int
	Name string
	BBox BBox
}

// Position parses the cell's name as a CellPosition.
func (c Cell) Position() (CellPosition, error) {
	return ParseCellPosition(c.Name)
}

// MinColumn and MaxColumn bound the column letters a cell label may use.
const (
	MinColumn = 'a'
	MaxColumn = 'h'
)

// CellPosition is the parsed form of a cell label: a single lowercase
// column letter 'a'..'h' followed by a positive row number, e.g. "a1" or "c12".
type CellPosition struct {
	Column byte
	Row    int
}

// ParseCellPosition parses a cell label like "a1" into a CellPosition.
func ParseCellPosition(label string) (CellPosition, error) {
	if label == "" {
		return CellPosition{}, fmt.Errorf("empty cell label")
	}

	col := label[0]
	if col < MinColumn || col > MaxColumn {
		return CellPosition{}, fmt.Errorf("invalid column in %q: want %q..%q", label, MinColumn, MaxColumn)
	}

	// Canonical rows only: digits, no sign, no leading zero.
	rowPart := label[1:]
	if rowPart == "" || rowPart[0] == '0' {
		return CellPosition{}, fmt.Errorf("invalid row in %q: %q", label, rowPart)
	}
	for i := 0; i < len(rowPart); i++ {
		if rowPart[i] < '0' || rowPart[i] > '9' {
			return CellPosition{}, fmt.Errorf("invalid row in %q: %q", label, rowPart)
		}
	}
	row, err := strconv.Atoi(rowPart)
	if err != nil {
		return CellPosition{}, fmt.Errorf("invalid row in %q: %q", label, rowPart)
	}

	return CellPosition{Column: col, Row: row}, nil
}

// String returns the label form of the position, e.g. "a1".
func (p CellPosition) String() string {
	return string(p.Column) + strconv.Itoa(p.Row)
}

// Less orders positions by column, then by row.
func (p CellPosition) Less(other CellPosition) bool {
	if p.Column != other.Column {
		return p.Column < other.Column
	}
	return p.Row < other.Row
}
