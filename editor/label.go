package editor

import (
	"github.com/tsawler/gridmark/model"
)

// inferName derives a label for a newly completed cell from its labeled
// neighbor directly above. Candidates are cells whose vertical extent ends
// strictly above the new cell's top and whose horizontal span contains the
// new cell's horizontal center; a pure vertical-adjacency test, not general
// containment. The candidate with the greatest bottom coordinate is the
// closest one directly above. When its name parses as a grid position, the
// new cell takes the same column with the row incremented; otherwise the
// numeric default stands.
func (e *Editor) inferName(rect model.BBox) (string, bool) {
	centerX := rect.Center().X

	var above *model.Cell
	for i := range e.cells {
		c := &e.cells[i]
		if c.BBox.Bottom() >= rect.Top() {
			continue
		}
		if !c.BBox.ContainsX(centerX) {
			continue
		}
		if above == nil || c.BBox.Bottom() > above.BBox.Bottom() {
			above = c
		}
	}
	if above == nil {
		return "", false
	}

	pos, err := model.ParseCellPosition(above.Name)
	if err != nil {
		return "", false
	}
	return model.CellPosition{Column: pos.Column, Row: pos.Row + 1}.String(), true
}
