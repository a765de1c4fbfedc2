package editor

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/tsawler/gridmark/model"
)

type exportRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Export writes the cell map as a JSON object keyed by cell label, with
// keys ordered by grid position (column, then row). Every cell's name must
// parse as a grid position; a single invalid label blocks the whole export
// with an error naming it. The output is deterministic: repeated exports
// without intervening edits are byte-identical.
func (e *Editor) Export(w io.Writer) error {
	type entry struct {
		pos  model.CellPosition
		rect model.BBox
	}

	e.mu.Lock()
	cells := append([]model.Cell(nil), e.cells...)
	e.mu.Unlock()

	entries := make([]entry, 0, len(cells))
	for _, c := range cells {
		pos, err := c.Position()
		if err != nil {
			return fmt.Errorf("cannot export: cell label %q is not a valid grid position", c.Name)
		}
		entries = append(entries, entry{pos: pos, rect: c.BBox})
	}

	// Later cells win on duplicate labels, matching map assignment in
	// cell-creation order.
	seen := make(map[model.CellPosition]int, len(entries))
	unique := make([]entry, 0, len(entries))
	for _, ent := range entries {
		if i, ok := seen[ent.pos]; ok {
			unique[i] = ent
			continue
		}
		seen[ent.pos] = len(unique)
		unique = append(unique, ent)
	}

	sort.Slice(unique, func(i, j int) bool {
		return unique[i].pos.Less(unique[j].pos)
	})

	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	for i, ent := range unique {
		if i > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		val, err := json.Marshal(exportRect{
			X:      ent.rect.X,
			Y:      ent.rect.Y,
			Width:  ent.rect.Width,
			Height: ent.rect.Height,
		})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%q:%s", ent.pos.String(), val); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "}\n"); err != nil {
		return err
	}
	return nil
}
