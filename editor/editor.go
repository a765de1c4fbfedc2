package editor

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/tsawler/gridmark/internal/coalesce"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/svgdoc"
)

// DefaultSelectDistance is the maximum pointer-to-edge distance, in
// document units at view scale 1, for an edge to be selectable.
const DefaultSelectDistance = 50.0

// Config holds editor configuration.
type Config struct {
	// SelectDistance is the maximum pointer-to-edge distance for
	// highlighting and selection, in document units. Callers working in
	// screen pixels should divide their pixel threshold by the view scale.
	SelectDistance float64

	// KeepVerticalSelection preserves the left and right selection slots
	// when a cell completes, so consecutive cells in the same column can
	// reuse the same pair of side borders.
	KeepVerticalSelection bool
}

// DefaultConfig returns the default editor configuration.
func DefaultConfig() Config {
	return Config{
		SelectDistance:        DefaultSelectDistance,
		KeepVerticalSelection: false,
	}
}

// Editor is the interactive cell-assembly state machine over one extracted
// document. It owns all cells and the selection state; edges belong to the
// document and are only referenced, never mutated.
//
// All methods are safe for concurrent use: a [Editor.HoverProjector]
// delivers hover positions from its own goroutine, interleaved with
// selection and renaming on the interaction goroutine.
type Editor struct {
	doc    *svgdoc.Document
	config Config

	mu          sync.Mutex
	highlighted *model.Edge
	slots       [4]*model.Edge // indexed by model.EdgeKind
	cells       []model.Cell
	counter     int
}

// New creates an editor over an extracted document.
func New(doc *svgdoc.Document, config Config) *Editor {
	if config.SelectDistance <= 0 {
		config.SelectDistance = DefaultSelectDistance
	}
	return &Editor{doc: doc, config: config}
}

// Reset replaces the extracted document and drops all interaction state:
// highlight, selection slots, cells, and the id counter. Loading a new
// document invalidates everything derived from the previous one.
func (e *Editor) Reset(doc *svgdoc.Document) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.doc = doc
	e.highlighted = nil
	e.slots = [4]*model.Edge{}
	e.cells = nil
	e.counter = 0
}

// Document returns the extracted document the editor operates on.
func (e *Editor) Document() *svgdoc.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc
}

// Cells returns a copy of the confirmed cells in creation order.
func (e *Editor) Cells() []model.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Cell(nil), e.cells...)
}

// Highlighted returns the currently highlighted edge, or nil.
func (e *Editor) Highlighted() *model.Edge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highlighted
}

// Selected returns the edges currently occupying selection slots.
func (e *Editor) Selected() []model.Edge {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sel []model.Edge
	for _, s := range e.slots {
		if s != nil {
			sel = append(sel, *s)
		}
	}
	return sel
}

// NearestSelectable returns the edge closest to p among edges whose
// direction slot is still empty, or nil when the closest such edge is
// maxDist or farther away. Equal distances resolve to the longer edge, so
// a click on a shared corner lands on the long border edge rather than the
// side stub of a crossing bar.
func (e *Editor) NearestSelectable(p model.Point, maxDist float64) *model.Edge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nearestSelectable(p, maxDist)
}

func (e *Editor) nearestSelectable(p model.Point, maxDist float64) *model.Edge {
	var best *model.Edge
	bestDist := maxDist

	for i := range e.doc.Edges {
		edge := &e.doc.Edges[i]
		if e.slots[edge.Kind] != nil {
			continue
		}
		d := edge.Segment().DistanceTo(p)
		if d < bestDist ||
			(best != nil && d == bestDist && edge.Segment().Length() > best.Segment().Length()) {
			best = edge
			bestDist = d
		}
	}
	return best
}

// Hover updates the highlighted edge for a pointer position. Positions
// outside the document's coordinate extent mean "no position" and clear
// the highlight without querying.
func (e *Editor) Hover(p model.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.doc.ViewBox.Contains(p) {
		e.highlighted = nil
		return
	}
	e.highlighted = e.nearestSelectable(p, e.config.SelectDistance)
}

// HoverProjector returns a rate limiter that coalesces a high-frequency
// pointer stream into Hover calls at most once per interval. The consumer
// always eventually sees the latest submitted position. Deliveries arrive
// on the projector's goroutine; the editor's locking keeps them safe
// against concurrent queries and selections.
func (e *Editor) HoverProjector(interval time.Duration) *coalesce.Projector[model.Point] {
	return coalesce.NewProjector(interval, e.Hover)
}

// Select selects the nearest selectable edge to p, if any, filling its
// direction slot. When the fourth slot fills, the selection completes into
// a new cell, which is returned; otherwise Select returns nil.
func (e *Editor) Select(p model.Point) *model.Cell {
	e.mu.Lock()
	defer e.mu.Unlock()

	edge := e.nearestSelectable(p, e.config.SelectDistance)
	if edge == nil {
		return nil
	}
	e.slots[edge.Kind] = edge

	for _, s := range e.slots {
		if s == nil {
			return nil
		}
	}
	return e.completeCell()
}

// completeCell assembles the four selected edges into a cell and returns a
// detached copy of it. The slots are expected in the orientation produced
// by selecting the inward-facing edges of a rectangular frame: the right
// slot's X left of the left slot's X, and the bottom slot's Y above the
// top slot's Y.
func (e *Editor) completeCell() *model.Cell {
	top := e.slots[model.EdgeTop]
	right := e.slots[model.EdgeRight]
	bottom := e.slots[model.EdgeBottom]
	left := e.slots[model.EdgeLeft]

	rect := model.BBox{
		X:      right.X,
		Y:      bottom.Y,
		Width:  left.X - right.X,
		Height: top.Y - bottom.Y,
	}

	e.counter++
	cell := model.Cell{
		ID:   e.counter,
		Name: strconv.Itoa(e.counter),
		BBox: rect,
	}
	if name, ok := e.inferName(rect); ok {
		cell.Name = name
	}
	e.cells = append(e.cells, cell)

	e.highlighted = nil
	e.slots[model.EdgeTop] = nil
	e.slots[model.EdgeBottom] = nil
	if !e.config.KeepVerticalSelection {
		e.slots[model.EdgeLeft] = nil
		e.slots[model.EdgeRight] = nil
	}

	return &cell
}

// Rename sets a cell's name verbatim; any text is allowed, including text
// that is not a valid grid position. When the new name does parse as a
// position, row numbering cascades to every cell strictly below the renamed
// cell in its column-aligned band: sorted by vertical position, each
// successive cell gets the renamed cell's column and row plus its rank.
func (e *Editor) Rename(id int, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cell := e.cell(id)
	if cell == nil {
		return fmt.Errorf("no cell with id %d", id)
	}
	cell.Name = name

	pos, err := model.ParseCellPosition(name)
	if err != nil {
		return nil
	}

	centerX := cell.BBox.Center().X
	var below []*model.Cell
	for i := range e.cells {
		other := &e.cells[i]
		if other.ID == id {
			continue
		}
		if other.BBox.Top() > cell.BBox.Bottom() && other.BBox.ContainsX(centerX) {
			below = append(below, other)
		}
	}
	sort.SliceStable(below, func(i, j int) bool {
		return below[i].BBox.Top() < below[j].BBox.Top()
	})

	for i, other := range below {
		other.Name = model.CellPosition{Column: pos.Column, Row: pos.Row + i + 1}.String()
	}
	return nil
}

// Delete removes a cell. Deleting never cascades label changes.
func (e *Editor) Delete(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.cells {
		if e.cells[i].ID == id {
			e.cells = append(e.cells[:i], e.cells[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no cell with id %d", id)
}

// cell returns a pointer to the cell with the given id, or nil.
func (e *Editor) cell(id int) *model.Cell {
	for i := range e.cells {
		if e.cells[i].ID == id {
			return &e.cells[i]
		}
	}
	return nil
}
