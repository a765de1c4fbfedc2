// Package editor implements the interactive cell-assembly state machine.
//
// An [Editor] owns the mutable interaction state over one extracted
// document: the currently highlighted edge, the four per-direction
// selection slots, the list of confirmed cells, and the counter that mints
// cell ids. Selecting four edges, one per direction, completes a cell; the
// new cell's label is inferred from the labeled cell directly above it when
// one exists.
//
// An Editor guards its interaction state with a single mutex, so hover
// positions delivered from a projector's goroutine interleave safely with
// selection, renaming, and export on the interaction goroutine.
package editor
