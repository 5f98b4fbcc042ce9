// File: marked.go
// Role: the "marked" flavour of every Grid Store mutation (spec.md §4.1):
// each wraps the corresponding *grid.World method and re-runs
// MarkComponents afterward. Declared here rather than on World itself
// because World cannot import topology without an import cycle (topology
// already imports grid) — see grid/world.go's package doc.
package topology

import "github.com/tue-alga/compacting-squares/grid"

// AddMarked adds a cube at cell via w.Add and re-classifies the whole
// World. Returns whatever error Add returns, unchanged; on error,
// MarkComponents does not run.
func AddMarked(w *grid.World, cell grid.Cell, color grid.Color) (grid.CubeRef, error) {
	ref, err := w.Add(cell, color)
	if err != nil {
		return ref, err
	}
	_, err = MarkComponents(w)

	return ref, err
}

// RemoveMarked removes the cube at cell via w.Remove and re-classifies the
// whole World.
func RemoveMarked(w *grid.World, cell grid.Cell) error {
	if err := w.Remove(cell); err != nil {
		return err
	}
	_, err := MarkComponents(w)

	return err
}

// MoveMarked relocates the cube at src to dst via w.Move and re-classifies
// the whole World — the flavour package stepper uses in interactive mode
// (spec.md §4.7), as opposed to the batch mode's unmarked w.Move calls.
func MoveMarked(w *grid.World, src, dst grid.Cell) error {
	if err := w.Move(src, dst); err != nil {
		return err
	}
	_, err := MarkComponents(w)

	return err
}
