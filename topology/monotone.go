// File: monotone.go
// Role: the xy-monotone predicate of spec.md §4.6 ("isXYMonotone") and
// §GLOSSARY, used by package compact to decide when it has finished and
// directly exercised by spec.md §8 invariant 8 / seed scenarios S1, S2, S5.
package topology

import "github.com/tue-alga/compacting-squares/grid"

// IsXYMonotone reports whether every cube of w that is not on the
// minimum-x or minimum-y line has both a western and a southern neighbor.
// An empty or single-cube World is trivially xy-monotone.
// Complexity: O(N).
func IsXYMonotone(w *grid.World) bool {
	if w.Len() == 0 {
		return true
	}

	minX, minY, _, _ := w.Bounds()
	for _, c := range w.Cubes() {
		if c.Cell.X != minX {
			if _, ok := w.At(grid.W.Neighbor(c.Cell)); !ok {
				return false
			}
		}
		if c.Cell.Y != minY {
			if _, ok := w.At(grid.S.Neighbor(c.Cell)); !ok {
				return false
			}
		}
	}

	return true
}
