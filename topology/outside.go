// File: outside.go
// Role: the outside boundary walk (spec.md §4.3 "Outside traversal"), the
// traversal that drives biconnected-component classification.
package topology

import "github.com/tue-alga/compacting-squares/grid"

// bendTable gives, for each incoming direction, the preference order of
// outward directions to try next. Declared once so OutsideWalk's loop body
// stays a pure lookup+scan, matching spec.md §4.3's table verbatim.
var bendTable = map[grid.Direction][4]grid.Direction{
	grid.N: {grid.E, grid.N, grid.W, grid.S},
	grid.E: {grid.S, grid.E, grid.N, grid.W},
	grid.S: {grid.W, grid.S, grid.E, grid.N},
	grid.W: {grid.N, grid.W, grid.S, grid.E},
}

// boundaryEdge identifies one directed step of the outside walk, keyed by
// the cell it leaves from and the direction it leaves in.
type boundaryEdge struct {
	cell grid.Cell
	dir  grid.Direction
}

// OutsideWalk performs the counter-clockwise boundary traversal of
// spec.md §4.3, starting at the downmost-leftmost cube with an initial
// incoming direction of S. It returns the cyclic sequence of visited
// CubeRefs; the first and last elements are always the start cube
// (spec.md §8 invariant 7), except for a single-cube World, where the walk
// is the one-element list [start].
// Returns ErrEmptyWorld if w has no cubes.
// Complexity: O(perimeter), bounded by O(N).
func OutsideWalk(w *grid.World) ([]grid.CubeRef, error) {
	start, ok := w.DownmostLeftmost()
	if !ok {
		return nil, ErrEmptyWorld
	}

	startCube, err := w.Cube(start)
	if err != nil {
		return nil, err
	}

	cur := start
	curCell := startCube.Cell
	incoming := grid.S
	seen := make(map[boundaryEdge]bool)
	walk := make([]grid.CubeRef, 0, w.Len()*2)

	for {
		walk = append(walk, cur)

		pref := bendTable[incoming]
		chosen, found := pickDirection(w, curCell, pref)
		if !found {
			break // isolated cube: no outgoing edge at all
		}

		e := boundaryEdge{cell: curCell, dir: chosen}
		if seen[e] {
			break
		}
		seen[e] = true

		nb := chosen.Neighbor(curCell)
		next, ok := w.At(nb)
		if !ok {
			break // defensive: pickDirection already checked occupancy
		}
		cur = next
		curCell = nb
		incoming = chosen
	}

	return walk, nil
}

// pickDirection returns the first direction in pref whose neighbor cell of
// cell is occupied.
func pickDirection(w *grid.World, cell grid.Cell, pref [4]grid.Direction) (grid.Direction, bool) {
	for _, d := range pref {
		if _, ok := w.At(d.Neighbor(cell)); ok {
			return d, true
		}
	}

	return 0, false
}
