package planner

import (
	"fmt"

	"github.com/tue-alga/compacting-squares/grid"
	"github.com/tue-alga/compacting-squares/move"
)

// edge records, for a cell reached during the BFS, the cell it was reached
// from and the move direction that reached it.
type edge struct {
	from grid.Cell
	dir  move.Dir
}

// ShortestMovePath returns the shortest sequence of legal single-cube moves
// that walks the cube identified by mover from its current cell to target,
// per spec.md §4.4. Before this function returns — whether or not a path
// was found — mover is restored to its original cell and CubeRef, with its
// original classification fields, and every other cube's CubeRef is left
// exactly as it was on entry (the Remove/Reinsert bracket below is its own
// exact inverse). Returns ErrNoMovePath if target is unreachable.
// Complexity: O(N).
func ShortestMovePath(w *grid.World, mover grid.CubeRef, target grid.Cell) ([]move.Move, error) {
	cube, err := w.Cube(mover)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	src := cube.Cell
	if src == target {
		return nil, nil
	}
	saved := *cube

	if err := w.Remove(src); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	path, pathErr := bfsPath(w, src, target)

	if err := restore(w, mover, saved); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	if pathErr != nil {
		return nil, pathErr
	}

	return path, nil
}

// restore puts the mover back at its original CubeRef via World.Reinsert,
// which also restores every other cube's CubeRef to its pre-Remove value
// (Reinsert is the exact inverse of the Remove above). Any error here is a
// Grid Store bug (spec.md §7 policy): saved.Cell was free by construction
// (the BFS never revisits an occupied cell), so Reinsert cannot
// legitimately fail.
func restore(w *grid.World, mover grid.CubeRef, saved grid.Cube) error {
	return w.Reinsert(mover, saved)
}

// bfsPath runs the move-graph BFS of spec.md §4.4 steps 2-5 over w (which
// must already have the mover removed) and reconstructs the shortest move
// sequence from src to target via the parent map.
func bfsPath(w *grid.World, src, target grid.Cell) ([]move.Move, error) {
	parent := map[grid.Cell]edge{}
	visited := map[grid.Cell]bool{src: true}
	queue := []grid.Cell{src}

	found := src == target
	for len(queue) > 0 && !found {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range move.AllDirs {
			if !move.LegalFrom(w, cur, d) {
				continue
			}
			next := d.Target(cur)
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = edge{from: cur, dir: d}
			if next == target {
				found = true
				break
			}
			queue = append(queue, next)
		}
	}

	if !found {
		return nil, ErrNoMovePath
	}

	var reversed []move.Move
	for cur := target; cur != src; {
		e := parent[cur]
		reversed = append(reversed, move.Move{Src: e.from, Dir: e.dir})
		cur = e.from
	}

	path := make([]move.Move, len(reversed))
	for i, m := range reversed {
		path[len(reversed)-1-i] = m
	}

	return path, nil
}
