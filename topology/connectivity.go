// File: connectivity.go
// Role: BFS reachability over the 4-connected cube-adjacency graph, with an
// optional skip cube — the primitive spec.md §4.3 "Connectivity with
// optional skip" and §4.4 step 1 both build on.
package topology

import "github.com/tue-alga/compacting-squares/grid"

// Connected reports whether the cubes of w, minus the optional skip cube,
// form a single 4-connected component. A World with zero or one
// (non-skipped) cubes is trivially connected, per spec.md §4.3.
// Complexity: O(N).
func Connected(w *grid.World, skip *grid.CubeRef) bool {
	cubes := w.Cubes()
	total := len(cubes)
	if skip != nil {
		total--
	}
	if total <= 1 {
		return true
	}

	start := -1
	for i, c := range cubes {
		if skip != nil && grid.CubeRef(i) == *skip {
			continue
		}
		start = i
		_ = c
		break
	}
	if start < 0 {
		return true
	}

	visited := make(map[grid.Cell]bool, total)
	queue := make([]grid.Cell, 0, total)
	startCell := cubes[start].Cell
	visited[startCell] = true
	queue = append(queue, startCell)

	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++

		for _, d := range grid.OrthogonalDirections {
			nb := d.Neighbor(cur)
			if visited[nb] {
				continue
			}
			ref, ok := w.At(nb)
			if !ok {
				continue
			}
			if skip != nil && ref == *skip {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}

	return count == total
}
