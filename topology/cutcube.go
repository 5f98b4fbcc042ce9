// File: cutcube.go
// Role: Hopcroft–Tarjan articulation-point detection (spec.md §4.3
// "Cut-cube detection"), implemented with an explicit stack rather than
// native recursion. spec.md §5 and §9 call this out explicitly: on
// pathological inputs (~10^4 cubes) a recursive DFS risks overflowing the
// goroutine stack, so the frame stack here is heap-allocated and grown
// like any other slice.
package topology

import "github.com/tue-alga/compacting-squares/grid"

// frame is one level of the (explicit) DFS call stack: the node currently
// being explored and the index of the next neighbor to visit.
type frame struct {
	node int
	idx  int
}

// CutCubes returns, for each cube (indexed by its CubeRef ordinal), whether
// it is stable — i.e. not an articulation point of the 4-connected
// cube-adjacency graph. stable[i] == !cutCube[i], matching spec.md §4.3.
// Complexity: O(N) time and space.
func CutCubes(w *grid.World) []bool {
	cubes := w.Cubes()
	n := len(cubes)
	stable := make([]bool, n)
	for i := range stable {
		stable[i] = true
	}
	if n == 0 {
		return stable
	}

	neighbors := adjacency(w)

	depth := make([]int, n)
	low := make([]int, n)
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range parent {
		parent[i] = -1
	}

	timer := 0
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		depth[root] = timer
		low[root] = timer
		timer++

		stack := []frame{{node: root, idx: 0}}
		rootChildren := 0

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			u := top.node

			if top.idx < len(neighbors[u]) {
				v := neighbors[u][top.idx]
				top.idx++

				if v == parent[u] {
					continue
				}
				if visited[v] {
					if depth[v] < low[u] {
						low[u] = depth[v]
					}
					continue
				}

				visited[v] = true
				depth[v] = timer
				low[v] = timer
				timer++
				parent[v] = u
				if u == root {
					rootChildren++
				}
				stack = append(stack, frame{node: v, idx: 0})
				continue
			}

			// All neighbors of u explored: pop and fold into parent.
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				continue
			}
			p := stack[len(stack)-1].node
			if low[u] < low[p] {
				low[p] = low[u]
			}
			if p != root && low[u] >= depth[p] {
				stable[p] = false
			}
		}

		if rootChildren >= 2 {
			stable[root] = false
		}
	}

	return stable
}

// adjacency builds, for every cube (indexed by CubeRef ordinal), the list
// of 4-connected neighbor CubeRef ordinals. Declared in grid.OrthogonalDirections
// order for determinism.
// Complexity: O(N).
func adjacency(w *grid.World) [][]int {
	cubes := w.Cubes()
	out := make([][]int, len(cubes))
	for i, c := range cubes {
		for _, d := range grid.OrthogonalDirections {
			if ref, ok := w.At(d.Neighbor(c.Cell)); ok {
				out[i] = append(out[i], int(ref))
			}
		}
	}

	return out
}
