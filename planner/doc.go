// Package planner implements the Move Graph Planner of spec.md §4.4: given
// a mover cube and a target cell, it returns the shortest sequence of legal
// single-cube moves that walks the mover there, leaving every other cube
// untouched.
//
// What:
//
//   - ShortestMovePath temporarily removes the mover from the World, runs
//     an unweighted BFS over the move graph (vertices are grid cells,
//     edges are move.LegalFrom transitions), and reconstructs the path via
//     a parent map — the same shape as
//     github.com/katalvlaran/lvlath/bfs.BFS's Parent map and PathTo
//     reconstruction, adapted from graph vertices to grid cells.
//   - The mover is restored to its original cell (with its original
//     classification fields) before ShortestMovePath returns, whether or
//     not a path was found.
//
// Why a standalone package: spec.md §4.4 step 1 requires the mover to be
// absent from the World for the whole BFS (so it cannot "slide along
// itself"); bundling that remove/restore bracket with the BFS itself, one
// level above package move, keeps package move free of any notion of
// "planning" versus "executing" a move.
//
// Determinism: grid.AllDirections and move.AllDirs are declared in a fixed
// order; neighbor expansion during the BFS iterates move.AllDirs in that
// order, so two runs on identical inputs produce identical paths (spec.md
// §4.4 "Determinism").
//
// Complexity: O(N) to remove/restore the mover, O(perimeter of reachable
// free cells) for the BFS — bounded by O(N) for any configuration produced
// by Gather/Compact.
package planner
