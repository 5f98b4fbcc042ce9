// Package topology implements the Topology Analyzer of spec.md §4.3: pure
// functions over a *grid.World that never mutate cube positions, only
// (optionally) the classification fields each Cube already carries. The
// exceptions are AddMarked, RemoveMarked and MoveMarked, which perform the
// corresponding World mutation and then re-run MarkComponents.
//
// What:
//
//   - Connected: BFS reachability with an optional skip cube.
//   - CutCubes: Hopcroft–Tarjan articulation-point detection, iterative.
//   - OutsideWalk: counter-clockwise boundary traversal from the
//     downmost-leftmost cube.
//   - MarkComponents: biconnected decomposition of the boundary walk into
//     chunks/links/connectors, combined with CutCubes into the final
//     per-cube Classification.
//   - BridgeCapacity / BridgeLimit: sizing helpers used by package gather.
//
// Why here and not in grid: classification is a *derived* property of the
// occupied cell set (spec.md §4.3: "pure functions... never mutate the
// Grid Store"); keeping the derivation in its own package mirrors how
// github.com/katalvlaran/lvlath separates bfs/dfs (pure traversal) from
// core (storage).
//
// Complexity: Connected is O(N); CutCubes is O(N) with an explicit stack
// (spec.md §5, §9 — recursion depth must not grow with N); OutsideWalk is
// O(perimeter) bounded by O(N); MarkComponents is O(N).
package topology
