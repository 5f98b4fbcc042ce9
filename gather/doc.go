// Package gather implements the Gather Phase of spec.md §4.5: it emits a
// lazy sequence of moves that collects every cube directly onto, or
// directly adjacent to, the growing chunk rooted at the downmost-leftmost
// cube, leaving no "deep" link cube — one with no neighbor in the core —
// behind.
//
// Phase is a pull-based state machine in the sense of spec.md §9
// "Generators": Next(w) returns one move at a time, re-marking components
// and re-selecting its target fresh on every empty internal queue, mirroring
// how github.com/katalvlaran/lvlath/tsp's solve.go stages a multi-step
// algorithm as a sequence of discrete dispatched steps rather than one
// monolithic loop.
//
// Open Question resolved (recorded in DESIGN.md): spec.md §4.5 describes
// selection and destination heuristics only qualitatively ("preferring
// those whose movement... is feasible", "extends the root chunk... without
// violating monotonicity") without a literal formula. This package commits
// to a concrete, deterministic interpretation:
//
//   - The "core" is every cube already tagged Chunk* or Connector by
//     package topology, plus the root cube itself.
//   - A link cube is a gather target only if it has no core cube among its
//     four orthogonal neighbors ("deep") — a link cube already touching the
//     core needs no further movement.
//   - Among deep link targets, candidates whose topology.BridgeCapacity is
//     within the current topology.BridgeLimit are preferred; ties (and the
//     case where no candidate fits the limit) break on minimal (Y, X) cell
//     order, per spec.md §4.5's explicit tie-break rule.
//   - The destination is the empty cell 4-adjacent to the core, minimal in
//     (Y, X) order.
//   - Only LinkStable cubes are ever selected as movers: moving a cut cube
//     would disconnect the rest of the configuration, violating spec.md §3's
//     4-connectivity invariant before the move even completes.
package gather
