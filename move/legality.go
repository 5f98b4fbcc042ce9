// File: legality.go
// Role: the legality predicate of spec.md §4.2 — the local-neighborhood
// check (IsValidIgnoreConnectivity) and the full check that additionally
// requires the configuration to stay connected with the mover removed
// (IsValid).
package move

import (
	"github.com/tue-alga/compacting-squares/grid"
	"github.com/tue-alga/compacting-squares/topology"
)

// slideFlank holds the two (orthogonal, diagonal) neighbor pairs that can
// flank-support a slide in a given compass Direction, per spec.md §4.2's
// table ("target empty ∧ ((has[W] ∧ has[NW]) ∨ (has[E] ∧ has[NE]))" for N,
// and its rotations for E, S, W).
type slideFlank struct {
	ortho1, diag1 grid.Direction
	ortho2, diag2 grid.Direction
}

var slideFlanks = map[Dir]slideFlank{
	N: {ortho1: grid.W, diag1: grid.NW, ortho2: grid.E, diag2: grid.NE},
	E: {ortho1: grid.N, diag1: grid.NE, ortho2: grid.S, diag2: grid.SE},
	S: {ortho1: grid.E, diag1: grid.SE, ortho2: grid.W, diag2: grid.SW},
	W: {ortho1: grid.S, diag1: grid.SW, ortho2: grid.N, diag2: grid.NW},
}

// IsValidIgnoreConnectivity applies the local-neighborhood legality test
// of spec.md §4.2's table against w, without checking global connectivity.
// Returns false if src is empty.
// Complexity: O(1).
func IsValidIgnoreConnectivity(w *grid.World, m Move) bool {
	if _, ok := w.At(m.Src); !ok {
		return false
	}

	return LegalFrom(w, m.Src, m.Dir)
}

// LegalFrom applies the same local-neighborhood test as
// IsValidIgnoreConnectivity, but without requiring that src itself be
// occupied. Package planner uses this directly: its move-graph BFS walks
// cells vacated by the temporarily-removed mover (spec.md §4.4), so the
// cube performing the hypothetical move is never the one actually sitting
// at w's index.
// Complexity: O(1).
func LegalFrom(w *grid.World, src grid.Cell, d Dir) bool {
	dst := d.Target(src)
	if _, occupied := w.At(dst); occupied {
		return false
	}

	has := w.Neighbors(src)

	if flank, ok := slideFlanks[d]; ok {
		return (has[flank.ortho1] && has[flank.diag1]) ||
			(has[flank.ortho2] && has[flank.diag2])
	}

	dec := cornerAxes[d]

	return !has[dec.first] && has[dec.second]
}

// IsValid applies IsValidIgnoreConnectivity and additionally requires that
// removing the source cube from w leaves the remaining configuration
// 4-connected (spec.md §4.2 "isValid"). skip carries the mover's CubeRef
// so package topology's Connected never has to re-resolve it.
// Complexity: O(N) (dominated by the connectivity check).
func IsValid(w *grid.World, m Move) bool {
	if !IsValidIgnoreConnectivity(w, m) {
		return false
	}

	ref, ok := w.At(m.Src)
	if !ok {
		return false
	}

	return topology.Connected(w, &ref)
}
