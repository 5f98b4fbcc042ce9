package gather

import (
	"sort"

	"github.com/tue-alga/compacting-squares/grid"
	"github.com/tue-alga/compacting-squares/move"
	"github.com/tue-alga/compacting-squares/planner"
	"github.com/tue-alga/compacting-squares/topology"
)

// Phase drives the Gather algorithm of spec.md §4.5 as a pull-based state
// machine. The zero value is ready to use.
type Phase struct {
	pending []move.Move
	done    bool
}

// NewPhase returns a fresh Gather Phase.
func NewPhase() *Phase {
	return &Phase{}
}

// Done reports whether Gather has finished (no deep link remains).
func (p *Phase) Done() bool {
	return p.done
}

// Next returns the next move of the Gather sequence. ok is false once
// Gather has finished; no further calls are required after that, though
// they are safe and return ok=false again.
// Complexity: amortized O(N) per call; O(N) calls total (spec.md §2
// "O(N²)" budget, with each call's own planning bounded by O(N)).
func (p *Phase) Next(w *grid.World) (move.Move, bool, error) {
	if p.done {
		return move.Move{}, false, nil
	}

	if len(p.pending) == 0 {
		if err := p.refill(w); err != nil {
			return move.Move{}, false, err
		}
		if p.done {
			return move.Move{}, false, nil
		}
	}

	m := p.pending[0]
	p.pending = p.pending[1:]

	return m, true, nil
}

// refill re-marks components, selects the next deep link cube and
// destination, and plans a full move path for it via package planner,
// stashing the path in p.pending. Sets p.done if no deep link remains.
func (p *Phase) refill(w *grid.World) error {
	if w.Len() < 3 {
		// Two or fewer cubes can never form a Chunk (spec.md §3 requires
		// size ≥ 3 for a biconnected component); any connected pair is
		// already "gathered" in the sense Gather cares about.
		p.done = true

		return nil
	}

	if _, err := topology.MarkComponents(w); err != nil {
		return err
	}

	root, ok := w.DownmostLeftmost()
	if !ok {
		p.done = true

		return nil
	}

	core := coreSet(w, root)
	candidates := deepLinkCandidates(w, core)
	if len(candidates) == 0 {
		p.done = true

		return nil
	}

	limit := topology.BridgeLimit(w)
	orderCandidates(w, candidates, limit)

	destinations := destinationCells(w, core)
	sort.Slice(destinations, func(i, j int) bool { return destinations[i].Less(destinations[j]) })

	for _, cand := range candidates {
		for _, dst := range destinations {
			path, err := planner.ShortestMovePath(w, cand, dst)
			if err == nil {
				p.pending = path

				return nil
			}
		}
	}

	return ErrStuck
}

// coreSet returns the set of cube refs considered part of the growing main
// chunk: every Chunk*/Connector cube, plus the root itself.
func coreSet(w *grid.World, root grid.CubeRef) map[grid.CubeRef]bool {
	core := map[grid.CubeRef]bool{root: true}
	for i, c := range w.Cubes() {
		switch c.Class {
		case grid.ChunkStable, grid.ChunkCut, grid.Connector:
			core[grid.CubeRef(i)] = true
		}
	}

	return core
}

// deepLinkCandidates returns every LinkStable cube with no core neighbor.
// Only LinkStable cubes are eligible: moving a LinkCut cube (a cut vertex)
// would disconnect the configuration it departs.
func deepLinkCandidates(w *grid.World, core map[grid.CubeRef]bool) []grid.CubeRef {
	var out []grid.CubeRef
	for i, c := range w.Cubes() {
		if c.Class != grid.LinkStable {
			continue
		}
		if touchesCore(w, c.Cell, core) {
			continue
		}
		out = append(out, grid.CubeRef(i))
	}

	return out
}

// touchesCore reports whether any 4-connected neighbor of cell belongs to
// core.
func touchesCore(w *grid.World, cell grid.Cell, core map[grid.CubeRef]bool) bool {
	for _, d := range grid.OrthogonalDirections {
		if ref, ok := w.At(d.Neighbor(cell)); ok && core[ref] {
			return true
		}
	}

	return false
}

// orderCandidates sorts candidates in place: those whose BridgeCapacity
// fits within limit sort first (spec.md §4.5 "preferring those... feasible
// under the current bridge limit"), then every candidate breaks ties by
// minimal (Y, X) cell order (spec.md §4.5's explicit tie-break rule).
func orderCandidates(w *grid.World, candidates []grid.CubeRef, limit int) {
	cubes := w.Cubes()
	feasible := func(ref grid.CubeRef) bool {
		return topology.BridgeCapacity(w, ref) <= limit
	}
	sort.Slice(candidates, func(i, j int) bool {
		fi, fj := feasible(candidates[i]), feasible(candidates[j])
		if fi != fj {
			return fi
		}

		return cubes[candidates[i]].Cell.Less(cubes[candidates[j]].Cell)
	})
}

// destinationCells returns every empty cell 4-adjacent to the core.
func destinationCells(w *grid.World, core map[grid.CubeRef]bool) []grid.Cell {
	cubes := w.Cubes()
	seen := map[grid.Cell]bool{}
	var out []grid.Cell
	for ref := range core {
		for _, d := range grid.OrthogonalDirections {
			nb := d.Neighbor(cubes[ref].Cell)
			if _, occupied := w.At(nb); occupied {
				continue
			}
			if seen[nb] {
				continue
			}
			seen[nb] = true
			out = append(out, nb)
		}
	}

	return out
}
