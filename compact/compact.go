package compact

import (
	"math"
	"sort"

	"github.com/tue-alga/compacting-squares/grid"
	"github.com/tue-alga/compacting-squares/move"
	"github.com/tue-alga/compacting-squares/planner"
	"github.com/tue-alga/compacting-squares/topology"
)

// Phase drives the Compact algorithm of spec.md §4.6 as a pull-based state
// machine. The zero value is ready to use.
type Phase struct {
	pending  []move.Move
	done     bool
	anchor   grid.Cell
	anchored bool
}

// NewPhase returns a fresh Compact Phase.
func NewPhase() *Phase {
	return &Phase{}
}

// Done reports whether Compact has finished (the configuration is
// xy-monotone and occupies exactly the canonical staircase).
func (p *Phase) Done() bool {
	return p.done
}

// Next returns the next move of the Compact sequence. ok is false once
// Compact has finished.
// Complexity: amortized O(N) per call.
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

// refill picks the highest-rightmost misplaced cube and the lexicographically
// smallest unoccupied canonical slot, and plans a move path between them.
func (p *Phase) refill(w *grid.World) error {
	if !p.anchored {
		root, ok := w.DownmostLeftmost()
		if !ok {
			p.done = true

			return nil
		}
		cube, err := w.Cube(root)
		if err != nil {
			return err
		}
		p.anchor = cube.Cell
		p.anchored = true
	}

	canonical := canonicalCells(w.Len(), p.anchor)
	canonicalSet := make(map[grid.Cell]bool, len(canonical))
	for _, c := range canonical {
		canonicalSet[c] = true
	}

	var misplaced []grid.Cell
	for _, c := range w.Cubes() {
		if !canonicalSet[c.Cell] {
			misplaced = append(misplaced, c.Cell)
		}
	}
	if len(misplaced) == 0 {
		p.done = true

		return nil
	}

	occupied := make(map[grid.Cell]bool, w.Len())
	for _, c := range w.Cubes() {
		occupied[c.Cell] = true
	}
	var empties []grid.Cell
	for _, c := range canonical {
		if !occupied[c] {
			empties = append(empties, c)
		}
	}
	sort.Slice(empties, func(i, j int) bool { return empties[i].Less(empties[j]) })

	sort.Slice(misplaced, func(i, j int) bool { return highestRightmostFirst(misplaced[i], misplaced[j]) })

	for _, cell := range misplaced {
		ref, ok := w.At(cell)
		if !ok {
			continue
		}
		if !topology.Connected(w, &ref) {
			continue // moving this cube would disconnect the rest; try the next one
		}
		for _, dst := range empties {
			path, err := planner.ShortestMovePath(w, ref, dst)
			if err == nil {
				p.pending = path

				return nil
			}
		}
	}

	return ErrStuck
}

// highestRightmostFirst orders a is "more eligible" than b if a is higher
// (greater Y) or, tied on Y, further right (greater X) — spec.md §4.6's
// "highest-rightmost cube" selection.
func highestRightmostFirst(a, b grid.Cell) bool {
	if a.Y != b.Y {
		return a.Y > b.Y
	}

	return a.X > b.X
}

// canonicalCells returns the N cells of the canonical xy-monotone
// staircase anchored at anchor: left-justified rows of width ceil(sqrt(N)),
// filled bottom-to-top.
func canonicalCells(n int, anchor grid.Cell) []grid.Cell {
	if n == 0 {
		return nil
	}

	width := ceilSqrt(n)
	cells := make([]grid.Cell, 0, n)
	remaining := n
	y := 0
	for remaining > 0 {
		rowLen := remaining
		if rowLen > width {
			rowLen = width
		}
		for x := 0; x < rowLen; x++ {
			cells = append(cells, grid.Cell{X: anchor.X + x, Y: anchor.Y + y})
		}
		remaining -= rowLen
		y++
	}

	return cells
}

// ceilSqrt returns the smallest integer r such that r*r >= n, for n > 0.
func ceilSqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r < n {
		r++
	}
	for r > 1 && (r-1)*(r-1) >= n {
		r--
	}

	return r
}
