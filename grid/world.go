// File: world.go
// Role: the Grid Store (spec.md §4.1) — an append-only cube arena plus a
// sparse cell index, giving O(1) lookup, addition, removal, and move.
//
// Marked vs. unmarked mutation (spec.md §4.1): World itself only ever
// performs "unmarked" mutation — it never re-runs topology classification.
// The "marked" flavour (re-run Topology Analyzer after the edit) is a thin
// wrapper one layer up, in package topology (MoveMarked, AddMarked,
// RemoveMarked), since World cannot import topology without a cycle
// (topology already imports grid). See DESIGN.md.
package grid

// World is the Configuration of spec.md §3: a sequence of cubes plus the
// sparse index from cell to cube id. The zero value is not usable; build
// with NewWorld.
type World struct {
	cubes []*Cube
	index map[Cell]CubeRef
}

// NewWorld returns an empty World ready for Add calls.
// Complexity: O(1).
func NewWorld() *World {
	return &World{
		index: make(map[Cell]CubeRef),
	}
}

// Add inserts a new cube at cell with the given color and returns its
// CubeRef. Returns ErrOccupiedCell if cell already holds a cube.
// The cube's Reset position is set to cell (callers restoring a serialized
// instance pass the original position here, matching "Reset" semantics of
// spec.md §3).
// Complexity: O(1) amortized.
func (w *World) Add(cell Cell, color Color) (CubeRef, error) {
	if _, occupied := w.index[cell]; occupied {
		return 0, ErrOccupiedCell
	}

	ref := CubeRef(len(w.cubes))
	w.cubes = append(w.cubes, &Cube{
		Cell:    cell,
		Reset:   cell,
		Color:   color,
		Class:   None,
		ChunkID: NoChunk,
	})
	w.index[cell] = ref

	return ref, nil
}

// Remove deletes the cube at cell. Returns ErrEmptyCell if cell is empty.
// Removal compacts the arena: every cube whose CubeRef was greater than
// the removed one shifts down by one, and the index is rewritten for the
// shifted cubes (spec.md §3 "Lifecycle"). Any CubeRef held by a caller
// across a Remove call may therefore become stale; callers must re-resolve
// identities via At after mutating the World.
// Complexity: O(N) for the compaction.
func (w *World) Remove(cell Cell) error {
	ref, ok := w.index[cell]
	if !ok {
		return ErrEmptyCell
	}
	delete(w.index, cell)

	i := int(ref)
	w.cubes = append(w.cubes[:i], w.cubes[i+1:]...)
	for j := i; j < len(w.cubes); j++ {
		w.index[w.cubes[j].Cell] = CubeRef(j)
	}

	return nil
}

// Reinsert puts cube back into the arena at exactly ref, shifting every
// cube currently at index ref or higher up by one and rewriting their
// index entries — the exact inverse of the compaction a prior Remove(ref)
// performed. It exists solely for callers (package planner) that lift a
// cube out of the World with Remove and must restore not just that cube
// but every other cube's CubeRef to their pre-Remove values once done.
// Callers must call Reinsert with no intervening Add/Remove between it
// and the Remove it reverses, and ref must be in [0, Len()]. Returns
// ErrOccupiedCell if cube.Cell is already occupied.
// Complexity: O(N) for the shift.
func (w *World) Reinsert(ref CubeRef, cube Cube) error {
	if _, occupied := w.index[cube.Cell]; occupied {
		return ErrOccupiedCell
	}
	i := int(ref)
	if i < 0 || i > len(w.cubes) {
		return ErrCubeNotFound
	}

	w.cubes = append(w.cubes, nil)
	copy(w.cubes[i+1:], w.cubes[i:])
	cp := cube
	w.cubes[i] = &cp

	for j := i; j < len(w.cubes); j++ {
		w.index[w.cubes[j].Cell] = CubeRef(j)
	}

	return nil
}

// Move relocates the cube at src to dst. Returns ErrEmptyCell if src is
// empty, ErrOccupiedCell if dst is occupied. The cube's CubeRef, Reset,
// Color, and classification fields are unchanged.
// Complexity: O(1).
func (w *World) Move(src, dst Cell) error {
	ref, ok := w.index[src]
	if !ok {
		return ErrEmptyCell
	}
	if _, occupied := w.index[dst]; occupied {
		return ErrOccupiedCell
	}

	delete(w.index, src)
	w.index[dst] = ref
	w.cubes[ref].Cell = dst

	return nil
}

// At returns the CubeRef occupying cell, or ok=false if cell is empty.
// Complexity: O(1).
func (w *World) At(cell Cell) (CubeRef, bool) {
	ref, ok := w.index[cell]

	return ref, ok
}

// Cube returns the cube identified by ref. Returns ErrCubeNotFound if ref
// is out of range.
// Complexity: O(1).
func (w *World) Cube(ref CubeRef) (*Cube, error) {
	if int(ref) < 0 || int(ref) >= len(w.cubes) {
		return nil, ErrCubeNotFound
	}

	return w.cubes[ref], nil
}

// Len returns the number of cubes currently in the World.
// Complexity: O(1).
func (w *World) Len() int {
	return len(w.cubes)
}

// Cubes returns the live internal cube arena (no copy). Callers must not
// retain slice indices across a Remove call; see Remove's contract.
// Complexity: O(1).
func (w *World) Cubes() []*Cube {
	return w.cubes
}

// Bounds returns the bounding box (minX, minY, maxX, maxY) over current
// cube positions. With zero cubes, all four values are zero.
// Complexity: O(N).
func (w *World) Bounds() (minX, minY, maxX, maxY int) {
	if len(w.cubes) == 0 {
		return 0, 0, 0, 0
	}

	first := w.cubes[0].Cell
	minX, maxX = first.X, first.X
	minY, maxY = first.Y, first.Y
	for _, c := range w.cubes[1:] {
		if c.Cell.X < minX {
			minX = c.Cell.X
		}
		if c.Cell.X > maxX {
			maxX = c.Cell.X
		}
		if c.Cell.Y < minY {
			minY = c.Cell.Y
		}
		if c.Cell.Y > maxY {
			maxY = c.Cell.Y
		}
	}

	return minX, minY, maxX, maxY
}

// Neighbors reports, for each compass Direction, whether a cube occupies
// the neighboring cell of c.
// Complexity: O(1).
func (w *World) Neighbors(c Cell) [8]bool {
	var has [8]bool
	for _, d := range AllDirections {
		_, has[d] = w.index[d.Neighbor(c)]
	}

	return has
}

// NeighborMap reports, for each compass Direction, the CubeRef occupying
// the neighboring cell of c (ok=false if empty).
// Complexity: O(1).
func (w *World) NeighborMap(c Cell) (refs [8]CubeRef, ok [8]bool) {
	for _, d := range AllDirections {
		refs[d], ok[d] = w.index[d.Neighbor(c)]
	}

	return refs, ok
}

// DownmostLeftmost returns the cube whose cell is minimal in (Y, X) order —
// the canonical root used throughout Gather and Compact. Returns
// ok=false for an empty World.
// Complexity: O(N).
func (w *World) DownmostLeftmost() (CubeRef, bool) {
	if len(w.cubes) == 0 {
		return 0, false
	}

	best := CubeRef(0)
	for i, c := range w.cubes {
		if c.Cell.Less(w.cubes[best].Cell) {
			best = CubeRef(i)
		}
	}

	return best, true
}

// ResetAll restores every cube to its Reset cell, rewriting the index from
// scratch. This is a faithful port of the documented source bug (spec.md
// §9 "Known ambiguities" (a)): it does not check that the restored
// configuration is still 4-connected or even collision-free, and it does
// not re-run topology classification. Callers relying on Reset for
// anything beyond debugging should validate the result themselves.
// Complexity: O(N).
func (w *World) ResetAll() {
	next := make(map[Cell]CubeRef, len(w.cubes))
	for i, c := range w.cubes {
		c.Cell = c.Reset
		next[c.Cell] = CubeRef(i)
	}
	w.index = next
}

// Clone returns a deep copy of the World: a fresh arena of copied Cube
// values and a fresh index. Mutating the clone never affects the
// original.
// Complexity: O(N).
func (w *World) Clone() *World {
	out := &World{
		cubes: make([]*Cube, len(w.cubes)),
		index: make(map[Cell]CubeRef, len(w.cubes)),
	}
	for i, c := range w.cubes {
		cp := *c
		out.cubes[i] = &cp
		out.index[cp.Cell] = CubeRef(i)
	}

	return out
}
