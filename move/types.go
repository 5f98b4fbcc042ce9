// Package move defines the Move Model of spec.md §4.2: the twelve move
// directions (four slides, eight corner moves), their legality predicate,
// and interpolation geometry for visualization.
//
// What:
//
//   - Dir enumerates the twelve move directions as a closed iota type,
//     grounded on dfs/types.go's closed-enum idiom in the teacher package.
//   - IsValidIgnoreConnectivity checks the local-neighborhood rule of
//     spec.md §4.2's table.
//   - IsValid additionally requires that removing the source cube keeps
//     the configuration connected (spec.md §4.2), delegating to
//     package topology.
//   - Interpolate computes the UI-only cubic ease-in-out path, pivoting
//     corner moves through the intermediate cell.
//
// Why a separate package from grid: spec.md §9 "Direction enumeration"
// calls for a closed tagged variant whose corner-move target is derived
// purely from its two-letter decomposition, never treated as a raw
// string past parsing — keeping that decomposition logic apart from
// grid.Direction (the compass primitive it is built on) mirrors how the
// teacher keeps dfs/bfs's traversal-specific types out of core.
package move

import (
	"fmt"

	"github.com/tue-alga/compacting-squares/grid"
)

// Dir enumerates the twelve move directions of spec.md §4.2: the four
// cardinal slides, followed by the eight corner/pivot moves. Declared in
// this fixed order because package planner's BFS neighbor enumeration
// must be deterministic across runs (spec.md §4.4 "Determinism").
type Dir int

const (
	N Dir = iota
	E
	S
	W
	NW
	NE
	EN
	ES
	SE
	SW
	WS
	WN
	numDirs
)

// AllDirs lists every move direction in enum declaration order.
var AllDirs = [numDirs]Dir{N, E, S, W, NW, NE, EN, ES, SE, SW, WS, WN}

// decomposition gives, for each corner Dir, the two compass axes applied
// in order: First is the obstruction-check axis, Second is the
// pivot-support axis and also the axis walked to reach the target
// (spec.md §4.2, §9).
type decomposition struct {
	first, second grid.Direction
}

// slideAxis maps a slide Dir directly onto the matching compass Direction.
var slideAxis = map[Dir]grid.Direction{
	N: grid.N,
	E: grid.E,
	S: grid.S,
	W: grid.W,
}

// cornerAxes maps each corner Dir onto its two-letter decomposition, named
// by the source's two-character direction strings (e.g. "NW" = north-west
// pivot: obstruction-check north, pivot-support west).
var cornerAxes = map[Dir]decomposition{
	NW: {first: grid.N, second: grid.W},
	NE: {first: grid.N, second: grid.E},
	EN: {first: grid.E, second: grid.N},
	ES: {first: grid.E, second: grid.S},
	SE: {first: grid.S, second: grid.E},
	SW: {first: grid.S, second: grid.W},
	WS: {first: grid.W, second: grid.S},
	WN: {first: grid.W, second: grid.N},
}

// IsSlide reports whether d is one of the four single-letter slide moves.
func (d Dir) IsSlide() bool {
	_, ok := slideAxis[d]

	return ok
}

// Target returns the destination cell reached by applying d from src. For
// slides this is the single compass step; for corner moves it is the
// diagonal cell reached via the two named axes applied in order (spec.md
// §3 "Move").
func (d Dir) Target(src grid.Cell) grid.Cell {
	if axis, ok := slideAxis[d]; ok {
		return axis.Neighbor(src)
	}

	dec := cornerAxes[d]
	mid := dec.first.Neighbor(src)

	return dec.second.Neighbor(mid)
}

// String renders the move direction's two-letter (or one-letter) name.
func (d Dir) String() string {
	names := [numDirs]string{
		N: "N", E: "E", S: "S", W: "W",
		NW: "NW", NE: "NE", EN: "EN", ES: "ES",
		SE: "SE", SW: "SW", WS: "WS", WN: "WN",
	}
	if d < 0 || int(d) >= len(names) {
		return "?"
	}

	return names[d]
}

// Move is a record (source cell, direction) — spec.md §3 "Move".
type Move struct {
	Src grid.Cell
	Dir Dir
}

// Dst returns the move's destination cell.
func (m Move) Dst() grid.Cell {
	return m.Dir.Target(m.Src)
}

// String renders the move for transcripts and diagnostics.
func (m Move) String() string {
	return fmt.Sprintf("%s@%s->%s", m.Dir, m.Src, m.Dst())
}
