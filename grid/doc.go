// Package grid provides the Grid Store: an append-only arena of cubes plus
// a sparse index from integer grid cells to cube identifiers. It supplies
// O(1) lookup, addition, removal, and translation of cubes, and the eight
// compass directions used throughout the reconfiguration planner.
//
// What:
//
//   - World wraps a cube arena ([]*Cube) and a sparse map[Cell]CubeRef.
//   - Cell is an integer grid coordinate; at most one Cube occupies a Cell.
//   - Cube carries mutable position plus immutable reset position, color,
//     and the classification tag written by package topology.
//   - Direction enumerates the eight compass neighbors of a Cell.
//
// Why:
//
//   - A dense arena with stable identifiers (shifted only on Remove) avoids
//     owning pointers between cubes and the World and gives O(1) "which
//     cube is here?" lookups, per the source algorithm's data model.
//
// Concurrency:
//
//   - World is not safe for concurrent use. The reconfiguration planner's
//     concurrency model (see package stepper) is single-threaded
//     cooperative: exactly one Stepper drives mutations, so World omits
//     the locking that github.com/katalvlaran/lvlath/core.Graph uses for
//     its intentionally concurrent-friendly Graph type.
//
// Errors:
//
//   - ErrOccupiedCell: Add/Move target cell already holds a cube.
//   - ErrEmptyCell: Remove/Move source cell holds no cube.
package grid
