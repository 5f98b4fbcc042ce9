// Package stepper implements the Stepper/Driver of spec.md §4.7: it pulls
// moves one at a time from a Gather or Compact phase, re-validates each
// against the live *grid.World, commits it, and exposes a transcript
// (spec.md §6 "Algorithm transcript").
//
// Concurrency: matches spec.md §5 exactly — single-threaded cooperative,
// exactly one move in flight at a time, the phase generator suspended at
// each yield point awaiting the next Next call. Stepper is the sole
// component that mutates the World via Move/MoveMarked.
package stepper
