// Package compact implements the Compact Phase of spec.md §4.6: given a
// single-chunk configuration (Gather's postcondition), it emits a lazy
// sequence of moves that rearranges the cubes into the canonical xy-
// monotone staircase anchored at the downmost-leftmost cube.
//
// Canonical shape (Open Question resolved, recorded in DESIGN.md):
// spec.md names the canonical staircase only by its seed-scenario examples
// (S1, S2, S3, S5). Those examples are all consistent with a single rule:
// arrange the N cubes into left-justified rows of width ceil(sqrt(N)),
// filled bottom-to-top, each row holding min(width, cubes-remaining)
// cubes. This produces exactly the staircases spec.md §8 names: two cells
// in one row for N=2, an L for N=3, a 2×2 square for N=4, and a 3-then-2
// staircase for N=5.
//
// Phase is a pull-based state machine matching package gather's shape:
// Next(w) returns one move at a time.
package compact
