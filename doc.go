// Package compactingsquares plans Gather&Compact reconfigurations for
// modular robots built from unit-square cubes on an integer grid: given
// an arbitrary 4-connected arrangement of cubes, it gathers them into a
// single biconnected chunk and then compacts that chunk into the
// canonical xy-monotone staircase, emitting the sequence of single-cube
// moves that gets there.
//
// Everything lives under focused subpackages:
//
//	grid/     — the cube arena and sparse cell index (the Grid Store)
//	topology/ — pure analysis: connectivity, cut cubes, classification
//	move/     — the twelve move directions, legality, UI interpolation
//	planner/  — shortest legal move path between two cells
//	gather/   — the Gather phase, as a pull-based move generator
//	compact/  — the Compact phase, as a pull-based move generator
//	stepper/  — drives a phase, validating and committing each move
//	instance/ — the JSON instance file format
//	render/   — deterministic vector export of a classified configuration
//	cmd/csquares/ — the command-line tool
package compactingsquares
