package grid

import "errors"

// Sentinel errors for Grid Store operations. Callers branch with errors.Is;
// these are programming-bug signals inside the algorithm, not user errors
// (see package instance for input-validation errors).
var (
	// ErrOccupiedCell indicates Add or Move targeted a cell that already
	// holds a cube.
	ErrOccupiedCell = errors.New("grid: cell already occupied")

	// ErrEmptyCell indicates Remove or Move referenced a cell with no cube.
	ErrEmptyCell = errors.New("grid: cell is empty")

	// ErrCubeNotFound indicates a CubeRef does not (or no longer) identify
	// a live cube in the arena.
	ErrCubeNotFound = errors.New("grid: cube not found")
)
