package planner

import "errors"

// ErrNoMovePath is returned by ShortestMovePath when the target cell is not
// reachable from the mover's source cell via any sequence of legal moves
// (spec.md §4.4 step 4, §7 "NoMovePath"). It is recoverable: package gather
// and package compact catch it and move on to the next candidate.
var ErrNoMovePath = errors.New("planner: no move path to target")
