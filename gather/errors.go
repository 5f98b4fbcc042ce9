package gather

import "errors"

// ErrStuck is returned by Next when every deep link candidate's every
// candidate destination fails planning (spec.md §7 policy: NoMovePath is
// normally recoverable by trying the next candidate, but Gather has
// exhausted every candidate it can see). This signals a bug in the
// candidate/destination heuristic, not a property of valid input.
var ErrStuck = errors.New("gather: no progress possible from current configuration")
