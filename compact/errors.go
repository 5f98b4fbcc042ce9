package compact

import "errors"

// ErrStuck is returned by Next when every misplaced cube's every candidate
// destination fails planning. See gather.ErrStuck for the analogous case.
var ErrStuck = errors.New("compact: no progress possible from current configuration")
