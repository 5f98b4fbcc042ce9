package topology

import "errors"

// ErrEmptyWorld is returned by OutsideWalk when the World holds no cubes —
// there is no downmost-leftmost cube to start from.
var ErrEmptyWorld = errors.New("topology: world has no cubes")
