package instance

import "errors"

var (
	// ErrBadVersion indicates the instance document names a "_version"
	// this loader does not understand (spec.md §7 "BadVersion"; §6:
	// "Unknown versions > 1 are rejected").
	ErrBadVersion = errors.New("instance: unknown version")

	// ErrDisconnected indicates the loaded cubes do not form a single
	// 4-connected configuration (spec.md §7 "Disconnected").
	ErrDisconnected = errors.New("instance: cubes are not 4-connected")

	// ErrLightConfiguration indicates fewer than two cubes were loaded.
	// spec.md §1 and §9 call "light configurations" (very small N)
	// explicitly undefined in the source; this loader rejects them rather
	// than guess (spec.md §9 "Known ambiguities" (b)).
	ErrLightConfiguration = errors.New("instance: configuration too small to reconfigure")

	// ErrDuplicateCell indicates two cubes in the document share a cell —
	// never legal under spec.md §3 ("at most one cube per cell").
	ErrDuplicateCell = errors.New("instance: duplicate cube cell")
)
