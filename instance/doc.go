// Package instance loads and saves the external instance format of
// spec.md §6: a single JSON object naming a version and a list of cubes.
//
//	{ "_version": 1,
//	  "cubes": [ { "x": int, "y": int, "color": [r,g,b]? }, ... ] }
//
// encoding/json (stdlib) is used rather than a third-party library: no
// example repo in the retrieved pack reaches for one for a comparably
// small, fully-specified single-object schema — see DESIGN.md.
package instance
