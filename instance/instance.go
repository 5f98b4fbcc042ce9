package instance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tue-alga/compacting-squares/grid"
	"github.com/tue-alga/compacting-squares/topology"
)

// currentVersion is the only "_version" this loader understands (spec.md
// §6: "Unknown versions > 1 are rejected").
const currentVersion = 1

// document is the on-disk JSON shape of spec.md §6.
type document struct {
	Version int      `json:"_version"`
	Cubes   []cubeDoc `json:"cubes"`
}

type cubeDoc struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color *[3]int `json:"color,omitempty"`
}

// Load reads a single instance document from r, validates it against
// spec.md §6's invariants, and returns a ready-to-use *grid.World.
// Returns ErrBadVersion, ErrDuplicateCell, ErrLightConfiguration, or
// ErrDisconnected on invalid input.
func Load(r io.Reader) (*grid.World, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	if doc.Version != currentVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, doc.Version)
	}

	if len(doc.Cubes) < 2 {
		return nil, ErrLightConfiguration
	}

	w := grid.NewWorld()
	for _, cd := range doc.Cubes {
		color := grid.DefaultColor
		if cd.Color != nil {
			color = grid.Color{
				R: uint8(cd.Color[0]),
				G: uint8(cd.Color[1]),
				B: uint8(cd.Color[2]),
			}
		}
		cell := grid.Cell{X: cd.X, Y: cd.Y}
		if _, err := w.Add(cell, color); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateCell, cell)
		}
	}

	if !topology.Connected(w, nil) {
		return nil, ErrDisconnected
	}

	return w, nil
}

// Save writes w to out in the instance format of spec.md §6, using each
// cube's current Reset position (the "initial position" of spec.md §3) so
// that repeated Load(Save(w)) round trips reproduce the original layout
// rather than whatever position the algorithm left the cube in.
func Save(w io.Writer, world *grid.World) error {
	doc := document{Version: currentVersion}
	for _, c := range world.Cubes() {
		color := [3]int{int(c.Color.R), int(c.Color.G), int(c.Color.B)}
		doc.Cubes = append(doc.Cubes, cubeDoc{
			X:     c.Reset.X,
			Y:     c.Reset.Y,
			Color: &color,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
