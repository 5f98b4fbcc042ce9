package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/tue-alga/compacting-squares/grid"
)

// scale is the number of SVG units per grid cell (spec.md §6).
const scale = 8

// Export writes a deterministic SVG-like document for world to w: one
// unit-square path per cube (sorted by (Y, X) cell order so repeated runs
// on an unchanged World produce byte-identical output), each carrying a
// classification glyph.
func Export(w io.Writer, world *grid.World) error {
	cubes := make([]*grid.Cube, len(world.Cubes()))
	copy(cubes, world.Cubes())
	sort.Slice(cubes, func(i, j int) bool { return cubes[i].Cell.Less(cubes[j].Cell) })

	minX, minY, maxX, maxY := world.Bounds()
	width := (maxX-minX+1)*scale + 1
	height := (maxY-minY+1)*scale + 1

	if _, err := fmt.Fprintf(w, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", width, height); err != nil {
		return err
	}

	for _, c := range cubes {
		x := (c.Cell.X - minX) * scale
		y := (maxY - c.Cell.Y) * scale // flip: SVG y grows down, grid Y grows north
		if err := writeCube(w, c, x, y); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</svg>")

	return err
}

// writeCube emits the unit-square path for c at SVG origin (x, y), followed
// by its classification glyph.
func writeCube(w io.Writer, c *grid.Cube, x, y int) error {
	fill := fmt.Sprintf("rgb(%d,%d,%d)", c.Color.R, c.Color.G, c.Color.B)
	if _, err := fmt.Fprintf(w, "  <path d=\"M%d %d H%d V%d H%d Z\" fill=\"%s\" stroke=\"black\"/>\n",
		x, y, x+scale, y+scale, x, fill); err != nil {
		return err
	}

	return writeGlyph(w, c.Class, x, y)
}

// writeGlyph emits class's annotation glyph at cube origin (x, y), per the
// table of spec.md §6.
func writeGlyph(w io.Writer, class grid.Classification, x, y int) error {
	switch class {
	case grid.ChunkStable:
		return writeRect(w, x, y, true)
	case grid.ChunkCut:
		return writeRect(w, x, y, false)
	case grid.LinkStable:
		return writeCircle(w, x, y, true)
	case grid.LinkCut:
		return writeCircle(w, x, y, false)
	case grid.Connector:
		if err := writeRect(w, x, y, false); err != nil {
			return err
		}

		return writeCross(w, x, y)
	default:
		return nil
	}
}

func writeRect(w io.Writer, x, y int, filled bool) error {
	_, err := fmt.Fprintf(w, "    <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\" stroke=\"black\"/>\n",
		x+scale/4, y+scale/4, scale/2, scale/2, fillOrNone(filled))

	return err
}

func writeCircle(w io.Writer, x, y int, filled bool) error {
	_, err := fmt.Fprintf(w, "    <circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"%s\" stroke=\"black\"/>\n",
		x+scale/2, y+scale/2, scale/3, fillOrNone(filled))

	return err
}

func writeCross(w io.Writer, x, y int) error {
	_, err := fmt.Fprintf(w,
		"    <line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"black\"/>\n"+
			"    <line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"black\"/>\n",
		x+scale/4, y+scale/4, x+3*scale/4, y+3*scale/4,
		x+3*scale/4, y+scale/4, x+scale/4, y+3*scale/4)

	return err
}

func fillOrNone(filled bool) string {
	if filled {
		return "black"
	}

	return "none"
}
