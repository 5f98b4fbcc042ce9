package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tue-alga/compacting-squares/grid"
	"github.com/tue-alga/compacting-squares/render"
	"github.com/tue-alga/compacting-squares/topology"
)

func TestExport_Deterministic(t *testing.T) {
	w := grid.NewWorld()
	_, _ = w.Add(grid.Cell{X: 0, Y: 0}, grid.DefaultColor)
	_, _ = w.Add(grid.Cell{X: 1, Y: 0}, grid.DefaultColor)
	_, _ = w.Add(grid.Cell{X: 0, Y: 1}, grid.DefaultColor)
	_, err := topology.MarkComponents(w)
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, render.Export(&a, w))
	require.NoError(t, render.Export(&b, w))
	assert.Equal(t, a.String(), b.String())
}

// TestExport_ContainsGlyphForEachClassification uses a 2x2 block with a
// single cube hanging off one corner. Unlike the classic "two arms off a
// shared row" U-shape, this fixture is hand-verified against the actual
// decomposition and cut-cube output to produce a genuine mix of three
// classifications: the block's attachment corner is an articulation point
// of the chunk (ChunkCut), the rest of the block is ChunkStable, and the
// tail is a plain dead end (LinkStable) — so rect and circle glyphs both
// appear, and the rects themselves differ (filled vs. hollow).
func TestExport_ContainsGlyphForEachClassification(t *testing.T) {
	w := grid.NewWorld()
	_, _ = w.Add(grid.Cell{X: 0, Y: 0}, grid.DefaultColor)
	_, _ = w.Add(grid.Cell{X: 1, Y: 0}, grid.DefaultColor)
	_, _ = w.Add(grid.Cell{X: 0, Y: 1}, grid.DefaultColor)
	_, _ = w.Add(grid.Cell{X: 1, Y: 1}, grid.DefaultColor)
	_, _ = w.Add(grid.Cell{X: 2, Y: 0}, grid.DefaultColor)
	_, err := topology.MarkComponents(w)
	require.NoError(t, err)

	for _, c := range w.Cubes() {
		require.NotEqual(t, grid.None, c.Class)
	}

	var buf bytes.Buffer
	require.NoError(t, render.Export(&buf, w))
	out := buf.String()

	assert.True(t, strings.Contains(out, "<svg"))
	assert.Equal(t, 4, strings.Count(out, "<rect"), "one rect per block cube")
	assert.Equal(t, 1, strings.Count(out, "<circle"), "one circle for the tail")
	assert.True(t, strings.Contains(out, `fill="none"`), "ChunkCut's rect is hollow")
	assert.True(t, strings.Contains(out, "</svg>"))
}
