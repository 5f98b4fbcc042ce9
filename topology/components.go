// File: components.go
// Role: biconnected decomposition of the outside walk into chunks, links,
// and connectors (spec.md §4.3 "Biconnected decomposition via outside
// walk" and "Final tagging"), plus the bridge-sizing helpers used by
// package gather.
package topology

import "github.com/tue-alga/compacting-squares/grid"

// Result summarizes one MarkComponents run. The per-cube Classification,
// ChunkID, and OnBoundary fields are written directly onto the World's
// cubes; Result additionally exposes the walk itself and the chunk count
// for callers (gather, render) that need them without re-deriving.
type Result struct {
	OutsideWalk []grid.CubeRef
	ChunksSeen  int
}

// interim is the pre-final tag produced by the stack decomposition, before
// combining with cut-cube stability.
type interim int

const (
	interimNone interim = iota
	interimLink
	interimChunk
	interimConnector
)

// MarkComponents classifies every cube of w: chunk/link/connector via the
// boundary-walk decomposition, combined with cut-cube stability into the
// final Classification, plus the boundary flag. It is idempotent and
// deterministic for an unchanged World (spec.md §8 invariant 6).
// For a World with no cubes it returns an empty Result and a nil error.
// Complexity: O(N).
func MarkComponents(w *grid.World) (*Result, error) {
	if w.Len() == 0 {
		return &Result{}, nil
	}

	walk, err := OutsideWalk(w)
	if err != nil {
		return nil, err
	}
	stable := CutCubes(w)

	tag := make([]interim, w.Len())
	chunkID := make([]int, w.Len())
	for i := range chunkID {
		chunkID[i] = grid.NoChunk
	}
	onBoundary := make([]bool, w.Len())
	for _, ref := range walk {
		onBoundary[ref] = true
	}

	chunksSeen := decompose(walk, tag, chunkID)
	floodFillInteriorChunks(w, tag, chunkID)

	start := walk[0]
	if tag[start] == interimNone {
		tag[start] = interimLink
	}

	mergeLeavesIntoConnectors(w, tag, chunkID)

	for i, c := range w.Cubes() {
		c.Class = finalClassification(tag[i], stable[i])
		c.ChunkID = chunkID[i]
		c.OnBoundary = onBoundary[i]
	}

	return &Result{OutsideWalk: walk, ChunksSeen: chunksSeen}, nil
}

// decompose runs the stack algorithm of spec.md §4.3 over the boundary
// walk, writing interim tags (Link/Chunk/Connector) and chunk ids for every
// cube that appears in walk. It returns the number of chunks discovered.
func decompose(walk []grid.CubeRef, tag []interim, chunkID []int) int {
	var (
		stack      []grid.CubeRef
		pos        = make(map[grid.CubeRef]int)
		seen       = make(map[grid.CubeRef]bool)
		chunksSeen = 0
	)

	for _, cur := range walk {
		if !seen[cur] {
			seen[cur] = true
			pos[cur] = len(stack)
			stack = append(stack, cur)
			continue
		}

		top := stack[len(stack)-1]
		if len(stack) >= 2 && stack[len(stack)-2] == cur {
			// Case (a): immediate back-and-forth — a 1-component (link).
			stack = stack[:len(stack)-1]
			delete(pos, top)
			tag[top] = interimLink
			tag[cur] = interimLink
			continue
		}

		// Case (b): mismatch — close a chunk back to cur's position.
		p := pos[cur]
		for len(stack)-1 > p {
			popped := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			delete(pos, popped)
			tag[popped] = interimChunk
			chunkID[popped] = chunksSeen
		}
		if len(stack) > 1 {
			tag[cur] = interimConnector
		} else {
			tag[cur] = interimChunk
			chunkID[cur] = chunksSeen
		}
		chunksSeen++
	}

	return chunksSeen
}

// floodFillInteriorChunks assigns chunk membership to cubes that never
// appeared on the outside walk (fully enclosed interior cubes of a solid
// chunk region), by propagating chunk ids inward from already-tagged
// Chunk cubes across 4-adjacency (spec.md §4.3 "interior of a chunk").
func floodFillInteriorChunks(w *grid.World, tag []interim, chunkID []int) {
	queue := make([]int, 0, w.Len())
	for i, t := range tag {
		if t == interimChunk {
			queue = append(queue, i)
		}
	}

	cubes := w.Cubes()
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, d := range grid.OrthogonalDirections {
			ref, ok := w.At(d.Neighbor(cubes[u].Cell))
			if !ok {
				continue
			}
			v := int(ref)
			if tag[v] != interimNone {
				continue
			}
			tag[v] = interimChunk
			chunkID[v] = chunkID[u]
			queue = append(queue, v)
		}
	}
}

// mergeLeavesIntoConnectors applies the post-pass of spec.md §4.3: a
// degree-1 link cube whose sole neighbor is a Connector, where no other
// neighbor of that connector is a link, is promoted to Chunk and its
// connector neighbor is demoted to Chunk with the same chunk id.
func mergeLeavesIntoConnectors(w *grid.World, tag []interim, chunkID []int) {
	cubes := w.Cubes()
	for i, t := range tag {
		if t != interimLink {
			continue
		}
		neighbors := degreeNeighbors(w, cubes[i].Cell)
		if len(neighbors) != 1 {
			continue
		}
		connector := neighbors[0]
		if tag[connector] != interimConnector {
			continue
		}

		otherHasLink := false
		borrowedChunk := grid.NoChunk
		for _, nb := range degreeNeighbors(w, cubes[connector].Cell) {
			if nb == i {
				continue
			}
			if tag[nb] == interimLink {
				otherHasLink = true
				break
			}
			if tag[nb] == interimChunk && borrowedChunk == grid.NoChunk {
				borrowedChunk = chunkID[nb]
			}
		}
		if otherHasLink || borrowedChunk == grid.NoChunk {
			continue
		}

		tag[connector] = interimChunk
		chunkID[connector] = borrowedChunk
		tag[i] = interimChunk
		chunkID[i] = borrowedChunk
	}
}

// degreeNeighbors returns the CubeRef ordinals of every 4-connected
// occupied neighbor of cell, in grid.OrthogonalDirections order.
func degreeNeighbors(w *grid.World, cell grid.Cell) []int {
	var out []int
	for _, d := range grid.OrthogonalDirections {
		if ref, ok := w.At(d.Neighbor(cell)); ok {
			out = append(out, int(ref))
		}
	}

	return out
}

// finalClassification combines the interim chunk/link/connector tag with
// cut-cube stability into the final five-way Classification of spec.md §3.
func finalClassification(t interim, stable bool) grid.Classification {
	switch t {
	case interimConnector:
		return grid.Connector
	case interimChunk:
		if stable {
			return grid.ChunkStable
		}
		return grid.ChunkCut
	case interimLink:
		if stable {
			return grid.LinkStable
		}
		return grid.LinkCut
	default:
		// Unreached for any World with at least one cube: every cube is
		// resolved by decompose, floodFillInteriorChunks, or the
		// start-cube fallback in MarkComponents.
		if stable {
			return grid.LinkStable
		}
		return grid.LinkCut
	}
}

// BridgeCapacity returns the number of cubes reachable from the downmost-
// leftmost root when b is deleted, minus one (b itself is not counted),
// per spec.md §4.3. Returns 0 if w has fewer than 2 cubes or b is the root
// itself (there is no "rest of the configuration" to measure).
// Complexity: O(N).
func BridgeCapacity(w *grid.World, b grid.CubeRef) int {
	root, ok := w.DownmostLeftmost()
	if !ok || root == b {
		return 0
	}

	cubes := w.Cubes()
	visited := make(map[grid.Cell]bool, len(cubes))
	queue := []grid.Cell{cubes[root].Cell}
	visited[queue[0]] = true
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, d := range grid.OrthogonalDirections {
			nb := d.Neighbor(cur)
			if visited[nb] {
				continue
			}
			ref, ok := w.At(nb)
			if !ok || ref == b {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}

	return count - 1
}

// BridgeLimit returns 2*(width+height) of the current bounding box — the
// algorithm's cap on how far Gather may extend a bridge (spec.md §4.3).
// Complexity: O(N).
func BridgeLimit(w *grid.World) int {
	minX, minY, maxX, maxY := w.Bounds()
	width := maxX - minX + 1
	height := maxY - minY + 1

	return 2 * (width + height)
}
