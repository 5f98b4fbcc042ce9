// File: interpolate.go
// Role: UI-only interpolation geometry for a Move (spec.md §4.2
// "Interpolation (UI only)"). Not consumed by the algorithm itself; the
// drawing UI named in spec.md §1's out-of-scope list is the intended
// caller, exposed here so it has somewhere to call into.
package move

import "github.com/tue-alga/compacting-squares/grid"

// Point is a continuous-space position, used only for interpolated
// rendering — never for grid bookkeeping.
type Point struct {
	X, Y float64
}

// easeInOutCubic maps t in [0,1] through a cubic ease-in-out curve.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2

	return 1 - (f*f*f)/2
}

// Interpolate returns the continuous-space position of a cube performing
// m at animation fraction t (clamped to [0,1]). Slide moves ease directly
// from Src to the target; corner moves pivot through the intermediate
// cell reached by applying the move's first axis, per spec.md §4.2.
func Interpolate(m Move, t float64) Point {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	eased := easeInOutCubic(t)

	if axis, ok := slideAxis[m.Dir]; ok {
		return lerp(cellPoint(m.Src), cellPoint(axis.Neighbor(m.Src)), eased)
	}

	dec := cornerAxes[m.Dir]
	mid := dec.first.Neighbor(m.Src)
	dst := dec.second.Neighbor(mid)

	if eased <= 0.5 {
		return lerp(cellPoint(m.Src), cellPoint(mid), eased*2)
	}

	return lerp(cellPoint(mid), cellPoint(dst), (eased-0.5)*2)
}

// cellPoint converts a grid.Cell to its continuous-space anchor.
func cellPoint(c grid.Cell) Point {
	return Point{X: float64(c.X), Y: float64(c.Y)}
}

// lerp linearly interpolates between a and b at fraction t.
func lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
