package geometry

import "math"

// Point is a single 2D landmark coordinate. The index of a point within a
// landmark slice is its semantic identity and must be preserved by every
// geometric operation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Box is the axis-aligned enclosing rectangle of a landmark set. It is an
// ephemeral intermediate used by rotation/shear/clip math and is never
// persisted.
//
// Meta carries optional trailing metadata columns through box operations
// untouched. Degenerate marks a box whose area was (almost) entirely clipped
// away; see ClipBox.
type Box struct {
	XMin, YMin float64
	XMax, YMax float64

	Meta       []float64
	Degenerate bool
}

// ProjectToBox computes the enclosing box (min/max over all points) of a
// landmark set. Any extra per-point data beyond the coordinates is dropped.
// An empty point set yields a zero box marked Degenerate.
func ProjectToBox(points []Point) Box {
	if len(points) == 0 {
		return Box{Degenerate: true}
	}
	b := Box{
		XMin: points[0].X, YMin: points[0].Y,
		XMax: points[0].X, YMax: points[0].Y,
	}
	for _, p := range points[1:] {
		b.XMin = math.Min(b.XMin, p.X)
		b.YMin = math.Min(b.YMin, p.Y)
		b.XMax = math.Max(b.XMax, p.X)
		b.YMax = math.Max(b.YMax, p.Y)
	}
	return b
}

// Corners returns the four corner points of the box in the fixed order
// top-left, top-right, bottom-left, bottom-right. This order is the canonical
// representative set rotation math tracks, and the same order is used when
// landmarks are re-derived from a box.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.XMin, b.YMin},
		{b.XMax, b.YMin},
		{b.XMin, b.YMax},
		{b.XMax, b.YMax},
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical extent of the box.
func (b Box) Height() float64 { return b.YMax - b.YMin }

// Area returns the box area. A degenerate or inverted box has zero area.
func (b Box) Area() float64 {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Scaled returns the box with all four coordinates multiplied by the given
// per-axis factors. Meta and Degenerate carry through untouched.
func (b Box) Scaled(sx, sy float64) Box {
	b.XMin *= sx
	b.XMax *= sx
	b.YMin *= sy
	b.YMax *= sy
	return b
}

// Shifted returns the box translated by (dx, dy). Meta and Degenerate carry
// through untouched.
func (b Box) Shifted(dx, dy float64) Box {
	b.XMin += dx
	b.XMax += dx
	b.YMin += dy
	b.YMax += dy
	return b
}

// ReprojectToPoints reconstructs a landmark set of the requested count from a
// box, clipped so every result stays within [0, canvasW] x [0, canvasH].
// Points are derived by cycling the canonical corner order (top-left,
// top-right, bottom-left, bottom-right), so reconstruction is deterministic
// for a given box.
//
// A degenerate box (or a non-positive count) yields nil; callers compare the
// result length against the expected landmark count and fail on mismatch.
func ReprojectToPoints(b Box, canvasW, canvasH float64, count int) []Point {
	if b.Degenerate || count <= 0 {
		return nil
	}
	corners := b.Corners()
	points := make([]Point, count)
	for i := range points {
		p := corners[i%4]
		points[i] = Point{
			X: clampf(p.X, 0, canvasW),
			Y: clampf(p.Y, 0, canvasH),
		}
	}
	return points
}

// ClipBox intersects a box with the canvas [0, canvasW] x [0, canvasH].
//
// The box is always returned, never dropped. It is marked Degenerate when it
// lies entirely outside the canvas, or when the retained area after clipping
// falls below minAreaFraction of the original area — callers use this to
// catch near-total occlusion by the frame edge.
func ClipBox(b Box, canvasW, canvasH, minAreaFraction float64) Box {
	if b.XMax < 0 || b.YMax < 0 || b.XMin > canvasW || b.YMin > canvasH {
		out := b
		out.XMin = clampf(b.XMin, 0, canvasW)
		out.XMax = out.XMin
		out.YMin = clampf(b.YMin, 0, canvasH)
		out.YMax = out.YMin
		out.Degenerate = true
		return out
	}

	orig := b.Area()
	out := b
	out.XMin = clampf(b.XMin, 0, canvasW)
	out.YMin = clampf(b.YMin, 0, canvasH)
	out.XMax = clampf(b.XMax, 0, canvasW)
	out.YMax = clampf(b.YMax, 0, canvasH)

	if orig > 0 && out.Area()/orig < minAreaFraction {
		out.Degenerate = true
	}
	return out
}

// clampf constrains v to the range [lo, hi].
func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
