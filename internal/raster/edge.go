package raster

import "math"

// Point is a 2D position in pixel space (internal copy to avoid an
// import cycle with the root package).
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal segment prepared for scanline traversal,
// normalized so that y0 < y1.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
}

// newEdge builds an edge from two points. Horizontal segments contribute
// no scanline crossings and are reported as invalid.
func newEdge(p0, p1 Point) (Edge, bool) {
	if math.Abs(p1.Y-p0.Y) < 1e-9 {
		return Edge{}, false
	}
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y}, true
}

// xAt returns the x coordinate where the edge crosses the given y.
func (e Edge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}

// buildEdges converts a vertex loop into an edge list, including the
// closing segment from the last vertex back to the first.
func buildEdges(verts []Point) []Edge {
	edges := make([]Edge, 0, len(verts))
	for i := range verts {
		j := (i + 1) % len(verts)
		if e, ok := newEdge(verts[i], verts[j]); ok {
			edges = append(edges, e)
		}
	}
	return edges
}

// yBounds returns the vertical extent covered by the edge list.
func yBounds(edges []Edge) (yMin, yMax float64) {
	yMin = math.MaxFloat64
	yMax = -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	return yMin, yMax
}
