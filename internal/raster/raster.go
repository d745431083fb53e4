// Package raster provides scanline polygon rasterization with per-vertex
// gradient shading.
package raster

import (
	"math"
	"sort"
)

// RGBA is a color with components in [0, 1] (internal copy to avoid an
// import cycle with the root package).
type RGBA struct {
	R, G, B, A float64
}

// lerp interpolates linearly between two colors.
func lerp(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Canvas is the pixel sink the rasterizer writes to. Implementations
// must tolerate out-of-range coordinates.
type Canvas interface {
	Width() int
	Height() int
	SetPixel(x, y int, c RGBA)
}

// Rasterizer performs even-odd scanline rasterization of closed
// straight-edged polygons.
type Rasterizer struct {
	width  int
	height int
	xs     []float64 // scratch crossing buffer, reused between scanlines
}

// New creates a rasterizer clipped to the given dimensions.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		xs:     make([]float64, 0, 8),
	}
}

// FillGradient fills the polygon described by verts, shading every
// interior pixel from the per-vertex surround colors toward the center
// color. A pixel near a vertex takes that vertex's color; a pixel at the
// polygon centroid takes the center color exactly. colors must pair with
// verts one to one; degenerate input is a no-op.
func (r *Rasterizer) FillGradient(c Canvas, verts []Point, colors []RGBA, center RGBA) {
	if len(verts) < 3 || len(colors) != len(verts) {
		return
	}
	edges := buildEdges(verts)
	if len(edges) == 0 {
		return
	}
	sh := newShader(verts, colors, center)
	r.fill(c, edges, sh.at)
}

// StrokeGradient strokes the closed polygon outline with a pen of the
// given width, shading each edge linearly from its start vertex color to
// its end vertex color. Widths below one pixel are clamped to one.
func (r *Rasterizer) StrokeGradient(c Canvas, verts []Point, colors []RGBA, width float64) {
	if len(verts) < 2 || len(colors) != len(verts) {
		return
	}
	if width < 1 {
		width = 1
	}
	n := len(verts)
	for i := range verts {
		j := (i + 1) % n
		r.strokeLine(c, verts[i], verts[j], colors[i], colors[j], width)
		if n == 2 {
			break // a two-point loop is a single segment
		}
	}
}

// strokeLine rasterizes one thick segment as a quad around the line,
// shaded along the line axis.
func (r *Rasterizer) strokeLine(c Canvas, p0, p1 Point, c0, c1 RGBA, width float64) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Hypot(dx, dy)
	if length < 1e-3 {
		return
	}

	// Perpendicular offset by half the pen width.
	nx := -dy / length
	ny := dx / length
	offset := width / 2

	quad := []Point{
		{X: p0.X + nx*offset, Y: p0.Y + ny*offset},
		{X: p0.X - nx*offset, Y: p0.Y - ny*offset},
		{X: p1.X - nx*offset, Y: p1.Y - ny*offset},
		{X: p1.X + nx*offset, Y: p1.Y + ny*offset},
	}
	edges := buildEdges(quad)
	if len(edges) == 0 {
		return
	}

	ux := dx / length
	uy := dy / length
	shade := func(x, y float64) RGBA {
		t := ((x-p0.X)*ux + (y-p0.Y)*uy) / length
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		return lerp(c0, c1, t)
	}
	r.fill(c, edges, shade)
}

// fill walks the scanlines covered by the edge list and paints the
// even-odd interior spans, sampling shade at each pixel center.
func (r *Rasterizer) fill(c Canvas, edges []Edge, shade func(x, y float64) RGBA) {
	yMin, yMax := yBounds(edges)

	yMinInt := int(math.Floor(yMin))
	yMaxInt := int(math.Ceil(yMax))
	if yMinInt < 0 {
		yMinInt = 0
	}
	if yMaxInt > r.height {
		yMaxInt = r.height
	}

	for y := yMinInt; y < yMaxInt; y++ {
		scanY := float64(y) + 0.5

		r.xs = r.xs[:0]
		for _, e := range edges {
			if e.y0 <= scanY && scanY < e.y1 {
				r.xs = append(r.xs, e.xAt(scanY))
			}
		}
		if len(r.xs) < 2 {
			continue
		}
		sort.Float64s(r.xs)

		for i := 0; i+1 < len(r.xs); i += 2 {
			x1 := int(r.xs[i])
			x2 := int(r.xs[i+1])
			if x1 < 0 {
				x1 = 0
			}
			if x2 > r.width {
				x2 = r.width
			}
			for x := x1; x < x2; x++ {
				c.SetPixel(x, y, shade(float64(x)+0.5, scanY))
			}
		}
	}
}

// shader evaluates the gradient fill color at a point: the surround
// colors blended with inverse-distance vertex weights, pulled toward the
// center color as the point approaches the polygon centroid.
type shader struct {
	verts   []Point
	colors  []RGBA
	center  RGBA
	cx, cy  float64
	maxDist float64
}

func newShader(verts []Point, colors []RGBA, center RGBA) *shader {
	var cx, cy float64
	for _, v := range verts {
		cx += v.X
		cy += v.Y
	}
	cx /= float64(len(verts))
	cy /= float64(len(verts))

	var maxDist float64
	for _, v := range verts {
		maxDist = math.Max(maxDist, math.Hypot(v.X-cx, v.Y-cy))
	}

	return &shader{verts: verts, colors: colors, center: center, cx: cx, cy: cy, maxDist: maxDist}
}

func (s *shader) at(x, y float64) RGBA {
	var surround RGBA
	var wsum float64
	for i, v := range s.verts {
		d := math.Hypot(x-v.X, y-v.Y)
		if d < 1e-6 {
			return s.colors[i]
		}
		w := 1 / d
		surround.R += s.colors[i].R * w
		surround.G += s.colors[i].G * w
		surround.B += s.colors[i].B * w
		surround.A += s.colors[i].A * w
		wsum += w
	}
	surround.R /= wsum
	surround.G /= wsum
	surround.B /= wsum
	surround.A /= wsum

	if s.maxDist == 0 {
		return s.center
	}
	t := math.Hypot(x-s.cx, y-s.cy) / s.maxDist
	if t > 1 {
		t = 1
	}
	return lerp(s.center, surround, t)
}
