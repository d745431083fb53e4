package texpaint

import (
	"image"
	"math"
)

// UV is a normalized texture-space coordinate in [0, 1] x [0, 1],
// independent of pixel resolution. U runs left to right, V top to bottom.
type UV struct {
	U, V float64
}

// XY is a convenience function to create a UV.
func XY(u, v float64) UV {
	return UV{U: u, V: v}
}

// PixelX maps the U component onto a pixel column, rounding half away
// from zero so that 0.0 lands on column 0 and 1.0 on column width.
func (p UV) PixelX(width int) int {
	return int(math.Round(p.U * float64(width)))
}

// PixelY maps the V component onto a pixel row, with the same rounding
// as PixelX.
func (p UV) PixelY(height int) int {
	return int(math.Round(p.V * float64(height)))
}

// Pixel maps both components at once. Every plotting and polygon entry
// point goes through this mapping, so a coordinate lands on the same
// pixel whether painted by point plot or polygon edge.
func (p UV) Pixel(width, height int) image.Point {
	return image.Pt(p.PixelX(width), p.PixelY(height))
}

// In01 reports whether both components lie within [0, 1].
func (p UV) In01() bool {
	return p.U >= 0 && p.U <= 1 && p.V >= 0 && p.V <= 1
}
