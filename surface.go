package texpaint

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/texpaint/internal/raster"
)

// interpolator maps a Quality onto its x/image/draw filter.
func (q Quality) interpolator() xdraw.Interpolator {
	switch q {
	case QualityBilinear:
		return xdraw.ApproxBiLinear
	case QualityCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

// SoftwareSurface implements Surface over a MemBitmap with a CPU
// scanline rasterizer. Every operation verifies that the bitmap's raw
// buffer is not locked: surface drawing and raw byte access are mutually
// exclusive.
type SoftwareSurface struct {
	bmp *MemBitmap
	ras *raster.Rasterizer
}

var _ Surface = (*SoftwareSurface)(nil)

// NewSoftwareSurface creates a surface drawing onto bmp.
func NewSoftwareSurface(bmp *MemBitmap) *SoftwareSurface {
	b := bmp.Bounds()
	return &SoftwareSurface{
		bmp: bmp,
		ras: raster.New(b.Dx(), b.Dy()),
	}
}

// guard rejects surface drawing while the raw byte buffer is claimed.
func (s *SoftwareSurface) guard() error {
	if s.bmp.closed {
		return fmt.Errorf("texpaint: surface draw: %w", ErrBitmapClosed)
	}
	if s.bmp.Locked() {
		return fmt.Errorf("texpaint: surface draw with raw buffer claimed: %w", ErrAlreadyLocked)
	}
	return nil
}

// DrawImage scales src over the surface's full extent with the requested
// resampling quality.
func (s *SoftwareSurface) DrawImage(src image.Image, q Quality) error {
	if err := s.guard(); err != nil {
		return err
	}
	q.interpolator().Scale(s.bmp, s.bmp.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return nil
}

// StrokePolygon strokes the closed polygon through pts with a gradient
// pen, shading each edge from its start vertex color to its end vertex
// color.
func (s *SoftwareSurface) StrokePolygon(pts []image.Point, colors []Pixel, width float64) error {
	if err := s.guard(); err != nil {
		return err
	}
	if len(pts) != len(colors) {
		return fmt.Errorf("%w: %d vertices, %d colors", ErrLengthMismatch, len(pts), len(colors))
	}
	if len(pts) < 2 {
		return nil
	}
	s.ras.StrokeGradient(&bitmapCanvas{bmp: s.bmp}, rasterPoints(pts), rasterColors(colors), width)
	return nil
}

// FillPolygon fills the closed polygon through pts with a gradient
// brush: surround colors at the vertices shading toward center at the
// polygon centroid.
func (s *SoftwareSurface) FillPolygon(pts []image.Point, colors []Pixel, center Pixel) error {
	if err := s.guard(); err != nil {
		return err
	}
	if len(pts) != len(colors) {
		return fmt.Errorf("%w: %d vertices, %d colors", ErrLengthMismatch, len(pts), len(colors))
	}
	if len(pts) < 3 {
		return nil
	}
	s.ras.FillGradient(&bitmapCanvas{bmp: s.bmp}, rasterPoints(pts), rasterColors(colors), rasterColor(center))
	return nil
}

// bitmapCanvas adapts MemBitmap to the rasterizer's pixel sink.
type bitmapCanvas struct {
	bmp *MemBitmap
}

func (c *bitmapCanvas) Width() int { return c.bmp.Bounds().Dx() }

func (c *bitmapCanvas) Height() int { return c.bmp.Bounds().Dy() }

func (c *bitmapCanvas) SetPixel(x, y int, col raster.RGBA) {
	c.bmp.SetPixel(x, y, pixelFromRaster(col))
}

func rasterPoints(pts []image.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

func rasterColors(pxs []Pixel) []raster.RGBA {
	out := make([]raster.RGBA, len(pxs))
	for i, px := range pxs {
		out[i] = rasterColor(px)
	}
	return out
}

func rasterColor(px Pixel) raster.RGBA {
	return raster.RGBA{
		R: float64(px.R()) / 255,
		G: float64(px.G()) / 255,
		B: float64(px.B()) / 255,
		A: float64(px.A()) / 255,
	}
}

func pixelFromRaster(c raster.RGBA) Pixel {
	return NewPixel(
		byte(clamp255(c.R*255)),
		byte(clamp255(c.G*255)),
		byte(clamp255(c.B*255)),
		byte(clamp255(c.A*255)),
	)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
