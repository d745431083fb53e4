package texpaint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

var (
	// ErrNonPositiveSize reports a width or height below one.
	ErrNonPositiveSize = errors.New("texpaint: width and height must be positive")
	// ErrRaggedPixelMap reports a pixel sequence whose length is not an
	// exact multiple of the declared width.
	ErrRaggedPixelMap = errors.New("texpaint: pixel count is not a multiple of width")
)

// PixelMap addresses a flat sequence of Pixels as a row-major 2D grid.
// The pixel at (x, y) is element x + y*width of the backing arena.
//
// Out-of-range coordinates are handled at the accessor level: SetPixel
// drops the write silently and PixelAt returns the zero Pixel. The
// backing arena is never exposed by reference.
type PixelMap struct {
	pix    []Pixel
	width  int
	height int
}

// PixelMap is drawable and encodable through the standard image
// interfaces.
var _ image.Image = (*PixelMap)(nil)

// NewPixelMap builds a map over pixels with the declared row width.
// Height is derived as len(pixels)/width; a sequence that does not divide
// evenly fails with ErrRaggedPixelMap. The map takes ownership of the
// slice.
func NewPixelMap(pixels []Pixel, width int) (*PixelMap, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrNonPositiveSize, width)
	}
	if len(pixels)%width != 0 {
		return nil, fmt.Errorf("%w: %d pixels, width %d", ErrRaggedPixelMap, len(pixels), width)
	}
	return &PixelMap{pix: pixels, width: width, height: len(pixels) / width}, nil
}

// DecodePixelMap decodes a flat BGRA byte buffer into a map of the given
// width.
func DecodePixelMap(buf []byte, width int) (*PixelMap, error) {
	pixels, err := DecodePixels(buf)
	if err != nil {
		return nil, err
	}
	return NewPixelMap(pixels, width)
}

// Width returns the row width in pixels.
func (m *PixelMap) Width() int { return m.width }

// Height returns the number of rows.
func (m *PixelMap) Height() int { return m.height }

// Count returns the total number of pixels.
func (m *PixelMap) Count() int { return len(m.pix) }

// ByteLen returns the serialized length in bytes, Count()*4.
func (m *PixelMap) ByteLen() int { return len(m.pix) * PixelBytes }

// PixelAt returns the pixel at (x, y). Out-of-range coordinates return
// the zero Pixel.
func (m *PixelMap) PixelAt(x, y int) Pixel {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Pixel{}
	}
	return m.pix[x+y*m.width]
}

// SetPixel sets the pixel at (x, y). Out-of-range coordinates are
// silently dropped.
func (m *PixelMap) SetPixel(x, y int, px Pixel) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pix[x+y*m.width] = px
}

// Fill sets every pixel to px.
func (m *PixelMap) Fill(px Pixel) {
	for i := range m.pix {
		m.pix[i] = px
	}
}

// row returns the pixels of row y. The slice aliases the backing arena;
// callers must pass a valid row index.
func (m *PixelMap) row(y int) []Pixel {
	return m.pix[y*m.width : (y+1)*m.width]
}

// Bytes serializes every pixel into a fresh flat BGRA buffer of length
// ByteLen().
func (m *PixelMap) Bytes() []byte {
	return EncodePixels(m.pix)
}

// WritePNG encodes the map as PNG.
func (m *PixelMap) WritePNG(w io.Writer) error {
	return png.Encode(w, m)
}

// At implements the image.Image interface.
func (m *PixelMap) At(x, y int) color.Color {
	return m.PixelAt(x, y).Color()
}

// Bounds implements the image.Image interface.
func (m *PixelMap) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *PixelMap) ColorModel() color.Model {
	return color.NRGBAModel
}
