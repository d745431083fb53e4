package texpaint

import (
	"errors"
	"fmt"
	"image/color"
)

// Byte offsets of the channels within a Pixel. The layout is the
// little-endian view of a 32-bit ARGB word: blue first, alpha last.
const (
	offB = 0
	offG = 1
	offR = 2
	offA = 3
)

// PixelBytes is the encoded size of one Pixel.
const PixelBytes = 4

// ErrOddBufferLength reports a pixel buffer whose byte length is not a
// multiple of the pixel size.
var ErrOddBufferLength = errors.New("texpaint: buffer length is not a multiple of 4")

// Pixel is a single color cell: four bytes in B, G, R, A order. It is a
// value type; copy it freely. The zero Pixel is fully transparent black.
type Pixel [PixelBytes]byte

// Verify at compile time that Pixel implements color.Color.
var _ color.Color = Pixel{}

// NewPixel creates a pixel from explicit channel values.
func NewPixel(r, g, b, a byte) Pixel {
	return Pixel{b, g, r, a}
}

// NewOpaquePixel creates a fully opaque pixel from RGB channel values.
func NewOpaquePixel(r, g, b byte) Pixel {
	return Pixel{b, g, r, 0xff}
}

// PixelFromBytes decodes up to four bytes in B, G, R, A order. Missing
// trailing channels keep their defaults: zero for color channels, fully
// opaque for alpha. Input beyond four bytes is truncated.
//
// This is the only byte-to-pixel decode path; PixelFromBytes and
// DecodePixels always agree on channel order.
func PixelFromBytes(p []byte) Pixel {
	px := Pixel{0, 0, 0, 0xff}
	copy(px[:], p)
	return px
}

// PixelFromARGB creates a pixel from channel values in A, R, G, B argument
// order.
func PixelFromARGB(a, r, g, b byte) Pixel {
	return Pixel{b, g, r, a}
}

// PixelFromColor creates a pixel from any color.Color, preserving
// non-premultiplied channel values.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.B, n.G, n.R, n.A}
}

// R returns the red channel.
func (p Pixel) R() byte { return p[offR] }

// G returns the green channel.
func (p Pixel) G() byte { return p[offG] }

// B returns the blue channel.
func (p Pixel) B() byte { return p[offB] }

// A returns the alpha channel.
func (p Pixel) A() byte { return p[offA] }

// SetRGB replaces the color channels, leaving alpha untouched.
func (p *Pixel) SetRGB(r, g, b byte) {
	p[offR] = r
	p[offG] = g
	p[offB] = b
}

// Color returns the composite non-premultiplied view of the pixel.
func (p Pixel) Color() color.NRGBA {
	return color.NRGBA{R: p[offR], G: p[offG], B: p[offB], A: p[offA]}
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.Color().RGBA()
}

// Bytes returns the four raw bytes in stored B, G, R, A order.
func (p Pixel) Bytes() [PixelBytes]byte { return p }

// AppendBytes appends the pixel's four bytes to dst and returns the
// extended slice.
func (p Pixel) AppendBytes(dst []byte) []byte {
	return append(dst, p[:]...)
}

// DecodePixels decodes a flat BGRA byte buffer into one Pixel per
// four-byte group. The output pixel count is len(buf)/4; a buffer whose
// length is not a multiple of four fails with ErrOddBufferLength.
func DecodePixels(buf []byte) ([]Pixel, error) {
	if len(buf)%PixelBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddBufferLength, len(buf))
	}
	pixels := make([]Pixel, len(buf)/PixelBytes)
	for i := range pixels {
		copy(pixels[i][:], buf[i*PixelBytes:])
	}
	return pixels, nil
}

// EncodePixels serializes pixels into a flat BGRA byte buffer of length
// len(pixels)*4. It is the exact inverse of DecodePixels.
func EncodePixels(pixels []Pixel) []byte {
	buf := make([]byte, 0, len(pixels)*PixelBytes)
	for _, px := range pixels {
		buf = append(buf, px[:]...)
	}
	return buf
}
