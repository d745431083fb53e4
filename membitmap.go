package texpaint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrBitmapClosed reports an operation on a closed bitmap.
	ErrBitmapClosed = errors.New("texpaint: bitmap is closed")
	// ErrAlreadyLocked reports a second lock while one is outstanding.
	ErrAlreadyLocked = errors.New("texpaint: bitmap is already locked")
	// ErrNotLocked reports an unlock without an outstanding lock.
	ErrNotLocked = errors.New("texpaint: bitmap is not locked")
)

// MemBitmap is an in-memory Bitmap backed by a BGRA byte buffer. Fresh
// bitmaps start out opaque white, matching the default surface color of
// the host resources this package targets.
//
// MemBitmap also implements image.Image and draw.Image, so it can serve
// directly as a blit destination and be encoded with the standard image
// codecs.
type MemBitmap struct {
	pix    []byte
	stride int
	rect   image.Rectangle
	locked bool
	closed bool
}

var _ Bitmap = (*MemBitmap)(nil)
var _ image.Image = (*MemBitmap)(nil)

// NewMemBitmap allocates a white bitmap of the given pixel dimensions.
func NewMemBitmap(width, height int) (*MemBitmap, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonPositiveSize, width, height)
	}
	pix := make([]byte, width*height*PixelBytes)
	for i := range pix {
		pix[i] = 0xff
	}
	return &MemBitmap{
		pix:    pix,
		stride: width * PixelBytes,
		rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Bounds returns the bitmap's pixel extent.
func (b *MemBitmap) Bounds() image.Rectangle { return b.rect }

// Locked reports whether the raw buffer is currently claimed.
func (b *MemBitmap) Locked() bool { return b.locked }

// Lock claims exclusive access to the raw byte buffer. The returned
// region aliases the live backing store: writes to Pix are writes to the
// bitmap.
func (b *MemBitmap) Lock() (*LockedRegion, error) {
	if b.closed {
		return nil, ErrBitmapClosed
	}
	if b.locked {
		return nil, ErrAlreadyLocked
	}
	b.locked = true
	return &LockedRegion{Pix: b.pix, Stride: b.stride}, nil
}

// Unlock releases the raw buffer claim. Any LockedRegion handed out by
// Lock is invalid afterwards.
func (b *MemBitmap) Unlock() error {
	if b.closed {
		return ErrBitmapClosed
	}
	if !b.locked {
		return ErrNotLocked
	}
	b.locked = false
	return nil
}

// Close releases the pixel storage. Closing twice is a no-op.
func (b *MemBitmap) Close() error {
	if b.closed {
		return nil
	}
	b.locked = false
	b.closed = true
	b.pix = nil
	return nil
}

// PixOffset returns the index of the first element of the backing buffer
// that corresponds to the pixel at (x, y).
func (b *MemBitmap) PixOffset(x, y int) int {
	return (y-b.rect.Min.Y)*b.stride + (x-b.rect.Min.X)*PixelBytes
}

// PixelAt returns the pixel at (x, y), or the zero Pixel out of range or
// after Close.
func (b *MemBitmap) PixelAt(x, y int) Pixel {
	if b.closed || !(image.Point{X: x, Y: y}.In(b.rect)) {
		return Pixel{}
	}
	return PixelFromBytes(b.pix[b.PixOffset(x, y):][:PixelBytes])
}

// SetPixel sets the pixel at (x, y). Out-of-range coordinates are
// silently dropped.
func (b *MemBitmap) SetPixel(x, y int, px Pixel) {
	if b.closed || !(image.Point{X: x, Y: y}.In(b.rect)) {
		return
	}
	copy(b.pix[b.PixOffset(x, y):], px[:])
}

// At implements the image.Image interface.
func (b *MemBitmap) At(x, y int) color.Color {
	return b.PixelAt(x, y).Color()
}

// Set implements the draw.Image interface.
func (b *MemBitmap) Set(x, y int, c color.Color) {
	b.SetPixel(x, y, PixelFromColor(c))
}

// ColorModel implements the image.Image interface.
func (b *MemBitmap) ColorModel() color.Model {
	return color.NRGBAModel
}
