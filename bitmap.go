package texpaint

import "image"

// LockedRegion describes a bitmap's raw byte buffer while it is locked.
// Pix holds four bytes per pixel in B, G, R, A order; Stride is the byte
// distance between vertically adjacent pixels and may exceed width*4.
//
// BottomUp records that the resource's native layout runs rows bottom to
// top. The flag is informational: indexing stays top-down (see
// PixelDrawer.BottomUp).
type LockedRegion struct {
	Pix      []byte
	Stride   int
	BottomUp bool
}

// Bitmap is an opaque image resource of fixed pixel dimensions. Lock
// claims exclusive access to its raw byte buffer; the claim holds until
// Unlock. Close releases the resource; a closed bitmap rejects all
// further operations.
//
// Implementations are not required to be safe for concurrent use, and a
// single Bitmap must not be shared between drawers.
type Bitmap interface {
	Bounds() image.Rectangle
	Lock() (*LockedRegion, error)
	Unlock() error
	Close() error
}

// Quality selects the resampling filter used when blitting an image onto
// a surface.
type Quality int

const (
	// QualityNearest picks the nearest source pixel. Fastest, aliased.
	QualityNearest Quality = iota
	// QualityBilinear interpolates linearly between source pixels.
	QualityBilinear
	// QualityCatmullRom applies a Catmull-Rom kernel. Slowest, sharpest.
	QualityCatmullRom
)

// Surface draws onto a bitmap through its graphics API rather than its
// raw bytes. Surface operations require the bitmap's raw buffer to be
// unlocked; the two access modes are mutually exclusive.
//
// Polygon vertices are pixel coordinates and the path is implicitly
// closed. Stroke shades each edge from its start vertex color to its end
// vertex color; Fill shades the interior from the surround colors toward
// the center color.
type Surface interface {
	DrawImage(src image.Image, q Quality) error
	StrokePolygon(pts []image.Point, colors []Pixel, width float64) error
	FillPolygon(pts []image.Point, colors []Pixel, center Pixel) error
}
