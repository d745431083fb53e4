package texpaint

import (
	"errors"
	"fmt"
	"image"
	"os"
)

var (
	// ErrLengthMismatch reports paired slices of different lengths in a
	// batch or polygon operation.
	ErrLengthMismatch = errors.New("texpaint: color and position counts differ")
	// ErrInvalidInterval reports a range check whose lower bound exceeds
	// its upper bound.
	ErrInvalidInterval = errors.New("texpaint: interval lower bound exceeds upper bound")
)

// inOpenInterval reports whether lo < v < hi. A lower bound above the
// upper bound is a caller bug and fails fast.
func inOpenInterval(v, lo, hi int) (bool, error) {
	if lo > hi {
		return false, fmt.Errorf("%w: (%d, %d)", ErrInvalidInterval, lo, hi)
	}
	return lo < v && v < hi, nil
}

// PixelDrawer owns a bitmap resource and paints it through normalized
// texture coordinates. The bitmap is one pixel wider and taller than the
// drawer's nominal extent, so the normalized coordinate 1.0 maps onto
// the last valid pixel instead of one past it.
//
// Raw pixel access follows the lock/write protocol: Lock materializes
// the bitmap bytes as a PixelMap, plot operations mutate the map, Write
// copies it back. Plot and Write lock on demand; nothing unlocks
// implicitly except the surface-drawing operations, which require the
// raw buffer released.
//
// A PixelDrawer is not safe for concurrent use, and no two drawers may
// share one bitmap.
type PixelDrawer struct {
	bmp    Bitmap
	surf   Surface
	width  int // highest addressable column; the bitmap is width+1 wide
	height int // highest addressable row; the bitmap is height+1 tall

	region   *LockedRegion
	pm       *PixelMap
	bottomUp bool
}

// NewPixelDrawer allocates a drawer over a fresh white in-memory bitmap
// sized (width+1) x (height+1) with a software drawing surface.
func NewPixelDrawer(width, height int) (*PixelDrawer, error) {
	bmp, err := NewMemBitmap(width+1, height+1)
	if err != nil {
		return nil, err
	}
	return NewPixelDrawerFor(bmp, NewSoftwareSurface(bmp))
}

// NewPixelDrawerFor wraps a host-supplied bitmap and surface. The bitmap
// must be at least 2x2 pixels; its dimensions minus one become the
// drawer's nominal extent.
func NewPixelDrawerFor(bmp Bitmap, surf Surface) (*PixelDrawer, error) {
	b := bmp.Bounds()
	if b.Dx() < 2 || b.Dy() < 2 {
		return nil, fmt.Errorf("%w: bitmap %dx%d", ErrNonPositiveSize, b.Dx(), b.Dy())
	}
	return &PixelDrawer{
		bmp:    bmp,
		surf:   surf,
		width:  b.Dx() - 1,
		height: b.Dy() - 1,
	}, nil
}

// Width returns the highest addressable column, one less than the bitmap
// width.
func (d *PixelDrawer) Width() int { return d.width }

// Height returns the highest addressable row, one less than the bitmap
// height.
func (d *PixelDrawer) Height() int { return d.height }

// Locked reports whether the raw buffer is currently mapped.
func (d *PixelDrawer) Locked() bool { return d.region != nil }

// BottomUp reports whether the most recent lock saw a bottom-up row
// order. Informational only: indexing does not compensate.
func (d *PixelDrawer) BottomUp() bool { return d.bottomUp }

// Map returns the current PixelMap view, or nil when not locked. The map
// is valid exactly while the drawer stays locked.
func (d *PixelDrawer) Map() *PixelMap { return d.pm }

// Lock claims the bitmap's raw byte buffer and decodes it into a fresh
// PixelMap. Locking while already locked is a no-op: in-progress
// mutations are never discarded by a redundant Lock.
func (d *PixelDrawer) Lock() error {
	if d.region != nil {
		return nil
	}
	region, err := d.bmp.Lock()
	if err != nil {
		return fmt.Errorf("texpaint: lock bitmap: %w", err)
	}

	b := d.bmp.Bounds()
	bw, bh := b.Dx(), b.Dy()
	pixels := make([]Pixel, 0, bw*bh)
	for y := 0; y < bh; y++ {
		row, err := DecodePixels(region.Pix[y*region.Stride : y*region.Stride+bw*PixelBytes])
		if err != nil {
			_ = d.bmp.Unlock()
			return err
		}
		pixels = append(pixels, row...)
	}
	pm, err := NewPixelMap(pixels, bw)
	if err != nil {
		_ = d.bmp.Unlock()
		return err
	}

	d.region = region
	d.pm = pm
	d.bottomUp = region.BottomUp
	if region.BottomUp {
		Logger().Warn("bitmap reports bottom-up row order; indexing stays top-down",
			"width", bw, "height", bh)
	}
	Logger().Debug("pixel buffer mapped", "width", bw, "height", bh, "stride", region.Stride)
	return nil
}

// Unlock releases the raw buffer claim and invalidates the PixelMap
// view. Unlocking while not locked is a no-op. Unlock never persists
// mutations; call Write first if they should survive.
func (d *PixelDrawer) Unlock() error {
	if d.region == nil {
		return nil
	}
	d.region = nil
	d.pm = nil
	if err := d.bmp.Unlock(); err != nil {
		return fmt.Errorf("texpaint: unlock bitmap: %w", err)
	}
	Logger().Debug("pixel buffer unmapped")
	return nil
}

// Write copies the PixelMap into the bitmap's raw buffer, honoring the
// region's stride. If the drawer is not locked, Write locks first so a
// write never fails purely on lock state. Write never changes the lock
// state it found or established: the drawer stays locked afterwards and
// the caller owns Unlock.
func (d *PixelDrawer) Write() error {
	if err := d.Lock(); err != nil {
		return err
	}
	stride := d.region.Stride
	for y := 0; y < d.pm.Height(); y++ {
		copy(d.region.Pix[y*stride:], EncodePixels(d.pm.row(y)))
	}
	Logger().Debug("pixel buffer written back", "bytes", d.pm.ByteLen())
	return nil
}

// Plot paints a single pixel at the normalized position. The position
// maps through the shared coordinate mapper; coordinates outside the
// effective [0, Width()] x [0, Height()] policy are silently dropped.
// Plot locks on demand and never writes back; call Write to persist.
func (d *PixelDrawer) Plot(px Pixel, pos UV) error {
	x := pos.PixelX(d.width)
	y := pos.PixelY(d.height)
	if err := d.Lock(); err != nil {
		return err
	}
	inX, err := inOpenInterval(x, -1, d.width+1)
	if err != nil {
		return err
	}
	inY, err := inOpenInterval(y, -1, d.height+1)
	if err != nil {
		return err
	}
	if inX && inY {
		d.pm.SetPixel(x, y, px)
	}
	return nil
}

// PlotSized paints a centered square of side 2*size-1 around the mapped
// position. A size of one or less degenerates to a single-pixel Plot.
func (d *PixelDrawer) PlotSized(px Pixel, pos UV, size int) error {
	if size <= 1 {
		return d.Plot(px, pos)
	}
	x := pos.PixelX(d.width)
	y := pos.PixelY(d.height)
	return d.PlotSquare(px, image.Rect(x-size+1, y-size+1, x+size, y+size))
}

// PlotSquare paints every pixel of the half-open rectangle that falls
// inside the canvas; pixels outside are silently skipped. Locks on
// demand, never writes back.
func (d *PixelDrawer) PlotSquare(px Pixel, rect image.Rectangle) error {
	if err := d.Lock(); err != nil {
		return err
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		inY, err := inOpenInterval(y, -1, d.height)
		if err != nil {
			return err
		}
		if !inY {
			continue
		}
		for x := rect.Min.X; x < rect.Max.X; x++ {
			inX, err := inOpenInterval(x, -1, d.width)
			if err != nil {
				return err
			}
			if inX {
				d.pm.SetPixel(x, y, px)
			}
		}
	}
	return nil
}

// PlotBatch applies PlotSized per paired color and position. Mismatched
// slice lengths fail with ErrLengthMismatch before anything is painted.
func (d *PixelDrawer) PlotBatch(pxs []Pixel, positions []UV, size int) error {
	if len(pxs) != len(positions) {
		return fmt.Errorf("%w: %d colors, %d positions", ErrLengthMismatch, len(pxs), len(positions))
	}
	for i := range pxs {
		if err := d.PlotSized(pxs[i], positions[i], size); err != nil {
			return err
		}
	}
	return nil
}

// Clear locks on demand and fills the whole map with px. Like the plot
// operations it does not write back.
func (d *PixelDrawer) Clear(px Pixel) error {
	if err := d.Lock(); err != nil {
		return err
	}
	d.pm.Fill(px)
	return nil
}

// FillImage unlocks the raw buffer and delegates to the surface to draw
// src scaled over the full canvas extent with the requested resampling
// quality. Unwritten PixelMap mutations are discarded by the unlock.
func (d *PixelDrawer) FillImage(src image.Image, q Quality) error {
	if err := d.Unlock(); err != nil {
		return err
	}
	return d.surf.DrawImage(src, q)
}

// DrawPolygon unlocks the raw buffer, maps each normalized vertex to
// pixel coordinates, and delegates to the surface to stroke the closed
// polygon with a gradient pen carrying the per-vertex colors.
func (d *PixelDrawer) DrawPolygon(pxs []Pixel, verts []UV, strokeWidth float64) error {
	if len(pxs) != len(verts) {
		return fmt.Errorf("%w: %d colors, %d vertices", ErrLengthMismatch, len(pxs), len(verts))
	}
	if err := d.Unlock(); err != nil {
		return err
	}
	return d.surf.StrokePolygon(d.mapVertices(verts), pxs, strokeWidth)
}

// FillPolygon unlocks the raw buffer, maps each normalized vertex to
// pixel coordinates, and delegates to the surface to fill the closed
// polygon with a gradient brush carrying the per-vertex colors and the
// computed center color.
func (d *PixelDrawer) FillPolygon(pxs []Pixel, verts []UV) error {
	if len(pxs) != len(verts) {
		return fmt.Errorf("%w: %d colors, %d vertices", ErrLengthMismatch, len(pxs), len(verts))
	}
	if err := d.Unlock(); err != nil {
		return err
	}
	return d.surf.FillPolygon(d.mapVertices(verts), pxs, CenterColor(pxs))
}

func (d *PixelDrawer) mapVertices(verts []UV) []image.Point {
	pts := make([]image.Point, len(verts))
	for i, v := range verts {
		pts[i] = v.Pixel(d.width, d.height)
	}
	return pts
}

// CenterColor computes the gradient-fill center color: the unweighted
// per-channel mean of the surround colors over A, R, G, B independently,
// truncated toward zero. An empty slice yields opaque black.
func CenterColor(pxs []Pixel) Pixel {
	if len(pxs) == 0 {
		return NewOpaquePixel(0, 0, 0)
	}
	var r, g, b, a int
	for _, px := range pxs {
		r += int(px.R())
		g += int(px.G())
		b += int(px.B())
		a += int(px.A())
	}
	n := len(pxs)
	return NewPixel(byte(r/n), byte(g/n), byte(b/n), byte(a/n))
}

// Canvas unlocks the raw buffer and returns the underlying bitmap
// resource for consumption by the host.
func (d *PixelDrawer) Canvas() (Bitmap, error) {
	if err := d.Unlock(); err != nil {
		return nil, err
	}
	return d.bmp, nil
}

// Close releases the drawer: unlock if locked, then close the bitmap.
// Close is deterministic and safe to call more than once; it replaces
// any finalizer-style cleanup.
func (d *PixelDrawer) Close() error {
	err := d.Unlock()
	if cerr := d.bmp.Close(); err == nil {
		err = cerr
	}
	return err
}

// SavePNG writes the current canvas contents to a PNG file. If the
// drawer is not locked it locks for the read and unlocks afterwards;
// an existing lock and its in-progress mutations are left untouched.
func (d *PixelDrawer) SavePNG(path string) error {
	if !d.Locked() {
		if err := d.Lock(); err != nil {
			return err
		}
		defer func() {
			_ = d.Unlock()
		}()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return d.pm.WritePNG(f)
}
