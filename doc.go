// Package texpaint paints texture-space points, squares, and gradient
// polygons onto an in-memory BGRA pixel buffer, then flushes the result
// back into a bitmap resource.
//
// # Overview
//
// A PixelDrawer owns one Bitmap resource and addresses it through
// normalized (U, V) coordinates in [0, 1] x [0, 1], so callers never deal
// with pixel resolution directly. Raw pixel access follows an explicit
// lock/write protocol: Lock materializes the bitmap's bytes as a
// PixelMap, plot operations mutate the map in place, and Write copies the
// map back into the resource. Polygon stroke and fill are delegated to a
// Surface, which draws through the bitmap's graphics API instead of its
// raw bytes; the two access modes are mutually exclusive and the drawer
// transitions between them.
//
// # Quick Start
//
//	d, err := texpaint.NewPixelDrawer(255, 255) // 256x256 pixel canvas
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Close()
//
//	d.Plot(texpaint.NewOpaquePixel(255, 0, 0), texpaint.XY(0.5, 0.5))
//	d.Write()
//	d.Unlock()
//	d.SavePNG("out.png")
//
// # Pixel layout
//
// Every pixel is four bytes in blue, green, red, alpha order, the
// little-endian view of a 32-bit ARGB word. Bytes/DecodePixels preserve
// this order exactly; it is the wire contract with the bitmap resource.
//
// # Logging
//
// texpaint produces no log output by default. Call SetLogger with a
// *slog.Logger to enable diagnostics.
package texpaint
