// Command texpaint-demo paints a sample texture and writes it to a PNG file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/texpaint"
)

type cli struct {
	Out     string `help:"Output PNG path." default:"texpaint.png"`
	Size    int    `help:"Canvas size in pixels." default:"256"`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("texpaint-demo"),
		kong.Description("Paints a demo texture and saves it as PNG."))
	kctx.FatalIfErrorf(run(&c))
}

func run(c *cli) error {
	if c.Size < 2 {
		return fmt.Errorf("size must be at least 2, got %d", c.Size)
	}
	if c.Verbose {
		texpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	d, err := texpaint.NewPixelDrawer(c.Size-1, c.Size-1)
	if err != nil {
		return err
	}
	defer func() {
		_ = d.Close()
	}()

	// Gradient-filled quad across most of the canvas, with a stroked
	// outline in the same vertex colors.
	quad := []texpaint.UV{
		texpaint.XY(0.10, 0.12),
		texpaint.XY(0.90, 0.08),
		texpaint.XY(0.86, 0.88),
		texpaint.XY(0.14, 0.92),
	}
	colors := []texpaint.Pixel{
		texpaint.NewOpaquePixel(0xe5, 0x39, 0x35),
		texpaint.NewOpaquePixel(0xfb, 0x8c, 0x00),
		texpaint.NewOpaquePixel(0x43, 0xa0, 0x47),
		texpaint.NewOpaquePixel(0x1e, 0x88, 0xe5),
	}
	if err := d.FillPolygon(colors, quad); err != nil {
		return err
	}
	if err := d.DrawPolygon(colors, quad, 3); err != nil {
		return err
	}

	// Scatter plots along the diagonal on top of the gradient.
	for i := 0; i <= 16; i++ {
		t := float64(i) / 16
		px := texpaint.NewOpaquePixel(byte(255*t), byte(255*(1-t)), 0x20)
		if err := d.PlotSized(px, texpaint.XY(t, t), 2); err != nil {
			return err
		}
	}

	if err := d.Write(); err != nil {
		return err
	}
	if err := d.Unlock(); err != nil {
		return err
	}
	if err := d.SavePNG(c.Out); err != nil {
		return err
	}

	fmt.Printf("demo saved to %s (%dx%d)\n", c.Out, c.Size, c.Size)
	return nil
}
