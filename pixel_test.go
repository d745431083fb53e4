package texpaint

import (
	"errors"
	"image/color"
	"testing"
)

func TestPixelFromARGB_ColorRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b byte
	}{
		{name: "opaque black", a: 255},
		{name: "opaque white", a: 255, r: 255, g: 255, b: 255},
		{name: "translucent red", a: 128, r: 200},
		{name: "mixed", a: 7, r: 13, g: 211, b: 97},
		{name: "fully transparent", a: 0, r: 1, g: 2, b: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px := PixelFromARGB(tt.a, tt.r, tt.g, tt.b)
			c := px.Color()
			if c.A != tt.a || c.R != tt.r || c.G != tt.g || c.B != tt.b {
				t.Errorf("Color() = (A=%d R=%d G=%d B=%d), want (A=%d R=%d G=%d B=%d)",
					c.A, c.R, c.G, c.B, tt.a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestPixel_ByteOrder(t *testing.T) {
	px := NewPixel(1, 2, 3, 4) // r, g, b, a
	raw := px.Bytes()
	if raw != [4]byte{3, 2, 1, 4} {
		t.Errorf("Bytes() = %v, want BGRA order [3 2 1 4]", raw)
	}
	if px.R() != 1 || px.G() != 2 || px.B() != 3 || px.A() != 4 {
		t.Errorf("accessors = (%d %d %d %d), want (1 2 3 4)", px.R(), px.G(), px.B(), px.A())
	}
}

func TestNewOpaquePixel_DefaultAlpha(t *testing.T) {
	px := NewOpaquePixel(10, 20, 30)
	if px.A() != 255 {
		t.Errorf("A() = %d, want 255", px.A())
	}
}

func TestPixelFromBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Pixel
	}{
		{name: "full quad", in: []byte{1, 2, 3, 4}, want: Pixel{1, 2, 3, 4}},
		{name: "short input keeps opaque alpha", in: []byte{9, 8}, want: Pixel{9, 8, 0, 255}},
		{name: "empty input", in: nil, want: Pixel{0, 0, 0, 255}},
		{name: "oversized input truncated", in: []byte{1, 2, 3, 4, 5, 6}, want: Pixel{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelFromBytes(tt.in); got != tt.want {
				t.Errorf("PixelFromBytes(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetRGB_LeavesAlpha(t *testing.T) {
	px := NewPixel(0, 0, 0, 77)
	px.SetRGB(10, 20, 30)
	if px.R() != 10 || px.G() != 20 || px.B() != 30 {
		t.Errorf("SetRGB color channels = (%d %d %d), want (10 20 30)", px.R(), px.G(), px.B())
	}
	if px.A() != 77 {
		t.Errorf("SetRGB changed alpha to %d, want 77 untouched", px.A())
	}
}

func TestPixelFromColor(t *testing.T) {
	px := PixelFromColor(color.NRGBA{R: 11, G: 22, B: 33, A: 44})
	if px != NewPixel(11, 22, 33, 44) {
		t.Errorf("PixelFromColor = %v, want %v", px, NewPixel(11, 22, 33, 44))
	}
}

func TestDecodePixels(t *testing.T) {
	// Two pixels in wire order: B,G,R,A per group.
	buf := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	pixels, err := DecodePixels(buf)
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if len(pixels) != 2 {
		t.Fatalf("got %d pixels, want 2", len(pixels))
	}
	if pixels[0].B() != 1 || pixels[0].G() != 2 || pixels[0].R() != 3 || pixels[0].A() != 4 {
		t.Errorf("pixel 0 = %v, want B=1 G=2 R=3 A=4", pixels[0])
	}
	if pixels[1].B() != 5 || pixels[1].G() != 6 || pixels[1].R() != 7 || pixels[1].A() != 8 {
		t.Errorf("pixel 1 = %v, want B=5 G=6 R=7 A=8", pixels[1])
	}
}

func TestDecodePixels_OddLength(t *testing.T) {
	_, err := DecodePixels(make([]byte, 5))
	if !errors.Is(err, ErrOddBufferLength) {
		t.Errorf("DecodePixels(5 bytes) err = %v, want ErrOddBufferLength", err)
	}
}

func TestEncodeDecodePixels_RoundTrip(t *testing.T) {
	in := []Pixel{
		NewPixel(1, 2, 3, 4),
		NewOpaquePixel(250, 100, 50),
		{},
	}
	out, err := DecodePixels(EncodePixels(in))
	if err != nil {
		t.Fatalf("DecodePixels: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d pixels, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("pixel %d = %v, want %v", i, out[i], in[i])
		}
	}
}
