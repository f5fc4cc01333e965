package pngio

import (
	"bytes"
	"testing"

	"github.com/drojf/SpriteZip/internal/raster"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img := raster.New(3, 2)
	img.Set(0, 0, [4]byte{255, 0, 0, 255})
	img.Set(1, 0, [4]byte{0, 255, 0, 128})
	img.Set(2, 0, [4]byte{0, 0, 255, 0})
	img.Set(0, 1, [4]byte{10, 20, 30, 40})
	img.Set(1, 1, [4]byte{0, 0, 0, 0})
	img.Set(2, 1, [4]byte{255, 255, 255, 255})

	var buf bytes.Buffer
	if err := EncodeRGBA(&buf, img); err != nil {
		t.Fatalf("EncodeRGBA: %v", err)
	}

	out, err := DecodeRGBA(&buf)
	if err != nil {
		t.Fatalf("DecodeRGBA: %v", err)
	}
	if out.Width != img.Width || out.Height != img.Height {
		t.Fatalf("size = %dx%d, want %dx%d", out.Width, out.Height, img.Width, img.Height)
	}
	if out.At(1, 0) != [4]byte{0, 255, 0, 128} {
		t.Fatalf("pixel (1,0) = %v, want (0,255,0,128)", out.At(1, 0))
	}
	if out.At(1, 1) != [4]byte{0, 0, 0, 0} {
		t.Fatalf("pixel (1,1) = %v, want fully transparent zero", out.At(1, 1))
	}
}

func TestOptimizeClampsLevelAndPreservesPixels(t *testing.T) {
	img := raster.New(2, 2)
	img.Set(0, 0, [4]byte{1, 2, 3, 4})
	img.Set(1, 0, [4]byte{5, 6, 7, 8})
	img.Set(0, 1, [4]byte{9, 10, 11, 12})
	img.Set(1, 1, [4]byte{0, 0, 0, 0})

	var buf bytes.Buffer
	if err := EncodeRGBA(&buf, img); err != nil {
		t.Fatalf("EncodeRGBA: %v", err)
	}

	for _, level := range []int{-1, 0, 3, 6, 100} {
		optimized, err := Optimize(buf.Bytes(), level)
		if err != nil {
			t.Fatalf("Optimize(level=%d): %v", level, err)
		}
		out, err := DecodeRGBA(bytes.NewReader(optimized))
		if err != nil {
			t.Fatalf("DecodeRGBA(optimized, level=%d): %v", level, err)
		}
		if !bytes.Equal(out.Pix, img.Pix) {
			t.Fatalf("Optimize(level=%d) altered pixel data", level)
		}
	}
}

func TestDecodeInvalidDataFails(t *testing.T) {
	if _, err := DecodeRGBA(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Fatalf("expected error decoding garbage input")
	}
}
