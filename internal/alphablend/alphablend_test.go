package alphablend

import (
	"testing"

	"github.com/drojf/SpriteZip/internal/raster"
)

func TestConvertLayout(t *testing.T) {
	src := raster.New(2, 1)
	src.Set(0, 0, [4]byte{255, 0, 0, 128})
	src.Set(1, 0, [4]byte{0, 0, 0, 0})

	out := Convert(src)
	if out.Width != 4 || out.Height != 1 {
		t.Fatalf("size = %dx%d, want 4x1", out.Width, out.Height)
	}

	if out.At(0, 0) != [4]byte{255, 0, 0, 255} {
		t.Fatalf("left half (0,0) = %v, want color with forced opacity", out.At(0, 0))
	}
	wantAlpha := byte(0xFF - 128)
	if out.At(2, 0) != [4]byte{wantAlpha, wantAlpha, wantAlpha, 255} {
		t.Fatalf("right half (2,0) = %v, want inverted-alpha gray %d", out.At(2, 0), wantAlpha)
	}
	if out.At(3, 0) != [4]byte{255, 255, 255, 255} {
		t.Fatalf("right half (3,0) = %v, want white (fully transparent source)", out.At(3, 0))
	}
}
