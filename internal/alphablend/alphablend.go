// Package alphablend implements the "alphablend" CLI mode: a batch,
// non-delta, non-archived side utility that converts each input PNG
// into the OnScripter alphablend convention — a PNG twice as wide, with
// the RGB color on the left half and the inverted alpha (white =
// transparent, black = opaque) repeated across R/G/B on the right
// half. Direct port of original_source/src/alphablend.rs; out of core
// scope per spec.md §1/§4.10, so it never touches internal/archive or
// internal/delta.
package alphablend

import "github.com/drojf/SpriteZip/internal/raster"

// Convert produces the alphablend-format image for src: a raster twice
// src's width, with src's color on the left half and its inverted
// alpha (as an opaque grayscale triple) on the right half.
//
// The result always has alpha 255 everywhere, matching the original's
// use of a no-alpha-channel RGB image — Go's standard PNG encoder has
// no "RGB, no alpha channel" image type, so full opacity is the
// closest equivalent representable through image/png.
func Convert(src *raster.Image) *raster.Image {
	out := raster.New(src.Width*2, src.Height)
	for y := uint32(0); y < src.Height; y++ {
		for x := uint32(0); x < src.Width; x++ {
			px := src.At(x, y)
			out.Set(x, y, [4]byte{px[0], px[1], px[2], 255})

			inverted := 0xFF - px[3]
			out.Set(x+src.Width, y, [4]byte{inverted, inverted, inverted, 255})
		}
	}
	return out
}
