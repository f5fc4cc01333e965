package delta

import "github.com/drojf/SpriteZip/internal/raster"

// blitPrevious fills dst with every pixel of prev that maps onto it
// under align, leaving positions with no predecessor pixel at their
// zero value. This is the crop-rect renderer (C11): it assembles the
// unchanged portion of a diff image into a full-frame image, which the
// decoder then overwrites with the changed pixels read from the
// streams. Grounded on original_source/src/extract.rs's reconstruction
// loop ("copy over the original image").
func blitPrevious(dst *raster.Image, prev *raster.Image, align raster.Alignment) {
	for y := uint32(0); y < dst.Height; y++ {
		for x := uint32(0); x < dst.Width; x++ {
			if px, ok := align.TryFetch(prev, x, y); ok {
				dst.Set(x, y, px)
			}
		}
	}
}
