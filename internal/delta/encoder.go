// Package delta implements the inter-image delta model: the encoder's
// crop-then-emit pass (C5) and the decoder's blit-then-overwrite pass
// (C8, C11). Grounded on original_source/src/compress.rs (crop logic)
// and original_source/src/extract.rs (reconstruction loop), adopting
// the bitmap+block-order variant spec.md §4.4 describes rather than
// compress.rs's older whole-canvas-subtraction draft.
package delta

import (
	"fmt"
	"io"

	"github.com/drojf/SpriteZip/internal/archive"
	"github.com/drojf/SpriteZip/internal/blockorder"
	"github.com/drojf/SpriteZip/internal/raster"
)

var zeroByte = []byte{0}
var oneByte = []byte{1}

// Encoder turns a sequence of raster.Image values into archive
// descriptors plus bytes written to a bitmap sink and an image-data
// sink, rolling the "previous image" forward across calls. It holds no
// other mutable state, per the Design Notes in spec.md §9.
type Encoder struct {
	Bitmap    io.Writer
	ImageData io.Writer

	prev *raster.Image
}

// NewEncoder creates an Encoder writing to the given sinks. The first
// call to EncodeNext is implicitly diffed against the empty (0,0)
// predecessor.
func NewEncoder(bitmap, imageData io.Writer) *Encoder {
	return &Encoder{Bitmap: bitmap, ImageData: imageData}
}

// EncodeNext encodes img (found at outputPath relative to the input
// root) against the rolling previous image, appends one bitmap/image-
// data segment, and returns its descriptor. img becomes the new
// previous image; callers must not mutate it afterward.
func (e *Encoder) EncodeNext(img *raster.Image, outputPath string) (archive.ImageDescriptor, error) {
	var prevW, prevH uint32
	if e.prev != nil {
		prevW, prevH = e.prev.Width, e.prev.Height
	}
	align := raster.Align(img.Width, img.Height, prevW, prevH)

	// Crop pass: whole-image scan (spec §4.4 step 1).
	var bbox raster.BBox
	for y := uint32(0); y < img.Height; y++ {
		for x := uint32(0); x < img.Width; x++ {
			if !align.Equal(img, e.prev, x, y) {
				bbox.Add(x, y)
			}
		}
	}
	cropX, cropY, cropW, cropH, _ := bbox.Region()

	// Emit pass: block-order over the crop (spec §4.4 step 2).
	it := blockorder.New(int(cropW), int(cropH))
	for {
		xRel, yRel, ok := it.Next()
		if !ok {
			break
		}
		x := uint32(xRel) + cropX
		y := uint32(yRel) + cropY
		if align.Equal(img, e.prev, x, y) {
			if _, err := e.Bitmap.Write(zeroByte); err != nil {
				return archive.ImageDescriptor{}, fmt.Errorf("delta: writing bitmap byte: %w", err)
			}
			continue
		}
		if _, err := e.Bitmap.Write(oneByte); err != nil {
			return archive.ImageDescriptor{}, fmt.Errorf("delta: writing bitmap byte: %w", err)
		}
		px := img.At(x, y)
		if _, err := e.ImageData.Write(px[:]); err != nil {
			return archive.ImageDescriptor{}, fmt.Errorf("delta: writing pixel: %w", err)
		}
	}

	desc := archive.ImageDescriptor{
		StartIndex:   0,
		X:            cropX,
		Y:            cropY,
		DiffWidth:    cropW,
		DiffHeight:   cropH,
		OutputWidth:  img.Width,
		OutputHeight: img.Height,
		OutputPath:   outputPath,
	}

	putImage(e.prev)
	e.prev = img
	return desc, nil
}
