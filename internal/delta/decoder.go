package delta

import (
	"fmt"
	"io"

	"github.com/drojf/SpriteZip/internal/archive"
	"github.com/drojf/SpriteZip/internal/blockorder"
	"github.com/drojf/SpriteZip/internal/raster"
)

// Decoder mirrors Encoder's shape: it consumes the bitmap and
// image-data streams in lockstep, driven by descriptors read from the
// archive's metadata, rolling the "previous image" forward across
// calls.
type Decoder struct {
	Bitmap    io.Reader
	ImageData io.Reader

	prev *raster.Image
}

// NewDecoder creates a Decoder reading from the given sources.
func NewDecoder(bitmap, imageData io.Reader) *Decoder {
	return &Decoder{Bitmap: bitmap, ImageData: imageData}
}

// DecodeNext reconstructs the image described by desc, consuming
// exactly desc.DiffWidth*desc.DiffHeight bytes from the bitmap source
// and one RGBA quadruple from the image-data source per bitmap byte
// equal to 1, per spec §4.7. The returned image becomes the new
// previous image.
func (d *Decoder) DecodeNext(desc archive.ImageDescriptor) (*raster.Image, error) {
	img := getImage(desc.OutputWidth, desc.OutputHeight)

	var prevW, prevH uint32
	if d.prev != nil {
		prevW, prevH = d.prev.Width, d.prev.Height
	}
	align := raster.Align(img.Width, img.Height, prevW, prevH)
	blitPrevious(img, d.prev, align)

	bitmapSize := int64(desc.DiffWidth) * int64(desc.DiffHeight)
	bitmap := make([]byte, bitmapSize)
	if _, err := io.ReadFull(d.Bitmap, bitmap); err != nil {
		return nil, fmt.Errorf("%w: bitmap segment for %q: %v", archive.ErrStreamExhausted, desc.OutputPath, err)
	}

	it := blockorder.New(int(desc.DiffWidth), int(desc.DiffHeight))
	var pixel [4]byte
	i := 0
	for {
		xRel, yRel, ok := it.Next()
		if !ok {
			break
		}
		if bitmap[i] == 1 {
			if _, err := io.ReadFull(d.ImageData, pixel[:]); err != nil {
				return nil, fmt.Errorf("%w: pixel data for %q: %v", archive.ErrStreamExhausted, desc.OutputPath, err)
			}
			img.Set(uint32(xRel)+desc.X, uint32(yRel)+desc.Y, pixel)
		}
		i++
	}

	putImage(d.prev)
	d.prev = img
	return img, nil
}
