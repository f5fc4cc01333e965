// Package raster holds the RGBA image value spritezip operates on and
// the pure-geometry logic (bottom-centered alignment, crop bounding box)
// used to diff one image against its predecessor. Grounded on
// original_source/src/common.rs (offset_to_bottom_center_image,
// subtract_image_from_canvas) and compress.rs's crop_function.
package raster

import "fmt"

// Image is an 8-bit RGBA raster: Pix holds width*height pixels in
// row-major, pixel-interleaved (R,G,B,A) order.
type Image struct {
	Width, Height uint32
	Pix           []byte
}

// New allocates a zeroed Image of the given size.
func New(width, height uint32) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 4*int(width)*int(height)),
	}
}

// At returns the RGBA quadruple at (x, y). x and y must be in bounds.
func (img *Image) At(x, y uint32) [4]byte {
	i := 4 * (int(y)*int(img.Width) + int(x))
	return [4]byte{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

// Set writes the RGBA quadruple at (x, y). x and y must be in bounds.
func (img *Image) Set(x, y uint32, px [4]byte) {
	i := 4 * (int(y)*int(img.Width) + int(x))
	copy(img.Pix[i:i+4], px[:])
}

// InBounds reports whether (x, y) lies within the image.
func (img *Image) InBounds(x, y uint32) bool {
	return x < img.Width && y < img.Height
}

// String renders a short diagnostic summary, used in debug logging.
func (img *Image) String() string {
	if img == nil {
		return "<nil image>"
	}
	return fmt.Sprintf("%dx%d", img.Width, img.Height)
}
