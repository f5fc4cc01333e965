package raster

// BBox accumulates the bounding box of "changed" pixel coordinates during
// the encoder's whole-image crop pass. Grounded on
// original_source/src/compress.rs:crop_function, generalized from its
// min-width/min-height sentinel trick into an explicit "any" flag so the
// zero-value BBox behaves correctly before the first Add.
type BBox struct {
	MinX, MinY uint32
	MaxX, MaxY uint32
	any        bool
}

// Add records that the pixel at (x, y) differs from its predecessor.
func (b *BBox) Add(x, y uint32) {
	if !b.any {
		b.MinX, b.MaxX = x, x
		b.MinY, b.MaxY = y, y
		b.any = true
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Region returns the inclusive bounding rectangle as (x, y, width,
// height). If no pixel was ever added, it returns the empty rectangle
// (0, 0, 0, 0) with empty=true, per spec §4.3.
func (b *BBox) Region() (x, y, width, height uint32, empty bool) {
	if !b.any {
		return 0, 0, 0, 0, true
	}
	return b.MinX, b.MinY, b.MaxX - b.MinX + 1, b.MaxY - b.MinY + 1, false
}
