package raster

// Alignment is the signed offset from a current image's pixel space to
// its predecessor's pixel space such that both are bottom-centered on a
// shared canvas. Grounded on
// original_source/src/common.rs:offset_to_bottom_center_image_value.
type Alignment struct {
	DX, DY int64
}

// Align computes the bottom-center alignment of a current image sized
// (w, h) against a predecessor sized (prevW, prevH).
//
// dx = (prevW - w) / 2, truncated toward zero (Go's integer division on
// signed operands does this natively, matching the Rust source's
// behavior for this sign regime); dy = prevH - h.
func Align(w, h, prevW, prevH uint32) Alignment {
	dx := (int64(prevW) - int64(w)) / 2
	dy := int64(prevH) - int64(h)
	return Alignment{DX: dx, DY: dy}
}

// TryFetch maps a current-image coordinate (x, y) into prev's pixel
// space and returns prev's pixel there, or ok=false if that position
// falls outside prev's bounds (or prev is nil/empty).
//
// Bounds checks happen in signed 64-bit arithmetic so negative offsets
// are handled correctly before any narrowing back to unsigned indices.
func (a Alignment) TryFetch(prev *Image, x, y uint32) (pixel [4]byte, ok bool) {
	if prev == nil {
		return pixel, false
	}
	px := int64(x) + a.DX
	py := int64(y) + a.DY
	if px < 0 || py < 0 || px >= int64(prev.Width) || py >= int64(prev.Height) {
		return pixel, false
	}
	return prev.At(uint32(px), uint32(py)), true
}

// Equal reports whether the pixel at (x, y) in cur is identical to the
// pixel prev maps to under this alignment. A position with no previous
// pixel available is treated as "different" (never equal), per spec
// §4.2: TryFetch absent implies the equality predicate is false.
func (a Alignment) Equal(cur *Image, prev *Image, x, y uint32) bool {
	prevPixel, ok := a.TryFetch(prev, x, y)
	if !ok {
		return false
	}
	return cur.At(x, y) == prevPixel
}
