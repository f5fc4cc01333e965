// Package blockorder implements the deterministic block-order traversal
// that both the delta encoder and decoder must walk byte-for-byte: rows
// within a tile enumerated first, tiles in row-major order across the
// whole raster. Block size is fixed at 50 per spec.
package blockorder

// BlockSize is the fixed tile edge length used by the traversal.
const BlockSize = 50

// gridStep maps a linear grid index g to the (x, y) it would occupy in a
// fully regular B×B-tiled grid of numXBlocks×numYBlocks blocks, along
// with whether that candidate falls inside the true w×h raster (valid)
// and whether g has walked past the last block row entirely (done — the
// only real termination condition; an invalid-but-not-done candidate is
// a truncated-edge-tile position that must be skipped, not a stop).
func gridStep(b, w, h, g int) (x, y int, valid, done bool) {
	numXBlocks := (w + b - 1) / b
	numYBlocks := (h + b - 1) / b

	blockArea := b * b
	xInBlock := g % b
	yInBlock := (g / b) % b
	xBlock := (g / blockArea) % numXBlocks
	yBlock := g / (blockArea * numXBlocks)

	if yBlock >= numYBlocks {
		return 0, 0, false, true
	}

	x = xInBlock + b*xBlock
	y = yInBlock + b*yBlock
	return x, y, x < w && y < h, false
}

// Coord returns the n-th coordinate (0-indexed) of the block-order
// traversal of a b×b-tiled w×h raster — the same coordinate an Iterator
// would return on its (n+1)-th call to Next. ok is false if n is beyond
// the last coordinate, or immediately if w, h, or b is 0.
//
// This is the direct index-to-coordinate entry point called out in the
// design notes: a caller that wants the position of, say, the k-th
// bitmap byte doesn't need to keep an *Iterator object alive across
// calls — it can ask for Coord(b, w, h, k) directly. It scans from the
// start of the grid internally, so repeated calls with increasing n are
// O(n) each; code that walks the whole sequence should prefer Iterator.
func Coord(b, w, h, n int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 || b <= 0 || n < 0 {
		return 0, 0, false
	}
	count := 0
	for g := 0; ; g++ {
		cx, cy, valid, done := gridStep(b, w, h, g)
		if done {
			return 0, 0, false
		}
		if valid {
			if count == n {
				return cx, cy, true
			}
			count++
		}
	}
}

// Iterator produces the block-order coordinate sequence for a w×h raster.
// It is restartable only by constructing a new Iterator, never by
// rewinding an existing one.
type Iterator struct {
	b, w, h int
	g       int
}

// New creates an Iterator over a w×h raster using BlockSize tiles.
func New(w, h int) *Iterator {
	return &Iterator{b: BlockSize, w: w, h: h}
}

// NewWithBlockSize creates an Iterator with an explicit block size, mainly
// for exercising the general traversal in tests.
func NewWithBlockSize(b, w, h int) *Iterator {
	return &Iterator{b: b, w: w, h: h}
}

// Next returns the next coordinate in the traversal, or ok=false once the
// whole raster has been visited.
func (it *Iterator) Next() (x, y int, ok bool) {
	if it.w <= 0 || it.h <= 0 || it.b <= 0 {
		return 0, 0, false
	}
	for {
		x, y, valid, done := gridStep(it.b, it.w, it.h, it.g)
		it.g++
		if done {
			return 0, 0, false
		}
		if valid {
			return x, y, true
		}
	}
}
