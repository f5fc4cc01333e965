package delta

import (
	"sync"

	"github.com/drojf/SpriteZip/internal/raster"
)

// imagePoolKey identifies a pool of same-sized raster.Image buffers.
type imagePoolKey struct {
	w, h uint32
}

// imagePools holds one *sync.Pool per distinct image size encountered so
// far. Grounded on the teacher's internal/tile/rgbapool.go, which pools
// *image.RGBA buffers the same way keyed by (width, height) to avoid
// reallocating a full raster on every tile. Spritezip's codec loop is
// single-threaded (spec §5), but the previous-image buffer is replaced
// every iteration, so pooling still saves an allocation per image of a
// size already seen.
var imagePools sync.Map // map[imagePoolKey]*sync.Pool

func poolFor(w, h uint32) *sync.Pool {
	key := imagePoolKey{w, h}
	if p, ok := imagePools.Load(key); ok {
		return p.(*sync.Pool)
	}
	newPool := &sync.Pool{
		New: func() interface{} {
			return raster.New(w, h)
		},
	}
	actual, _ := imagePools.LoadOrStore(key, newPool)
	return actual.(*sync.Pool)
}

// getImage returns a zeroed raster.Image of the given size, reused from
// the pool when possible.
func getImage(w, h uint32) *raster.Image {
	img := poolFor(w, h).Get().(*raster.Image)
	for i := range img.Pix {
		img.Pix[i] = 0
	}
	return img
}

// putImage returns img to its size-keyed pool for reuse.
func putImage(img *raster.Image) {
	if img == nil {
		return
	}
	poolFor(img.Width, img.Height).Put(img)
}
