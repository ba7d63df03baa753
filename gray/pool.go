package gray

import (
	"image"
	"sync"
)

// Pool lets callers reuse grayscale frame buffers to reduce GC pressure at
// 30-60 FPS video rates. A nil *Pool is valid and simply allocates.
type Pool struct {
	gray sync.Pool // *image.Gray
}

// Get returns a grayscale image with the given bounds, reusing a pooled
// buffer when one of matching bounds is available.
func (p *Pool) Get(bounds image.Rectangle) *image.Gray {
	if p == nil {
		return image.NewGray(bounds)
	}
	if v := p.gray.Get(); v != nil {
		img := v.(*image.Gray)
		if img.Rect == bounds {
			return img
		}
	}
	return image.NewGray(bounds)
}

// Put returns an image to the pool for reuse. Contents are not cleared; the
// next writer fully overwrites.
func (p *Pool) Put(img *image.Gray) {
	if p == nil || img == nil {
		return
	}
	p.gray.Put(img)
}
