// Package gray provides host-side plumbing for single-channel intensity
// images: allocation, grayscale conversion, byte-level decode/encode,
// resizing, scratch-buffer pooling, and an OpenCV bridge. The kernels
// package operates purely on images produced here and never allocates or
// frees them itself.
package gray

import (
	"bytes"
	"image"
	"image/draw"
)

// New allocates a zeroed grayscale image of the given dimensions.
//
// Arguments:
//   - w: The width in pixels.
//   - h: The height in pixels.
//
// Returns:
//   - *image.Gray: The allocated image.
func New(w, h int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, w, h))
}

// NewFilled allocates a grayscale image with every sample set to v.
//
// Arguments:
//   - w: The width in pixels.
//   - h: The height in pixels.
//   - v: The intensity to fill with.
//
// Returns:
//   - *image.Gray: The filled image.
func NewFilled(w, h int, v uint8) *image.Gray {
	img := New(w, h)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// FromImage converts any image to grayscale using the standard luminance
// weights. A *image.Gray input is copied rather than converted.
//
// Arguments:
//   - src: The image to convert.
//
// Returns:
//   - *image.Gray: A newly allocated grayscale copy.
func FromImage(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return Clone(g)
	}
	b := src.Bounds()
	dst := image.NewGray(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// Clone returns a deep copy of src sharing no storage with it.
func Clone(src *image.Gray) *image.Gray {
	dst := image.NewGray(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// Equal reports whether two grayscale images have the same dimensions and
// identical samples at every coordinate. Bounds offsets and row padding are
// ignored; only the visible pixels are compared.
func Equal(a, b *image.Gray) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Bounds().Size() != b.Bounds().Size() {
		return false
	}
	w := a.Bounds().Dx()
	h := a.Bounds().Dy()
	for y := 0; y < h; y++ {
		ra := a.Pix[y*a.Stride : y*a.Stride+w]
		rb := b.Pix[y*b.Stride : y*b.Stride+w]
		if !bytes.Equal(ra, rb) {
			return false
		}
	}
	return true
}
