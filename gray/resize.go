package gray

import (
	"image"

	"github.com/nfnt/resize"
)

// Fit resizes a grayscale image to the given dimensions using bilinear
// interpolation.
//
// Arguments:
//   - src: The image to resize.
//   - w: The target width in pixels.
//   - h: The target height in pixels.
//
// Returns:
//   - *image.Gray: The resized image.
func Fit(src *image.Gray, w, h int) *image.Gray {
	if src == nil {
		return nil
	}
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		return Clone(src)
	}
	return FromImage(resize.Resize(uint(w), uint(h), src, resize.Bilinear))
}
