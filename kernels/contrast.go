package kernels

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// StretchContrast remaps src linearly onto the full 0-255 range: samples at
// or above upper become 255, samples at or below lower become 0, and
// everything between is scaled as floor(255*(s-lower)/(upper-lower)), with
// the ratio computed in float32 and truncated toward zero so fixed-point
// storage round-trips match reference outputs exactly.
//
// upper must be strictly greater than lower; degenerate bounds would make
// the stretch factor undefined, so they are rejected before any pixel is
// touched rather than emitting undefined data.
func StretchContrast(src, dst *image.Gray, lower, upper uint8, opt Options) error {
	if err := checkPair(src, dst); err != nil {
		return err
	}
	if upper <= lower {
		return errors.Errorf("degenerate stretch bounds: upper (%d) must exceed lower (%d)", upper, lower)
	}

	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	span := float32(upper - lower)

	rowRange(h, opt.Parallel, func(y int) {
		s := src.Pix[y*src.Stride : y*src.Stride+w]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range s {
			switch {
			case v >= upper:
				d[x] = 255
			case v <= lower:
				d[x] = 0
			default:
				d[x] = uint8(math32.Floor(255 * float32(v-lower) / span))
			}
		}
	})

	return nil
}
