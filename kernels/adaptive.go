package kernels

import (
	"image"

	"github.com/pkg/errors"
)

// AdaptiveThreshold binarizes src against a per-pixel local mean. For each
// pixel it averages the intensity over the axis-aligned square window of
// half-width radius centered on the pixel, clipped to the image bounds, and
// writes 255 if the pixel is greater than or equal to that mean, 0
// otherwise. Ties count as foreground, so a constant image comes out all
// white, and radius 0 degenerates to a window of one cell (mean equals the
// pixel, output all 255) — a documented edge case, not a fault.
//
// Windows shrink asymmetrically at the borders: the divisor is the clipped
// cell count, never the full (2*radius+1)^2, and no wrapping or zero-padding
// occurs. The mean is accumulated in float32 to match the 32-bit float
// arithmetic of GPU reference implementations.
//
// Cost is O(radius^2) per pixel, the dominant cost of this package.
func AdaptiveThreshold(src, dst *image.Gray, radius int, opt Options) error {
	if err := checkPair(src, dst); err != nil {
		return err
	}
	if radius < 0 {
		return errors.Errorf("radius must be non-negative, got %d", radius)
	}

	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	rowRange(h, opt.Parallel, func(y int) {
		yLow := max(0, y-radius)
		yHigh := min(h-1, y+radius)
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w]

		for x := 0; x < w; x++ {
			xLow := max(0, x-radius)
			xHigh := min(w-1, x+radius)

			// TODO: an integral image would make this window sum O(1)
			// per pixel for large radii; direct accumulation keeps the
			// float32 rounding identical to the reference kernels.
			var sum float32
			for wy := yLow; wy <= yHigh; wy++ {
				row := src.Pix[wy*src.Stride : wy*src.Stride+w]
				for wx := xLow; wx <= xHigh; wx++ {
					sum += float32(row[wx])
				}
			}

			cells := float32((yHigh - yLow + 1) * (xHigh - xLow + 1))
			mean := sum / cells

			if float32(src.Pix[y*src.Stride+x]) >= mean {
				d[x] = 255
			} else {
				d[x] = 0
			}
		}
	})

	return nil
}
