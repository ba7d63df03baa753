package kernels

import (
	"image"
)

// Threshold writes a binary bitmap of src into dst: 255 where the sample
// strictly exceeds th, 0 otherwise. src and dst must have identical
// dimensions and distinct storage; src is never written. Every destination
// cell is written exactly once per invocation.
func Threshold(src, dst *image.Gray, th uint8, opt Options) error {
	if err := checkPair(src, dst); err != nil {
		return err
	}

	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	rowRange(h, opt.Parallel, func(y int) {
		s := src.Pix[y*src.Stride : y*src.Stride+w]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range s {
			if v > th {
				d[x] = 255
			} else {
				d[x] = 0
			}
		}
	})

	return nil
}

// ThresholdInPlace applies the same decision rule as Threshold but reads and
// writes the single buffer img. Each worker touches only its own cell, so
// the result is independent of worker interleaving. The algorithm is
// strictly single-cell: no neighbor is ever read, which is what makes the
// aliasing safe.
func ThresholdInPlace(img *image.Gray, th uint8, opt Options) {
	if img == nil {
		return
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	rowRange(h, opt.Parallel, func(y int) {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x, v := range row {
			if v > th {
				row[x] = 255
			} else {
				row[x] = 0
			}
		}
	})
}
