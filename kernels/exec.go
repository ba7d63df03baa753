// Package kernels provides data-parallel per-pixel operations over
// single-channel grayscale images: fixed binary thresholding (out-of-place
// and in-place), locally-adaptive thresholding against a windowed mean, and
// linear contrast stretching.
//
// Every kernel is a pure function of its input image: each output cell is
// owned by exactly one worker, workers never read a value written during the
// same invocation, and the input is shared read-only. That partitioning is
// the entire correctness argument for the parallel path, so kernels never
// share mutable accumulators across workers.
//
// Kernels never allocate image storage. Callers supply both buffers (see the
// gray package for allocation, conversion, and pooling helpers) and the
// kernel performs a full write of the destination.
package kernels

import (
	"image"
	"sync"

	"github.com/pkg/errors"
)

// Options configures a kernel invocation. Keeping this extensible reduces
// churn later.
type Options struct {
	Parallel bool // Enable row parallelism (good for 1080p+).
}

// rowRange runs task(y) for every row in [0, h). With parallel set, rows are
// split into contiguous chunks processed by independent goroutines; each
// chunk owns its rows exclusively, so no synchronization beyond the final
// barrier is needed. Small images run sequentially to avoid spawn overhead.
func rowRange(h int, parallel bool, task func(y int)) {
	if !parallel || h < 4 {
		for y := 0; y < h; y++ {
			task(y)
		}
		return
	}

	chunk := chooseChunk(h)
	var wg sync.WaitGroup
	for start := 0; start < h; start += chunk {
		end := start + chunk
		if end > h {
			end = h
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for y := s; y < e; y++ {
				task(y)
			}
		}(start, end)
	}
	wg.Wait()
}

// chooseChunk picks a work chunk size that balances goroutine overhead and
// cache locality. Tunable per CPU; a simple heuristic is enough here.
func chooseChunk(n int) int {
	switch {
	case n >= 2048:
		return 128
	case n >= 512:
		return 64
	default:
		return 32
	}
}

// checkPair validates the src/dst contract shared by the out-of-place
// kernels: matching dimensions and distinct backing storage. Aliasing is
// rejected rather than left undefined; ThresholdInPlace is the supported
// single-buffer path.
func checkPair(src, dst *image.Gray) error {
	if src == nil || dst == nil {
		return errors.New("src and dst must be non-nil")
	}
	if src.Bounds().Size() != dst.Bounds().Size() {
		return errors.Errorf("dimension mismatch: src %v, dst %v",
			src.Bounds().Size(), dst.Bounds().Size())
	}
	if len(src.Pix) > 0 && len(dst.Pix) > 0 && &src.Pix[0] == &dst.Pix[0] {
		return errors.New("src and dst share storage; use ThresholdInPlace for aliased buffers")
	}
	return nil
}
