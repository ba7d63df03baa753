// Command webcam runs the adaptive threshold kernel live over camera
// frames and displays the binarized stream, reporting FPS and per-kernel
// latency once per second.
package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/luma-vision/go-gray/gray"
	"github.com/luma-vision/go-gray/kernels"
	"github.com/luma-vision/go-gray/profiler"
)

func main() {
	deviceID := flag.Int("device", 0, "video capture device ID")
	radius := flag.Int("radius", 7, "adaptive window half-width")
	flag.Parse()

	log := logrus.New()

	webcam, err := gocv.OpenVideoCapture(*deviceID)
	if err != nil {
		log.WithError(err).Fatalf("failed to open capture device %d", *deviceID)
	}
	defer webcam.Close()

	window := gocv.NewWindow("Adaptive Threshold")
	defer window.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	timer := profiler.NewTimer()
	pool := &gray.Pool{}
	opt := kernels.Options{Parallel: true}

	frameCount := 0
	lastTime := time.Now()

	log.Infof("start reading camera device: %d", *deviceID)
	for {
		if ok := webcam.Read(&frame); !ok {
			log.Errorf("cannot read device %d", *deviceID)
			break
		}
		if frame.Empty() {
			continue
		}

		src, err := gray.FromMat(frame)
		if err != nil {
			log.WithError(err).Error("failed to convert frame")
			continue
		}

		dst := pool.Get(src.Bounds())
		stop := timer.StartOperation("adaptive_threshold")
		if err := kernels.AdaptiveThreshold(src, dst, *radius, opt); err != nil {
			stop()
			pool.Put(dst)
			log.WithError(err).Error("kernel failed")
			continue
		}
		stop()

		display, err := gray.ToMat(dst)
		pool.Put(dst)
		if err != nil {
			log.WithError(err).Error("failed to convert result")
			continue
		}
		window.IMShow(display)
		display.Close()

		frameCount++
		if elapsed := time.Since(lastTime).Seconds(); elapsed >= 1.0 {
			stats, _ := timer.Stats("adaptive_threshold")
			log.WithFields(logrus.Fields{
				"fps":        float64(frameCount) / elapsed,
				"kernel_avg": stats.Avg,
				"kernel_max": stats.Max,
			}).Info("frame stats")
			frameCount = 0
			lastTime = time.Now()
		}

		// ESC quits.
		if window.WaitKey(1) == 27 {
			break
		}
	}

	log.Info("timing summary:\n" + timer.Report())
}
