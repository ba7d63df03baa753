// Command binarize applies one of the grayscale kernels to an image file
// and writes the result as PNG.
//
// Usage:
//
//	binarize -in page.jpg -out page.png -filter adaptive -radius 7
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/luma-vision/go-gray/gray"
	"github.com/luma-vision/go-gray/kernels"
)

const (
	// DefaultThreshold is the binary threshold used when none is given.
	DefaultThreshold = 127
	// DefaultRadius is the adaptive window half-width used when none is given.
	DefaultRadius = 7
)

func main() {
	in := flag.String("in", "", "input image path (jpeg, png, or webp)")
	out := flag.String("out", "out.png", "output PNG path")
	filter := flag.String("filter", "threshold", "filter to apply: threshold, threshold-inplace, adaptive, stretch")
	th := flag.Uint("threshold", DefaultThreshold, "binary threshold intensity")
	radius := flag.Int("radius", DefaultRadius, "adaptive window half-width")
	lower := flag.Uint("lower", 0, "contrast stretch lower bound")
	upper := flag.Uint("upper", 255, "contrast stretch upper bound")
	sequential := flag.Bool("sequential", false, "disable row parallelism")
	flag.Parse()

	log := logrus.New()
	if *in == "" {
		flag.Usage()
		log.Fatal("missing required -in flag")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.WithError(err).Fatal("failed to read input")
	}

	src, err := gray.Decode(data)
	if err != nil {
		log.WithError(err).Fatal("failed to decode input")
	}

	opt := kernels.Options{Parallel: !*sequential}
	dst := gray.New(src.Bounds().Dx(), src.Bounds().Dy())

	switch *filter {
	case "threshold":
		err = kernels.Threshold(src, dst, uint8(*th), opt)
	case "threshold-inplace":
		kernels.ThresholdInPlace(src, uint8(*th), opt)
		dst = src
	case "adaptive":
		err = kernels.AdaptiveThreshold(src, dst, *radius, opt)
	case "stretch":
		err = kernels.StretchContrast(src, dst, uint8(*lower), uint8(*upper), opt)
	default:
		log.Fatalf("unknown filter %q", *filter)
	}
	if err != nil {
		log.WithError(err).Fatal("kernel failed")
	}

	encoded, err := gray.EncodePNG(dst)
	if err != nil {
		log.WithError(err).Fatal("failed to encode output")
	}
	if err := os.WriteFile(*out, encoded, 0o644); err != nil {
		log.WithError(err).Fatal("failed to write output")
	}

	log.WithFields(logrus.Fields{
		"filter": *filter,
		"width":  dst.Bounds().Dx(),
		"height": dst.Bounds().Dy(),
		"out":    *out,
	}).Info("wrote filtered image")
}
