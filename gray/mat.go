package gray

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// FromMat converts an OpenCV Mat into a grayscale image, converting from
// BGR first when the Mat carries multiple channels.
//
// Arguments:
//   - mat: The Mat to convert.
//
// Returns:
//   - *image.Gray: The converted image.
//   - error: An error if the Mat is empty or cannot be converted.
func FromMat(mat gocv.Mat) (*image.Gray, error) {
	if mat.Empty() {
		return nil, errors.New("cannot convert empty Mat")
	}

	if mat.Channels() == 1 {
		img, err := mat.ToImage()
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert Mat to image")
		}
		return FromImage(img), nil
	}

	tmp := gocv.NewMat()
	defer tmp.Close()
	gocv.CvtColor(mat, &tmp, gocv.ColorBGRToGray)

	img, err := tmp.ToImage()
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert Mat to image")
	}
	return FromImage(img), nil
}

// ToMat converts a grayscale image into a single-channel OpenCV Mat. The
// caller owns the returned Mat and must Close it.
//
// Arguments:
//   - img: The image to convert.
//
// Returns:
//   - gocv.Mat: The converted Mat.
//   - error: An error if the image is nil or conversion fails.
func ToMat(img *image.Gray) (gocv.Mat, error) {
	if img == nil {
		return gocv.NewMat(), errors.New("cannot convert nil image")
	}
	mat, err := gocv.ImageGrayToMatGray(img)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "failed to convert image to Mat")
	}
	return mat, nil
}
