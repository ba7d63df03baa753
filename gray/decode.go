package gray

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// Format represents supported image formats.
type Format string

const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG Format = "jpeg"
	// FormatPNG is the PNG image format.
	FormatPNG Format = "png"
	// FormatWebP is the WebP image format.
	FormatWebP Format = "webp"
)

// DetectFormat sniffs the format of encoded image bytes from their magic
// numbers.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - Format: The detected format.
//   - error: An error if the format is not recognized.
func DetectFormat(data []byte) (Format, error) {
	switch {
	case len(data) >= 2 && data[0] == 0xff && data[1] == 0xd8:
		return FormatJPEG, nil
	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG, nil
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP, nil
	default:
		return "", errors.New("unrecognized image format")
	}
}

// Decode decodes JPEG, PNG, or WebP bytes into a grayscale image.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - *image.Gray: The decoded grayscale image.
//   - error: An error if the data cannot be decoded.
func Decode(data []byte) (*image.Gray, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(data)
	switch format {
	case FormatJPEG:
		img, err := jpeg.Decode(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode JPEG")
		}
		return FromImage(img), nil
	case FormatPNG:
		img, err := png.Decode(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode PNG")
		}
		return FromImage(img), nil
	case FormatWebP:
		img, err := webp.Decode(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode WebP")
		}
		return FromImage(img), nil
	default:
		return nil, errors.Errorf("unsupported format: %s", format)
	}
}

// EncodePNG encodes a grayscale image as PNG bytes.
//
// Arguments:
//   - img: The image to encode.
//
// Returns:
//   - []byte: The PNG bytes.
//   - error: An error if encoding fails.
func EncodePNG(img *image.Gray) ([]byte, error) {
	if img == nil {
		return nil, errors.New("cannot encode nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}
