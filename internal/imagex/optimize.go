package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

const (
	// MaxUploadDimension caps the longer side of uploaded photos.
	MaxUploadDimension = 1200
	uploadQuality      = 85
)

// PrepareUpload downscales an image payload so the longer side does not
// exceed MaxUploadDimension, re-encoding as JPEG. Payloads that are not a
// recognizable image, or already fit, are returned unchanged; the backend
// stores whatever it receives.
func PrepareUpload(data []byte) ([]byte, error) {
	if Detect(data) == FormatUnknown {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, nil
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= MaxUploadDimension && height <= MaxUploadDimension {
		return data, nil
	}

	var resized image.Image
	if width > height {
		resized = imaging.Resize(img, MaxUploadDimension, 0, imaging.Lanczos)
	} else {
		resized = imaging.Resize(img, 0, MaxUploadDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: uploadQuality}); err != nil {
		return nil, fmt.Errorf("encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}
