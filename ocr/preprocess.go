package ocr

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	// Packaging shots arrive in whatever format the uploader produced;
	// register the decoders imaging does not bring in itself.
	_ "golang.org/x/image/webp"
)

// minRecognizableWidth is the width below which Tesseract accuracy degrades
// sharply on packaging photos; smaller images are upscaled to it.
const minRecognizableWidth = 600

// PrepareImage converts raw image data into a PNG tuned for text
// recognition: grayscale, a mild contrast boost, and upscaling of images too
// small for reliable recognition. PNG, JPEG, GIF, TIFF, BMP, and WebP inputs
// are accepted.
func PrepareImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, 15)

	if img.Bounds().Dx() < minRecognizableWidth {
		img = imaging.Resize(img, minRecognizableWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
