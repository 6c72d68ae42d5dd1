package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// MaxLogoBytes caps the uploaded logo at 2 MiB; larger uploads are
	// rejected at the boundary before any state mutation
	MaxLogoBytes = 2 * 1024 * 1024

	// maxLogoDim bounds the stored logo's largest dimension
	maxLogoDim = 600
)

// ProcessLogo validates, optimizes and encodes an uploaded logo image as a
// data URI ready to store alongside the catalog data.
func ProcessLogo(imageData []byte) (string, error) {
	if len(imageData) > MaxLogoBytes {
		return "", ErrAssetTooLarge
	}

	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Logo decoded: format=%s, bounds=%v", format, img.Bounds())

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resized image.Image = img
	if width > maxLogoDim || height > maxLogoDim {
		// Bound the largest dimension, keeping aspect ratio
		var newWidth, newHeight int
		if width > height {
			newWidth = maxLogoDim
			newHeight = int(float64(height) * float64(maxLogoDim) / float64(width))
		} else {
			newHeight = maxLogoDim
			newWidth = int(float64(width) * float64(maxLogoDim) / float64(height))
		}

		log.Printf("🔄 Resizing logo: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resized = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	// PNG keeps transparency, which logos usually need
	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return "", fmt.Errorf("failed to encode logo: %w", err)
	}

	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	log.Printf("✓ Logo processed: %d bytes in, %d bytes stored", len(imageData), len(dataURI))
	return dataURI, nil
}
