package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 0xC8, G: 0x10, B: 0x2E, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(uri, prefix))
	raw, err := base64.StdEncoding.DecodeString(uri[len(prefix):])
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestProcessLogoSmallImageKeptAsIs(t *testing.T) {
	uri, err := ProcessLogo(encodePNG(t, 300, 120))
	require.NoError(t, err)

	img := decodeDataURI(t, uri)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestProcessLogoResizesKeepingAspectRatio(t *testing.T) {
	uri, err := ProcessLogo(encodePNG(t, 1200, 300))
	require.NoError(t, err)

	img := decodeDataURI(t, uri)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestProcessLogoRejectsOversizedUpload(t *testing.T) {
	_, err := ProcessLogo(make([]byte, MaxLogoBytes+1))
	assert.ErrorIs(t, err, ErrAssetTooLarge)
}

func TestProcessLogoRejectsGarbage(t *testing.T) {
	_, err := ProcessLogo([]byte("not an image"))
	assert.Error(t, err)
}
