package imageprep

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btp-catalogue/constants"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	b, err := EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))
	require.NoError(t, err)
	return b
}

func TestCleanConvertsPNGToJPEG(t *testing.T) {
	out, mime := Clean(pngBytes(t, 40, 30), constants.MimePNG, nil)

	assert.Equal(t, constants.MimeJPEG, mime)
	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestCleanDownscalesOversizedImages(t *testing.T) {
	out, mime := Clean(pngBytes(t, 3000, 1500), constants.MimePNG, nil)

	assert.Equal(t, constants.MimeJPEG, mime)
	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2500, img.Bounds().Dx())
	assert.Equal(t, 1250, img.Bounds().Dy())
}

func TestCleanKeepsReasonableJPEGUntouched(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 100, 100)), nil))
	in := buf.Bytes()

	out, mime := Clean(in, constants.MimeJPEG, nil)
	assert.Equal(t, constants.MimeJPEG, mime)
	assert.Equal(t, in, out)
}

func TestCleanNeverFailsOnGarbage(t *testing.T) {
	in := []byte("definitely not an image")
	out, mime := Clean(in, constants.MimeWebP, nil)
	assert.Equal(t, in, out)
	assert.Equal(t, constants.MimeWebP, mime)
}
