package imageprep

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"btp-catalogue/constants"
)

// maxDimension caps the longest image side before the AI call. Larger photos
// burn tokens without improving extraction.
const maxDimension = 2500

const jpegQuality = 85

// Clean decodes an invoice photo, downscales it if oversized and re-encodes
// it as JPEG. It never fails: anything that cannot be processed is returned
// unchanged with its original mime type.
func Clean(data []byte, mime string, log *zap.SugaredLogger) ([]byte, string) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if log != nil {
			log.Warnw("imageprep.decode_failed", "mime", mime, "error", err)
		}
		return data, mime
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxDimension || h > maxDimension {
		scale := float64(maxDimension) / float64(max(w, h))
		nw, nh := int(float64(w)*scale), int(float64(h)*scale)
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
		if log != nil {
			log.Infow("imageprep.resized", "from", [2]int{w, h}, "to", [2]int{nw, nh})
		}
	} else if format == "jpeg" {
		// already a reasonably sized JPEG, nothing to gain
		return data, mime
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		if log != nil {
			log.Warnw("imageprep.encode_failed", "error", err)
		}
		return data, mime
	}
	return buf.Bytes(), constants.MimeJPEG
}

// EncodePNG is a helper for tests and tooling.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	return buf.Bytes(), err
}
