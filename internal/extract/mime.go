package extract

import (
	"bytes"
	"path/filepath"

	"btp-catalogue/constants"
)

var (
	magicPDF  = []byte("%PDF-")
	magicJPEG = []byte{0xFF, 0xD8, 0xFF}
	magicPNG  = []byte{0x89, 0x50, 0x4E, 0x47}
	magicRIFF = []byte("RIFF")
	magicWEBP = []byte("WEBP")
)

// DetectMime resolves the MIME type of an upload: extension first, then
// magic bytes, defaulting to JPEG when neither is conclusive.
func DetectMime(filename string, data []byte) string {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if mime, ok := constants.MimeByExtension[ext]; ok {
		return mime
	}

	switch {
	case bytes.HasPrefix(data, magicPDF):
		return constants.MimePDF
	case bytes.HasPrefix(data, magicJPEG):
		return constants.MimeJPEG
	case bytes.HasPrefix(data, magicPNG):
		return constants.MimePNG
	case bytes.HasPrefix(data, magicRIFF) && len(data) >= 12 && bytes.Equal(data[8:12], magicWEBP):
		return constants.MimeWebP
	default:
		return constants.MimeJPEG
	}
}
