package constants

import "strings"

// MaxUploadBytes is the hard cap on uploaded invoice files.
const MaxUploadBytes = 50 * 1024 * 1024

// MimeByExtension maps the allowed upload extensions to their MIME types.
var MimeByExtension = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

const (
	MimePDF  = "application/pdf"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeWebP = "image/webp"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageMime reports whether the MIME type goes through the image
// preprocessor before AI extraction.
func IsImageMime(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}
