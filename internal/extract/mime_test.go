package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"btp-catalogue/constants"
)

func TestDetectMime(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		data     []byte
		want     string
	}{
		{"pdf extension", "facture.PDF", nil, constants.MimePDF},
		{"jpeg extension", "photo.jpg", nil, constants.MimeJPEG},
		{"webp extension", "scan.webp", nil, constants.MimeWebP},
		{"pdf magic", "noext", []byte("%PDF-1.7 rest"), constants.MimePDF},
		{"jpeg magic", "blob", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, constants.MimeJPEG},
		{"png magic", "blob", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A}, constants.MimePNG},
		{"webp magic", "blob", append([]byte("RIFF\x00\x00\x00\x00"), []byte("WEBPVP8 ")...), constants.MimeWebP},
		{"undeterminable defaults to jpeg", "mystery.bin", []byte("??"), constants.MimeJPEG},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectMime(tc.filename, tc.data))
		})
	}
}
