package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArchiveKeyLayout(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	key := ArchiveKey("facture mars.pdf", []byte("pdf-bytes"), at)

	assert.True(t, strings.HasPrefix(key, "2024/03/"))
	assert.True(t, strings.HasSuffix(key, "_facture mars.pdf"))

	parts := strings.Split(key, "/")
	assert.Len(t, parts, 3)
	hash := strings.SplitN(parts[2], "_", 2)[0]
	assert.Len(t, hash, 8)
}

func TestArchiveKeyIsContentAddressed(t *testing.T) {
	at := time.Now()
	a := ArchiveKey("same.pdf", []byte("one"), at)
	b := ArchiveKey("same.pdf", []byte("two"), at)
	assert.NotEqual(t, a, b)

	c := ArchiveKey("same.pdf", []byte("one"), at)
	assert.Equal(t, a, c)
}

func TestArchiveKeyStripsPath(t *testing.T) {
	key := ArchiveKey("../../etc/passwd", []byte("x"), time.Now())
	assert.NotContains(t, key, "..")
	assert.True(t, strings.HasSuffix(key, "_passwd"))
}
