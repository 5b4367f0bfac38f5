package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"time"
)

// ObjectStore archives invoice originals. Archival is best-effort
// infrastructure: the pipeline treats a failed or absent upload as a missing
// reference, never as a processing failure.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	TemporaryURL(key string) (string, error)
}

// ArchiveKey builds the object key: YYYY/MM prefix, first 8 hex chars of the
// content hash, then the sanitized original filename.
func ArchiveKey(filename string, data []byte, at time.Time) string {
	sum := sha256.Sum256(data)
	base := filepath.Base(filename)
	if base == "." || base == "/" || base == "" {
		base = "facture"
	}
	return fmt.Sprintf("%04d/%02d/%s_%s",
		at.Year(), int(at.Month()), hex.EncodeToString(sum[:])[:8], base)
}
