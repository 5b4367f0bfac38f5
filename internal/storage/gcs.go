package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/zap"

	"btp-catalogue/internal/common"
)

const uploadTimeout = 2 * time.Minute

type gcsStore struct {
	client    *gcs.Client
	bucket    string
	urlExpiry time.Duration
	signer    *gcs.SignedURLOptions
	log       *zap.SugaredLogger
}

// NewGCS builds a GCS-backed ObjectStore. An empty bucket name disables
// archival: the caller gets (nil, nil) and should skip uploads entirely.
func NewGCS(ctx context.Context, cfg common.StorageConfig, log *zap.SugaredLogger) (ObjectStore, error) {
	if cfg.Bucket == "" {
		log.Infow("archive storage disabled, no bucket configured")
		return nil, nil
	}

	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	var signer *gcs.SignedURLOptions
	if cfg.SignerEmail != "" && cfg.SignerKeyB64 != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.SignerKeyB64)
		if err != nil {
			return nil, fmt.Errorf("decode archive signer key: %w", err)
		}
		signer = &gcs.SignedURLOptions{
			GoogleAccessID: cfg.SignerEmail,
			PrivateKey:     key,
			Method:         http.MethodGet,
			Scheme:         gcs.SigningSchemeV4,
		}
	}

	expiry := cfg.URLExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	log.Infow("archive storage initialized", "bucket", cfg.Bucket, "signed_urls", signer != nil)
	return &gcsStore{
		client:    client,
		bucket:    cfg.Bucket,
		urlExpiry: expiry,
		signer:    signer,
		log:       log,
	}, nil
}

func (s *gcsStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write archive object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close archive writer: %w", err)
	}

	ref := "gs://" + s.bucket + "/" + key
	s.log.Infow("facture archived", "ref", ref, "bytes", len(data))
	return ref, nil
}

func (s *gcsStore) TemporaryURL(key string) (string, error) {
	if s.signer == nil {
		return "https://storage.googleapis.com/" + s.bucket + "/" + key, nil
	}
	opts := *s.signer
	opts.Expires = time.Now().Add(s.urlExpiry)
	return gcs.SignedURL(s.bucket, key, &opts)
}
