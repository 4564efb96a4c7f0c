package upload

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSConfig selects the bucket images are written to.
type GCSConfig struct {
	Bucket string
	// PublicBaseURL prefixes object names in returned URLs, e.g. a CDN domain.
	// Defaults to https://storage.googleapis.com/<bucket>.
	PublicBaseURL   string
	CredentialsFile string
}

// GCSUploader stores images as objects in a Google Cloud Storage bucket.
type GCSUploader struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

// NewGCSUploader creates the storage client. Without a credentials file the
// client falls back to application default credentials.
func NewGCSUploader(ctx context.Context, cfg GCSConfig) (*GCSUploader, error) {
	opts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return newGCSUploader(client, cfg), nil
}

func newGCSUploader(client *storage.Client, cfg GCSConfig) *GCSUploader {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		base = "https://storage.googleapis.com/" + cfg.Bucket
	}
	return &GCSUploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: base,
	}
}

func (u *GCSUploader) Upload(ctx context.Context, fileName, contentType string, content io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := u.client.Bucket(u.bucket).Object(fileName).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", fileName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close object %s: %w", fileName, err)
	}
	return u.publicURL(fileName), nil
}

// Close releases the storage client.
func (u *GCSUploader) Close() error {
	return u.client.Close()
}

func (u *GCSUploader) publicURL(name string) string {
	return u.baseURL + "/" + name
}
