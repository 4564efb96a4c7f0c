package service

import (
	"context"
	"fmt"
	"time"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
	"github.com/zuperior/content-api/internal/pkg/metrics"
	"github.com/zuperior/content-api/internal/pkg/slug"
)

// fallbackSlug names the uploaded file when a title has no usable characters.
const fallbackSlug = "image"

// imageFileName builds the remote file name "{slug}.{subtype}".
func imageFileName(title, subtype string) string {
	name := slug.Make(title)
	if name == "" {
		name = fallbackSlug
	}
	return name + "." + subtype
}

// uploadImage sends img to the asset host and returns its public URL.
// Failures wrap domain.ErrUploadFailed.
func uploadImage(ctx context.Context, uploader ports.ImageUploader, resource, title string, img ports.ImageInput) (string, error) {
	fileName := imageFileName(title, img.Subtype)

	start := time.Now()
	url, err := uploader.Upload(ctx, fileName, img.ContentType, img.Content)
	metrics.ImageUploadDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ImageUploadsTotal.WithLabelValues(resource, "error").Inc()
		return "", fmt.Errorf("upload %s: %w: %w", fileName, domain.ErrUploadFailed, err)
	}

	metrics.ImageUploadsTotal.WithLabelValues(resource, "success").Inc()
	return url, nil
}
