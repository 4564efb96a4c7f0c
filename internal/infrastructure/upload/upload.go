// Package upload implements the image host used for icons and thumbnails.
package upload

import (
	"context"
	"fmt"

	"github.com/zuperior/content-api/internal/core/ports"
)

const (
	ProviderImageKit = "imagekit"
	ProviderGCS      = "gcs"
)

// Settings selects and configures one provider.
type Settings struct {
	Provider string
	ImageKit ImageKitConfig
	GCS      GCSConfig
}

// New builds the uploader for s.Provider. The returned close func releases
// provider resources and is never nil.
func New(ctx context.Context, s Settings) (ports.ImageUploader, func() error, error) {
	noop := func() error { return nil }

	switch s.Provider {
	case ProviderImageKit, "":
		return NewImageKitUploader(s.ImageKit), noop, nil
	case ProviderGCS:
		u, err := NewGCSUploader(ctx, s.GCS)
		if err != nil {
			return nil, noop, err
		}
		return u, u.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown upload provider %q", s.Provider)
	}
}
