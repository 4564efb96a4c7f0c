package ports

import (
	"context"
	"io"
)

// ImageInput is an image file part received from the client. Subtype is the
// already-validated part of the declared MIME type (png, jpg, jpeg).
type ImageInput struct {
	Subtype     string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ImageUploader stores an image on the remote asset host and returns its
// public URL.
type ImageUploader interface {
	Upload(ctx context.Context, fileName, contentType string, content io.Reader) (string, error)
}
