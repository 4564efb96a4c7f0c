package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zuperior/content-api/internal/core/domain"
	"github.com/zuperior/content-api/internal/core/ports"
)

// fileError is a rejected file part carrying its response code.
type fileError struct {
	code int
	msg  string
}

func (e *fileError) Error() string { return e.msg }

// openImage reads the image file part named part. The caller must close the
// returned io.Closer once the upload is done.
func openImage(c echo.Context, part string) (ports.ImageInput, io.Closer, error) {
	fh, err := c.FormFile(part)
	if err != nil {
		return ports.ImageInput{}, nil, &fileError{
			code: http.StatusUnprocessableEntity,
			msg:  fmt.Sprintf("file %s not send", part),
		}
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	subtype, ok := domain.ImageSubtype(contentType)
	if !ok {
		return ports.ImageInput{}, nil, &fileError{
			code: http.StatusUnsupportedMediaType,
			msg:  fmt.Sprintf("file %s type is not valid", part),
		}
	}

	f, err := fh.Open()
	if err != nil {
		return ports.ImageInput{}, nil, fmt.Errorf("open %s: %w", part, err)
	}

	return ports.ImageInput{
		Subtype:     subtype,
		ContentType: contentType,
		Size:        fh.Size,
		Content:     f,
	}, f, nil
}

func respondFileError(c echo.Context, err error) error {
	var fe *fileError
	if errors.As(err, &fe) {
		return c.JSON(fe.code, Respond(statusInvalidData, nil, fe.msg))
	}
	return invalidPayload(c)
}
