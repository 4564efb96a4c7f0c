package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/domain"
)

// Envelope is the body of every API response.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
	Errors any    `json:"errors"`
}

// Respond builds an Envelope. Nil data or errors serialize as null.
func Respond(status string, data, errs any) Envelope {
	return Envelope{Status: status, Data: data, Errors: errs}
}

const (
	statusSuccess     = "success"
	statusInvalidData = "data send not valid"
	msgInvalidPayload = "invalid payload"
	msgInternal       = "internal server error"
)

// Resource names used in status lines and messages.
const (
	resCategory = "category"
	resArticle  = "article"
	resAsset    = "asset"
	resQuiz     = "quiz"
)

func success(c echo.Context, code int, data any) error {
	return c.JSON(code, Respond(statusSuccess, data, nil))
}

func invalidPayload(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, Respond(statusInvalidData, nil, msgInvalidPayload))
}

// invalidData renders a validation failure. Field errors keep their order.
func invalidData(c echo.Context, err error) error {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, Respond(statusInvalidData, nil, []FieldError(ve)))
	}
	return c.JSON(http.StatusBadRequest, Respond(statusInvalidData, nil, err.Error()))
}

// bindAndValidate decodes the request into req and runs the registered validator.
// It returns false once a 400 response has been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, invalidPayload(c)
	}
	if err := c.Validate(req); err != nil {
		return false, invalidData(c, err)
	}
	return true, nil
}

// respondError maps a service error for op ("get", "create", "update") on
// resource to its response. Unknown errors are logged and hidden.
func respondError(c echo.Context, log zerolog.Logger, op, resource string, err error) error {
	failed := "failed " + op + " " + resource

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusNotFound, Respond(failed, nil, resource+" not found"))
	case errors.Is(err, domain.ErrCategoryNotFound):
		return c.JSON(http.StatusBadRequest, Respond(failed, nil, "invalid category id"))
	case errors.Is(err, domain.ErrInvalidBody):
		return c.JSON(http.StatusBadRequest, Respond(statusInvalidData, nil, domain.ErrInvalidBody.Error()))
	case errors.Is(err, domain.ErrUploadFailed):
		return c.JSON(http.StatusBadGateway, Respond("failed upload image", nil, domain.ErrUploadFailed.Error()))
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg(failed)
	return c.JSON(http.StatusInternalServerError, Respond(failed, nil, msgInternal))
}

// respondListError handles list failures. A malformed category filter is
// reported as a missing category.
func respondListError(c echo.Context, log zerolog.Logger, resource string, err error) error {
	if errors.Is(err, domain.ErrInvalidID) || errors.Is(err, domain.ErrCategoryNotFound) {
		return c.JSON(http.StatusNotFound, Respond("failed get "+resource, nil, "the category was not found"))
	}
	return respondError(c, log, "get", resource, err)
}

// respondDeleteError reports any delete failure as 404.
func respondDeleteError(c echo.Context, log zerolog.Logger, resource string, err error) error {
	if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidID) {
		log.Error().Err(err).Str("path", c.Path()).Msg("failed delete " + resource)
	}
	return c.JSON(http.StatusNotFound, Respond("failed delete "+resource, nil, resource+" not found"))
}
