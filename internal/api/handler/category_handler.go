package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/ports"
)

const partIcon = "icon"

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service ports.CategoryService
	log     zerolog.Logger
}

func NewCategoryHandler(service ports.CategoryService, log zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, log: log}
}

// List handles GET /category.
//
// @Summary      List categories
// @Tags         category
// @Produce      json
// @Success      200  {object}  Envelope{data=[]categoryItem}
// @Failure      500  {object}  Envelope
// @Router       /category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	items, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return respondListError(c, h.log, resCategory, err)
	}
	return success(c, http.StatusOK, toCategoryItems(items))
}

// Get handles GET /category/:id.
//
// @Summary      Get a category
// @Tags         category
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  Envelope{data=categoryItem}
// @Failure      404  {object}  Envelope
// @Router       /category/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	item, err := h.service.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, "get", resCategory, err)
	}
	return success(c, http.StatusOK, toCategoryItem(item))
}

// Create handles POST /category.
//
// @Summary      Create a category
// @Tags         category
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Replays the first response for a repeated key"
// @Param        title            formData  string  true   "Title"
// @Param        icon             formData  file    true   "Icon (png, jpg, jpeg)"
// @Success      201              {object}  Envelope{data=categoryCreated}
// @Failure      400              {object}  Envelope
// @Failure      415              {object}  Envelope
// @Failure      422              {object}  Envelope
// @Failure      502              {object}  Envelope
// @Router       /category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	icon, closer, err := openImage(c, partIcon)
	if err != nil {
		return respondFileError(c, err)
	}
	defer closer.Close()

	created, err := h.service.CreateCategory(c.Request().Context(), ports.CategoryInput{
		Title: req.Title,
		Icon:  icon,
	})
	if err != nil {
		return respondError(c, h.log, "create", resCategory, err)
	}
	return success(c, http.StatusCreated, categoryCreated{Title: created.Title, Icon: created.Icon})
}

// Update handles PUT /category/:id.
//
// @Summary      Update a category
// @Tags         category
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "Category id"
// @Param        title  formData  string  true  "Title"
// @Param        icon   formData  file    true  "Icon (png, jpg, jpeg)"
// @Success      200    {object}  Envelope{data=categoryItem}
// @Failure      400    {object}  Envelope
// @Failure      404    {object}  Envelope
// @Failure      415    {object}  Envelope
// @Failure      422    {object}  Envelope
// @Failure      502    {object}  Envelope
// @Router       /category/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	icon, closer, err := openImage(c, partIcon)
	if err != nil {
		return respondFileError(c, err)
	}
	defer closer.Close()

	updated, err := h.service.UpdateCategory(c.Request().Context(), ports.CategoryInput{
		ID:    c.Param("id"),
		Title: req.Title,
		Icon:  icon,
	})
	if err != nil {
		return respondError(c, h.log, "update", resCategory, err)
	}
	return success(c, http.StatusOK, toCategoryItem(updated))
}

// Delete handles DELETE /category/:id.
//
// @Summary      Delete a category
// @Tags         category
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  Envelope{data=categoryItem}
// @Failure      404  {object}  Envelope
// @Router       /category/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeleteCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDeleteError(c, h.log, resCategory, err)
	}
	return success(c, http.StatusOK, toCategoryItem(deleted))
}
