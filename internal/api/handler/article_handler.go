package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/ports"
)

const partThumbnail = "thumbnail"

// ArticleHandler handles HTTP requests for articles.
type ArticleHandler struct {
	service ports.ArticleService
	log     zerolog.Logger
}

func NewArticleHandler(service ports.ArticleService, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{service: service, log: log}
}

// List handles GET /article.
//
// @Summary      List articles
// @Tags         article
// @Produce      json
// @Param        categoryId  query     string  false  "Only articles of this category"
// @Success      200         {object}  Envelope{data=[]articleSummary}
// @Failure      404         {object}  Envelope
// @Router       /article [get]
func (h *ArticleHandler) List(c echo.Context) error {
	items, err := h.service.ListArticles(c.Request().Context(), c.QueryParam("categoryId"))
	if err != nil {
		return respondListError(c, h.log, resArticle, err)
	}
	return success(c, http.StatusOK, toArticleSummaries(items))
}

// Get handles GET /article/:id.
//
// @Summary      Get an article
// @Tags         article
// @Produce      json
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  Envelope{data=articleDetail}
// @Failure      404  {object}  Envelope
// @Router       /article/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	a, err := h.service.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, "get", resArticle, err)
	}
	return success(c, http.StatusOK, articleDetail{ID: a.ID, Title: a.Title, Thumbnail: a.Thumbnail, Body: a.Body})
}

// Create handles POST /article.
//
// @Summary      Create an article
// @Tags         article
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Replays the first response for a repeated key"
// @Param        title            formData  string  true   "Title"
// @Param        body             formData  string  true   "Editor document as JSON text"
// @Param        category_id      formData  string  true   "Category id"
// @Param        thumbnail        formData  file    true   "Thumbnail (png, jpg, jpeg)"
// @Success      201              {object}  Envelope{data=articleWritten}
// @Failure      400              {object}  Envelope
// @Failure      415              {object}  Envelope
// @Failure      422              {object}  Envelope
// @Failure      502              {object}  Envelope
// @Router       /article [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	input, closer, ok, err := h.input(c)
	if !ok {
		return err
	}
	defer closer.Close()

	created, err := h.service.CreateArticle(c.Request().Context(), input)
	if err != nil {
		return respondError(c, h.log, "create", resArticle, err)
	}
	return success(c, http.StatusCreated, articleWritten{Title: created.Title, Thumbnail: created.Thumbnail})
}

// Update handles PUT /article/:id.
//
// @Summary      Update an article
// @Tags         article
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true  "Article id"
// @Param        title        formData  string  true  "Title"
// @Param        body         formData  string  true  "Editor document as JSON text"
// @Param        category_id  formData  string  true  "Category id"
// @Param        thumbnail    formData  file    true  "Thumbnail (png, jpg, jpeg)"
// @Success      200          {object}  Envelope{data=articleWritten}
// @Failure      400          {object}  Envelope
// @Failure      404          {object}  Envelope
// @Failure      502          {object}  Envelope
// @Router       /article/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	input, closer, ok, err := h.input(c)
	if !ok {
		return err
	}
	defer closer.Close()
	input.ID = c.Param("id")

	updated, err := h.service.UpdateArticle(c.Request().Context(), input)
	if err != nil {
		return respondError(c, h.log, "update", resArticle, err)
	}
	return success(c, http.StatusOK, articleWritten{Title: updated.Title, Thumbnail: updated.Thumbnail})
}

// Delete handles DELETE /article/:id.
//
// @Summary      Delete an article
// @Tags         article
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  Envelope{data=articleDeleted}
// @Failure      404  {object}  Envelope
// @Router       /article/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeleteArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDeleteError(c, h.log, resArticle, err)
	}
	return success(c, http.StatusOK, articleDeleted{ID: deleted.ID, Title: deleted.Title, Thumbnail: deleted.Thumbnail})
}

// input binds the form and opens the thumbnail. When ok is false the
// response has already been written and err is its result.
func (h *ArticleHandler) input(c echo.Context) (ports.ArticleInput, io.Closer, bool, error) {
	var req articleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return ports.ArticleInput{}, nil, false, err
	}

	thumbnail, closer, err := openImage(c, partThumbnail)
	if err != nil {
		return ports.ArticleInput{}, nil, false, respondFileError(c, err)
	}

	return ports.ArticleInput{
		Title:      req.Title,
		Body:       req.Body,
		CategoryID: req.CategoryID,
		Thumbnail:  thumbnail,
	}, closer, true, nil
}
