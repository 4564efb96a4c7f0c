package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zuperior/content-api/internal/core/ports"
)

// AssetHandler handles HTTP requests for 3D assets.
type AssetHandler struct {
	service ports.AssetService
	log     zerolog.Logger
}

func NewAssetHandler(service ports.AssetService, log zerolog.Logger) *AssetHandler {
	return &AssetHandler{service: service, log: log}
}

// List handles GET /asset.
//
// @Summary      List assets
// @Tags         asset
// @Produce      json
// @Success      200  {object}  Envelope{data=[]assetItem}
// @Router       /asset [get]
func (h *AssetHandler) List(c echo.Context) error {
	items, err := h.service.ListAssets(c.Request().Context())
	if err != nil {
		return respondListError(c, h.log, resAsset, err)
	}
	return success(c, http.StatusOK, toAssetItems(items))
}

// Get handles GET /asset/:id.
//
// @Summary      Get an asset
// @Tags         asset
// @Produce      json
// @Param        id   path      string  true  "Asset id"
// @Success      200  {object}  Envelope{data=assetDetail}
// @Failure      404  {object}  Envelope
// @Router       /asset/{id} [get]
func (h *AssetHandler) Get(c echo.Context) error {
	a, err := h.service.GetAsset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, h.log, "get", resAsset, err)
	}
	return success(c, http.StatusOK, toAssetDetail(a))
}

// Create handles POST /asset.
//
// @Summary      Create an asset
// @Tags         asset
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Replays the first response for a repeated key"
// @Param        title            formData  string  true   "Title"
// @Param        asset_url        formData  string  true   "URL of the 3D model"
// @Param        category_id      formData  string  true   "Category id"
// @Param        icon             formData  file    true   "Icon (png, jpg, jpeg)"
// @Success      201              {object}  Envelope{data=assetCreated}
// @Failure      400              {object}  Envelope
// @Failure      415              {object}  Envelope
// @Failure      422              {object}  Envelope
// @Failure      502              {object}  Envelope
// @Router       /asset [post]
func (h *AssetHandler) Create(c echo.Context) error {
	input, closer, ok, err := h.input(c)
	if !ok {
		return err
	}
	defer closer.Close()

	created, err := h.service.CreateAsset(c.Request().Context(), input)
	if err != nil {
		return respondError(c, h.log, "create", resAsset, err)
	}
	return success(c, http.StatusCreated, assetCreated{Title: created.Title, Icon: created.Icon})
}

// Update handles PUT /asset/:id.
//
// @Summary      Update an asset
// @Tags         asset
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true  "Asset id"
// @Param        title        formData  string  true  "Title"
// @Param        asset_url    formData  string  true  "URL of the 3D model"
// @Param        category_id  formData  string  true  "Category id"
// @Param        icon         formData  file    true  "Icon (png, jpg, jpeg)"
// @Success      200          {object}  Envelope{data=assetDetail}
// @Failure      400          {object}  Envelope
// @Failure      404          {object}  Envelope
// @Failure      502          {object}  Envelope
// @Router       /asset/{id} [put]
func (h *AssetHandler) Update(c echo.Context) error {
	input, closer, ok, err := h.input(c)
	if !ok {
		return err
	}
	defer closer.Close()
	input.ID = c.Param("id")

	updated, err := h.service.UpdateAsset(c.Request().Context(), input)
	if err != nil {
		return respondError(c, h.log, "update", resAsset, err)
	}
	return success(c, http.StatusOK, toAssetDetail(updated))
}

// Delete handles DELETE /asset/:id.
//
// @Summary      Delete an asset
// @Tags         asset
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Asset id"
// @Success      200  {object}  Envelope{data=assetItem}
// @Failure      404  {object}  Envelope
// @Router       /asset/{id} [delete]
func (h *AssetHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeleteAsset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDeleteError(c, h.log, resAsset, err)
	}
	return success(c, http.StatusOK, toAssetItem(deleted))
}

func (h *AssetHandler) input(c echo.Context) (ports.AssetInput, io.Closer, bool, error) {
	var req assetRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return ports.AssetInput{}, nil, false, err
	}

	icon, closer, err := openImage(c, partIcon)
	if err != nil {
		return ports.AssetInput{}, nil, false, respondFileError(c, err)
	}

	return ports.AssetInput{
		Title:      req.Title,
		AssetURL:   req.AssetURL,
		CategoryID: req.CategoryID,
		Icon:       icon,
	}, closer, true, nil
}
