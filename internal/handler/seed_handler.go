package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dailyfood/internal/catalog"
	"dailyfood/internal/model"
	"dailyfood/internal/service"
)

// SeedHandler loads foods into the catalog in bulk.
type SeedHandler struct {
	catalogService service.CatalogService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(catalogService service.CatalogService) *SeedHandler {
	return &SeedHandler{catalogService: catalogService}
}

// ImportRequest is a batch of catalog foods.
type ImportRequest struct {
	Foods []CatalogRequest `json:"foods" validate:"required,min=1,max=1000,dive"`
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedDefaults godoc
// @Summary Restore the default foods
// @Description Adds every default food whose name is not in the catalog yet. Existing foods are left untouched.
// @Tags food-database
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /food-database/seed-defaults [post]
func (h *SeedHandler) SeedDefaults(c echo.Context) error {
	count, err := h.catalogService.SeedDefaults(c.Request().Context(), catalog.Defaults())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, SeedResponse{
		Message: "default foods restored",
		Count:   count,
	})
}

// Import godoc
// @Summary Import catalog foods
// @Description Adds the foods whose names are not in the catalog yet. The batch is not atomic; on failure the foods added so far stay.
// @Tags food-database
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ImportRequest true "Foods"
// @Success 200 {object} SeedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /food-database/import [post]
func (h *SeedHandler) Import(c echo.Context) error {
	var req ImportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entries := make([]model.FoodCatalogEntry, 0, len(req.Foods))
	for _, f := range req.Foods {
		entries = append(entries, *f.entry())
	}

	count, err := h.catalogService.SeedDefaults(c.Request().Context(), entries)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, SeedResponse{
		Message: "foods imported",
		Count:   count,
	})
}
