package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dailyfood/internal/model"
	"dailyfood/internal/repository"
	"dailyfood/internal/service"
)

// CatalogHandler serves the shared food catalog. Reads are public, writes are
// admin only.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// CatalogQuery filters the catalog by a name or category fragment.
type CatalogQuery struct {
	Q string `query:"q" validate:"max=100"`
}

// CatalogRequest is the payload of a new catalog food.
type CatalogRequest struct {
	Name             string                 `json:"name" validate:"required,max=255"`
	Category         string                 `json:"category" validate:"required,max=100"`
	NutritionPer100g *model.NutrientProfile `json:"nutritionPer100g" validate:"required"`
}

// CatalogUpdateRequest changes the fields that are present. A nutrient profile
// replaces the stored one as a whole.
type CatalogUpdateRequest struct {
	Name             *string                `json:"name" validate:"omitempty,max=255"`
	Category         *string                `json:"category" validate:"omitempty,max=100"`
	NutritionPer100g *model.NutrientProfile `json:"nutritionPer100g"`
}

func (r CatalogRequest) entry() *model.FoodCatalogEntry {
	return &model.FoodCatalogEntry{
		Name:      r.Name,
		Category:  r.Category,
		Nutrients: *r.NutritionPer100g,
	}
}

// List godoc
// @Summary List catalog foods
// @Tags food-database
// @Produce json
// @Param q query string false "Name or category fragment"
// @Success 200 {array} model.FoodCatalogEntry
// @Failure 400 {object} errors.ErrorResponse
// @Router /food-database [get]
func (h *CatalogHandler) List(c echo.Context) error {
	var q CatalogQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	entries, err := h.svc.Search(c.Request().Context(), q.Q)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary Add a catalog food
// @Tags food-database
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food body CatalogRequest true "Food"
// @Success 201 {object} model.FoodCatalogEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /food-database [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req CatalogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.svc.Create(c.Request().Context(), req.entry())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a catalog food
// @Tags food-database
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food ID"
// @Param food body CatalogUpdateRequest true "Fields to change"
// @Success 200 {object} model.FoodCatalogEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /food-database/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req CatalogUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.svc.Update(c.Request().Context(), id, repository.CatalogPatch{
		Name:      req.Name,
		Category:  req.Category,
		Nutrients: req.NutritionPer100g,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a catalog food
// @Tags food-database
// @Produce json
// @Security BearerAuth
// @Param id path int true "Food ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /food-database/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "food deleted"})
}
