package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dailyfood/internal/model"
	"dailyfood/internal/repository"
	"dailyfood/internal/service"
)

// FoodHandler serves the caller's food log.
type FoodHandler struct {
	svc service.FoodEntryService
}

// NewFoodHandler creates a food log handler.
func NewFoodHandler(svc service.FoodEntryService) *FoodHandler {
	return &FoodHandler{svc: svc}
}

// DateQuery filters list endpoints by day.
type DateQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// FoodEntryRequest is the payload of a new food log entry.
type FoodEntryRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Category string  `json:"category" validate:"required,max=100"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Unit     string  `json:"unit" validate:"omitempty,max=20"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	MealType string  `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
}

// FoodEntryUpdateRequest changes the fields that are present.
type FoodEntryUpdateRequest struct {
	Name     *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Category *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Amount   *float64 `json:"amount" validate:"omitempty,gt=0"`
	Unit     *string  `json:"unit" validate:"omitempty,min=1,max=20"`
	Date     *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	MealType *string  `json:"mealType" validate:"omitempty,oneof=breakfast lunch dinner snack"`
}

// List godoc
// @Summary List food entries
// @Tags food
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {array} model.FoodEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /food [get]
func (h *FoodHandler) List(c echo.Context) error {
	var q DateQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	entries, err := h.svc.List(c.Request().Context(), currentUser(c).ID, q.Date)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary Log a food entry
// @Tags food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body FoodEntryRequest true "Food entry"
// @Success 201 {object} model.FoodEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /food [post]
func (h *FoodHandler) Create(c echo.Context) error {
	var req FoodEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.svc.Create(c.Request().Context(), currentUser(c).ID, &model.FoodEntry{
		Name:     req.Name,
		Category: req.Category,
		Amount:   req.Amount,
		Unit:     req.Unit,
		Date:     req.Date,
		MealType: req.MealType,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a food entry
// @Tags food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param entry body FoodEntryUpdateRequest true "Fields to change"
// @Success 200 {object} model.FoodEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /food/{id} [put]
func (h *FoodHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req FoodEntryUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.svc.Update(c.Request().Context(), currentUser(c).ID, id, repository.FoodEntryPatch{
		Name:     req.Name,
		Category: req.Category,
		Amount:   req.Amount,
		Unit:     req.Unit,
		Date:     req.Date,
		MealType: req.MealType,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a food entry
// @Tags food
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /food/{id} [delete]
func (h *FoodHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), currentUser(c).ID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "food entry deleted"})
}
