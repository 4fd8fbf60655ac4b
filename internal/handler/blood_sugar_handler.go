package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dailyfood/internal/errors"
	"dailyfood/internal/model"
	"dailyfood/internal/repository"
	"dailyfood/internal/service"
)

// BloodSugarHandler serves the caller's glucose readings.
type BloodSugarHandler struct {
	svc service.BloodSugarService
}

// NewBloodSugarHandler creates a glucose reading handler.
func NewBloodSugarHandler(svc service.BloodSugarService) *BloodSugarHandler {
	return &BloodSugarHandler{svc: svc}
}

// BloodSugarRequest records a reading. The meal slot is derived from the type.
type BloodSugarRequest struct {
	Date  string   `json:"date" validate:"required,datetime=2006-01-02"`
	Type  string   `json:"type" validate:"required,oneof=fasting after_breakfast after_lunch after_dinner"`
	Value *float64 `json:"value" validate:"required,gte=0,lte=30"`
	Time  string   `json:"time" validate:"omitempty,datetime=15:04"`
	Note  string   `json:"note" validate:"omitempty,max=500"`
}

// BloodSugarUpdateRequest changes the fields that are present. An empty time or
// note clears it.
type BloodSugarUpdateRequest struct {
	Date  *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Type  *string  `json:"type" validate:"omitempty,oneof=fasting after_breakfast after_lunch after_dinner"`
	Value *float64 `json:"value" validate:"omitempty,gte=0,lte=30"`
	Time  *string  `json:"time"`
	Note  *string  `json:"note" validate:"omitempty,max=500"`
}

const clockLayout = "15:04"

// List godoc
// @Summary List blood sugar readings
// @Tags blood-sugar
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {array} service.Reading
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /blood-sugar [get]
func (h *BloodSugarHandler) List(c echo.Context) error {
	var q DateQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	readings, err := h.svc.List(c.Request().Context(), currentUser(c).ID, q.Date)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, readings)
}

// Create godoc
// @Summary Record a blood sugar reading
// @Description Replaces the caller's reading of the same date and type if there is one.
// @Tags blood-sugar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reading body BloodSugarRequest true "Reading"
// @Success 201 {object} service.Reading
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /blood-sugar [post]
func (h *BloodSugarHandler) Create(c echo.Context) error {
	var req BloodSugarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	reading, err := h.svc.Record(c.Request().Context(), currentUser(c).ID, &model.BloodSugarEntry{
		Date:  req.Date,
		Type:  req.Type,
		Value: *req.Value,
		Time:  &req.Time,
		Note:  &req.Note,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, reading)
}

// Update godoc
// @Summary Update a blood sugar reading
// @Tags blood-sugar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reading ID"
// @Param reading body BloodSugarUpdateRequest true "Fields to change"
// @Success 200 {object} service.Reading
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /blood-sugar/{id} [put]
func (h *BloodSugarHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req BloodSugarUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Time != nil && *req.Time != "" {
		if _, err := time.Parse(clockLayout, *req.Time); err != nil {
			return fail(errors.Validation("time must be formatted as HH:mm"))
		}
	}
	reading, err := h.svc.Update(c.Request().Context(), currentUser(c).ID, id, repository.BloodSugarPatch{
		Date:  req.Date,
		Type:  req.Type,
		Value: req.Value,
		Time:  req.Time,
		Note:  req.Note,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, reading)
}

// Delete godoc
// @Summary Delete a blood sugar reading
// @Tags blood-sugar
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reading ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /blood-sugar/{id} [delete]
func (h *BloodSugarHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), currentUser(c).ID, id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "blood sugar reading deleted"})
}
