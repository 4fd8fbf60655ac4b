package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dailyfood/internal/model"
	"dailyfood/internal/service"
)

// NutritionHandler serves computed nutrition reports.
type NutritionHandler struct {
	svc     service.NutritionService
	targets model.NutrientProfile
}

// NewNutritionHandler creates a nutrition handler reporting targets.
func NewNutritionHandler(svc service.NutritionService, targets model.NutrientProfile) *NutritionHandler {
	return &NutritionHandler{svc: svc, targets: targets}
}

// DailyQuery selects the reported day. It defaults to today.
type DailyQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// CalendarQuery selects the reported month. It defaults to the current month.
type CalendarQuery struct {
	Month string `query:"month" validate:"omitempty,datetime=2006-01"`
}

// Targets godoc
// @Summary Daily pregnancy nutrient targets
// @Tags nutrition
// @Produce json
// @Success 200 {object} model.NutrientProfile
// @Router /nutrition/targets [get]
func (h *NutritionHandler) Targets(c echo.Context) error {
	return c.JSON(http.StatusOK, h.targets)
}

// Daily godoc
// @Summary Nutrition of one day
// @Description Totals per meal and day, compared with the targets. Foods missing from the catalog count as zero.
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {object} service.DailyReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /nutrition/daily [get]
func (h *NutritionHandler) Daily(c echo.Context) error {
	var q DailyQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	if q.Date == "" {
		q.Date = time.Now().Format("2006-01-02")
	}
	report, err := h.svc.Daily(c.Request().Context(), currentUser(c).ID, q.Date)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Calendar godoc
// @Summary Month overview
// @Description One entry per day with record counts and a status: good, warning or none.
// @Tags nutrition
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {array} service.CalendarDay
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /calendar [get]
func (h *NutritionHandler) Calendar(c echo.Context) error {
	var q CalendarQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	if q.Month == "" {
		q.Month = time.Now().Format("2006-01")
	}
	days, err := h.svc.Calendar(c.Request().Context(), currentUser(c).ID, q.Month)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, days)
}
