package service

import (
	"context"
	"fmt"
	"time"

	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/model"
	"dailyfood/internal/nutrition"
	"dailyfood/internal/repository"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ItemNutrition is a logged item with its computed nutrients.
type ItemNutrition struct {
	model.FoodEntry
	Nutrition model.NutrientProfile `json:"nutrition"`
}

// DailyReport is the nutrition picture of one day.
type DailyReport struct {
	nutrition.DailySummary
	Targets  model.NutrientProfile `json:"targets"`
	Progress []nutrition.Progress  `json:"progress"`
	Items    []ItemNutrition       `json:"items"`
}

// CalendarDay marks what was recorded on a day.
type CalendarDay struct {
	Date            string `json:"date"`
	FoodCount       int    `json:"foodCount"`
	BloodSugarCount int    `json:"bloodSugarCount"`
	Status          string `json:"status"`
}

// NutritionService computes nutrition reports from a user's food log.
type NutritionService interface {
	Daily(ctx context.Context, userID uint, date string) (*DailyReport, error)
	Calendar(ctx context.Context, userID uint, month string) ([]CalendarDay, error)
}

type nutritionService struct {
	foodRepo       repository.FoodEntryRepository
	bloodSugarRepo repository.BloodSugarRepository
	catalog        CatalogService
	targets        model.NutrientProfile
}

// NewNutritionService builds a NutritionService measuring against targets.
func NewNutritionService(foodRepo repository.FoodEntryRepository, bloodSugarRepo repository.BloodSugarRepository, catalog CatalogService, targets model.NutrientProfile) NutritionService {
	return &nutritionService{
		foodRepo:       foodRepo,
		bloodSugarRepo: bloodSugarRepo,
		catalog:        catalog,
		targets:        targets,
	}
}

func (s *nutritionService) Daily(ctx context.Context, userID uint, date string) (*DailyReport, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperrors.Validation("date must be formatted as YYYY-MM-DD")
	}

	items, err := s.foodRepo.List(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	index, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	summary := nutrition.Summarize(items, date, index)
	report := &DailyReport{
		DailySummary: summary,
		Targets:      s.targets,
		Progress:     nutrition.Compare(summary.Total, s.targets),
		Items:        make([]ItemNutrition, 0, len(items)),
	}
	for _, item := range items {
		report.Items = append(report.Items, ItemNutrition{
			FoodEntry: item,
			Nutrition: nutrition.ComputeItem(item, index),
		})
	}
	return report, nil
}

// Calendar returns one marker per day of month (YYYY-MM).
func (s *nutritionService) Calendar(ctx context.Context, userID uint, month string) ([]CalendarDay, error) {
	start, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, apperrors.Validation("month must be formatted as YYYY-MM")
	}
	end := start.AddDate(0, 1, -1)
	from, to := start.Format(dateLayout), end.Format(dateLayout)

	foods, err := s.foodRepo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	readings, err := s.bloodSugarRepo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	index, err := s.catalog.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	foodByDate := make(map[string][]model.FoodEntry)
	for _, f := range foods {
		foodByDate[f.Date] = append(foodByDate[f.Date], f)
	}
	readingCount := make(map[string]int)
	for _, r := range readings {
		readingCount[r.Date]++
	}

	days := make([]CalendarDay, 0, end.Day())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		day := CalendarDay{
			Date:            date,
			FoodCount:       len(foodByDate[date]),
			BloodSugarCount: readingCount[date],
			Status:          nutrition.StatusNone,
		}
		if day.FoodCount > 0 {
			total := nutrition.Summarize(foodByDate[date], date, index).Total
			day.Status = nutrition.DayStatus(total, s.targets)
		}
		days = append(days, day)
	}
	return days, nil
}
