package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/glucose"
	"dailyfood/internal/model"
	"dailyfood/internal/repository"
)

var errReadingNotFound = apperrors.Wrap(apperrors.ErrNotFound, "blood sugar record not found")

// Reading is a stored glucose reading with its classification.
type Reading struct {
	model.BloodSugarEntry
	glucose.Result
}

func newReading(e model.BloodSugarEntry) Reading {
	return Reading{BloodSugarEntry: e, Result: glucose.Classify(e.Value, e.Type)}
}

// BloodSugarService manages a user's glucose readings. A user holds at most one
// reading per date and measurement type.
type BloodSugarService interface {
	List(ctx context.Context, userID uint, date string) ([]Reading, error)
	Record(ctx context.Context, userID uint, entry *model.BloodSugarEntry) (*Reading, error)
	Update(ctx context.Context, userID, id uint, patch repository.BloodSugarPatch) (*Reading, error)
	Delete(ctx context.Context, userID, id uint) error
}

type bloodSugarService struct {
	repo repository.BloodSugarRepository
}

// NewBloodSugarService builds a BloodSugarService.
func NewBloodSugarService(repo repository.BloodSugarRepository) BloodSugarService {
	return &bloodSugarService{repo: repo}
}

func (s *bloodSugarService) List(ctx context.Context, userID uint, date string) ([]Reading, error) {
	entries, err := s.repo.List(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	readings := make([]Reading, 0, len(entries))
	for _, e := range entries {
		readings = append(readings, newReading(e))
	}
	return readings, nil
}

// Record stores the reading, replacing the owner's existing reading of the same
// date and type.
func (s *bloodSugarService) Record(ctx context.Context, userID uint, entry *model.BloodSugarEntry) (*Reading, error) {
	entry.ID = 0
	entry.UserID = userID
	entry.MealType = derivedMealType(entry.Type)
	entry.Time = blankToNil(entry.Time)
	entry.Note = blankToNil(entry.Note)

	stored, err := s.repo.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("upsert reading: %w", err)
	}
	r := newReading(*stored)
	return &r, nil
}

func (s *bloodSugarService) Update(ctx context.Context, userID, id uint, patch repository.BloodSugarPatch) (*Reading, error) {
	current, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, translate(err, errReadingNotFound, nil)
	}
	if patch.Empty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	date, mtype := current.Date, current.Type
	if patch.Date != nil {
		date = *patch.Date
	}
	if patch.Type != nil {
		mtype = *patch.Type
		slot := ""
		if m := derivedMealType(mtype); m != nil {
			slot = *m
		}
		patch.MealType = &slot
	}
	if date != current.Date || mtype != current.Type {
		other, err := s.repo.FindByKey(ctx, userID, date, mtype)
		switch {
		case err == nil && other.ID != id:
			return nil, apperrors.ErrReadingExists
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("check reading: %w", err)
		}
	}

	if err := s.repo.Update(ctx, id, userID, patch); err != nil {
		return nil, translate(err, nil, apperrors.ErrReadingExists)
	}
	updated, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, translate(err, errReadingNotFound, nil)
	}
	r := newReading(*updated)
	return &r, nil
}

func (s *bloodSugarService) Delete(ctx context.Context, userID, id uint) error {
	return translate(s.repo.Delete(ctx, id, userID), errReadingNotFound, nil)
}

func derivedMealType(measurementType string) *string {
	if slot, ok := glucose.MealSlotFor(measurementType); ok {
		return &slot
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
