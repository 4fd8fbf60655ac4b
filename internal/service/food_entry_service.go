package service

import (
	"context"

	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/model"
	"dailyfood/internal/repository"
)

const defaultUnit = "g"

var errFoodEntryNotFound = apperrors.Wrap(apperrors.ErrNotFound, "food record not found")

// FoodEntryService manages a user's food log.
type FoodEntryService interface {
	List(ctx context.Context, userID uint, date string) ([]model.FoodEntry, error)
	Create(ctx context.Context, userID uint, entry *model.FoodEntry) (*model.FoodEntry, error)
	Update(ctx context.Context, userID, id uint, patch repository.FoodEntryPatch) (*model.FoodEntry, error)
	Delete(ctx context.Context, userID, id uint) error
}

type foodEntryService struct {
	repo repository.FoodEntryRepository
}

// NewFoodEntryService builds a FoodEntryService.
func NewFoodEntryService(repo repository.FoodEntryRepository) FoodEntryService {
	return &foodEntryService{repo: repo}
}

func (s *foodEntryService) List(ctx context.Context, userID uint, date string) ([]model.FoodEntry, error) {
	return s.repo.List(ctx, userID, date)
}

func (s *foodEntryService) Create(ctx context.Context, userID uint, entry *model.FoodEntry) (*model.FoodEntry, error) {
	if entry.Amount <= 0 {
		return nil, apperrors.Validation("amount must be greater than 0")
	}
	entry.ID = 0
	entry.UserID = userID
	if entry.Unit == "" {
		entry.Unit = defaultUnit
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update changes an owned entry. Entries of other users are reported as missing.
func (s *foodEntryService) Update(ctx context.Context, userID, id uint, patch repository.FoodEntryPatch) (*model.FoodEntry, error) {
	if _, err := s.repo.FindOwned(ctx, id, userID); err != nil {
		return nil, translate(err, errFoodEntryNotFound, nil)
	}
	if patch.Empty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return nil, apperrors.Validation("amount must be greater than 0")
	}
	if err := s.repo.Update(ctx, id, userID, patch); err != nil {
		return nil, err
	}
	entry, err := s.repo.FindOwned(ctx, id, userID)
	return entry, translate(err, errFoodEntryNotFound, nil)
}

func (s *foodEntryService) Delete(ctx context.Context, userID, id uint) error {
	return translate(s.repo.Delete(ctx, id, userID), errFoodEntryNotFound, nil)
}
