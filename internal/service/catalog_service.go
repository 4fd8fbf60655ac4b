package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/model"
	"dailyfood/internal/nutrition"
	"dailyfood/internal/repository"
)

// CatalogService manages the shared food catalog.
type CatalogService interface {
	List(ctx context.Context) ([]model.FoodCatalogEntry, error)
	Search(ctx context.Context, query string) ([]model.FoodCatalogEntry, error)
	Index(ctx context.Context) (nutrition.Catalog, error)
	Create(ctx context.Context, entry *model.FoodCatalogEntry) (*model.FoodCatalogEntry, error)
	Update(ctx context.Context, id uint, patch repository.CatalogPatch) (*model.FoodCatalogEntry, error)
	Delete(ctx context.Context, id uint) error
	SeedDefaults(ctx context.Context, entries []model.FoodCatalogEntry) (int, error)
}

type catalogService struct {
	repo  repository.FoodCatalogRepository
	cache *CatalogCache
}

// NewCatalogService builds a CatalogService. cache may be nil.
func NewCatalogService(repo repository.FoodCatalogRepository, cache *CatalogCache) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

// List returns the whole catalog ordered by category and name.
func (s *catalogService) List(ctx context.Context) ([]model.FoodCatalogEntry, error) {
	if entries, ok := s.cache.Get(ctx); ok {
		return entries, nil
	}
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, entries)
	return entries, nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]model.FoodCatalogEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

// Index returns a name lookup over the current catalog.
func (s *catalogService) Index(ctx context.Context) (nutrition.Catalog, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return nutrition.NewCatalogIndex(entries), nil
}

func (s *catalogService) Create(ctx context.Context, entry *model.FoodCatalogEntry) (*model.FoodCatalogEntry, error) {
	entry.ID = 0
	if err := s.ensureNameFree(ctx, entry.Name, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, translate(err, nil, apperrors.ErrFoodExists)
	}
	s.cache.Invalidate(ctx)
	return entry, nil
}

func (s *catalogService) Update(ctx context.Context, id uint, patch repository.CatalogPatch) (*model.FoodCatalogEntry, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, translate(err, apperrors.ErrFoodNotFound, nil)
	}
	if patch.Name != nil && *patch.Name == "" {
		patch.Name = nil
	}
	if patch.Category != nil && *patch.Category == "" {
		patch.Category = nil
	}
	if patch.Empty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if patch.Name != nil {
		if err := s.ensureNameFree(ctx, *patch.Name, id); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, translate(err, nil, apperrors.ErrFoodExists)
	}
	s.cache.Invalidate(ctx)

	entry, err := s.repo.FindByID(ctx, id)
	return entry, translate(err, apperrors.ErrFoodNotFound, nil)
}

func (s *catalogService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, apperrors.ErrFoodNotFound, nil)
	}
	s.cache.Invalidate(ctx)
	return nil
}

// SeedDefaults adds the entries whose names are not in the catalog yet and
// returns how many were added.
func (s *catalogService) SeedDefaults(ctx context.Context, entries []model.FoodCatalogEntry) (int, error) {
	created := 0
	for i := range entries {
		entry := entries[i]
		_, err := s.repo.FindByName(ctx, entry.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("find %q: %w", entry.Name, err)
		}
		if err := s.repo.Create(ctx, &entry); err != nil {
			return created, fmt.Errorf("create %q: %w", entry.Name, err)
		}
		created++
	}
	if created > 0 {
		s.cache.Invalidate(ctx)
	}
	return created, nil
}

func (s *catalogService) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing.ID != selfID {
		return apperrors.ErrFoodExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check food name: %w", err)
	}
	return nil
}
