package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dailyfood/internal/cache"
	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/model"
	"dailyfood/internal/repository"
)

func sampleCatalog() []model.FoodCatalogEntry {
	return []model.FoodCatalogEntry{
		{ID: 1, Name: "Rice", Category: "staple", Nutrients: model.NutrientProfile{Calories: 116, Protein: 2.6}},
		{ID: 2, Name: "Egg", Category: "protein", Nutrients: model.NutrientProfile{Calories: 144, Protein: 13.3}},
	}
}

func TestCatalogService_ListUsesCache(t *testing.T) {
	mockRepo := new(MockFoodCatalogRepository)
	mockRepo.On("List", mock.Anything).Return(sampleCatalog(), nil).Once()

	svc := NewCatalogService(mockRepo, NewCatalogCache(cache.NewMemory(), time.Minute))
	ctx := context.Background()

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first[1].Name, second[1].Name)
	assert.Equal(t, 13.3, second[1].Nutrients.Protein)
	mockRepo.AssertNumberOfCalls(t, "List", 1)
}

func TestCatalogService_CreateInvalidatesCache(t *testing.T) {
	mockRepo := new(MockFoodCatalogRepository)
	mockRepo.On("List", mock.Anything).Return(sampleCatalog(), nil).Twice()
	mockRepo.On("FindByName", mock.Anything, "Tofu").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.FoodCatalogEntry")).Return(nil)

	svc := NewCatalogService(mockRepo, NewCatalogCache(cache.NewMemory(), time.Minute))
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.Create(ctx, &model.FoodCatalogEntry{ID: 7, Name: "Tofu", Category: "protein"})
	require.NoError(t, err)
	_, err = svc.List(ctx)
	require.NoError(t, err)

	mockRepo.AssertNumberOfCalls(t, "List", 2)
}

func TestCatalogService_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockFoodCatalogRepository)
		expectedError error
	}{
		{
			name: "created",
			setupMock: func(m *MockFoodCatalogRepository) {
				m.On("FindByName", mock.Anything, "Rice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(e *model.FoodCatalogEntry) bool { return e.ID == 0 })).Return(nil)
			},
		},
		{
			name: "duplicate name",
			setupMock: func(m *MockFoodCatalogRepository) {
				m.On("FindByName", mock.Anything, "Rice").Return(&model.FoodCatalogEntry{ID: 1, Name: "rice"}, nil)
			},
			expectedError: apperrors.ErrFoodExists,
		},
		{
			name: "duplicate on insert",
			setupMock: func(m *MockFoodCatalogRepository) {
				m.On("FindByName", mock.Anything, "Rice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrFoodExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockFoodCatalogRepository)
			tt.setupMock(mockRepo)

			entry, err := NewCatalogService(mockRepo, nil).Create(context.Background(), &model.FoodCatalogEntry{ID: 5, Name: "Rice", Category: "staple"})
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, entry)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Rice", entry.Name)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_Update(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		mockRepo := new(MockFoodCatalogRepository)
		mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		name := "Tofu"
		_, err := NewCatalogService(mockRepo, nil).Update(context.Background(), 9, repository.CatalogPatch{Name: &name})
		assert.Equal(t, apperrors.ErrFoodNotFound, err)
	})

	t.Run("blank fields only", func(t *testing.T) {
		mockRepo := new(MockFoodCatalogRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&sampleCatalog()[0], nil)

		blank := ""
		_, err := NewCatalogService(mockRepo, nil).Update(context.Background(), 1, repository.CatalogPatch{Name: &blank, Category: &blank})
		assert.Equal(t, apperrors.ErrNoFieldsToUpdate, err)
	})

	t.Run("name owned by another food", func(t *testing.T) {
		mockRepo := new(MockFoodCatalogRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&sampleCatalog()[0], nil)
		mockRepo.On("FindByName", mock.Anything, "Egg").Return(&sampleCatalog()[1], nil)

		name := "Egg"
		_, err := NewCatalogService(mockRepo, nil).Update(context.Background(), 1, repository.CatalogPatch{Name: &name})
		assert.Equal(t, apperrors.ErrFoodExists, err)
	})

	t.Run("nutrients replaced", func(t *testing.T) {
		updated := sampleCatalog()[0]
		updated.Nutrients.Calories = 130

		mockRepo := new(MockFoodCatalogRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&sampleCatalog()[0], nil).Once()
		mockRepo.On("Update", mock.Anything, uint(1), mock.Anything).Return(nil)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&updated, nil).Once()

		entry, err := NewCatalogService(mockRepo, nil).Update(context.Background(), 1, repository.CatalogPatch{Nutrients: &updated.Nutrients})
		require.NoError(t, err)
		assert.Equal(t, 130.0, entry.Nutrients.Calories)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	mockRepo := new(MockFoodCatalogRepository)
	mockRepo.On("Delete", mock.Anything, uint(3)).Return(gorm.ErrRecordNotFound)

	err := NewCatalogService(mockRepo, nil).Delete(context.Background(), 3)
	assert.Equal(t, apperrors.ErrFoodNotFound, err)
}

func TestCatalogService_SeedDefaults(t *testing.T) {
	mockRepo := new(MockFoodCatalogRepository)
	mockRepo.On("FindByName", mock.Anything, "Rice").Return(&sampleCatalog()[0], nil)
	mockRepo.On("FindByName", mock.Anything, "Egg").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.FoodCatalogEntry) bool { return e.Name == "Egg" })).Return(nil)

	created, err := NewCatalogService(mockRepo, nil).SeedDefaults(context.Background(), sampleCatalog())
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_SearchBlankListsAll(t *testing.T) {
	mockRepo := new(MockFoodCatalogRepository)
	mockRepo.On("List", mock.Anything).Return(sampleCatalog(), nil)

	entries, err := NewCatalogService(mockRepo, nil).Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	mockRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}
