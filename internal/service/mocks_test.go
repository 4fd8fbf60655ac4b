package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"dailyfood/internal/model"
	"dailyfood/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if user.ID == 0 {
		user.ID = 99
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, patch repository.UserPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockFoodCatalogRepository is a mock implementation of FoodCatalogRepository.
type MockFoodCatalogRepository struct {
	mock.Mock
}

func (m *MockFoodCatalogRepository) List(ctx context.Context) ([]model.FoodCatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodCatalogEntry), args.Error(1)
}

func (m *MockFoodCatalogRepository) Search(ctx context.Context, query string) ([]model.FoodCatalogEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodCatalogEntry), args.Error(1)
}

func (m *MockFoodCatalogRepository) FindByID(ctx context.Context, id uint) (*model.FoodCatalogEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodCatalogEntry), args.Error(1)
}

func (m *MockFoodCatalogRepository) FindByName(ctx context.Context, name string) (*model.FoodCatalogEntry, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodCatalogEntry), args.Error(1)
}

func (m *MockFoodCatalogRepository) Create(ctx context.Context, entry *model.FoodCatalogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFoodCatalogRepository) Update(ctx context.Context, id uint, patch repository.CatalogPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockFoodCatalogRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFoodCatalogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBloodSugarRepository is a mock implementation of BloodSugarRepository.
type MockBloodSugarRepository struct {
	mock.Mock
}

func (m *MockBloodSugarRepository) List(ctx context.Context, userID uint, date string) ([]model.BloodSugarEntry, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BloodSugarEntry), args.Error(1)
}

func (m *MockBloodSugarRepository) ListRange(ctx context.Context, userID uint, from, to string) ([]model.BloodSugarEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BloodSugarEntry), args.Error(1)
}

func (m *MockBloodSugarRepository) Upsert(ctx context.Context, entry *model.BloodSugarEntry) (*model.BloodSugarEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BloodSugarEntry), args.Error(1)
}

func (m *MockBloodSugarRepository) FindOwned(ctx context.Context, id, userID uint) (*model.BloodSugarEntry, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BloodSugarEntry), args.Error(1)
}

func (m *MockBloodSugarRepository) FindByKey(ctx context.Context, userID uint, date, measurementType string) (*model.BloodSugarEntry, error) {
	args := m.Called(ctx, userID, date, measurementType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BloodSugarEntry), args.Error(1)
}

func (m *MockBloodSugarRepository) Update(ctx context.Context, id, userID uint, patch repository.BloodSugarPatch) error {
	args := m.Called(ctx, id, userID, patch)
	return args.Error(0)
}

func (m *MockBloodSugarRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockFoodEntryRepository is a mock implementation of FoodEntryRepository.
type MockFoodEntryRepository struct {
	mock.Mock
}

func (m *MockFoodEntryRepository) List(ctx context.Context, userID uint, date string) ([]model.FoodEntry, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) ListRange(ctx context.Context, userID uint, from, to string) ([]model.FoodEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) Create(ctx context.Context, entry *model.FoodEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) FindOwned(ctx context.Context, id, userID uint) (*model.FoodEntry, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodEntry), args.Error(1)
}

func (m *MockFoodEntryRepository) Update(ctx context.Context, id, userID uint, patch repository.FoodEntryPatch) error {
	args := m.Called(ctx, id, userID, patch)
	return args.Error(0)
}

func (m *MockFoodEntryRepository) Delete(ctx context.Context, id, userID uint) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
