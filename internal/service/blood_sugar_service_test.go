package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/glucose"
	"dailyfood/internal/model"
	"dailyfood/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestBloodSugarService_Record(t *testing.T) {
	tests := []struct {
		name           string
		entry          model.BloodSugarEntry
		expectedMeal   *string
		expectedStatus string
	}{
		{
			name:           "fasting high",
			entry:          model.BloodSugarEntry{Date: "2024-05-01", Type: model.MeasureFasting, Value: 5.8},
			expectedStatus: glucose.StatusHigh,
		},
		{
			name:           "after lunch normal",
			entry:          model.BloodSugarEntry{Date: "2024-05-01", Type: model.MeasureAfterLunch, Value: 6.9, Note: strPtr("")},
			expectedMeal:   strPtr(model.MealLunch),
			expectedStatus: glucose.StatusNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBloodSugarRepository)
			mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *model.BloodSugarEntry) bool {
				return e.UserID == 4 && e.Note == nil && assert.ObjectsAreEqual(tt.expectedMeal, e.MealType)
			})).Return(&model.BloodSugarEntry{
				ID:       11,
				UserID:   4,
				Date:     tt.entry.Date,
				Type:     tt.entry.Type,
				Value:    tt.entry.Value,
				MealType: tt.expectedMeal,
			}, nil)

			entry := tt.entry
			reading, err := NewBloodSugarService(mockRepo).Record(context.Background(), 4, &entry)
			require.NoError(t, err)
			assert.Equal(t, uint(11), reading.ID)
			assert.Equal(t, tt.expectedStatus, reading.Status)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBloodSugarService_Update(t *testing.T) {
	current := &model.BloodSugarEntry{ID: 3, UserID: 4, Date: "2024-05-01", Type: model.MeasureFasting, Value: 5.0}

	t.Run("not owned", func(t *testing.T) {
		mockRepo := new(MockBloodSugarRepository)
		mockRepo.On("FindOwned", mock.Anything, uint(3), uint(4)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewBloodSugarService(mockRepo).Update(context.Background(), 4, 3, repository.BloodSugarPatch{Value: new(float64)})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("collides with another reading", func(t *testing.T) {
		mockRepo := new(MockBloodSugarRepository)
		mockRepo.On("FindOwned", mock.Anything, uint(3), uint(4)).Return(current, nil)
		mockRepo.On("FindByKey", mock.Anything, uint(4), "2024-05-01", model.MeasureAfterDinner).
			Return(&model.BloodSugarEntry{ID: 8}, nil)

		_, err := NewBloodSugarService(mockRepo).Update(context.Background(), 4, 3, repository.BloodSugarPatch{Type: strPtr(model.MeasureAfterDinner)})
		assert.Equal(t, apperrors.ErrReadingExists, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("type change sets meal slot", func(t *testing.T) {
		updated := *current
		updated.Type = model.MeasureAfterDinner
		updated.MealType = strPtr(model.MealDinner)

		mockRepo := new(MockBloodSugarRepository)
		mockRepo.On("FindOwned", mock.Anything, uint(3), uint(4)).Return(current, nil).Once()
		mockRepo.On("FindByKey", mock.Anything, uint(4), "2024-05-01", model.MeasureAfterDinner).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Update", mock.Anything, uint(3), uint(4), mock.MatchedBy(func(p repository.BloodSugarPatch) bool {
			return p.MealType != nil && *p.MealType == model.MealDinner
		})).Return(nil)
		mockRepo.On("FindOwned", mock.Anything, uint(3), uint(4)).Return(&updated, nil).Once()

		reading, err := NewBloodSugarService(mockRepo).Update(context.Background(), 4, 3, repository.BloodSugarPatch{Type: strPtr(model.MeasureAfterDinner)})
		require.NoError(t, err)
		assert.Equal(t, model.MealDinner, *reading.MealType)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty patch", func(t *testing.T) {
		mockRepo := new(MockBloodSugarRepository)
		mockRepo.On("FindOwned", mock.Anything, uint(3), uint(4)).Return(current, nil)

		_, err := NewBloodSugarService(mockRepo).Update(context.Background(), 4, 3, repository.BloodSugarPatch{})
		assert.Equal(t, apperrors.ErrNoFieldsToUpdate, err)
	})
}

func TestBloodSugarService_Delete(t *testing.T) {
	mockRepo := new(MockBloodSugarRepository)
	mockRepo.On("Delete", mock.Anything, uint(3), uint(4)).Return(gorm.ErrRecordNotFound)

	err := NewBloodSugarService(mockRepo).Delete(context.Background(), 4, 3)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
