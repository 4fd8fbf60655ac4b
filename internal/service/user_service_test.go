package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/model"
	"dailyfood/internal/repository"
)

func TestUserService_CreateUser(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "created",
			username: "lee",
			password: "abcd",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "lee").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:          "password too short",
			username:      "lee",
			password:      "abc",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrPasswordTooShort,
		},
		{
			name:     "username taken",
			username: "lee",
			password: "abcd",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "lee").Return(&model.User{ID: 2, Username: "lee"}, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
		{
			name:     "race on unique index",
			username: "lee",
			password: "abcd",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "lee").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			user, err := NewUserService(mockRepo).CreateUser(context.Background(), tt.username, tt.password, true)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.True(t, user.IsAdmin)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4}, nil)

		_, err := NewUserService(mockRepo).UpdateUser(context.Background(), 4, UserUpdate{})
		assert.Equal(t, apperrors.ErrNoFieldsToUpdate, err)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewUserService(mockRepo).UpdateUser(context.Background(), 4, UserUpdate{})
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("keeping own username", func(t *testing.T) {
		name := "lee"
		admin := false
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4, Username: "lee"}, nil)
		mockRepo.On("FindByUsername", mock.Anything, "lee").Return(&model.User{ID: 4, Username: "lee"}, nil)
		mockRepo.On("Update", mock.Anything, uint(4), repository.UserPatch{Username: &name, IsAdmin: &admin}).Return(nil)

		user, err := NewUserService(mockRepo).UpdateUser(context.Background(), 4, UserUpdate{Username: &name, IsAdmin: &admin})
		require.NoError(t, err)
		assert.Equal(t, "lee", user.Username)
	})

	t.Run("username of someone else", func(t *testing.T) {
		name := "kim"
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4, Username: "lee"}, nil)
		mockRepo.On("FindByUsername", mock.Anything, "kim").Return(&model.User{ID: 8, Username: "kim"}, nil)

		_, err := NewUserService(mockRepo).UpdateUser(context.Background(), 4, UserUpdate{Username: &name})
		assert.Equal(t, apperrors.ErrUsernameTaken, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("self deletion blocked", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		err := NewUserService(mockRepo).DeleteUser(context.Background(), 1, 1)
		assert.Equal(t, apperrors.ErrSelfDeletion, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(2)).Return(gorm.ErrRecordNotFound)
		err := NewUserService(mockRepo).DeleteUser(context.Background(), 1, 2)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("deleted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(2)).Return(nil)
		assert.NoError(t, NewUserService(mockRepo).DeleteUser(context.Background(), 1, 2))
	})
}

func TestUserService_EnsureAdmin(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "admin").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool { return u.IsAdmin })).Return(nil)

		user, err := NewUserService(mockRepo).EnsureAdmin(context.Background(), "admin", "s3cret")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("promotes", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByUsername", mock.Anything, "admin").Return(&model.User{ID: 3, Username: "admin"}, nil)
		mockRepo.On("Update", mock.Anything, uint(3), mock.MatchedBy(func(p repository.UserPatch) bool {
			return p.IsAdmin != nil && *p.IsAdmin && p.PasswordHash != nil
		})).Return(nil)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, Username: "admin", IsAdmin: true}, nil)

		user, err := NewUserService(mockRepo).EnsureAdmin(context.Background(), "admin", "s3cret")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
		mockRepo.AssertExpectations(t)
	})
}
