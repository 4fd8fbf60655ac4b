package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/model"
	"dailyfood/internal/repository"
)

// UserUpdate carries the optional changes an admin can make to an account.
type UserUpdate struct {
	Username *string
	Password *string
	IsAdmin  *bool
}

// UserService exposes account administration.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, username, password string, isAdmin bool) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, actorID, id uint) error
	EnsureAdmin(ctx context.Context, username, password string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) CreateUser(ctx context.Context, username, password string, isAdmin bool) (*model.User, error) {
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.ErrPasswordTooShort
	}
	if err := s.ensureUsernameFree(ctx, username, 0); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{Username: username, PasswordHash: hash, IsAdmin: isAdmin}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, translate(err, nil, apperrors.ErrUsernameTaken)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, update UserUpdate) (*model.User, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, nil)
	}

	var patch repository.UserPatch
	if update.Username != nil && *update.Username != "" {
		if err := s.ensureUsernameFree(ctx, *update.Username, id); err != nil {
			return nil, err
		}
		patch.Username = update.Username
	}
	if update.Password != nil && *update.Password != "" {
		if len(*update.Password) < minPasswordLength {
			return nil, apperrors.ErrPasswordTooShort
		}
		hash, err := hashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	patch.IsAdmin = update.IsAdmin

	if patch.Empty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, translate(err, nil, apperrors.ErrUsernameTaken)
	}
	return s.repo.FindByID(ctx, id)
}

// DeleteUser removes an account and everything it owns. Admins cannot delete
// the account they act with.
func (s *userService) DeleteUser(ctx context.Context, actorID, id uint) error {
	if actorID == id {
		return apperrors.ErrSelfDeletion
	}
	return translate(s.repo.Delete(ctx, id), apperrors.ErrUserNotFound, nil)
}

// EnsureAdmin creates the account as admin, or promotes it and resets its
// password when it already exists.
func (s *userService) EnsureAdmin(ctx context.Context, username, password string) (*model.User, error) {
	if len(password) < minPasswordLength {
		return nil, apperrors.ErrPasswordTooShort
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user := &model.User{Username: username, PasswordHash: hash, IsAdmin: true}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create admin: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	admin := true
	if err := s.repo.Update(ctx, existing.ID, repository.UserPatch{PasswordHash: &hash, IsAdmin: &admin}); err != nil {
		return nil, fmt.Errorf("promote admin: %w", err)
	}
	return s.repo.FindByID(ctx, existing.ID)
}

func (s *userService) ensureUsernameFree(ctx context.Context, username string, selfID uint) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err == nil && existing != nil && existing.ID != selfID {
		return apperrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check username: %w", err)
	}
	return nil
}
