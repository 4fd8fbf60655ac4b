package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dailyfood/internal/auth"
	apperrors "dailyfood/internal/errors"
	"dailyfood/internal/model"
	"dailyfood/internal/repository"
)

const (
	bcryptCost        = 10
	minPasswordLength = 4
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error)
	ChangePassword(ctx context.Context, claims *auth.Claims, oldPassword, newPassword string) error
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login checks the credentials and issues a bearer token. Unknown users and wrong
// passwords fail the same way.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Authenticate resolves verified claims to the stored user. Revoked tokens and
// tokens of deleted users are rejected.
func (s *authService) Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	revoked, err := s.tokenStore.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.Wrap(apperrors.ErrUnauthenticated, "token has been revoked")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrUnauthenticated, "user no longer exists")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// ChangePassword re-checks the current password, stores the new hash and revokes
// the token used for the request so the client has to log in again.
func (s *authService) ChangePassword(ctx context.Context, claims *auth.Claims, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperrors.ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return translate(err, apperrors.ErrUserNotFound, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return apperrors.ErrWrongPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user.ID, repository.UserPatch{PasswordHash: &hash}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return s.tokenStore.Revoke(ctx, claims.ID, s.jwtService.Remaining(claims))
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	return s.tokenStore.Revoke(ctx, claims.ID, s.jwtService.Remaining(claims))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
