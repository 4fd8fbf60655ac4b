package repository

import (
	"context"

	"gorm.io/gorm"

	"dailyfood/internal/model"
)

// UserPatch lists the account fields to change. Nil fields are left alone.
type UserPatch struct {
	Username     *string
	PasswordHash *string
	IsAdmin      *bool
}

// Updates returns the column assignments of the set fields.
func (p UserPatch) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if p.Username != nil {
		u["username"] = *p.Username
	}
	if p.PasswordHash != nil {
		u["password_hash"] = *p.PasswordHash
	}
	if p.IsAdmin != nil {
		u["is_admin"] = *p.IsAdmin
	}
	return u
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return len(p.Updates()) == 0
}

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uint, patch UserPatch) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, patch UserPatch) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(patch.Updates()).Error
}

// Delete removes the user together with all of their food and glucose records.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.FoodEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.BloodSugarEntry{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
