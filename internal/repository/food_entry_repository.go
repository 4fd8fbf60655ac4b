package repository

import (
	"context"

	"gorm.io/gorm"

	"dailyfood/internal/model"
)

// FoodEntryPatch lists the food entry fields to change. Nil fields are left alone.
type FoodEntryPatch struct {
	Name     *string
	Category *string
	Amount   *float64
	Unit     *string
	Date     *string
	MealType *string
}

// Updates returns the column assignments of the set fields.
func (p FoodEntryPatch) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if p.Name != nil {
		u["name"] = *p.Name
	}
	if p.Category != nil {
		u["category"] = *p.Category
	}
	if p.Amount != nil {
		u["amount"] = *p.Amount
	}
	if p.Unit != nil {
		u["unit"] = *p.Unit
	}
	if p.Date != nil {
		u["date"] = *p.Date
	}
	if p.MealType != nil {
		u["meal_type"] = *p.MealType
	}
	return u
}

// Empty reports whether the patch changes nothing.
func (p FoodEntryPatch) Empty() bool {
	return len(p.Updates()) == 0
}

// FoodEntryRepository defines food log persistence. Every operation is scoped to
// the owning user.
type FoodEntryRepository interface {
	List(ctx context.Context, userID uint, date string) ([]model.FoodEntry, error)
	ListRange(ctx context.Context, userID uint, from, to string) ([]model.FoodEntry, error)
	Create(ctx context.Context, entry *model.FoodEntry) error
	FindOwned(ctx context.Context, id, userID uint) (*model.FoodEntry, error)
	Update(ctx context.Context, id, userID uint, patch FoodEntryPatch) error
	Delete(ctx context.Context, id, userID uint) error
}

type foodEntryRepository struct {
	db *gorm.DB
}

// NewFoodEntryRepository builds a GORM-backed repository.
func NewFoodEntryRepository(db *gorm.DB) FoodEntryRepository {
	return &foodEntryRepository{db: db}
}

// List returns the user's entries, newest first. An empty date lists every day.
func (r *foodEntryRepository) List(ctx context.Context, userID uint, date string) ([]model.FoodEntry, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	var entries []model.FoodEntry
	if err := q.Order("date DESC, created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRange returns the user's entries with from <= date <= to.
func (r *foodEntryRepository) ListRange(ctx context.Context, userID uint, from, to string) ([]model.FoodEntry, error) {
	var entries []model.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *foodEntryRepository) Create(ctx context.Context, entry *model.FoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *foodEntryRepository) FindOwned(ctx context.Context, id, userID uint) (*model.FoodEntry, error) {
	var entry model.FoodEntry
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodEntryRepository) Update(ctx context.Context, id, userID uint, patch FoodEntryPatch) error {
	return r.db.WithContext(ctx).Model(&model.FoodEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patch.Updates()).Error
}

// Delete removes an owned entry; gorm.ErrRecordNotFound when nothing matched.
func (r *foodEntryRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.FoodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
