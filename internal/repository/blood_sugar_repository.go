package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dailyfood/internal/model"
)

// BloodSugarPatch lists the reading fields to change. An empty Time, Note or
// MealType clears the stored value.
type BloodSugarPatch struct {
	Date     *string
	Type     *string
	Value    *float64
	Time     *string
	Note     *string
	MealType *string
}

// Updates returns the column assignments of the set fields.
func (p BloodSugarPatch) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if p.Date != nil {
		u["date"] = *p.Date
	}
	if p.Type != nil {
		u["type"] = *p.Type
	}
	if p.Value != nil {
		u["value"] = *p.Value
	}
	if p.Time != nil {
		u["time"] = nullable(*p.Time)
	}
	if p.Note != nil {
		u["note"] = nullable(*p.Note)
	}
	if p.MealType != nil {
		u["meal_type"] = nullable(*p.MealType)
	}
	return u
}

// Empty reports whether the patch changes nothing.
func (p BloodSugarPatch) Empty() bool {
	return len(p.Updates()) == 0
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// BloodSugarRepository defines glucose reading persistence scoped to the owner.
type BloodSugarRepository interface {
	List(ctx context.Context, userID uint, date string) ([]model.BloodSugarEntry, error)
	ListRange(ctx context.Context, userID uint, from, to string) ([]model.BloodSugarEntry, error)
	Upsert(ctx context.Context, entry *model.BloodSugarEntry) (*model.BloodSugarEntry, error)
	FindOwned(ctx context.Context, id, userID uint) (*model.BloodSugarEntry, error)
	FindByKey(ctx context.Context, userID uint, date, measurementType string) (*model.BloodSugarEntry, error)
	Update(ctx context.Context, id, userID uint, patch BloodSugarPatch) error
	Delete(ctx context.Context, id, userID uint) error
}

type bloodSugarRepository struct {
	db *gorm.DB
}

// NewBloodSugarRepository builds a GORM-backed repository.
func NewBloodSugarRepository(db *gorm.DB) BloodSugarRepository {
	return &bloodSugarRepository{db: db}
}

func (r *bloodSugarRepository) List(ctx context.Context, userID uint, date string) ([]model.BloodSugarEntry, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	var entries []model.BloodSugarEntry
	if err := q.Order("date DESC, created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *bloodSugarRepository) ListRange(ctx context.Context, userID uint, from, to string) ([]model.BloodSugarEntry, error) {
	var entries []model.BloodSugarEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert inserts the reading or, when the owner already has one for the same date
// and type, overwrites it in a single statement. The stored row is returned.
func (r *bloodSugarRepository) Upsert(ctx context.Context, entry *model.BloodSugarEntry) (*model.BloodSugarEntry, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "time", "note", "meal_type", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return nil, err
	}
	return r.FindByKey(ctx, entry.UserID, entry.Date, entry.Type)
}

func (r *bloodSugarRepository) FindOwned(ctx context.Context, id, userID uint) (*model.BloodSugarEntry, error) {
	var entry model.BloodSugarEntry
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *bloodSugarRepository) FindByKey(ctx context.Context, userID uint, date, measurementType string) (*model.BloodSugarEntry, error) {
	var entry model.BloodSugarEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND type = ?", userID, date, measurementType).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *bloodSugarRepository) Update(ctx context.Context, id, userID uint, patch BloodSugarPatch) error {
	return r.db.WithContext(ctx).Model(&model.BloodSugarEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patch.Updates()).Error
}

func (r *bloodSugarRepository) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.BloodSugarEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
