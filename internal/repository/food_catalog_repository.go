package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"dailyfood/internal/model"
)

// CatalogPatch lists the catalog fields to change. Nutrients replaces the whole
// per-100g profile.
type CatalogPatch struct {
	Name      *string
	Category  *string
	Nutrients *model.NutrientProfile
}

// Updates returns the column assignments of the set fields.
func (p CatalogPatch) Updates() map[string]interface{} {
	u := make(map[string]interface{})
	if p.Name != nil {
		u["name"] = *p.Name
	}
	if p.Category != nil {
		u["category"] = *p.Category
	}
	if n := p.Nutrients; n != nil {
		u["per100g_calories"] = n.Calories
		u["per100g_protein"] = n.Protein
		u["per100g_fat"] = n.Fat
		u["per100g_carbs"] = n.Carbs
		u["per100g_fiber"] = n.Fiber
		u["per100g_calcium"] = n.Calcium
		u["per100g_iron"] = n.Iron
		u["per100g_folate"] = n.Folate
		u["per100g_vitamin_c"] = n.VitaminC
		u["per100g_vitamin_a"] = n.VitaminA
	}
	return u
}

// Empty reports whether the patch changes nothing.
func (p CatalogPatch) Empty() bool {
	return len(p.Updates()) == 0
}

// FoodCatalogRepository defines persistence of the shared food catalog.
type FoodCatalogRepository interface {
	List(ctx context.Context) ([]model.FoodCatalogEntry, error)
	Search(ctx context.Context, query string) ([]model.FoodCatalogEntry, error)
	FindByID(ctx context.Context, id uint) (*model.FoodCatalogEntry, error)
	FindByName(ctx context.Context, name string) (*model.FoodCatalogEntry, error)
	Create(ctx context.Context, entry *model.FoodCatalogEntry) error
	Update(ctx context.Context, id uint, patch CatalogPatch) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type foodCatalogRepository struct {
	db *gorm.DB
}

// NewFoodCatalogRepository builds a GORM-backed repository.
func NewFoodCatalogRepository(db *gorm.DB) FoodCatalogRepository {
	return &foodCatalogRepository{db: db}
}

func (r *foodCatalogRepository) List(ctx context.Context) ([]model.FoodCatalogEntry, error) {
	var entries []model.FoodCatalogEntry
	if err := r.db.WithContext(ctx).Order("category, name").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Search matches query as a case-insensitive substring of name or category.
func (r *foodCatalogRepository) Search(ctx context.Context, query string) ([]model.FoodCatalogEntry, error) {
	like := "%" + escapeLike(strings.ToLower(query)) + "%"
	var entries []model.FoodCatalogEntry
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(category) LIKE ? ESCAPE '!'", like, like).
		Order("category, name").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *foodCatalogRepository) FindByID(ctx context.Context, id uint) (*model.FoodCatalogEntry, error) {
	var entry model.FoodCatalogEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByName looks a food up ignoring case, matching how logged items resolve.
func (r *foodCatalogRepository) FindByName(ctx context.Context, name string) (*model.FoodCatalogEntry, error) {
	var entry model.FoodCatalogEntry
	if err := r.db.WithContext(ctx).Where("LOWER(name) = ?", strings.ToLower(name)).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodCatalogRepository) Create(ctx context.Context, entry *model.FoodCatalogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *foodCatalogRepository) Update(ctx context.Context, id uint, patch CatalogPatch) error {
	return r.db.WithContext(ctx).Model(&model.FoodCatalogEntry{}).Where("id = ?", id).Updates(patch.Updates()).Error
}

func (r *foodCatalogRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.FoodCatalogEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *foodCatalogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.FoodCatalogEntry{}).Count(&n).Error
	return n, err
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
