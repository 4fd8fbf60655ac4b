package repository

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dailyfood/internal/config"
	"dailyfood/internal/db"
	"dailyfood/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open(config.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB, false, logrus.New()))
	return gormDB
}

func createUser(t *testing.T, repo UserRepository, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupDB(t))
	createUser(t, repo, "mia")

	err := repo.Create(context.Background(), &model.User{Username: "mia", PasswordHash: "x"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()
	users := NewUserRepository(gormDB)
	foods := NewFoodEntryRepository(gormDB)
	readings := NewBloodSugarRepository(gormDB)

	mia := createUser(t, users, "mia")
	kim := createUser(t, users, "kim")
	for _, u := range []*model.User{mia, kim} {
		require.NoError(t, foods.Create(ctx, &model.FoodEntry{UserID: u.ID, Name: "Rice", Category: "staple", Amount: 100, Unit: "g", Date: "2024-05-01", MealType: model.MealLunch}))
		_, err := readings.Upsert(ctx, &model.BloodSugarEntry{UserID: u.ID, Date: "2024-05-01", Type: model.MeasureFasting, Value: 4.8})
		require.NoError(t, err)
	}

	require.NoError(t, users.Delete(ctx, mia.ID))

	_, err := users.FindByID(ctx, mia.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var orphans int64
	require.NoError(t, gormDB.Model(&model.FoodEntry{}).Where("user_id = ?", mia.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	require.NoError(t, gormDB.Model(&model.BloodSugarEntry{}).Where("user_id = ?", mia.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	left, err := foods.List(ctx, kim.ID, "")
	require.NoError(t, err)
	assert.Len(t, left, 1)

	assert.ErrorIs(t, users.Delete(ctx, mia.ID), gorm.ErrRecordNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(setupDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "mia")

	admin := true
	name := "mia2"
	require.NoError(t, repo.Update(ctx, user.ID, UserPatch{Username: &name, IsAdmin: &admin}))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "mia2", stored.Username)
	assert.True(t, stored.IsAdmin)
	assert.Equal(t, "hash", stored.PasswordHash)
}

func TestFoodEntryRepository_OwnerScope(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()
	users := NewUserRepository(gormDB)
	repo := NewFoodEntryRepository(gormDB)

	mia := createUser(t, users, "mia")
	kim := createUser(t, users, "kim")
	entry := &model.FoodEntry{UserID: mia.ID, Name: "Egg", Category: "protein", Amount: 50, Unit: "g", Date: "2024-05-02", MealType: model.MealBreakfast}
	require.NoError(t, repo.Create(ctx, entry))

	_, err := repo.FindOwned(ctx, entry.ID, kim.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, entry.ID, kim.ID), gorm.ErrRecordNotFound)

	amount := 75.0
	require.NoError(t, repo.Update(ctx, entry.ID, kim.ID, FoodEntryPatch{Amount: &amount}))
	stored, err := repo.FindOwned(ctx, entry.ID, mia.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, stored.Amount)

	require.NoError(t, repo.Update(ctx, entry.ID, mia.ID, FoodEntryPatch{Amount: &amount}))
	stored, err = repo.FindOwned(ctx, entry.ID, mia.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, stored.Amount)

	require.NoError(t, repo.Delete(ctx, entry.ID, mia.ID))
}

func TestFoodEntryRepository_ListFilters(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()
	mia := createUser(t, NewUserRepository(gormDB), "mia")
	repo := NewFoodEntryRepository(gormDB)

	for _, date := range []string{"2024-04-30", "2024-05-01", "2024-05-01", "2024-05-31", "2024-06-01"} {
		require.NoError(t, repo.Create(ctx, &model.FoodEntry{UserID: mia.ID, Name: "Rice", Category: "staple", Amount: 100, Unit: "g", Date: date, MealType: model.MealDinner}))
	}

	day, err := repo.List(ctx, mia.ID, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, day, 2)

	all, err := repo.List(ctx, mia.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "2024-06-01", all[0].Date)

	month, err := repo.ListRange(ctx, mia.ID, "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	assert.Len(t, month, 3)
}

func TestBloodSugarRepository_UpsertReplaces(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()
	mia := createUser(t, NewUserRepository(gormDB), "mia")
	repo := NewBloodSugarRepository(gormDB)

	note := "before walk"
	first, err := repo.Upsert(ctx, &model.BloodSugarEntry{UserID: mia.ID, Date: "2024-05-01", Type: model.MeasureFasting, Value: 5.0, Note: &note})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, &model.BloodSugarEntry{UserID: mia.ID, Date: "2024-05-01", Type: model.MeasureFasting, Value: 5.9})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5.9, second.Value)
	assert.Nil(t, second.Note)

	other, err := repo.Upsert(ctx, &model.BloodSugarEntry{UserID: mia.ID, Date: "2024-05-01", Type: model.MeasureAfterLunch, Value: 6.1})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	list, err := repo.List(ctx, mia.ID, "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBloodSugarRepository_UniqueKeyOnUpdate(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()
	mia := createUser(t, NewUserRepository(gormDB), "mia")
	repo := NewBloodSugarRepository(gormDB)

	_, err := repo.Upsert(ctx, &model.BloodSugarEntry{UserID: mia.ID, Date: "2024-05-01", Type: model.MeasureFasting, Value: 5.0})
	require.NoError(t, err)
	lunch, err := repo.Upsert(ctx, &model.BloodSugarEntry{UserID: mia.ID, Date: "2024-05-01", Type: model.MeasureAfterLunch, Value: 6.0})
	require.NoError(t, err)

	fasting := model.MeasureFasting
	err = repo.Update(ctx, lunch.ID, mia.ID, BloodSugarPatch{Type: &fasting})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestBloodSugarPatch_ClearsOptionalFields(t *testing.T) {
	blank := ""
	u := BloodSugarPatch{Note: &blank}.Updates()
	require.Contains(t, u, "note")
	assert.Nil(t, u["note"])
	assert.True(t, BloodSugarPatch{}.Empty())
}

func TestFoodCatalogRepository_Search(t *testing.T) {
	repo := NewFoodCatalogRepository(setupDB(t))
	ctx := context.Background()

	for _, e := range []model.FoodCatalogEntry{
		{Name: "Brown rice", Category: "staple"},
		{Name: "Spinach", Category: "vegetable"},
		{Name: "100% juice", Category: "fruit"},
	} {
		entry := e
		require.NoError(t, repo.Create(ctx, &entry))
	}

	found, err := repo.Search(ctx, "RICE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Brown rice", found[0].Name)

	found, err = repo.Search(ctx, "veg")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.Search(ctx, "%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "100% juice", found[0].Name)

	byName, err := repo.FindByName(ctx, "spinach")
	require.NoError(t, err)
	assert.Equal(t, "Spinach", byName.Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestFoodCatalogRepository_UpdateNutrients(t *testing.T) {
	repo := NewFoodCatalogRepository(setupDB(t))
	ctx := context.Background()

	entry := &model.FoodCatalogEntry{Name: "Milk", Category: "protein", Nutrients: model.NutrientProfile{Calories: 54}}
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, repo.Update(ctx, entry.ID, CatalogPatch{Nutrients: &model.NutrientProfile{Calories: 61, Calcium: 113, VitaminA: 46}}))

	stored, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 61.0, stored.Nutrients.Calories)
	assert.Equal(t, 113.0, stored.Nutrients.Calcium)
	assert.Equal(t, 46.0, stored.Nutrients.VitaminA)

	assert.ErrorIs(t, repo.Delete(ctx, entry.ID+10), gorm.ErrRecordNotFound)
}
