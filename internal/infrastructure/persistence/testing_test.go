package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"meal-rotation/internal/infrastructure/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDatabase 建立獨立的 sqlite 記憶體資料庫並完成遷移
func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}, false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// newMockDB 以 sqlmock 模擬 postgres 連線
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

type seed struct {
	t  *testing.T
	db *gorm.DB
}

func (s seed) ingredient(userID int64, name, category string) Ingredient {
	row := Ingredient{UserID: userID, Name: name, Category: category}
	require.NoError(s.t, s.db.Create(&row).Error)
	return row
}

func (s seed) meal(userID int64, name string, servings int, items map[*Ingredient]*MealIngredient) Meal {
	row := Meal{UserID: userID, Name: name, Servings: servings}
	require.NoError(s.t, s.db.Create(&row).Error)
	for ing, mi := range items {
		mi.MealID = row.ID
		mi.IngredientID = ing.ID
		require.NoError(s.t, s.db.Create(mi).Error)
	}
	return row
}

func (s seed) entry(userID int64, week int, mealID int64, servings *int) RotationEntry {
	row := RotationEntry{UserID: userID, WeekNumber: week, MealID: mealID, Servings: servings}
	require.NoError(s.t, s.db.Create(&row).Error)
	return row
}

func (s seed) group(userID int64, name string, include bool, items map[*HouseholdItem]*HouseholdGroupItem) HouseholdGroup {
	row := HouseholdGroup{UserID: userID, Name: name, IncludeInGroceryList: include}
	require.NoError(s.t, s.db.Create(&row).Error)
	for item, gi := range items {
		gi.HouseholdGroupID = row.ID
		gi.HouseholdItemID = item.ID
		require.NoError(s.t, s.db.Create(gi).Error)
	}
	return row
}

func (s seed) householdItem(userID int64, name, category string) HouseholdItem {
	row := HouseholdItem{UserID: userID, Name: name, Category: category}
	require.NoError(s.t, s.db.Create(&row).Error)
	return row
}

func ptr[T any](v T) *T {
	return &v
}

var bg = context.Background()
