package persistence

import (
	"errors"
	"testing"

	"meal-rotation/internal/core/grocery"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormGroceryRepository_ListRotationEntries(t *testing.T) {
	db := newTestDatabase(t)
	s := seed{t: t, db: db.DB}

	flour := s.ingredient(1, "Flour", "pantry")
	salt := s.ingredient(1, "Salt", "")
	pancakes := s.meal(1, "Pancakes", 2, map[*Ingredient]*MealIngredient{
		&flour: {QuantityValue: ptr(2.0), QuantityUnit: ptr("cup")},
		&salt:  {},
	})
	foreign := s.meal(2, "Someone else's soup", 4, nil)

	s.entry(1, 1, pancakes.ID, ptr(4))
	s.entry(1, 3, pancakes.ID, nil)
	s.entry(1, 2, foreign.ID, nil)
	s.entry(2, 1, foreign.ID, nil)

	repo := NewGormGroceryRepository(db.DB)

	t.Run("filters by user and week", func(t *testing.T) {
		entries, err := repo.ListRotationEntries(bg, 1, []int{1, 2})
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, 1, entries[0].WeekNumber)
		require.NotNil(t, entries[0].Meal)
		assert.Equal(t, "Pancakes", entries[0].Meal.Name)
		assert.Equal(t, 2, entries[0].Meal.Servings)
		assert.Equal(t, 4, *entries[0].Servings)
		assert.Len(t, entries[0].Meal.Ingredients, 2)

		assert.Equal(t, 2, entries[1].WeekNumber)
		assert.Nil(t, entries[1].Meal, "meal owned by another user must not resolve")
	})

	t.Run("maps quantities", func(t *testing.T) {
		entries, err := repo.ListRotationEntries(bg, 1, []int{1})
		require.NoError(t, err)
		require.Len(t, entries, 1)

		byName := map[string]grocery.LineItem{}
		for _, item := range entries[0].Meal.Ingredients {
			byName[item.Name] = item
		}
		assert.Equal(t, "cup", byName["Flour"].QuantityUnit)
		assert.Equal(t, 2.0, *byName["Flour"].QuantityValue)
		assert.Nil(t, byName["Salt"].QuantityValue)
		assert.Equal(t, "", byName["Salt"].QuantityUnit)
	})
}

func TestGormGroceryRepository_ListEligibleHouseholdGroups(t *testing.T) {
	db := newTestDatabase(t)
	s := seed{t: t, db: db.DB}

	food := s.householdItem(1, "Kibble", "pets")
	towels := s.householdItem(1, "Paper towels", "paper_goods")
	s.group(1, "Dog essentials", true, map[*HouseholdItem]*HouseholdGroupItem{
		&food: {QuantityValue: ptr(2.0), QuantityUnit: ptr("kg")},
	})
	s.group(1, "Someday", false, map[*HouseholdItem]*HouseholdGroupItem{
		&towels: {QuantityValue: ptr(6.0)},
	})
	s.group(2, "Other user", true, nil)

	groups, err := NewGormGroceryRepository(db.DB).ListEligibleHouseholdGroups(bg, 1)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Dog essentials", groups[0].Name)
	require.Len(t, groups[0].Items, 1)
	assert.Equal(t, "Kibble", groups[0].Items[0].Name)
	assert.Equal(t, "pets", groups[0].Items[0].Category)
	assert.Equal(t, "kg", groups[0].Items[0].QuantityUnit)
}

func TestGroceryListFromDatabase(t *testing.T) {
	db := newTestDatabase(t)
	s := seed{t: t, db: db.DB}

	rice := s.ingredient(1, "Rice", "pantry")
	risotto := s.meal(1, "Risotto", 2, map[*Ingredient]*MealIngredient{
		&rice: {QuantityValue: ptr(1.0), QuantityUnit: ptr("cup")},
	})
	s.entry(1, 1, risotto.ID, ptr(4))

	bulkRice := s.householdItem(1, "Rice", "pantry")
	s.group(1, "Bulk", true, map[*HouseholdItem]*HouseholdGroupItem{
		&bulkRice: {QuantityValue: ptr(5.0), QuantityUnit: ptr("kg")},
	})

	svc := grocery.NewService(NewGormGroceryRepository(db.DB), NewGormCheckStore(db.DB))
	_, err := svc.SetGroceryCheck(bg, 1, "Household:Rice", true)
	require.NoError(t, err)

	list, err := svc.GetGroceryList(bg, 1, nil)
	require.NoError(t, err)

	rows := list.Items["pantry"]
	require.Len(t, rows, 2)
	assert.Equal(t, "household:rice", rows[0].ItemKey)
	assert.True(t, rows[0].Checked)
	assert.Equal(t, "5 kg", rows[0].CombinedQuantity)
	assert.Equal(t, "rice", rows[1].ItemKey)
	assert.False(t, rows[1].Checked)
	assert.Equal(t, "2 cup", rows[1].CombinedQuantity)
}

func TestGormCheckStore(t *testing.T) {
	db := newTestDatabase(t)
	store := NewGormCheckStore(db.DB)

	t.Run("upsert is idempotent", func(t *testing.T) {
		require.NoError(t, store.UpsertCheck(bg, 1, "milk"))
		require.NoError(t, store.UpsertCheck(bg, 1, "milk"))

		var count int64
		require.NoError(t, db.DB.Model(&GroceryCheck{}).
			Where("user_id = ? AND item_key = ?", 1, "milk").
			Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("get checked keys is restricted to requested keys and user", func(t *testing.T) {
		require.NoError(t, store.UpsertCheck(bg, 1, "eggs"))
		require.NoError(t, store.UpsertCheck(bg, 2, "bread"))

		checked, err := store.GetCheckedKeys(bg, 1, []string{"milk", "bread"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"milk": true}, checked)
	})

	t.Run("stored false is treated as unchecked", func(t *testing.T) {
		require.NoError(t, db.DB.Create(&GroceryCheck{UserID: 1, ItemKey: "butter", Checked: false}).Error)

		checked, err := store.GetCheckedKeys(bg, 1, []string{"butter"})
		require.NoError(t, err)
		assert.Empty(t, checked)
	})

	t.Run("delete missing row is a no-op", func(t *testing.T) {
		require.NoError(t, store.DeleteCheck(bg, 1, "never-checked"))
	})

	t.Run("delete and clear", func(t *testing.T) {
		require.NoError(t, store.DeleteCheck(bg, 1, "milk"))
		checked, err := store.GetCheckedKeys(bg, 1, []string{"milk", "eggs"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"eggs": true}, checked)

		require.NoError(t, store.DeleteAllChecks(bg, 1))
		checked, err = store.GetCheckedKeys(bg, 1, []string{"eggs"})
		require.NoError(t, err)
		assert.Empty(t, checked)

		other, err := store.GetCheckedKeys(bg, 2, []string{"bread"})
		require.NoError(t, err)
		assert.True(t, other["bread"])
	})

	t.Run("empty keys skip the query", func(t *testing.T) {
		checked, err := store.GetCheckedKeys(bg, 1, nil)
		require.NoError(t, err)
		assert.Empty(t, checked)
	})
}

func TestGormCheckStore_Postgres(t *testing.T) {
	t.Run("reads checked keys", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT "item_key" FROM "grocery_checks" WHERE`).
			WillReturnRows(sqlmock.NewRows([]string{"item_key"}).AddRow("rice"))

		checked, err := NewGormCheckStore(gormDB).GetCheckedKeys(bg, 1, []string{"rice", "salt"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"rice": true}, checked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("upsert uses on conflict", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`INSERT INTO "grocery_checks" .* ON CONFLICT \("user_id","item_key"\) DO UPDATE SET`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		require.NoError(t, NewGormCheckStore(gormDB).UpsertCheck(bg, 1, "rice"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates delete errors", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		boom := errors.New("connection reset")
		mock.ExpectExec(`DELETE FROM "grocery_checks" WHERE user_id = \$1`).
			WithArgs(1).
			WillReturnError(boom)

		err := NewGormCheckStore(gormDB).DeleteAllChecks(bg, 1)
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormGroceryRepository_Postgres(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	boom := errors.New("too many connections")
	mock.ExpectQuery(`SELECT \* FROM "rotation_entries" WHERE`).
		WillReturnError(boom)

	svc := grocery.NewService(NewGormGroceryRepository(gormDB), NewGormCheckStore(gormDB))
	_, err := svc.GetGroceryList(bg, 1, []int{1})
	assert.ErrorIs(t, err, grocery.ErrBuildList)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
