package persistence

import (
	"context"
	"fmt"
	"time"

	"meal-rotation/internal/core/grocery"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGroceryRepository 以 GORM 提供採買清單的資料快照
type GormGroceryRepository struct {
	db *gorm.DB
}

// NewGormGroceryRepository 創建 GormGroceryRepository
func NewGormGroceryRepository(db *gorm.DB) *GormGroceryRepository {
	return &GormGroceryRepository{db: db}
}

// ListRotationEntries 取得指定週次的輪替項目
// 餐點只在屬於同一使用者時載入，否則 Meal 為 nil
func (r *GormGroceryRepository) ListRotationEntries(ctx context.Context, userID int64, weeks []int) ([]grocery.RotationEntrySnapshot, error) {
	var entries []RotationEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND week_number IN ?", userID, weeks).
		Preload("Meal", "user_id = ?", userID).
		Preload("Meal.Ingredients.Ingredient").
		Order("week_number ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("query rotation entries: %w", err)
	}

	snapshots := make([]grocery.RotationEntrySnapshot, len(entries))
	for i, entry := range entries {
		snapshots[i] = grocery.RotationEntrySnapshot{
			ID:         entry.ID,
			WeekNumber: entry.WeekNumber,
			Servings:   entry.Servings,
			Meal:       toMealSnapshot(entry.Meal),
		}
	}
	return snapshots, nil
}

// ListEligibleHouseholdGroups 取得納入採買清單的家用品組合
func (r *GormGroceryRepository) ListEligibleHouseholdGroups(ctx context.Context, userID int64) ([]grocery.HouseholdGroupSnapshot, error) {
	var groups []HouseholdGroup
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND include_in_grocery_list = ?", userID, true).
		Preload("Items.Item").
		Order("id ASC").
		Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("query household groups: %w", err)
	}

	snapshots := make([]grocery.HouseholdGroupSnapshot, len(groups))
	for i, group := range groups {
		items := make([]grocery.LineItem, len(group.Items))
		for j, gi := range group.Items {
			items[j] = grocery.LineItem{
				Name:          gi.Item.Name,
				Category:      gi.Item.Category,
				QuantityValue: gi.QuantityValue,
				QuantityUnit:  derefString(gi.QuantityUnit),
			}
		}
		snapshots[i] = grocery.HouseholdGroupSnapshot{
			ID:    group.ID,
			Name:  group.Name,
			Items: items,
		}
	}
	return snapshots, nil
}

func toMealSnapshot(meal *Meal) *grocery.MealSnapshot {
	if meal == nil {
		return nil
	}
	ingredients := make([]grocery.LineItem, len(meal.Ingredients))
	for i, mi := range meal.Ingredients {
		ingredients[i] = grocery.LineItem{
			Name:          mi.Ingredient.Name,
			Category:      mi.Ingredient.Category,
			QuantityValue: mi.QuantityValue,
			QuantityUnit:  derefString(mi.QuantityUnit),
		}
	}
	return &grocery.MealSnapshot{
		ID:          meal.ID,
		OwnerID:     meal.UserID,
		Name:        meal.Name,
		Servings:    meal.Servings,
		Ingredients: ingredients,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GormCheckStore 以資料表保存勾選狀態
type GormCheckStore struct {
	db *gorm.DB
}

// NewGormCheckStore 創建 GormCheckStore
func NewGormCheckStore(db *gorm.DB) *GormCheckStore {
	return &GormCheckStore{db: db}
}

// GetCheckedKeys 回傳 keys 中 checked = true 的鍵
func (s *GormCheckStore) GetCheckedKeys(ctx context.Context, userID int64, keys []string) (map[string]bool, error) {
	checked := make(map[string]bool)
	if len(keys) == 0 {
		return checked, nil
	}

	var found []string
	if err := s.db.WithContext(ctx).
		Model(&GroceryCheck{}).
		Where("user_id = ? AND item_key IN ? AND checked = ?", userID, keys, true).
		Pluck("item_key", &found).Error; err != nil {
		return nil, fmt.Errorf("query grocery checks: %w", err)
	}
	for _, key := range found {
		checked[key] = true
	}
	return checked, nil
}

// UpsertCheck 寫入勾選（已存在則更新）
func (s *GormCheckStore) UpsertCheck(ctx context.Context, userID int64, key string) error {
	now := time.Now()
	row := &GroceryCheck{
		UserID:    userID,
		ItemKey:   key,
		Checked:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "item_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"checked":    true,
				"updated_at": now,
			}),
		}).
		Create(row).Error; err != nil {
		return fmt.Errorf("upsert grocery check: %w", err)
	}
	return nil
}

// DeleteCheck 刪除勾選；不存在時為 no-op
func (s *GormCheckStore) DeleteCheck(ctx context.Context, userID int64, key string) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND item_key = ?", userID, key).
		Delete(&GroceryCheck{}).Error; err != nil {
		return fmt.Errorf("delete grocery check: %w", err)
	}
	return nil
}

// DeleteAllChecks 刪除使用者所有勾選
func (s *GormCheckStore) DeleteAllChecks(ctx context.Context, userID int64) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&GroceryCheck{}).Error; err != nil {
		return fmt.Errorf("clear grocery checks: %w", err)
	}
	return nil
}
