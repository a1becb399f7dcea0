package persistence

import "time"

// Meal 餐點資料表
type Meal struct {
	ID          int64  `gorm:"primaryKey"`
	UserID      int64  `gorm:"not null;uniqueIndex:meal_name_user"`
	Name        string `gorm:"not null;uniqueIndex:meal_name_user"`
	Servings    int    `gorm:"not null;default:2"`
	Notes       *string
	Ingredients []MealIngredient `gorm:"foreignKey:MealID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ingredient 食材資料表
type Ingredient struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;uniqueIndex:ingredient_name_user"`
	Name      string `gorm:"not null;uniqueIndex:ingredient_name_user"`
	Category  string `gorm:"not null;default:other"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MealIngredient 餐點與食材的關聯（含數量）
type MealIngredient struct {
	MealID        int64 `gorm:"primaryKey"`
	IngredientID  int64 `gorm:"primaryKey"`
	QuantityValue *float64
	QuantityUnit  *string
	Ingredient    Ingredient `gorm:"foreignKey:IngredientID"`
}

// RotationEntry 輪替項目資料表
type RotationEntry struct {
	ID         int64 `gorm:"primaryKey"`
	UserID     int64 `gorm:"not null;index"`
	WeekNumber int   `gorm:"not null"`
	MealID     int64 `gorm:"not null"`
	Servings   *int
	Meal       *Meal `gorm:"foreignKey:MealID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HouseholdGroup 家用品組合資料表
type HouseholdGroup struct {
	ID                   int64  `gorm:"primaryKey"`
	UserID               int64  `gorm:"not null;uniqueIndex:household_group_user"`
	Name                 string `gorm:"not null;uniqueIndex:household_group_user"`
	Category             string `gorm:"not null;default:other"`
	Notes                *string
	IncludeInGroceryList bool                 `gorm:"not null"`
	Items                []HouseholdGroupItem `gorm:"foreignKey:HouseholdGroupID"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// HouseholdItem 家用品資料表
type HouseholdItem struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null"`
	Name      string `gorm:"not null"`
	Category  string `gorm:"not null;default:other"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HouseholdGroupItem 組合與家用品的關聯（含數量）
type HouseholdGroupItem struct {
	HouseholdGroupID int64 `gorm:"primaryKey"`
	HouseholdItemID  int64 `gorm:"primaryKey"`
	QuantityValue    *float64
	QuantityUnit     *string
	Item             HouseholdItem `gorm:"foreignKey:HouseholdItemID"`
}

// GroceryCheck 勾選狀態；沒有資料列即為未勾選
type GroceryCheck struct {
	ID        int64  `gorm:"primaryKey"`
	UserID    int64  `gorm:"not null;uniqueIndex:user_item_check"`
	ItemKey   string `gorm:"not null;uniqueIndex:user_item_check"`
	Checked   bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllModels AutoMigrate 使用的模型列表
func AllModels() []interface{} {
	return []interface{}{
		&Meal{},
		&Ingredient{},
		&MealIngredient{},
		&RotationEntry{},
		&HouseholdGroup{},
		&HouseholdItem{},
		&HouseholdGroupItem{},
		&GroceryCheck{},
	}
}
