package grocery

import "context"

// LineItem 餐點食材或家用品組合中的一項（含數量）
type LineItem struct {
	Name          string
	Category      string
	QuantityValue *float64
	QuantityUnit  string
}

// MealSnapshot 輪替項目所引用的餐點
type MealSnapshot struct {
	ID          int64
	OwnerID     int64
	Name        string
	Servings    int
	Ingredients []LineItem
}

// RotationEntrySnapshot 輪替項目；Meal 為 nil 表示引用無法解析
type RotationEntrySnapshot struct {
	ID         int64
	WeekNumber int
	Servings   *int
	Meal       *MealSnapshot
}

// HouseholdGroupSnapshot 已納入採買清單的家用品組合
type HouseholdGroupSnapshot struct {
	ID    int64
	Name  string
	Items []LineItem
}

// SnapshotSource 採買清單所需的唯讀資料來源
type SnapshotSource interface {
	// ListRotationEntries 取得使用者指定週次的輪替項目（含餐點與食材）
	ListRotationEntries(ctx context.Context, userID int64, weeks []int) ([]RotationEntrySnapshot, error)

	// ListEligibleHouseholdGroups 取得 includeInGroceryList 為 true 的家用品組合
	ListEligibleHouseholdGroups(ctx context.Context, userID int64) ([]HouseholdGroupSnapshot, error)
}

// CheckStore 勾選狀態儲存
type CheckStore interface {
	GetCheckedKeys(ctx context.Context, userID int64, keys []string) (map[string]bool, error)
	UpsertCheck(ctx context.Context, userID int64, key string) error
	DeleteCheck(ctx context.Context, userID int64, key string) error
	DeleteAllChecks(ctx context.Context, userID int64) error
}

// AggregatedItem 彙總後的單一採買項目
type AggregatedItem struct {
	ItemKey      string
	DisplayName  string
	Category     Category
	Totals       Totals
	Contributors []string
	Source       Source

	seen map[string]struct{}
}

// addContributor 記錄貢獻的餐點或組合名稱（保留首次出現順序）
func (a *AggregatedItem) addContributor(name string) {
	if a.seen == nil {
		a.seen = make(map[string]struct{})
	}
	if _, ok := a.seen[name]; ok {
		return
	}
	a.seen[name] = struct{}{}
	a.Contributors = append(a.Contributors, name)
}

// Row 輸出列
type Row struct {
	ItemKey          string   `json:"itemKey"`
	Checked          bool     `json:"checked"`
	Name             string   `json:"name"`
	CombinedQuantity string   `json:"combinedQuantity"`
	Meals            []string `json:"meals"`
	Totals           Totals   `json:"totals"`
	Source           Source   `json:"source"`
}

// List 採買清單
type List struct {
	Weeks []int              `json:"weeks"`
	Items map[Category][]Row `json:"items"`
}
