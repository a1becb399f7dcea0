package grocery

import "strings"

// Unit 數量單位
// 單位字串原樣作為累計鍵，不做任何換算（g 與 kg 各自累計）
type Unit string

const (
	UnitDefault Unit = "unit"
	UnitCup     Unit = "cup"
	UnitTbsp    Unit = "tbsp"
	UnitTsp     Unit = "tsp"
	UnitML      Unit = "ml"
	UnitL       Unit = "l"
	UnitG       Unit = "g"
	UnitKG      Unit = "kg"

	// UnitWithLove 非量測單位，顯示為 "with love"
	UnitWithLove Unit = "with_love"
)

// KnownUnits 前端可選的單位
var KnownUnits = []Unit{
	UnitDefault, UnitCup, UnitTbsp, UnitTsp, UnitML, UnitL, UnitG, UnitKG, UnitWithLove,
}

// ParseUnit 解析單位，空值視為 UnitDefault
func ParseUnit(raw string) Unit {
	if raw == "" {
		return UnitDefault
	}
	return Unit(raw)
}

// IsDefault 是否為預設單位
func (u Unit) IsDefault() bool {
	return u == UnitDefault
}

// Label 顯示用單位名稱
func (u Unit) Label() string {
	switch u {
	case UnitWithLove:
		return "with love"
	default:
		return string(u)
	}
}

// Category 食材或家用品分類
type Category string

// CategoryOther 未設定分類時的預設值
const CategoryOther Category = "other"

// IngredientCategories 食材分類
var IngredientCategories = []Category{
	"produce", "meats", "seafood", "dairy", "pantry", "frozen", "bakery", "beverages", CategoryOther,
}

// HouseholdCategories 家用品分類
var HouseholdCategories = []Category{
	"household", "personal_care", "pets", "cleaning", "paper_goods", "pantry", CategoryOther,
}

// ParseCategory 解析分類，空白視為 CategoryOther
func ParseCategory(raw string) Category {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CategoryOther
	}
	return Category(raw)
}
