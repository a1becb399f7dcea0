package grocery

import "strings"

// Source 項目來源
type Source string

const (
	SourceMeal      Source = "meal"
	SourceHousehold Source = "household"
)

// householdKeyPrefix 家用品鍵前綴，避免與同名食材合併
const householdKeyPrefix = "household:"

// DeriveKey 計算彙總鍵
// 名稱去除前後空白並轉小寫；空名稱仍回傳空字串鍵（不在此層驗證）
func DeriveKey(source Source, rawName string) string {
	key := strings.ToLower(strings.TrimSpace(rawName))
	if source == SourceHousehold {
		return householdKeyPrefix + key
	}
	return key
}

// NormalizeCheckKey 勾選狀態使用的鍵正規化
func NormalizeCheckKey(itemKey string) string {
	return strings.ToLower(strings.TrimSpace(itemKey))
}
