package grocery

import (
	"context"
	"fmt"
)

// MergeCheckState 取得 itemKeys 中已勾選的鍵
// 空集合直接回傳，不查詢儲存層
func MergeCheckState(ctx context.Context, store CheckStore, userID int64, itemKeys []string) (map[string]bool, error) {
	if len(itemKeys) == 0 {
		return map[string]bool{}, nil
	}

	checked, err := store.GetCheckedKeys(ctx, userID, itemKeys)
	if err != nil {
		return nil, fmt.Errorf("get checked keys: %w", err)
	}
	if checked == nil {
		checked = map[string]bool{}
	}
	return checked, nil
}
