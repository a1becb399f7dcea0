package grocery

import "math/big"

// ScaleFactor 計算份量縮放比例（有理數，避免 1/3 之類的比例被截斷）
// 基礎份量為 0 時視為 1；未指定份量時依食譜原樣（比例 1）
func ScaleFactor(entryServings *int, mealBaseServings int) *big.Rat {
	base := mealBaseServings
	if base <= 0 {
		base = 1
	}
	if entryServings == nil {
		return big.NewRat(1, 1)
	}
	return big.NewRat(int64(*entryServings), int64(base))
}
