package grocery

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	minWeek = 1
	maxWeek = 4
)

// AllWeeks 完整輪替週次
func AllWeeks() []int {
	return []int{1, 2, 3, 4}
}

// ParseWeeks 解析逗號分隔的週次參數，例如 "1, 3"
// 整數值（含 "2.0" 寫法）才會保留，其餘與超出範圍的值會被忽略；結果為空時回傳全部週次
func ParseWeeks(raw string) []int {
	if strings.TrimSpace(raw) == "" {
		return AllWeeks()
	}

	var weeks []int
	for _, part := range strings.Split(raw, ",") {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || value != math.Trunc(value) {
			continue
		}
		if value < minWeek || value > maxWeek {
			continue
		}
		weeks = append(weeks, int(value))
	}
	return NormalizeWeeks(weeks)
}

// NormalizeWeeks 過濾、去重並排序週次
func NormalizeWeeks(weeks []int) []int {
	seen := make(map[int]struct{}, len(weeks))
	result := make([]int, 0, len(weeks))
	for _, week := range weeks {
		if week < minWeek || week > maxWeek {
			continue
		}
		if _, ok := seen[week]; ok {
			continue
		}
		seen[week] = struct{}{}
		result = append(result, week)
	}
	if len(result) == 0 {
		return AllWeeks()
	}
	sort.Ints(result)
	return result
}
