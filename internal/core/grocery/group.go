package grocery

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Group 依分類分組並在組內依名稱排序
// 沒有項目的分類不會出現在結果中
func Group(items map[string]*AggregatedItem, checked map[string]bool) map[Category][]Row {
	grouped := make(map[Category][]Row)
	for _, item := range items {
		meals := item.Contributors
		if meals == nil {
			meals = []string{}
		}
		grouped[item.Category] = append(grouped[item.Category], Row{
			ItemKey:          item.ItemKey,
			Checked:          checked[item.ItemKey],
			Name:             item.DisplayName,
			CombinedQuantity: FormatCombined(item.Totals),
			Meals:            meals,
			Totals:           item.Totals,
			Source:           item.Source,
		})
	}

	col := collate.New(language.Und)
	for category := range grouped {
		rows := grouped[category]
		sort.SliceStable(rows, func(i, j int) bool {
			if c := col.CompareString(rows[i].Name, rows[j].Name); c != 0 {
				return c < 0
			}
			// 同名時（如食材與家用品同名）以 itemKey 排序保持穩定
			return rows[i].ItemKey < rows[j].ItemKey
		})
	}
	return grouped
}
