package grocery

import (
	"context"
	"fmt"
	"math/big"
	"strings"
)

// Aggregator 彙總輪替餐點與家用品組合
type Aggregator struct {
	source SnapshotSource
}

// NewAggregator 創建彙總器
func NewAggregator(source SnapshotSource) *Aggregator {
	return &Aggregator{source: source}
}

// Aggregate 依週次彙總使用者的採買項目
// 回傳的 map 以 itemKey 為鍵，順序由 Group 決定
func (a *Aggregator) Aggregate(ctx context.Context, userID int64, weeks []int) (map[string]*AggregatedItem, error) {
	weeks = NormalizeWeeks(weeks)

	entries, err := a.source.ListRotationEntries(ctx, userID, weeks)
	if err != nil {
		return nil, fmt.Errorf("list rotation entries: %w", err)
	}

	groups, err := a.source.ListEligibleHouseholdGroups(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list household groups: %w", err)
	}

	items := make(map[string]*AggregatedItem)

	for _, entry := range entries {
		meal := entry.Meal
		// 引用已刪除或他人的餐點時略過
		if meal == nil || meal.OwnerID != userID {
			continue
		}
		scale := ScaleFactor(entry.Servings, meal.Servings)
		for _, ing := range meal.Ingredients {
			fold(items, SourceMeal, ing, meal.Name, scale)
		}
	}

	one := big.NewRat(1, 1)
	for _, group := range groups {
		for _, item := range group.Items {
			fold(items, SourceHousehold, item, group.Name, one)
		}
	}

	return items, nil
}

// fold 將單一項目併入彙總結果
func fold(items map[string]*AggregatedItem, source Source, line LineItem, contributor string, scale *big.Rat) {
	key := DeriveKey(source, line.Name)
	agg, ok := items[key]
	if !ok {
		agg = &AggregatedItem{
			ItemKey:     key,
			DisplayName: strings.TrimSpace(line.Name),
			Category:    ParseCategory(line.Category),
			Totals:      make(Totals),
			Source:      source,
		}
		items[key] = agg
	}
	agg.addContributor(contributor)
	agg.Totals.Fold(ParseUnit(line.QuantityUnit), line.QuantityValue, scale)
}
