package grocery

import (
	"context"
	"errors"
	"fmt"

	"meal-rotation/internal/pkg/common"

	"go.uber.org/zap"
)

// ErrBuildList 無法建立採買清單（儲存層錯誤）
var ErrBuildList = errors.New("unable to build grocery list")

// CheckResult 勾選結果
type CheckResult struct {
	ItemKey string `json:"itemKey"`
	Checked bool   `json:"checked"`
}

// Service 採買清單服務
type Service struct {
	aggregator *Aggregator
	checks     CheckStore
}

// NewService 創建採買清單服務
func NewService(source SnapshotSource, checks CheckStore) *Service {
	return &Service{
		aggregator: NewAggregator(source),
		checks:     checks,
	}
}

// GetGroceryList 彙總指定週次的採買清單並附上勾選狀態
func (s *Service) GetGroceryList(ctx context.Context, userID int64, weeks []int) (*List, error) {
	weeks = NormalizeWeeks(weeks)

	items, err := s.aggregator.Aggregate(ctx, userID, weeks)
	if err != nil {
		common.LogError("彙總採買清單失敗",
			zap.Int64("user_id", userID),
			zap.Ints("weeks", weeks),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrBuildList, err)
	}

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}

	checked, err := MergeCheckState(ctx, s.checks, userID, keys)
	if err != nil {
		common.LogError("讀取勾選狀態失敗",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrBuildList, err)
	}

	common.LogDebug("採買清單已建立",
		zap.Int64("user_id", userID),
		zap.Ints("weeks", weeks),
		zap.Int("items", len(items)),
		zap.Int("checked", len(checked)),
	)

	return &List{
		Weeks: weeks,
		Items: Group(items, checked),
	}, nil
}

// SetGroceryCheck 設定勾選狀態
// 勾選時寫入（upsert），取消時刪除；重複操作皆為冪等
func (s *Service) SetGroceryCheck(ctx context.Context, userID int64, itemKey string, checked bool) (*CheckResult, error) {
	key := NormalizeCheckKey(itemKey)
	if key == "" {
		return nil, common.NewValidationError("itemKey is required")
	}

	var err error
	if checked {
		err = s.checks.UpsertCheck(ctx, userID, key)
	} else {
		err = s.checks.DeleteCheck(ctx, userID, key)
	}
	if err != nil {
		return nil, fmt.Errorf("save grocery check: %w", err)
	}

	return &CheckResult{ItemKey: key, Checked: checked}, nil
}

// ClearGroceryChecks 清除使用者所有勾選
func (s *Service) ClearGroceryChecks(ctx context.Context, userID int64) error {
	if err := s.checks.DeleteAllChecks(ctx, userID); err != nil {
		return fmt.Errorf("clear grocery checks: %w", err)
	}
	return nil
}
