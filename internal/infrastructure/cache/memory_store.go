package cache

import (
	"context"
	"sync"

	"meal-rotation/internal/pkg/common"

	"go.uber.org/zap"
)

// MemoryCheckStore 記憶體內的勾選狀態儲存
// 僅適用於單一實例或測試，重啟後狀態即遺失
type MemoryCheckStore struct {
	mu    sync.RWMutex
	store map[int64]map[string]struct{}
}

// NewMemoryCheckStore 創建記憶體勾選儲存
func NewMemoryCheckStore() *MemoryCheckStore {
	common.LogInfo("記憶體勾選儲存已初始化")
	return &MemoryCheckStore{
		store: make(map[int64]map[string]struct{}),
	}
}

// GetCheckedKeys 回傳 keys 中已勾選的鍵
func (m *MemoryCheckStore) GetCheckedKeys(ctx context.Context, userID int64, keys []string) (map[string]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	checked := make(map[string]bool)
	userKeys := m.store[userID]
	for _, key := range keys {
		if _, ok := userKeys[key]; ok {
			checked[key] = true
		}
	}
	return checked, nil
}

// UpsertCheck 寫入勾選
func (m *MemoryCheckStore) UpsertCheck(ctx context.Context, userID int64, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	userKeys, ok := m.store[userID]
	if !ok {
		userKeys = make(map[string]struct{})
		m.store[userID] = userKeys
	}
	userKeys[key] = struct{}{}
	return nil
}

// DeleteCheck 刪除勾選
func (m *MemoryCheckStore) DeleteCheck(ctx context.Context, userID int64, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if userKeys, ok := m.store[userID]; ok {
		delete(userKeys, key)
		if len(userKeys) == 0 {
			delete(m.store, userID)
		}
	}
	return nil
}

// DeleteAllChecks 刪除使用者所有勾選
func (m *MemoryCheckStore) DeleteAllChecks(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.store, userID)
	return nil
}

// Count 使用者目前的勾選數
func (m *MemoryCheckStore) Count(userID int64) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store[userID])
}

// Close 關閉儲存
func (m *MemoryCheckStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	common.LogInfo("記憶體勾選儲存已關閉",
		zap.Int("使用者數", len(m.store)),
	)
	m.store = make(map[int64]map[string]struct{})
	return nil
}
