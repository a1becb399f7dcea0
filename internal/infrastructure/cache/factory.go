package cache

import (
	"fmt"

	"meal-rotation/internal/core/grocery"
	"meal-rotation/internal/infrastructure/config"
	"meal-rotation/internal/infrastructure/persistence"
	"meal-rotation/internal/pkg/common"

	"go.uber.org/zap"
)

// NewCheckStore 依設定建立勾選狀態儲存
// database 後端需要 db；回傳的 closer 可能為 nil
func NewCheckStore(cfg *config.Config, db *persistence.Database) (grocery.CheckStore, func() error, error) {
	common.LogInfo("初始化勾選儲存", zap.String("backend", cfg.Checks.Backend))

	switch cfg.Checks.Backend {
	case config.ChecksBackendDatabase:
		if db == nil {
			return nil, nil, fmt.Errorf("database checks backend requires a database")
		}
		return persistence.NewGormCheckStore(db.DB), nil, nil
	case config.ChecksBackendRedis:
		store, err := NewRedisCheckStore(cfg.Redis, cfg.Checks.KeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.ChecksBackendMemory:
		store := NewMemoryCheckStore()
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported checks backend %q", cfg.Checks.Backend)
	}
}
