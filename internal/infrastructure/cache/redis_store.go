package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"meal-rotation/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// RedisCheckStore 以 Redis Set 保存勾選狀態，每位使用者一個 key
type RedisCheckStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCheckStore 連線 Redis 並創建勾選儲存
func NewRedisCheckStore(cfg config.RedisConfig, keyPrefix string) (*RedisCheckStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCheckStoreWithClient(client, keyPrefix), nil
}

// NewRedisCheckStoreWithClient 使用既有的 client
func NewRedisCheckStoreWithClient(client *redis.Client, keyPrefix string) *RedisCheckStore {
	if keyPrefix == "" {
		keyPrefix = "grocery:checks:"
	}
	return &RedisCheckStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// userKey 使用者的 Set key
func (s *RedisCheckStore) userKey(userID int64) string {
	return s.keyPrefix + strconv.FormatInt(userID, 10)
}

// GetCheckedKeys 回傳 keys 中已勾選的鍵
func (s *RedisCheckStore) GetCheckedKeys(ctx context.Context, userID int64, keys []string) (map[string]bool, error) {
	checked := make(map[string]bool)
	if len(keys) == 0 {
		return checked, nil
	}

	members, err := s.client.SMembers(ctx, s.userKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read grocery checks: %w", err)
	}

	wanted := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		wanted[key] = struct{}{}
	}
	for _, member := range members {
		if _, ok := wanted[member]; ok {
			checked[member] = true
		}
	}
	return checked, nil
}

// UpsertCheck 寫入勾選
func (s *RedisCheckStore) UpsertCheck(ctx context.Context, userID int64, key string) error {
	if err := s.client.SAdd(ctx, s.userKey(userID), key).Err(); err != nil {
		return fmt.Errorf("failed to save grocery check: %w", err)
	}
	return nil
}

// DeleteCheck 刪除勾選
func (s *RedisCheckStore) DeleteCheck(ctx context.Context, userID int64, key string) error {
	if err := s.client.SRem(ctx, s.userKey(userID), key).Err(); err != nil {
		return fmt.Errorf("failed to delete grocery check: %w", err)
	}
	return nil
}

// DeleteAllChecks 刪除使用者所有勾選
func (s *RedisCheckStore) DeleteAllChecks(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, s.userKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear grocery checks: %w", err)
	}
	return nil
}

// Ping 檢查 Redis 連線
func (s *RedisCheckStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 關閉連線
func (s *RedisCheckStore) Close() error {
	return s.client.Close()
}
