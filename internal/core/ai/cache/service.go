package cache

import (
	"context"
	"fmt"

	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// Service Redis 二級緩存服務，跨行程共享模型回應與動作結果
type Service struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewService 創建緩存服務；Redis 未啟用時回傳只做空操作的實例
func NewService(cfg *config.CacheConfig) (*Service, error) {
	if !cfg.Redis.Enabled {
		return &Service{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Service{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存
func (s *Service) Get(ctx context.Context, kind, key string) (string, error) {
	if s == nil || s.client == nil {
		return "", fmt.Errorf("redis cache is disabled")
	}

	data, err := s.client.Get(ctx, s.generateKey(kind, key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("cache miss")
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	return data, nil
}

// Set 設置緩存
func (s *Service) Set(ctx context.Context, kind, key, value string) error {
	if s == nil || s.client == nil {
		return nil
	}

	if err := s.client.Set(ctx, s.generateKey(kind, key), value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// generateKey 生成緩存鍵
func (s *Service) generateKey(kind, key string) string {
	return fmt.Sprintf("rumi:%s:%s", kind, key)
}

// Close 關閉 Redis 連線
func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
