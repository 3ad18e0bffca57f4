package cache

import (
	"context"
	"testing"
	"time"

	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
)

func cacheConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestManagerDisabled(t *testing.T) {
	cfg := &config.Config{}
	m := NewManager(cfg)
	if m != nil {
		t.Fatal("disabled cache should return nil manager")
	}

	// nil 管理器的所有操作都必須安全
	if err := m.Set(context.Background(), "prompt", "k", "v"); err != nil {
		t.Errorf("nil manager Set should be a no-op, got %v", err)
	}
	if _, err := m.Get(context.Background(), "prompt", "k"); err == nil {
		t.Error("nil manager Get should report a miss")
	}
	if err := m.Close(); err != nil {
		t.Errorf("nil manager Close should be a no-op, got %v", err)
	}
	stats := m.GetStats()
	if enabled, ok := stats["enabled"].(bool); !ok || enabled {
		t.Errorf("stats = %v, want enabled=false", stats)
	}
}

func TestManagerSetGet(t *testing.T) {
	m := NewManager(cacheConfig(10, time.Minute))
	defer m.Close()

	ctx := context.Background()
	if err := m.Set(ctx, "action", "양파|도마", `{"result":"다진 양파"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := m.Get(ctx, "action", "양파|도마")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `{"result":"다진 양파"}` {
		t.Errorf("Get = %q", got)
	}

	// 不同 kind 是不同鍵空間
	if _, err := m.Get(ctx, "prompt", "양파|도마"); err == nil {
		t.Error("different kind should miss")
	}
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(cacheConfig(10, 10*time.Millisecond))
	defer m.Close()

	ctx := context.Background()
	if err := m.Set(ctx, "prompt", "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, err := m.Get(ctx, "prompt", "k"); err == nil {
		t.Error("expired entry should miss")
	}
}

func TestManagerEviction(t *testing.T) {
	m := NewManager(cacheConfig(2, time.Minute))
	defer m.Close()

	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		if err := m.Set(ctx, "prompt", key, key); err != nil {
			t.Fatalf("Set(%q) failed: %v", key, err)
		}
	}

	stats := m.GetStats()
	if size, ok := stats["size"].(int); !ok || size > 2 {
		t.Errorf("size = %v, want at most 2 after LRU eviction", stats["size"])
	}
}
