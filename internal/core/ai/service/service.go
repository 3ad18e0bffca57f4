package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/andysooho/cooking-rumi/internal/core/ai/cache"
	"github.com/andysooho/cooking-rumi/internal/core/ai/provider"
	gemini "github.com/andysooho/cooking-rumi/internal/core/service"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"
)

// Response AI 回應結構
type Response struct {
	Content string
}

// Service AI 服務：統一處理緩存、頻率限制與模型呼叫
type Service struct {
	config       *config.Config
	provider     provider.Provider
	cacheManager *cache.CacheManager
	redisCache   *cache.Service
	mu           sync.Mutex
	lastRequest  time.Time
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, cacheManager *cache.CacheManager, redisCache *cache.Service) (*Service, error) {
	return &Service{
		config:       cfg,
		provider:     gemini.NewGeminiService(cfg),
		cacheManager: cacheManager,
		redisCache:   redisCache,
	}, nil
}

// NewServiceWithProvider 以自訂提供者創建 AI 服務，測試時注入替身用
func NewServiceWithProvider(cfg *config.Config, p provider.Provider, cacheManager *cache.CacheManager, redisCache *cache.Service) *Service {
	return &Service{
		config:       cfg,
		provider:     p,
		cacheManager: cacheManager,
		redisCache:   redisCache,
	}
}

// ProcessRequest 統一對外方法：查緩存、呼叫模型、寫回緩存
func (s *Service) ProcessRequest(ctx context.Context, model, prompt string, parts []provider.InlinePart) (*Response, error) {
	if err := s.checkRequestRate(); err != nil {
		return nil, err
	}

	prompt = strings.TrimSpace(prompt)
	key := s.requestKey(model, prompt, parts)

	// 先查行程內緩存，再查 Redis
	if s.config.Cache.Enabled {
		if val, err := s.cacheManager.Get(ctx, "prompt", key); err == nil && val != "" {
			return &Response{Content: val}, nil
		}
		if val, err := s.redisCache.Get(ctx, "prompt", key); err == nil && val != "" {
			_ = s.cacheManager.Set(ctx, "prompt", key, val)
			return &Response{Content: val}, nil
		}
	}

	start := time.Now()
	content, err := s.provider.GenerateText(ctx, &provider.TextRequest{
		Model:  model,
		Prompt: prompt,
		Parts:  parts,
	})
	common.LogAICall("text", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if s.config.Cache.Enabled {
		_ = s.cacheManager.Set(ctx, "prompt", key, content)
		_ = s.redisCache.Set(ctx, "prompt", key, content)
	}

	return &Response{Content: content}, nil
}

// GenerateImage 生成圖片並以提示為鍵緩存 data URL
// 圖片生成是並行的 best-effort 路徑，不套用最小請求間隔
func (s *Service) GenerateImage(ctx context.Context, model, prompt string) (*provider.ImageResult, error) {
	key := s.requestKey(model, prompt, nil)

	if s.config.Cache.Enabled {
		if val, err := s.cacheManager.Get(ctx, "image", key); err == nil && val != "" {
			return decodeImageValue(val)
		}
	}

	start := time.Now()
	result, err := s.provider.GenerateImage(ctx, model, prompt)
	common.LogAICall("image", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if s.config.Cache.Enabled {
		_ = s.cacheManager.Set(ctx, "image", key, result.MimeType+"|"+result.Data)
	}

	return result, nil
}

// decodeImageValue 還原緩存中的圖片條目（mime|base64）
func decodeImageValue(value string) (*provider.ImageResult, error) {
	sep := strings.Index(value, "|")
	if sep <= 0 {
		return nil, errors.New("corrupted cached image entry")
	}
	return &provider.ImageResult{
		MimeType: value[:sep],
		Data:     value[sep+1:],
	}, nil
}

// requestKey 以模型、提示與內嵌資料計算緩存鍵
func (s *Service) requestKey(model, prompt string, parts []provider.InlinePart) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	for _, part := range parts {
		h.Write([]byte{0})
		h.Write([]byte(part.MimeType))
		h.Write([]byte{0})
		h.Write([]byte(part.Data))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// checkRequestRate 檢查對模型的最小請求間隔
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.RateLimit.Enabled && s.config.RateLimit.Requests > 0 {
		minInterval := s.config.RateLimit.Window / time.Duration(s.config.RateLimit.Requests)
		if now.Sub(s.lastRequest) < minInterval {
			return errors.New("request rate limit exceeded")
		}
	}

	s.lastRequest = now
	return nil
}
