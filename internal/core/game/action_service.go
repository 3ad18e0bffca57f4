package game

import (
	"context"
	"strings"

	"github.com/andysooho/cooking-rumi/internal/core/ai/cache"
	aiservice "github.com/andysooho/cooking-rumi/internal/core/ai/service"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"go.uber.org/zap"
)

// ActionResult 烹飪動作的結果與其產生來源
type ActionResult struct {
	common.CookingActionResponse
	Source common.ContentSource `json:"source"`
}

// ActionService 烹飪動作服務。
// 同一組 (食材, 道具) 的結果會被緩存，重複操作不再打模型。
type ActionService struct {
	aiService    *aiservice.Service
	cacheManager *cache.CacheManager
	redisCache   *cache.Service
	config       *config.Config
}

// NewActionService 創建烹飪動作服務
func NewActionService(ai *aiservice.Service, cacheManager *cache.CacheManager, redisCache *cache.Service, cfg *config.Config) *ActionService {
	return &ActionService{
		aiService:    ai,
		cacheManager: cacheManager,
		redisCache:   redisCache,
		config:       cfg,
	}
}

// actionKey (食材, 道具) 的緩存鍵，大小寫不敏感
func actionKey(ingredient, tool string) string {
	return strings.ToLower(ingredient + "|" + tool)
}

// PerformAction 計算食材與道具組合的結果。
// 查詢順序：行程內緩存、Redis、模型；模型失敗時回退到確定性結果表。
func (s *ActionService) PerformAction(ctx context.Context, ingredient, tool, model string) (*ActionResult, error) {
	ingredient = strings.TrimSpace(ingredient)
	tool = strings.TrimSpace(tool)
	if ingredient == "" || tool == "" {
		return nil, common.NewValidationError("ingredient and tool are required")
	}

	key := actionKey(ingredient, tool)

	if cached, ok := s.lookupCache(ctx, key); ok {
		return &ActionResult{CookingActionResponse: *cached, Source: common.SourceCache}, nil
	}

	if model == "" {
		model = s.config.Gemini.ActionModel
	}

	action, source := s.resolveAction(ctx, ingredient, tool, model)
	s.storeCache(ctx, key, action)

	return &ActionResult{CookingActionResponse: action, Source: source}, nil
}

// resolveAction 呼叫模型並收斂結果，任何失敗都落回確定性結果表
func (s *ActionService) resolveAction(ctx context.Context, ingredient, tool, model string) (common.CookingActionResponse, common.ContentSource) {
	resp, err := s.aiService.ProcessRequest(ctx, model, buildCookingActionPrompt(ingredient, tool), nil)
	if err != nil {
		common.LogWarn("烹飪動作改用確定性結果",
			zap.String("ingredient", ingredient),
			zap.String("tool", tool),
			zap.Error(err),
		)
		return FallbackCookingAction(ingredient, tool), common.SourceFallback
	}

	var payload map[string]any
	if err := common.ExtractModelJSON(resp.Content, &payload); err != nil {
		common.LogWarn("烹飪動作回應無法解析", zap.Error(err))
		return FallbackCookingAction(ingredient, tool), common.SourceFallback
	}

	action, err := normalizeCookingAction(payload)
	if err != nil {
		common.LogWarn("烹飪動作回應欄位缺漏", zap.Error(err))
		return FallbackCookingAction(ingredient, tool), common.SourceFallback
	}

	return action, common.SourceModel
}

func (s *ActionService) lookupCache(ctx context.Context, key string) (*common.CookingActionResponse, bool) {
	decode := func(raw string) (*common.CookingActionResponse, bool) {
		var action common.CookingActionResponse
		if err := common.ParseJSON(raw, &action); err != nil || action.Result == "" {
			return nil, false
		}
		return &action, true
	}

	if raw, err := s.cacheManager.Get(ctx, "action", key); err == nil && raw != "" {
		if action, ok := decode(raw); ok {
			return action, true
		}
	}
	if raw, err := s.redisCache.Get(ctx, "action", key); err == nil && raw != "" {
		if action, ok := decode(raw); ok {
			_ = s.cacheManager.Set(ctx, "action", key, raw)
			return action, true
		}
	}
	return nil, false
}

func (s *ActionService) storeCache(ctx context.Context, key string, action common.CookingActionResponse) {
	raw, err := common.ToJSON(action)
	if err != nil {
		return
	}
	_ = s.cacheManager.Set(ctx, "action", key, raw)
	_ = s.redisCache.Set(ctx, "action", key, raw)
}
