package game

import (
	"context"

	aiservice "github.com/andysooho/cooking-rumi/internal/core/ai/service"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeSelection 選菜結果
type RecipeSelection struct {
	Recipe common.RecipePlan    `json:"recipe"`
	Source common.ContentSource `json:"source"`
}

// RecipeService 目標食譜選擇服務
type RecipeService struct {
	aiService *aiservice.Service
	config    *config.Config
}

// NewRecipeService 創建食譜選擇服務
func NewRecipeService(ai *aiservice.Service, cfg *config.Config) *RecipeService {
	return &RecipeService{
		aiService: ai,
		config:    cfg,
	}
}

// SelectRecipe 依模式與食材挑選一道目標料理。
// 模型輸出逐欄位收斂，步驟不足四步時整份步驟退回確定性食譜。
func (s *RecipeService) SelectRecipe(ctx context.Context, mode common.GameMode, ingredients []common.Ingredient, model string) (*RecipeSelection, error) {
	if len(ingredients) == 0 {
		return nil, common.NewValidationError("ingredients must be a non-empty array")
	}

	if model == "" {
		model = s.config.Gemini.TextModel
	}

	names := make([]string, len(ingredients))
	for i, item := range ingredients {
		names[i] = item.Name
	}

	resp, err := s.aiService.ProcessRequest(ctx, model, buildRecipeSelectionPrompt(mode, names), nil)
	if err != nil {
		common.LogWarn("選菜改用確定性食譜", zap.Error(err))
		return &RecipeSelection{
			Recipe: FallbackRecipe(mode, ingredients),
			Source: common.SourceFallback,
		}, nil
	}

	var payload map[string]any
	if err := common.ExtractModelJSON(resp.Content, &payload); err != nil {
		common.LogWarn("選菜回應無法解析", zap.Error(err))
		return &RecipeSelection{
			Recipe: FallbackRecipe(mode, ingredients),
			Source: common.SourceFallback,
		}, nil
	}

	return &RecipeSelection{
		Recipe: normalizeRecipe(payload, mode, ingredients),
		Source: common.SourceModel,
	}, nil
}
