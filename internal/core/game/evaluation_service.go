package game

import (
	"context"

	aiservice "github.com/andysooho/cooking-rumi/internal/core/ai/service"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"go.uber.org/zap"
)

// EvaluationResult 料理評價與其產生來源
type EvaluationResult struct {
	Evaluation common.CookingEvaluation `json:"evaluation"`
	Source     common.ContentSource     `json:"source"`
}

// EvaluationService 料理評價服務
type EvaluationService struct {
	aiService *aiservice.Service
	config    *config.Config
}

// NewEvaluationService 創建料理評價服務
func NewEvaluationService(ai *aiservice.Service, cfg *config.Config) *EvaluationService {
	return &EvaluationService{
		aiService: ai,
		config:    cfg,
	}
}

// EvaluateCooking 比對目標食譜與玩家操作紀錄給出評價。
// 紀錄為空時不打模型，直接用本地估算的評價（吻合度為 0）。
func (s *EvaluationService) EvaluateCooking(ctx context.Context, mode common.GameMode, recipe common.RecipePlan, logs []common.CookingLog, finalDish, model string) (*EvaluationResult, error) {
	if len(recipe.Recipe.Steps) == 0 {
		return nil, common.NewValidationError("recipe with at least one step is required")
	}

	if finalDish == "" {
		finalDish = PickFinalDishFromLogs(logs)
	}

	fb := FallbackEvaluation(mode, recipe, logs, finalDish)
	if len(logs) == 0 {
		return &EvaluationResult{Evaluation: fb, Source: common.SourceFallback}, nil
	}

	if model == "" {
		model = s.config.Gemini.TextModel
	}

	resp, err := s.aiService.ProcessRequest(ctx, model, buildEvaluationPrompt(mode, recipe, logs, finalDish), nil)
	if err != nil {
		common.LogWarn("料理評價改用確定性結果", zap.Error(err))
		return &EvaluationResult{Evaluation: fb, Source: common.SourceFallback}, nil
	}

	var payload map[string]any
	if err := common.ExtractModelJSON(resp.Content, &payload); err != nil {
		common.LogWarn("料理評價回應無法解析", zap.Error(err))
		return &EvaluationResult{Evaluation: fb, Source: common.SourceFallback}, nil
	}

	return &EvaluationResult{
		Evaluation: normalizeEvaluation(payload, fb),
		Source:     common.SourceModel,
	}, nil
}
