package game

import (
	"context"
	"strings"

	"github.com/andysooho/cooking-rumi/internal/core/ai/image"
	"github.com/andysooho/cooking-rumi/internal/core/ai/provider"
	aiservice "github.com/andysooho/cooking-rumi/internal/core/ai/service"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"go.uber.org/zap"
)

// UploadedImage 玩家上傳的冰箱照片
type UploadedImage struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	DataURL  string `json:"dataUrl"`
}

// IngredientAnalysis 食材辨識結果
type IngredientAnalysis struct {
	Ingredients []common.Ingredient  `json:"ingredients"`
	Confidence  float64              `json:"confidence"`
	Source      common.ContentSource `json:"source"`
}

// IngredientService 食材辨識服務
type IngredientService struct {
	aiService *aiservice.Service
	processor *image.Processor
	config    *config.Config
}

// NewIngredientService 創建食材辨識服務
func NewIngredientService(ai *aiservice.Service, cfg *config.Config) *IngredientService {
	return &IngredientService{
		aiService: ai,
		processor: image.NewProcessor(cfg.Image.MaxSizeBytes),
		config:    cfg,
	}
}

// AnalyzeIngredients 從上傳照片辨識可用食材。
// 模型失敗或回傳無法使用時改用檔名推測，遊戲永遠拿得到一份食材清單。
func (s *IngredientService) AnalyzeIngredients(ctx context.Context, images []UploadedImage, model string) (*IngredientAnalysis, error) {
	if len(images) == 0 {
		return nil, common.NewValidationError("images must be a non-empty array")
	}
	if len(images) > s.config.Image.MaxCount {
		images = images[:s.config.Image.MaxCount]
	}

	fileNames := make([]string, 0, len(images))
	parts := make([]provider.InlinePart, 0, len(images))
	for _, img := range images {
		name := strings.TrimSpace(img.Name)
		if name == "" {
			name = "upload"
		}
		fileNames = append(fileNames, name)

		mimeType, data, err := s.processor.ParseDataURL(strings.TrimSpace(img.DataURL))
		if err != nil {
			return nil, common.NewValidationError("each image requires a valid base64 dataUrl")
		}
		if declared := strings.TrimSpace(img.MimeType); declared != "" {
			mimeType = declared
		}
		parts = append(parts, provider.InlinePart{MimeType: mimeType, Data: data})
	}

	if model == "" {
		model = s.config.Gemini.TextModel
	}

	resp, err := s.aiService.ProcessRequest(ctx, model, buildIngredientAnalysisPrompt(), parts)
	if err != nil {
		common.LogWarn("食材辨識改用確定性結果", zap.Error(err))
		return fallbackIngredientAnalysis(fileNames), nil
	}

	var payload map[string]any
	if err := common.ExtractModelJSON(resp.Content, &payload); err != nil {
		common.LogWarn("食材辨識回應無法解析", zap.Error(err))
		return fallbackIngredientAnalysis(fileNames), nil
	}

	return &IngredientAnalysis{
		Ingredients: normalizeIngredients(payload, fileNames),
		Confidence:  normalizeConfidence(payload["confidence"], 0.75),
		Source:      common.SourceModel,
	}, nil
}

func fallbackIngredientAnalysis(fileNames []string) *IngredientAnalysis {
	return &IngredientAnalysis{
		Ingredients: FallbackIngredientsFromFileNames(fileNames),
		Confidence:  0.4,
		Source:      common.SourceFallback,
	}
}
