package game

import (
	"context"
	"fmt"
	"strings"

	aiservice "github.com/andysooho/cooking-rumi/internal/core/ai/service"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// maxSpriteBatch 單次批次最多處理的食材數
	maxSpriteBatch = 12
	// spriteConcurrency 同時進行的圖片生成數
	spriteConcurrency = 4
)

// SpriteRequestItem 要生成像素圖的食材
type SpriteRequestItem struct {
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
}

// SpriteResult 單一食材的像素圖
type SpriteResult struct {
	Name         string               `json:"name"`
	ImageDataURL string               `json:"imageDataUrl"`
	Source       common.ContentSource `json:"source"`
}

// ArtService 像素圖生成服務
type ArtService struct {
	aiService *aiservice.Service
	config    *config.Config
}

// NewArtService 創建像素圖生成服務
func NewArtService(ai *aiservice.Service, cfg *config.Config) *ArtService {
	return &ArtService{
		aiService: ai,
		config:    cfg,
	}
}

// GenerateSprites 並行生成一批食材像素圖。
// 整批是 best-effort：任何一張失敗都改用 SVG 佔位圖，不影響其他張。
func (s *ArtService) GenerateSprites(ctx context.Context, items []SpriteRequestItem, model string) ([]SpriteResult, error) {
	if len(items) == 0 {
		return nil, common.NewValidationError("ingredients must be a non-empty array")
	}
	if len(items) > maxSpriteBatch {
		items = items[:maxSpriteBatch]
	}

	if model == "" {
		model = s.config.Gemini.ImageModel
	}

	results := make([]SpriteResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(spriteConcurrency)
	for i, item := range items {
		g.Go(func() error {
			name := strings.TrimSpace(item.Name)
			if name == "" {
				name = fmt.Sprintf("재료 %d", i+1)
			}
			nameEn := strings.TrimSpace(item.NameEn)
			if nameEn == "" {
				nameEn = fmt.Sprintf("ingredient %d", i+1)
			}

			image, err := s.aiService.GenerateImage(gctx, model, buildPixelArtPrompt(nameEn))
			if err != nil {
				common.LogWarn("食材像素圖改用佔位圖",
					zap.String("name", name),
					zap.Error(err),
				)
				results[i] = SpriteResult{
					Name:         name,
					ImageDataURL: FallbackImageDataURL(name, ""),
					Source:       common.SourceFallback,
				}
				return nil
			}

			results[i] = SpriteResult{
				Name:         name,
				ImageDataURL: fmt.Sprintf("data:%s;base64,%s", image.MimeType, image.Data),
				Source:       common.SourceModel,
			}
			return nil
		})
	}

	// 每個工作都自行吞掉錯誤，這裡只等待全部完成
	_ = g.Wait()

	return results, nil
}

// GenerateCookingArt 生成料理結果的像素圖，失敗時回傳綠色調佔位圖
func (s *ArtService) GenerateCookingArt(ctx context.Context, resultName, model string) (string, common.ContentSource, error) {
	resultName = strings.TrimSpace(resultName)
	if resultName == "" {
		return "", "", common.NewValidationError("resultName is required")
	}

	if model == "" {
		model = s.config.Gemini.ImageModel
	}

	image, err := s.aiService.GenerateImage(ctx, model, buildCookingArtPrompt(resultName))
	if err != nil {
		common.LogWarn("料理像素圖改用佔位圖",
			zap.String("result", resultName),
			zap.Error(err),
		)
		return FallbackImageDataURL(resultName, "#7ed957"), common.SourceFallback, nil
	}

	return fmt.Sprintf("data:%s;base64,%s", image.MimeType, image.Data), common.SourceModel, nil
}
