package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/andysooho/cooking-rumi/internal/core/ai/provider"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// GeminiService Gemini generateContent API 客戶端
type GeminiService struct {
	config *config.Config
	client *resty.Client
}

// NewGeminiService 創建 Gemini 服務
func NewGeminiService(cfg *config.Config) *GeminiService {
	client := resty.New().
		SetBaseURL("https://generativelanguage.googleapis.com/v1beta").
		SetHeader("x-goog-api-key", cfg.Gemini.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Gemini.Timeout)

	return &GeminiService{
		config: cfg,
		client: client,
	}
}

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *inlinePartData `json:"inlineData,omitempty"`
}

type inlinePartData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateContentRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContent struct {
	Role  string         `json:"role"`
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	MaxOutputTokens    int      `json:"maxOutputTokens,omitempty"`
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate 發送 generateContent 請求並回傳解析後的候選內容
func (s *GeminiService) generate(ctx context.Context, model string, req *generateContentRequest) (*generateContentResponse, error) {
	if s.config.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", model))

	if err != nil {
		return nil, fmt.Errorf("failed to send request to Gemini: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Gemini API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", model),
		)
		return nil, fmt.Errorf("gemini API returned status %d", resp.StatusCode())
	}

	var result generateContentResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in Gemini response")
	}

	return &result, nil
}

// GenerateText 生成文字回應，多個文字片段以換行串接
func (s *GeminiService) GenerateText(ctx context.Context, req *provider.TextRequest) (string, error) {
	parts := []generatePart{{Text: req.Prompt}}
	for _, part := range req.Parts {
		parts = append(parts, generatePart{
			InlineData: &inlinePartData{
				MimeType: part.MimeType,
				Data:     part.Data,
			},
		})
	}

	result, err := s.generate(ctx, req.Model, &generateContentRequest{
		Contents: []generateContent{{Role: "user", Parts: parts}},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: s.config.Gemini.MaxOutputTokens,
		},
	})
	if err != nil {
		return "", err
	}

	var texts []string
	for _, part := range result.Candidates[0].Content.Parts {
		if trimmed := strings.TrimSpace(part.Text); trimmed != "" {
			texts = append(texts, trimmed)
		}
	}
	content := strings.TrimSpace(strings.Join(texts, "\n"))
	if content == "" {
		return "", fmt.Errorf("empty content in Gemini response")
	}

	common.LogInfo("Gemini 文字生成成功",
		zap.String("model", req.Model),
		zap.Int("content_length", len(content)),
	)

	return content, nil
}

// GenerateImage 生成圖片，回傳第一個內嵌圖片資料
func (s *GeminiService) GenerateImage(ctx context.Context, model, prompt string) (*provider.ImageResult, error) {
	result, err := s.generate(ctx, model, &generateContentRequest{
		Contents: []generateContent{{Role: "user", Parts: []generatePart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	})
	if err != nil {
		return nil, err
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			mimeType := part.InlineData.MimeType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return &provider.ImageResult{
				MimeType: mimeType,
				Data:     part.InlineData.Data,
			}, nil
		}
	}

	return nil, fmt.Errorf("no inline image in Gemini response")
}

// Close 關閉客戶端
func (s *GeminiService) Close() error {
	return nil
}
