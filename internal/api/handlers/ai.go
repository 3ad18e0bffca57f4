package handlers

import (
	"fmt"
	"net/http"

	aiservice "github.com/andysooho/cooking-rumi/internal/core/ai/service"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// AIHandler 模型直通處理器，給開發與除錯用
type AIHandler struct {
	aiService *aiservice.Service
	config    *config.Config
}

// NewAIHandler 創建 AI 處理器
func NewAIHandler(ai *aiservice.Service, cfg *config.Config) *AIHandler {
	return &AIHandler{
		aiService: ai,
		config:    cfg,
	}
}

// HandleChat 直接把提示送進模型並回傳原始文字
func (h *AIHandler) HandleChat(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
		Model  string `json:"model"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	model := req.Model
	if model == "" {
		model = h.config.Gemini.TextModel
	}

	response, err := h.aiService.ProcessRequest(c.Request.Context(), model, req.Prompt, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": common.ErrAIServiceError.Message,
			"code":  common.ErrCodeAIService,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": response.Content,
	})
}

// HandleImage 直接把提示送進圖片模型並回傳 data URL
func (h *AIHandler) HandleImage(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
		Model  string `json:"model"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	model := req.Model
	if model == "" {
		model = h.config.Gemini.ImageModel
	}

	result, err := h.aiService.GenerateImage(c.Request.Context(), model, req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": common.ErrAIServiceError.Message,
			"code":  common.ErrCodeAIService,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imageDataUrl": fmt.Sprintf("data:%s;base64,%s", result.MimeType, result.Data),
		"mimeType":     result.MimeType,
	})
}
