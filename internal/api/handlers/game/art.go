package game

import (
	"net/http"

	core "github.com/andysooho/cooking-rumi/internal/core/game"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SpriteBatchRequest 食材像素圖批次請求
type SpriteBatchRequest struct {
	Ingredients []core.SpriteRequestItem `json:"ingredients"`
	Model       string                   `json:"model"`
}

// HandleSpriteBatch 並行生成一批食材像素圖
func (h *Handler) HandleSpriteBatch(c *gin.Context) {
	var req SpriteBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	sprites, err := h.artSvc.GenerateSprites(c.Request.Context(), req.Ingredients, req.Model)
	if err != nil {
		respondServiceError(c, "sprite_batch", err)
		return
	}

	common.LogInfo("食材像素圖批次完成",
		zap.String("request_id", c.GetHeader("X-Request-ID")),
		zap.Int("sprite_count", len(sprites)),
	)

	// 整批是 best-effort，個別成敗看每個條目的 source
	c.JSON(http.StatusOK, gin.H{
		"sprites": sprites,
		"source":  "best-effort",
	})
}

// CookingArtRequest 料理結果像素圖請求
type CookingArtRequest struct {
	ResultName string `json:"resultName"`
	Model      string `json:"model"`
}

// HandleCookingArt 生成料理結果的像素圖
func (h *Handler) HandleCookingArt(c *gin.Context) {
	var req CookingArtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	dataURL, source, err := h.artSvc.GenerateCookingArt(c.Request.Context(), req.ResultName, req.Model)
	if err != nil {
		respondServiceError(c, "cooking_art", err)
		return
	}

	common.LogInfo("料理像素圖完成",
		zap.String("request_id", c.GetHeader("X-Request-ID")),
		zap.String("result", req.ResultName),
		zap.String("source", string(source)),
	)

	c.JSON(http.StatusOK, gin.H{
		"imageDataUrl": dataURL,
		"source":       source,
	})
}
