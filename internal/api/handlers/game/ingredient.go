package game

import (
	"net/http"

	core "github.com/andysooho/cooking-rumi/internal/core/game"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IngredientAnalysisRequest 食材辨識請求
type IngredientAnalysisRequest struct {
	Images []core.UploadedImage `json:"images"`
	Model  string               `json:"model"`
}

// HandleIngredientAnalysis 處理冰箱照片的食材辨識
func (h *Handler) HandleIngredientAnalysis(c *gin.Context) {
	var req IngredientAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	result, err := h.ingredientSvc.AnalyzeIngredients(c.Request.Context(), req.Images, req.Model)
	if err != nil {
		respondServiceError(c, "ingredient_analysis", err)
		return
	}

	common.LogInfo("食材辨識完成",
		zap.String("request_id", c.GetHeader("X-Request-ID")),
		zap.Int("ingredient_count", len(result.Ingredients)),
		zap.String("source", string(result.Source)),
	)

	c.JSON(http.StatusOK, result)
}
