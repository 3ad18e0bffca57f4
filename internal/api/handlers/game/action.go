package game

import (
	"net/http"

	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookingActionRequest 烹飪動作請求
type CookingActionRequest struct {
	Ingredient string `json:"ingredient"`
	Tool       string `json:"tool"`
	Model      string `json:"model"`
}

// HandleCookingAction 處理食材與道具組合
func (h *Handler) HandleCookingAction(c *gin.Context) {
	var req CookingActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	result, err := h.actionSvc.PerformAction(c.Request.Context(), req.Ingredient, req.Tool, req.Model)
	if err != nil {
		respondServiceError(c, "cooking_action", err)
		return
	}

	common.LogInfo("烹飪動作完成",
		zap.String("request_id", c.GetHeader("X-Request-ID")),
		zap.String("ingredient", req.Ingredient),
		zap.String("tool", req.Tool),
		zap.String("result", result.Result),
		zap.String("source", string(result.Source)),
	)

	c.JSON(http.StatusOK, result)
}
