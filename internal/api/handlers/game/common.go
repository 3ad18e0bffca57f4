package game

import (
	"net/http"

	core "github.com/andysooho/cooking-rumi/internal/core/game"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 遊戲相關請求的處理器
type Handler struct {
	ingredientSvc *core.IngredientService
	recipeSvc     *core.RecipeService
	actionSvc     *core.ActionService
	evaluationSvc *core.EvaluationService
	artSvc        *core.ArtService
}

// NewHandler 創建遊戲處理器
func NewHandler(
	ingredientSvc *core.IngredientService,
	recipeSvc *core.RecipeService,
	actionSvc *core.ActionService,
	evaluationSvc *core.EvaluationService,
	artSvc *core.ArtService,
) *Handler {
	return &Handler{
		ingredientSvc: ingredientSvc,
		recipeSvc:     recipeSvc,
		actionSvc:     actionSvc,
		evaluationSvc: evaluationSvc,
		artSvc:        artSvc,
	}
}

// respondServiceError 依錯誤類型決定狀態碼。
// 驗證錯誤是唯一回 400 的情況，其餘一律視為內部錯誤。
func respondServiceError(c *gin.Context, operation string, err error) {
	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogError("遊戲請求處理失敗",
		zap.String("operation", operation),
		zap.String("request_id", c.GetHeader("X-Request-ID")),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": common.ErrAIServiceError.Message,
		"code":  common.ErrCodeAIService,
	})
}
