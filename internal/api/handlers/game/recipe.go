package game

import (
	"net/http"

	core "github.com/andysooho/cooking-rumi/internal/core/game"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeSelectionRequest 選菜請求。
// mode 與 ingredients 接受任意 JSON 形狀，清洗後才進服務層。
type RecipeSelectionRequest struct {
	Mode        any    `json:"mode"`
	Ingredients []any  `json:"ingredients"`
	Model       string `json:"model"`
}

// HandleRecipeSelection 處理目標食譜選擇
func (h *Handler) HandleRecipeSelection(c *gin.Context) {
	var req RecipeSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	mode := common.ParseGameMode(req.Mode)
	ingredients := core.SanitizeIngredientInputs(req.Ingredients)

	result, err := h.recipeSvc.SelectRecipe(c.Request.Context(), mode, ingredients, req.Model)
	if err != nil {
		respondServiceError(c, "recipe_selection", err)
		return
	}

	common.LogInfo("選菜完成",
		zap.String("request_id", c.GetHeader("X-Request-ID")),
		zap.String("mode", string(mode)),
		zap.String("dish", result.Recipe.DishName),
		zap.String("source", string(result.Source)),
	)

	c.JSON(http.StatusOK, result)
}
