package game

import (
	"net/http"

	core "github.com/andysooho/cooking-rumi/internal/core/game"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EvaluationRequest 料理評價請求。
// logs 接受任意 JSON 形狀，欄位不全的紀錄會被剔除。
type EvaluationRequest struct {
	Mode      any               `json:"mode"`
	Recipe    common.RecipePlan `json:"recipe"`
	Logs      []any             `json:"logs"`
	FinalDish string            `json:"finalDish"`
	Model     string            `json:"model"`
}

// HandleEvaluation 處理料理結果評價
func (h *Handler) HandleEvaluation(c *gin.Context) {
	var req EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrInvalidRequest.Message,
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	mode := common.ParseGameMode(req.Mode)
	logs := core.NormalizeLogs(req.Logs)

	result, err := h.evaluationSvc.EvaluateCooking(c.Request.Context(), mode, req.Recipe, logs, req.FinalDish, req.Model)
	if err != nil {
		respondServiceError(c, "evaluation", err)
		return
	}

	common.LogInfo("料理評價完成",
		zap.String("request_id", c.GetHeader("X-Request-ID")),
		zap.String("mode", string(mode)),
		zap.Int("log_count", len(logs)),
		zap.Int("match_rate", result.Evaluation.MatchRate),
		zap.String("source", string(result.Source)),
	)

	c.JSON(http.StatusOK, result)
}
