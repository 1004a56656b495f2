package handler

import (
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// GetSummary 聚合摘要。没有任何帖子也是正常态，返回全零摘要而不是错误
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID := c.GetUint64("user_id")

	summary, err := h.analyticsSvc.GetSummary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
