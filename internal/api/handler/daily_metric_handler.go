package handler

import (
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
)

type DailyMetricHandler struct {
	dailyMetricSvc service.DailyMetricService
}

func NewDailyMetricHandler(dailyMetricSvc service.DailyMetricService) *DailyMetricHandler {
	return &DailyMetricHandler{
		dailyMetricSvc: dailyMetricSvc,
	}
}

// ListDailyMetrics 当前用户的逐日互动数据，日期升序。非法日期参数按"不限制"处理
func (h *DailyMetricHandler) ListDailyMetrics(c *gin.Context) {
	userID := c.GetUint64("user_id")

	startDate := util.SanitizeDate(c.Query("startDate"))
	endDate := util.SanitizeDate(c.Query("endDate"))

	metrics, err := h.dailyMetricSvc.ListDailyMetrics(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, metrics)
}
