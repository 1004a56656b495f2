package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyticsService struct {
	summary *dto.AnalyticsSummaryDTO
	err     error
	userID  uint64
}

func (s *stubAnalyticsService) GetSummary(_ context.Context, userID uint64) (*dto.AnalyticsSummaryDTO, error) {
	s.userID = userID
	return s.summary, s.err
}

// injectUser 代替认证中间件，把既定用户写入上下文
func injectUser(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestGetSummaryZeroPostsIsNotAnError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubAnalyticsService{summary: service.BuildAnalyticsSummary(nil, time.Now())}
	r := gin.New()
	r.GET("/analytics/summary", injectUser(42), NewAnalyticsHandler(stub).GetSummary)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/analytics/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint64(42), stub.userID)

	var body struct {
		Success bool                     `json:"success"`
		Data    dto.AnalyticsSummaryDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Zero(t, body.Data.TotalPosts)
	assert.Nil(t, body.Data.TopPost)
	assert.Zero(t, body.Data.Changes.TotalPosts)
	assert.Zero(t, body.Data.Changes.TotalEngagements)
}
