package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/repository"
	"context"
	"time"
)

type DailyMetricService interface {
	// ListDailyMetrics 返回当前用户的逐日互动数据，按日期升序
	ListDailyMetrics(ctx context.Context, userID uint64, startDate, endDate *string) ([]*dto.DailyMetricDTO, error)
}

type dailyMetricServiceImpl struct {
	dailyMetricRepo repository.DailyMetricRepo
}

func NewDailyMetricService(dailyMetricRepo repository.DailyMetricRepo) DailyMetricService {
	return &dailyMetricServiceImpl{
		dailyMetricRepo: dailyMetricRepo,
	}
}

func (s *dailyMetricServiceImpl) ListDailyMetrics(ctx context.Context, userID uint64, startDate, endDate *string) ([]*dto.DailyMetricDTO, error) {
	metrics, err := s.dailyMetricRepo.ListByDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DailyMetricDTO, 0, len(metrics))
	for _, m := range metrics {
		result = append(result, &dto.DailyMetricDTO{
			Date:       m.MetricDate.Format(time.DateOnly),
			Engagement: m.Engagement,
			Likes:      m.Likes,
			Comments:   m.Comments,
			Shares:     m.Shares,
		})
	}
	return result, nil
}
