package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/repository"
	"context"
	"time"
)

type AnalyticsService interface {
	// GetSummary 聚合当前用户全量帖子，按请求即时计算，不做服务端缓存
	GetSummary(ctx context.Context, userID uint64) (*dto.AnalyticsSummaryDTO, error)
}

type analyticsServiceImpl struct {
	postRepo repository.PostRepo
}

func NewAnalyticsService(postRepo repository.PostRepo) AnalyticsService {
	return &analyticsServiceImpl{
		postRepo: postRepo,
	}
}

func (s *analyticsServiceImpl) GetSummary(ctx context.Context, userID uint64) (*dto.AnalyticsSummaryDTO, error) {
	posts, err := s.postRepo.ListAllPosts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildAnalyticsSummary(posts, time.Now()), nil
}
