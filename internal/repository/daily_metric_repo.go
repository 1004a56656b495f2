package repository

import (
	"Pulseboard/internal/model"
	"context"

	"gorm.io/gorm"
)

type DailyMetricRepo interface {
	// ListByDateRange 返回 owner 在闭区间内的逐日指标，按日期升序。区间端点为 nil 时不限制
	ListByDateRange(ctx context.Context, ownerID uint64, startDate, endDate *string) ([]*model.DailyMetric, error)
}

type dailyMetricRepoImpl struct {
	db *gorm.DB
}

func NewDailyMetricRepository(db *gorm.DB) DailyMetricRepo {
	return &dailyMetricRepoImpl{db: db}
}

func (r *dailyMetricRepoImpl) ListByDateRange(ctx context.Context, ownerID uint64, startDate, endDate *string) ([]*model.DailyMetric, error) {
	tx := r.db.WithContext(ctx).
		Scopes(model.OwnedBy(ownerID)).
		Where("user_id = ?", ownerID)

	if startDate != nil {
		tx = tx.Where("metric_date >= ?", *startDate)
	}
	if endDate != nil {
		tx = tx.Where("metric_date <= ?", *endDate)
	}

	metrics := make([]*model.DailyMetric, 0)
	result := tx.Order("metric_date ASC").Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
