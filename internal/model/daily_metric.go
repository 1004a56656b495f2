package model

import (
	"time"
)

// DailyMetric 每用户每自然日一行，由外部采集管道写入，本服务只读
type DailyMetric struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     uint64    `gorm:"not null;index:idx_user_date,unique" json:"user_id"`
	MetricDate time.Time `gorm:"not null;index:idx_user_date,unique;column:metric_date" json:"metric_date"`
	Engagement int       `gorm:"not null;default:0" json:"engagement"`
	Likes      *int      `json:"likes,omitempty"`
	Comments   *int      `json:"comments,omitempty"`
	Shares     *int      `json:"shares,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}
