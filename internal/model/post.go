package model

import (
	"time"
)

// Post 已发布的社媒帖子，一行对应一条帖子
// 计数字段用指针表示"平台未回传"，聚合时按 0 处理；EngagementRate 为 nil 表示未知，语义与 0 不同
type Post struct {
	ID             uint64    `gorm:"primaryKey"`
	UserID         uint64    `gorm:"not null;index:idx_user_posted" json:"user_id"`
	Platform       string    `gorm:"type:varchar(20);not null" json:"platform"`
	MediaType      string    `gorm:"type:varchar(20);not null" json:"media_type"`
	PostedAt       time.Time `gorm:"not null;index:idx_user_posted;column:posted_at" json:"posted_at"`
	Caption        *string   `gorm:"type:varchar(2200)" json:"caption,omitempty"`
	ThumbnailURL   *string   `gorm:"type:varchar(512);column:thumbnail_url" json:"thumbnail_url,omitempty"`
	Permalink      *string   `gorm:"type:varchar(512)" json:"permalink,omitempty"`
	Likes          *int      `json:"likes,omitempty"`
	Comments       *int      `json:"comments,omitempty"`
	Shares         *int      `json:"shares,omitempty"`
	Saves          *int      `json:"saves,omitempty"`
	Impressions    *int      `json:"impressions,omitempty"`
	Reach          *int      `json:"reach,omitempty"`
	EngagementRate *float64  `gorm:"column:engagement_rate" json:"engagement_rate,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
