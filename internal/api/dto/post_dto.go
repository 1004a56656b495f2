package dto

import "time"

// PostDTO 帖子对外表示，计数缺失与费率未知保持为 null 不做补零
type PostDTO struct {
	ID             uint64    `json:"id"`
	Platform       string    `json:"platform"`
	MediaType      string    `json:"mediaType"`
	PostedAt       time.Time `json:"postedAt"`
	Caption        *string   `json:"caption,omitempty"`
	ThumbnailURL   *string   `json:"thumbnailUrl,omitempty"`
	Permalink      *string   `json:"permalink,omitempty"`
	Likes          *int      `json:"likes,omitempty"`
	Comments       *int      `json:"comments,omitempty"`
	Shares         *int      `json:"shares,omitempty"`
	Saves          *int      `json:"saves,omitempty"`
	Impressions    *int      `json:"impressions,omitempty"`
	Reach          *int      `json:"reach,omitempty"`
	EngagementRate *float64  `json:"engagementRate,omitempty"`
}

// PostQueryDTO 经过白名单校验后的帖子列表查询参数。
// 指针为 nil 表示不过滤；owner 永远来自会话，不在这里出现
type PostQueryDTO struct {
	Platform  *string
	MediaType *string
	StartDate *string
	EndDate   *string
	Search    *string
	SortField string
	SortOrder string
}
