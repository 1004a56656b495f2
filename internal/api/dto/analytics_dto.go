package dto

// AnalyticsSummaryDTO 按请求即时计算的聚合摘要，从不在服务端缓存。
// totalEngagements / averageEngagementRate 基于全量历史，其余 total 基于最近 30 天窗口，
// 这一不对称是产品要求，不是可以"修正"的口径不一致
type AnalyticsSummaryDTO struct {
	TotalPosts            int64      `json:"totalPosts"`
	TotalViews            int64      `json:"totalViews"`
	TotalReach            int64      `json:"totalReach"`
	TotalLikes            int64      `json:"totalLikes"`
	TotalComments         int64      `json:"totalComments"`
	TotalShares           int64      `json:"totalShares"`
	TotalEngagements      int64      `json:"totalEngagements"`
	AverageEngagementRate float64    `json:"averageEngagementRate"`
	TopPost               *PostDTO   `json:"topPost"`
	Changes               ChangesDTO `json:"changes"`
}

// ChangesDTO 最近 30 天相对上一个 30 天窗口的各指标环比百分比
type ChangesDTO struct {
	TotalPosts            float64 `json:"totalPosts"`
	TotalViews            float64 `json:"totalViews"`
	TotalReach            float64 `json:"totalReach"`
	TotalLikes            float64 `json:"totalLikes"`
	TotalComments         float64 `json:"totalComments"`
	TotalShares           float64 `json:"totalShares"`
	TotalEngagements      float64 `json:"totalEngagements"`
	AverageEngagementRate float64 `json:"averageEngagementRate"`
}
