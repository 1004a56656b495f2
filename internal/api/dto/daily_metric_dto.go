package dto

// DailyMetricDTO 单日互动曲线上的一个点
type DailyMetricDTO struct {
	Date       string `json:"date"`
	Engagement int    `json:"engagement"`
	Likes      *int   `json:"likes,omitempty"`
	Comments   *int   `json:"comments,omitempty"`
	Shares     *int   `json:"shares,omitempty"`
}
