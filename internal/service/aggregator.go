package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"math"
	"time"

	"github.com/jinzhu/copier"
)

// postMetrics 一组帖子的统计量
type postMetrics struct {
	TotalPosts            int64
	TotalViews            int64
	TotalLikes            int64
	TotalComments         int64
	TotalShares           int64
	TotalReach            int64
	TotalEngagements      int64
	AverageEngagementRate float64
}

// BuildAnalyticsSummary 纯函数：由全量帖子与当前时刻计算聚合摘要。
// 窗口切分：recent = [now-30d, now]，previous = [now-60d, now-30d)。
// totalEngagements / averageEngagementRate / topPost 基于全量帖子，
// 其余 total 取 recent 窗口，changes 为 recent 对 previous 的环比
func BuildAnalyticsSummary(posts []*model.Post, now time.Time) *dto.AnalyticsSummaryDTO {
	recentCut := now.AddDate(0, 0, -30)
	previousCut := now.AddDate(0, 0, -60)

	recent := make([]*model.Post, 0, len(posts))
	previous := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		switch {
		case !p.PostedAt.Before(recentCut):
			recent = append(recent, p)
		case !p.PostedAt.Before(previousCut):
			previous = append(previous, p)
		}
	}

	all := computeMetrics(posts)
	recentMetrics := computeMetrics(recent)
	previousMetrics := computeMetrics(previous)

	return &dto.AnalyticsSummaryDTO{
		TotalPosts:            recentMetrics.TotalPosts,
		TotalViews:            recentMetrics.TotalViews,
		TotalReach:            recentMetrics.TotalReach,
		TotalLikes:            recentMetrics.TotalLikes,
		TotalComments:         recentMetrics.TotalComments,
		TotalShares:           recentMetrics.TotalShares,
		TotalEngagements:      all.TotalEngagements,
		AverageEngagementRate: all.AverageEngagementRate,
		TopPost:               toTopPostDTO(topPost(posts)),
		Changes:               buildChanges(recentMetrics, previousMetrics),
	}
}

// computeMetrics 对一组帖子求和与平均。缺失的计数按 0 处理；
// engagementRate 缺失表示"未知"，既不进分子也不进分母，全部缺失时均值为 0
func computeMetrics(posts []*model.Post) postMetrics {
	m := postMetrics{TotalPosts: int64(len(posts))}

	var rateSum float64
	var rateCount int64
	for _, p := range posts {
		m.TotalViews += int64(intVal(p.Impressions))
		m.TotalLikes += int64(intVal(p.Likes))
		m.TotalComments += int64(intVal(p.Comments))
		m.TotalShares += int64(intVal(p.Shares))
		m.TotalReach += int64(intVal(p.Reach))
		m.TotalEngagements += engagementTotal(p)

		if p.EngagementRate != nil {
			rateSum += *p.EngagementRate
			rateCount++
		}
	}
	if rateCount > 0 {
		m.AverageEngagementRate = rateSum / float64(rateCount)
	}
	return m
}

// topPost 互动总量最高的帖子，打平时保留先遇到的那条；空列表返回 nil
func topPost(posts []*model.Post) *model.Post {
	var best *model.Post
	var bestValue int64
	for _, p := range posts {
		value := engagementTotal(p)
		if best == nil || value > bestValue {
			best = p
			bestValue = value
		}
	}
	return best
}

// calculateChange 环比百分比。上期为 0 时：本期有值记作 100，否则 0；不做上下限截断
func calculateChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1((current - previous) / previous * 100)
}

func buildChanges(recent, previous postMetrics) dto.ChangesDTO {
	return dto.ChangesDTO{
		TotalPosts:            calculateChange(float64(recent.TotalPosts), float64(previous.TotalPosts)),
		TotalViews:            calculateChange(float64(recent.TotalViews), float64(previous.TotalViews)),
		TotalReach:            calculateChange(float64(recent.TotalReach), float64(previous.TotalReach)),
		TotalLikes:            calculateChange(float64(recent.TotalLikes), float64(previous.TotalLikes)),
		TotalComments:         calculateChange(float64(recent.TotalComments), float64(previous.TotalComments)),
		TotalShares:           calculateChange(float64(recent.TotalShares), float64(previous.TotalShares)),
		TotalEngagements:      calculateChange(float64(recent.TotalEngagements), float64(previous.TotalEngagements)),
		AverageEngagementRate: calculateChange(recent.AverageEngagementRate, previous.AverageEngagementRate),
	}
}

// engagementTotal 单帖互动总量：likes + comments + shares + saves，缺失按 0
func engagementTotal(p *model.Post) int64 {
	return int64(intVal(p.Likes) + intVal(p.Comments) + intVal(p.Shares) + intVal(p.Saves))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func intVal(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func toTopPostDTO(p *model.Post) *dto.PostDTO {
	if p == nil {
		return nil
	}
	d := &dto.PostDTO{}
	if err := copier.Copy(d, p); err != nil {
		return nil
	}
	return d
}
