package dto

import (
	"Clipsight/internal/model"
	"Clipsight/internal/pkg/tiktok"
)

// MetricsDTO 聚合指标
type MetricsDTO struct {
	TotalVideos    int64   `json:"totalVideos"`
	TotalViews     int64   `json:"totalViews"`
	Views7d        int64   `json:"views7d"`
	AvgViews       int64   `json:"avgViews"`
	EngagementRate float64 `json:"engagementRate"`
	TotalLikes     int64   `json:"totalLikes"`
	TotalComments  int64   `json:"totalComments"`
	TotalShares    int64   `json:"totalShares"`
}

// BestTimeDTO 单个发布时段
type BestTimeDTO struct {
	Hour           int     `json:"hour"`
	EngagementRate float64 `json:"engagementRate"`
	Posts          int     `json:"posts"`
	Views          int64   `json:"views"`
}

// AnalyticsDTO 分析接口返回主体
// Status 为 not_connected 时其余字段为空，调用方按状态分支，不按错误处理
type AnalyticsDTO struct {
	Status          string                  `json:"status"`
	Message         string                  `json:"message,omitempty"`
	User            *tiktok.UserInfo        `json:"user,omitempty"`
	Metrics         *MetricsDTO             `json:"metrics,omitempty"`
	TopPost         *tiktok.Video           `json:"topPost,omitempty"`
	BestTimes       []*BestTimeDTO          `json:"bestTimes,omitempty"`
	Snapshots       []*model.TikTokSnapshot `json:"snapshots,omitempty"`
	Recommendations []string                `json:"recommendations,omitempty"`
}
