package service

import (
	"Clipsight/internal/pkg/tiktok"
	"math"
	"sort"
	"time"
)

const weekMs = int64(7 * 24 * time.Hour / time.Millisecond)

// AggregateResult 一次聚合计算的全部派生指标
type AggregateResult struct {
	TotalVideos    int64
	TotalViews     int64
	TotalLikes     int64
	TotalComments  int64
	TotalShares    int64
	Views7d        int64
	AvgViews       int64
	EngagementRate float64
	TopPost        *tiktok.Video
}

// BestTimeBucket 按发布小时聚合的时段
type BestTimeBucket struct {
	Hour           int
	Views          int64
	Engagements    int64
	Posts          int
	EngagementRate float64
}

// Aggregate 纯函数，给定 now 后确定性；空列表返回全零结果
func Aggregate(videos []tiktok.Video, now time.Time) AggregateResult {
	result := AggregateResult{TotalVideos: int64(len(videos))}
	nowMs := now.UnixMilli()

	for i := range videos {
		v := &videos[i]
		result.TotalViews += v.ViewCount
		result.TotalLikes += v.LikeCount
		result.TotalComments += v.CommentCount
		result.TotalShares += v.ShareCount

		// 滑动 7 天窗口，窗口下边界（整 7 天前）含，更旧不含；无发布时间的不计入
		createdMs := v.CreateTime * 1000
		if createdMs > 0 && nowMs-createdMs <= weekMs {
			result.Views7d += v.ViewCount
		}

		// 并列取先遇到的一条
		if result.TopPost == nil || v.ViewCount > result.TopPost.ViewCount {
			result.TopPost = v
		}
	}

	if result.TotalViews > 0 {
		engagements := result.TotalLikes + result.TotalComments + result.TotalShares
		// 互动数可能超过播放数，比率不做 1.0 截断
		result.EngagementRate = float64(engagements) / float64(result.TotalViews)
	}
	if result.TotalVideos > 0 {
		result.AvgViews = int64(math.Round(float64(result.TotalViews) / float64(result.TotalVideos)))
	}

	return result
}

// BestTimeBuckets 按发布小时分桶，互动率降序取前三
// 只统计有发布时间且播放数大于零的视频；并列保持建桶顺序
func BestTimeBuckets(videos []tiktok.Video) []BestTimeBucket {
	buckets := make([]BestTimeBucket, 0)
	index := make(map[int]int)

	for _, v := range videos {
		if v.CreateTime == 0 || v.ViewCount <= 0 {
			continue
		}
		hour := time.Unix(v.CreateTime, 0).Hour()
		i, ok := index[hour]
		if !ok {
			i = len(buckets)
			index[hour] = i
			buckets = append(buckets, BestTimeBucket{Hour: hour})
		}
		buckets[i].Views += v.ViewCount
		buckets[i].Engagements += v.LikeCount + v.CommentCount + v.ShareCount
		buckets[i].Posts++
	}

	for i := range buckets {
		if buckets[i].Views > 0 {
			buckets[i].EngagementRate = float64(buckets[i].Engagements) / float64(buckets[i].Views)
		}
	}

	sort.SliceStable(buckets, func(a, b int) bool {
		return buckets[a].EngagementRate > buckets[b].EngagementRate
	})

	if len(buckets) > 3 {
		buckets = buckets[:3]
	}
	return buckets
}
