package service

import (
	"Clipsight/internal/pkg/tiktok"
	"testing"
	"time"
)

var aggNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func secondsAgo(d time.Duration) int64 {
	return aggNow.Add(-d).Unix()
}

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate(nil, aggNow)
	if result.TotalVideos != 0 || result.TotalViews != 0 || result.AvgViews != 0 {
		t.Errorf("expected zero result, got %+v", result)
	}
	if result.EngagementRate != 0 {
		t.Errorf("EngagementRate = %v, want 0", result.EngagementRate)
	}
	if result.TopPost != nil {
		t.Errorf("TopPost = %+v, want nil", result.TopPost)
	}
}

func TestAggregateTotals(t *testing.T) {
	videos := []tiktok.Video{
		{ID: "a", Title: "first", CreateTime: secondsAgo(24 * time.Hour), ViewCount: 100, LikeCount: 10, CommentCount: 5, ShareCount: 5},
		{ID: "b", Title: "second", CreateTime: secondsAgo(48 * time.Hour), ViewCount: 300, LikeCount: 30, CommentCount: 10, ShareCount: 10},
	}
	result := Aggregate(videos, aggNow)

	if result.TotalVideos != 2 || result.TotalViews != 400 {
		t.Errorf("totals wrong: %+v", result)
	}
	if result.TotalLikes != 40 || result.TotalComments != 15 || result.TotalShares != 15 {
		t.Errorf("engagement totals wrong: %+v", result)
	}
	if result.AvgViews != 200 {
		t.Errorf("AvgViews = %d, want 200", result.AvgViews)
	}
	// (40+15+15)/400
	if result.EngagementRate != 0.175 {
		t.Errorf("EngagementRate = %v, want 0.175", result.EngagementRate)
	}
	if result.TopPost == nil || result.TopPost.ID != "b" {
		t.Errorf("TopPost = %+v, want id b", result.TopPost)
	}
}

func TestAggregateViews7dWindow(t *testing.T) {
	videos := []tiktok.Video{
		{ID: "in", CreateTime: secondsAgo(7 * 24 * time.Hour), ViewCount: 50},
		{ID: "out", CreateTime: secondsAgo(7*24*time.Hour + time.Second), ViewCount: 70},
		{ID: "no-time", CreateTime: 0, ViewCount: 90},
	}
	result := Aggregate(videos, aggNow)

	// 整 7 天前的视频含在窗口内，再旧一秒即排除，无发布时间的不计入
	if result.Views7d != 50 {
		t.Errorf("Views7d = %d, want 50", result.Views7d)
	}
	if result.TotalViews != 210 {
		t.Errorf("TotalViews = %d, want 210", result.TotalViews)
	}
}

func TestAggregateRateNotClamped(t *testing.T) {
	videos := []tiktok.Video{
		{ID: "a", ViewCount: 10, LikeCount: 20, CommentCount: 5, ShareCount: 0},
	}
	result := Aggregate(videos, aggNow)
	if result.EngagementRate != 2.5 {
		t.Errorf("EngagementRate = %v, want 2.5", result.EngagementRate)
	}
}

func TestAggregateTopPostTieKeepsFirst(t *testing.T) {
	videos := []tiktok.Video{
		{ID: "first", ViewCount: 100},
		{ID: "second", ViewCount: 100},
	}
	result := Aggregate(videos, aggNow)
	if result.TopPost.ID != "first" {
		t.Errorf("TopPost.ID = %q, want first", result.TopPost.ID)
	}
}

func TestBestTimeBuckets(t *testing.T) {
	at := func(hour int) int64 {
		return time.Date(2025, 6, 10, hour, 30, 0, 0, time.Local).Unix()
	}
	videos := []tiktok.Video{
		// 9 点两条，合计互动率 30/300
		{ID: "a", CreateTime: at(9), ViewCount: 100, LikeCount: 10},
		{ID: "b", CreateTime: at(9), ViewCount: 200, LikeCount: 20},
		// 14 点互动率 40/100，应排第一
		{ID: "c", CreateTime: at(14), ViewCount: 100, LikeCount: 40},
		// 无发布时间或零播放的不计入
		{ID: "d", CreateTime: 0, ViewCount: 500, LikeCount: 100},
		{ID: "e", CreateTime: at(20), ViewCount: 0, LikeCount: 9},
	}

	buckets := BestTimeBuckets(videos)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d: %+v", len(buckets), buckets)
	}
	if buckets[0].Hour != 14 || buckets[1].Hour != 9 {
		t.Errorf("bucket order = [%d %d], want [14 9]", buckets[0].Hour, buckets[1].Hour)
	}
	if buckets[1].Posts != 2 || buckets[1].Views != 300 {
		t.Errorf("hour 9 bucket wrong: %+v", buckets[1])
	}
	if buckets[0].EngagementRate != 0.4 {
		t.Errorf("hour 14 rate = %v, want 0.4", buckets[0].EngagementRate)
	}
}

func TestBestTimeBucketsCapsAtThree(t *testing.T) {
	videos := make([]tiktok.Video, 0, 5)
	for i := 0; i < 5; i++ {
		created := time.Date(2025, 6, 10, i+6, 0, 0, 0, time.Local).Unix()
		videos = append(videos, tiktok.Video{
			ID:         string(rune('a' + i)),
			CreateTime: created,
			ViewCount:  100,
			LikeCount:  int64(i + 1),
		})
	}
	buckets := BestTimeBuckets(videos)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	// 互动率最高的小时在前
	if buckets[0].Hour != 10 {
		t.Errorf("buckets[0].Hour = %d, want 10", buckets[0].Hour)
	}
}
