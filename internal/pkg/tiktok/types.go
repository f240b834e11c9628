package tiktok

import "math"

// UserInfo 上游账号信息
type UserInfo struct {
	OpenID          string `json:"open_id"`
	UnionID         string `json:"union_id,omitempty"`
	DisplayName     string `json:"display_name,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	ProfileDeepLink string `json:"profile_deep_link,omitempty"`
}

// Token 上游 token 接口返回（exchange / refresh 共用一个形状）
// refresh 时 access_token / expires_in 之外的字段可能缺失
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	OpenID       string `json:"open_id"`
}

// RawVideo 上游视频原始记录，数值字段可能缺失或非法
type RawVideo struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	CreateTime    int64    `json:"create_time"`
	ViewCount     *float64 `json:"view_count"`
	LikeCount     *float64 `json:"like_count"`
	CommentCount  *float64 `json:"comment_count"`
	ShareCount    *float64 `json:"share_count"`
	CoverImageURL string   `json:"cover_image_url"`
	ShareURL      string   `json:"share_url"`
}

// Video 归一化后的视频记录，计数字段保证为非负整数
type Video struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title,omitempty"`
	CreateTime    int64  `json:"create_time,omitempty"`
	ViewCount     int64  `json:"view_count"`
	LikeCount     int64  `json:"like_count"`
	CommentCount  int64  `json:"comment_count"`
	ShareCount    int64  `json:"share_count"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	ShareURL      string `json:"share_url,omitempty"`
}

// Normalize 归一化单条原始记录：缺失、非有限或负数计数一律归零
func (r RawVideo) Normalize() Video {
	return Video{
		ID:            r.ID,
		Title:         r.Title,
		CreateTime:    r.CreateTime,
		ViewCount:     safeCount(r.ViewCount),
		LikeCount:     safeCount(r.LikeCount),
		CommentCount:  safeCount(r.CommentCount),
		ShareCount:    safeCount(r.ShareCount),
		CoverImageURL: r.CoverImageURL,
		ShareURL:      r.ShareURL,
	}
}

// NormalizeAll 批量归一化，保持输入顺序
func NormalizeAll(raws []RawVideo) []Video {
	videos := make([]Video, 0, len(raws))
	for _, r := range raws {
		videos = append(videos, r.Normalize())
	}
	return videos
}

func safeCount(v *float64) int64 {
	if v == nil {
		return 0
	}
	f := *v
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int64(f)
}
