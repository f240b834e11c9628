package model

// TikTokSnapshot 每日指标快照，按日期去重，写入后不可变
type TikTokSnapshot struct {
	SnapshotDate   string  `gorm:"type:varchar(10);primaryKey" json:"snapshotDate"`
	TotalVideos    int64   `gorm:"not null" json:"totalVideos"`
	TotalViews     int64   `gorm:"not null" json:"totalViews"`
	Views7d        int64   `gorm:"column:views_7d;not null" json:"views7d"`
	AvgViews       int64   `gorm:"not null" json:"avgViews"`
	EngagementRate float64 `gorm:"not null" json:"engagementRate"`
	TotalLikes     int64   `gorm:"not null" json:"totalLikes"`
	TotalComments  int64   `gorm:"not null" json:"totalComments"`
	TotalShares    int64   `gorm:"not null" json:"totalShares"`
	TopPostTitle   *string `gorm:"type:varchar(512)" json:"topPostTitle"`
	TopPostViews   *int64  `json:"topPostViews"`
	CreatedAt      int64   `gorm:"not null" json:"createdAt"`
}

func (TikTokSnapshot) TableName() string {
	return "tiktok_snapshots"
}
