package model

import "time"

// TikTokCredential 单账号 OAuth 凭据，全表只有一行
// ExpiresAt 为毫秒时间戳，始终对应当前存储的 access token
type TikTokCredential struct {
	ID           uint64  `gorm:"primaryKey"`
	AccessToken  string  `gorm:"type:text;not null"`
	RefreshToken string  `gorm:"type:text;not null"`
	ExpiresAt    int64   `gorm:"not null"`
	Scope        *string `gorm:"type:varchar(255)"`
	OpenID       *string `gorm:"type:varchar(128)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TikTokCredential) TableName() string {
	return "tiktok_credentials"
}
