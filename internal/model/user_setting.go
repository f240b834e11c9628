package model

// UserSetting 按 open_id 存储的不透明设置 JSON
type UserSetting struct {
	OpenID    string `gorm:"type:varchar(128);primaryKey"`
	Data      string `gorm:"type:text;not null"`
	UpdatedAt int64  `gorm:"not null"`
}

func (UserSetting) TableName() string {
	return "user_settings"
}
