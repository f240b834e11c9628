package model

import "time"

// User 运营者账号
type User struct {
	ID          uint64 `gorm:"primaryKey"`
	Username    string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Password    string `gorm:"type:varchar(128);not null"`
	DisplayName string `gorm:"type:varchar(64)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}
