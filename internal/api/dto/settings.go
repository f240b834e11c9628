package dto

import "github.com/goccy/go-json"

// SettingsDTO 按 open_id 存储的设置数据，内容对服务端不透明
type SettingsDTO struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt int64           `json:"updatedAt"`
}

type SaveSettingsDTO struct {
	Data json.RawMessage `json:"data" binding:"required"`
}
