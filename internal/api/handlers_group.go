package api

import "Clipsight/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler      *handler.UserHandler
	TikTokHandler    *handler.TikTokHandler
	AnalyticsHandler *handler.AnalyticsHandler
	SnapshotHandler  *handler.SnapshotHandler
	SettingsHandler  *handler.SettingsHandler
	AgentHandler     *handler.AgentHandler
}
