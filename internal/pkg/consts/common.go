package consts

const (
	// 快照日期统一按 UTC 计算，避免跨时区产生重复或缺失
	SnapshotDateLayout = "2006-01-02"

	SnapshotStatusCreated      = "created"
	SnapshotStatusExists       = "exists"
	SnapshotStatusNotConnected = "not_connected"

	AnalyticsStatusConnected    = "connected"
	AnalyticsStatusNotConnected = "not_connected"
)
