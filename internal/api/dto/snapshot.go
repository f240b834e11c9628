package dto

// SnapshotResultDTO 快照创建结果
type SnapshotResultDTO struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}
