package job

import (
	"Clipsight/internal/pkg/consts"
	"Clipsight/internal/pkg/logger"
	"Clipsight/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// SnapshotJob 每天固化一份当日指标，幂等由服务层保证
type SnapshotJob struct {
	snapshotSvc service.SnapshotService
}

func NewSnapshotJob(snapshotSvc service.SnapshotService) *SnapshotJob {
	return &SnapshotJob{
		snapshotSvc: snapshotSvc,
	}
}

func (s *SnapshotJob) Run() {
	traceID := "job-snapshot-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	result, err := s.snapshotSvc.CreateDaily(ctx)
	if err != nil {
		log.ErrorContext(ctx, "daily snapshot failed", "err", err)
		return
	}

	if result.Status == consts.SnapshotStatusNotConnected {
		log.WarnContext(ctx, "daily snapshot skipped, no connected account", "date", result.Date)
		return
	}
	log.InfoContext(ctx, "SnapshotJob finished", "date", result.Date, "status", result.Status)
}
