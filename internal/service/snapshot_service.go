package service

import (
	"Clipsight/internal/api/dto"
	"Clipsight/internal/model"
	"Clipsight/internal/pkg/consts"
	"Clipsight/internal/pkg/tiktok"
	"Clipsight/internal/repository"
	"context"
	"time"
)

// VideoLister 快照只需要视频列表这一个上游能力
type VideoLister interface {
	FetchVideoList(ctx context.Context, accessToken string) ([]tiktok.RawVideo, error)
}

type SnapshotService interface {
	// CreateDaily 幂等：同一天重复调用返回 exists，已存冻结数据不被覆盖
	CreateDaily(ctx context.Context) (*dto.SnapshotResultDTO, error)
	ListRecent(ctx context.Context, limit int) ([]*model.TikTokSnapshot, error)
}

type snapshotServiceImpl struct {
	snapshotRepo repository.SnapshotRepo
	tokenSvc     TokenService
	videos       VideoLister
	now          func() time.Time
}

func NewSnapshotService(snapshotRepo repository.SnapshotRepo, tokenSvc TokenService, videos VideoLister) SnapshotService {
	return &snapshotServiceImpl{
		snapshotRepo: snapshotRepo,
		tokenSvc:     tokenSvc,
		videos:       videos,
		now:          time.Now,
	}
}

func (s *snapshotServiceImpl) CreateDaily(ctx context.Context) (*dto.SnapshotResultDTO, error) {
	date := s.now().UTC().Format(consts.SnapshotDateLayout)

	existing, err := s.snapshotRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.SnapshotResultDTO{Status: consts.SnapshotStatusExists, Date: date}, nil
	}

	cred, err := s.tokenSvc.GetAuthorized(ctx)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return &dto.SnapshotResultDTO{Status: consts.SnapshotStatusNotConnected, Date: date}, nil
	}

	raws, err := s.videos.FetchVideoList(ctx, cred.AccessToken)
	if err != nil {
		return nil, err
	}

	agg := Aggregate(tiktok.NormalizeAll(raws), s.now())
	snap := &model.TikTokSnapshot{
		SnapshotDate:   date,
		TotalVideos:    agg.TotalVideos,
		TotalViews:     agg.TotalViews,
		Views7d:        agg.Views7d,
		AvgViews:       agg.AvgViews,
		EngagementRate: agg.EngagementRate,
		TotalLikes:     agg.TotalLikes,
		TotalComments:  agg.TotalComments,
		TotalShares:    agg.TotalShares,
		CreatedAt:      s.now().UnixMilli(),
	}
	if agg.TopPost != nil {
		snap.TopPostTitle = strOrNil(agg.TopPost.Title)
		views := agg.TopPost.ViewCount
		snap.TopPostViews = &views
	}

	// 日期是主键，并发触发时由存储层去重，先写入的一方生效
	created, err := s.snapshotRepo.Insert(ctx, snap)
	if err != nil {
		return nil, err
	}
	status := consts.SnapshotStatusCreated
	if !created {
		status = consts.SnapshotStatusExists
	}
	return &dto.SnapshotResultDTO{Status: status, Date: date}, nil
}

func (s *snapshotServiceImpl) ListRecent(ctx context.Context, limit int) ([]*model.TikTokSnapshot, error) {
	if limit <= 0 {
		limit = 7
	}
	return s.snapshotRepo.ListRecent(ctx, limit)
}
