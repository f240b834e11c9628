package service

import (
	"Clipsight/internal/api/dto"
	"Clipsight/internal/pkg/consts"
	"Clipsight/internal/pkg/redis"
	"Clipsight/internal/pkg/tiktok"
	"Clipsight/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

const analyticsCacheTTL = 5 * time.Minute

// ContentAPI 上游内容接口
type ContentAPI interface {
	FetchUserInfo(ctx context.Context, accessToken string) (*tiktok.UserInfo, error)
	FetchVideoList(ctx context.Context, accessToken string) ([]tiktok.RawVideo, error)
}

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*dto.AnalyticsDTO, error)
}

type analyticsServiceImpl struct {
	tokenSvc     TokenService
	api          ContentAPI
	snapshotRepo repository.SnapshotRepo
	now          func() time.Time
}

func NewAnalyticsService(tokenSvc TokenService, api ContentAPI, snapshotRepo repository.SnapshotRepo) AnalyticsService {
	return &analyticsServiceImpl{
		tokenSvc:     tokenSvc,
		api:          api,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

func (s *analyticsServiceImpl) GetAnalytics(ctx context.Context) (*dto.AnalyticsDTO, error) {
	cred, err := s.tokenSvc.GetAuthorized(ctx)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return &dto.AnalyticsDTO{
			Status:  consts.AnalyticsStatusNotConnected,
			Message: "Connect TikTok to retrieve live analytics.",
		}, nil
	}

	if cached := s.readCache(ctx); cached != nil {
		return cached, nil
	}

	// 账号信息和视频列表相互独立，并发拉取后汇合
	var user *tiktok.UserInfo
	var raws []tiktok.RawVideo
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.api.FetchUserInfo(gCtx, cred.AccessToken)
		return err
	})
	g.Go(func() error {
		var err error
		raws, err = s.api.FetchVideoList(gCtx, cred.AccessToken)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	videos := tiktok.NormalizeAll(raws)
	agg := Aggregate(videos, s.now())
	buckets := BestTimeBuckets(videos)
	recommendations := BuildRecommendations(agg, buckets)

	snapshots, err := s.snapshotRepo.ListRecent(ctx, 7)
	if err != nil {
		return nil, err
	}

	bestTimes := make([]*dto.BestTimeDTO, 0, len(buckets))
	for _, b := range buckets {
		item := &dto.BestTimeDTO{}
		_ = copier.Copy(item, &b)
		bestTimes = append(bestTimes, item)
	}

	result := &dto.AnalyticsDTO{
		Status: consts.AnalyticsStatusConnected,
		User:   user,
		Metrics: &dto.MetricsDTO{
			TotalVideos:    agg.TotalVideos,
			TotalViews:     agg.TotalViews,
			Views7d:        agg.Views7d,
			AvgViews:       agg.AvgViews,
			EngagementRate: agg.EngagementRate,
			TotalLikes:     agg.TotalLikes,
			TotalComments:  agg.TotalComments,
			TotalShares:    agg.TotalShares,
		},
		TopPost:         agg.TopPost,
		BestTimes:       bestTimes,
		Snapshots:       snapshots,
		Recommendations: recommendations,
	}

	s.writeCache(ctx, result)
	return result, nil
}

// 缓存读写失败只降级为直查，不向上抛
func (s *analyticsServiceImpl) readCache(ctx context.Context) *dto.AnalyticsDTO {
	raw, err := redis.GetValue(ctx, consts.AnalyticsCacheKey)
	if err != nil || raw == "" {
		return nil
	}
	var cached dto.AnalyticsDTO
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *analyticsServiceImpl) writeCache(ctx context.Context, result *dto.AnalyticsDTO) {
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := redis.SetWithExpiration(ctx, consts.AnalyticsCacheKey, string(raw), analyticsCacheTTL); err != nil {
		log.WarnContext(ctx, "cache analytics result failed", "err", err)
	}
}
