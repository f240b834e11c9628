package repository

import (
	"Clipsight/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo interface {
	GetByDate(ctx context.Context, date string) (*model.TikTokSnapshot, error)
	// Insert 依赖日期主键做存储层去重，已存在时返回 false 且不改动旧行
	Insert(ctx context.Context, snap *model.TikTokSnapshot) (bool, error)
	ListRecent(ctx context.Context, limit int) ([]*model.TikTokSnapshot, error)
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return &snapshotRepoImpl{db: db}
}

func (s *snapshotRepoImpl) GetByDate(ctx context.Context, date string) (*model.TikTokSnapshot, error) {
	var snap model.TikTokSnapshot
	err := s.db.WithContext(ctx).
		Where("snapshot_date = ?", date).
		First(&snap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}

func (s *snapshotRepoImpl) Insert(ctx context.Context, snap *model.TikTokSnapshot) (bool, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "snapshot_date"}},
		DoNothing: true,
	}).Create(snap)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *snapshotRepoImpl) ListRecent(ctx context.Context, limit int) ([]*model.TikTokSnapshot, error) {
	snaps := make([]*model.TikTokSnapshot, 0)
	result := s.db.WithContext(ctx).
		Order("snapshot_date DESC").
		Limit(limit).
		Find(&snaps)
	if result.Error != nil {
		return nil, result.Error
	}
	return snaps, nil
}
