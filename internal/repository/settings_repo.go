package repository

import (
	"Clipsight/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepo interface {
	Get(ctx context.Context, openID string) (*model.UserSetting, error)
	Save(ctx context.Context, setting *model.UserSetting) error
}

type settingsRepoImpl struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepo {
	return &settingsRepoImpl{db: db}
}

func (s *settingsRepoImpl) Get(ctx context.Context, openID string) (*model.UserSetting, error) {
	var setting model.UserSetting
	err := s.db.WithContext(ctx).
		Where("open_id = ?", openID).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (s *settingsRepoImpl) Save(ctx context.Context, setting *model.UserSetting) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(setting).Error
}
