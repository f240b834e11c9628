package repository

import (
	"Clipsight/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 单租户：凭据固定落在这一行，key 由仓储层统一提供
const credentialSlotID uint64 = 1

type CredentialRepo interface {
	Get(ctx context.Context) (*model.TikTokCredential, error)
	Save(ctx context.Context, cred *model.TikTokCredential) error
	Delete(ctx context.Context) error
}

type credentialRepoImpl struct {
	db *gorm.DB
}

func NewCredentialRepo(db *gorm.DB) CredentialRepo {
	return &credentialRepoImpl{db: db}
}

// Get 未连接时返回 nil, nil
func (s *credentialRepoImpl) Get(ctx context.Context) (*model.TikTokCredential, error) {
	var cred model.TikTokCredential
	err := s.db.WithContext(ctx).
		Where("id = ?", credentialSlotID).
		First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cred, nil
}

// Save 整行覆盖写入，不存在则插入
func (s *credentialRepoImpl) Save(ctx context.Context, cred *model.TikTokCredential) error {
	cred.ID = credentialSlotID
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token", "refresh_token", "expires_at", "scope", "open_id", "updated_at",
		}),
	}).Create(cred).Error
}

func (s *credentialRepoImpl) Delete(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("id = ?", credentialSlotID).
		Delete(&model.TikTokCredential{}).Error
}
