package service

import (
	"Clipsight/internal/api/dto"
	"Clipsight/internal/model"
	"Clipsight/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsDTO, error)
	Save(ctx context.Context, data json.RawMessage) error
}

type settingsServiceImpl struct {
	settingsRepo repository.SettingsRepo
	tokenSvc     TokenService
	now          func() time.Time
}

func NewSettingsService(settingsRepo repository.SettingsRepo, tokenSvc TokenService) SettingsService {
	return &settingsServiceImpl{
		settingsRepo: settingsRepo,
		tokenSvc:     tokenSvc,
		now:          time.Now,
	}
}

// 设置按已连接账号的 open_id 存储，未连接时无处可挂
func (s *settingsServiceImpl) openID(ctx context.Context) (string, error) {
	cred, err := s.tokenSvc.GetAuthorized(ctx)
	if err != nil {
		return "", err
	}
	if cred == nil || cred.OpenID == nil || *cred.OpenID == "" {
		return "", ErrNotConnected
	}
	return *cred.OpenID, nil
}

func (s *settingsServiceImpl) Get(ctx context.Context) (*dto.SettingsDTO, error) {
	openID, err := s.openID(ctx)
	if err != nil {
		return nil, err
	}

	setting, err := s.settingsRepo.Get(ctx, openID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &dto.SettingsDTO{Data: json.RawMessage("{}")}, nil
	}
	return &dto.SettingsDTO{
		Data:      json.RawMessage(setting.Data),
		UpdatedAt: setting.UpdatedAt,
	}, nil
}

func (s *settingsServiceImpl) Save(ctx context.Context, data json.RawMessage) error {
	openID, err := s.openID(ctx)
	if err != nil {
		return err
	}

	return s.settingsRepo.Save(ctx, &model.UserSetting{
		OpenID:    openID,
		Data:      string(data),
		UpdatedAt: s.now().UnixMilli(),
	})
}
