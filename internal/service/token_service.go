package service

import (
	"Clipsight/internal/model"
	"Clipsight/internal/pkg/tiktok"
	"Clipsight/internal/repository"
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// 提前 60 秒刷新，抵消时钟偏差和在途请求的消耗
const refreshMarginMs = 60_000

// 全局只有一个凭据槽位，singleflight 按它合并并发刷新
const credentialSlotKey = "tiktok-credential"

// OAuthProvider 上游授权端点
type OAuthProvider interface {
	BuildAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*tiktok.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*tiktok.Token, error)
}

type TokenService interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*model.TikTokCredential, error)
	// GetAuthorized 未连接时返回 nil, nil，调用方按状态分支
	GetAuthorized(ctx context.Context) (*model.TikTokCredential, error)
	Disconnect(ctx context.Context) error
}

type tokenServiceImpl struct {
	credRepo repository.CredentialRepo
	oauth    OAuthProvider
	group    singleflight.Group
	now      func() time.Time
}

func NewTokenService(credRepo repository.CredentialRepo, oauth OAuthProvider) TokenService {
	return &tokenServiceImpl{
		credRepo: credRepo,
		oauth:    oauth,
		now:      time.Now,
	}
}

func (s *tokenServiceImpl) AuthURL(state string) string {
	return s.oauth.BuildAuthURL(state)
}

// Exchange 成功后整行覆盖存储的凭据
func (s *tokenServiceImpl) Exchange(ctx context.Context, code string) (*model.TikTokCredential, error) {
	token, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	cred := &model.TikTokCredential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    s.now().UnixMilli() + token.ExpiresIn*1000,
		Scope:        strOrNil(token.Scope),
		OpenID:       strOrNil(token.OpenID),
	}
	if err := s.credRepo.Save(ctx, cred); err != nil {
		return nil, err
	}
	return cred, nil
}

func (s *tokenServiceImpl) GetAuthorized(ctx context.Context) (*model.TikTokCredential, error) {
	cred, err := s.credRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, nil
	}
	if s.now().UnixMilli() <= cred.ExpiresAt-refreshMarginMs {
		return cred, nil
	}

	v, err, _ := s.group.Do(credentialSlotKey, func() (interface{}, error) {
		return s.refresh(ctx, cred)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.TikTokCredential), nil
}

// refresh 失败时不改动已存储的凭据；刷新响应缺省的字段沿用旧值
func (s *tokenServiceImpl) refresh(ctx context.Context, cred *model.TikTokCredential) (*model.TikTokCredential, error) {
	token, err := s.oauth.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		return nil, err
	}

	next := &model.TikTokCredential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    s.now().UnixMilli() + token.ExpiresIn*1000,
		Scope:        strOrNil(token.Scope),
		OpenID:       strOrNil(token.OpenID),
	}
	if next.RefreshToken == "" {
		next.RefreshToken = cred.RefreshToken
	}
	if next.Scope == nil {
		next.Scope = cred.Scope
	}
	if next.OpenID == nil {
		next.OpenID = cred.OpenID
	}

	if err := s.credRepo.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *tokenServiceImpl) Disconnect(ctx context.Context) error {
	return s.credRepo.Delete(ctx)
}

func strOrNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
