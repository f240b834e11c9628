package service

import (
	"Clipsight/internal/model"
	"Clipsight/internal/pkg/tiktok"
	"context"
	"errors"
	"testing"
	"time"
)

type fakeCredRepo struct {
	cred *model.TikTokCredential
}

func (f *fakeCredRepo) Get(ctx context.Context) (*model.TikTokCredential, error) {
	if f.cred == nil {
		return nil, nil
	}
	c := *f.cred
	return &c, nil
}

func (f *fakeCredRepo) Save(ctx context.Context, cred *model.TikTokCredential) error {
	c := *cred
	f.cred = &c
	return nil
}

func (f *fakeCredRepo) Delete(ctx context.Context) error {
	f.cred = nil
	return nil
}

type fakeOAuth struct {
	exchangeResp *tiktok.Token
	refreshResp  *tiktok.Token
	refreshErr   error
	refreshCalls int
}

func (f *fakeOAuth) BuildAuthURL(state string) string { return "https://auth.test/?state=" + state }

func (f *fakeOAuth) ExchangeCode(ctx context.Context, code string) (*tiktok.Token, error) {
	return f.exchangeResp, nil
}

func (f *fakeOAuth) Refresh(ctx context.Context, refreshToken string) (*tiktok.Token, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.refreshResp, nil
}

var tokenNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTokenServiceForTest(repo *fakeCredRepo, oauth *fakeOAuth) *tokenServiceImpl {
	return &tokenServiceImpl{
		credRepo: repo,
		oauth:    oauth,
		now:      func() time.Time { return tokenNow },
	}
}

func strPtr(v string) *string { return &v }

func TestGetAuthorizedNotConnected(t *testing.T) {
	s := newTokenServiceForTest(&fakeCredRepo{}, &fakeOAuth{})

	cred, err := s.GetAuthorized(context.Background())
	if err != nil {
		t.Fatalf("GetAuthorized: %v", err)
	}
	if cred != nil {
		t.Errorf("expected nil credential, got %+v", cred)
	}
}

func TestGetAuthorizedFreshTokenSkipsRefresh(t *testing.T) {
	repo := &fakeCredRepo{cred: &model.TikTokCredential{
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    tokenNow.UnixMilli() + 120_000,
	}}
	oauth := &fakeOAuth{}
	s := newTokenServiceForTest(repo, oauth)

	cred, err := s.GetAuthorized(context.Background())
	if err != nil {
		t.Fatalf("GetAuthorized: %v", err)
	}
	if cred.AccessToken != "at" {
		t.Errorf("AccessToken = %q, want at", cred.AccessToken)
	}
	if oauth.refreshCalls != 0 {
		t.Errorf("refreshCalls = %d, want 0", oauth.refreshCalls)
	}
}

func TestGetAuthorizedRefreshesInsideMargin(t *testing.T) {
	repo := &fakeCredRepo{cred: &model.TikTokCredential{
		AccessToken:  "stale",
		RefreshToken: "rt",
		ExpiresAt:    tokenNow.UnixMilli() + 30_000,
	}}
	oauth := &fakeOAuth{refreshResp: &tiktok.Token{
		AccessToken:  "fresh",
		RefreshToken: "rt2",
		ExpiresIn:    86400,
		Scope:        "video.list",
		OpenID:       "oid",
	}}
	s := newTokenServiceForTest(repo, oauth)

	cred, err := s.GetAuthorized(context.Background())
	if err != nil {
		t.Fatalf("GetAuthorized: %v", err)
	}
	if oauth.refreshCalls != 1 {
		t.Errorf("refreshCalls = %d, want 1", oauth.refreshCalls)
	}
	if cred.AccessToken != "fresh" || cred.RefreshToken != "rt2" {
		t.Errorf("unexpected credential: %+v", cred)
	}
	wantExpiry := tokenNow.UnixMilli() + 86400*1000
	if cred.ExpiresAt != wantExpiry {
		t.Errorf("ExpiresAt = %d, want %d", cred.ExpiresAt, wantExpiry)
	}
	if repo.cred.AccessToken != "fresh" {
		t.Errorf("refreshed credential not persisted: %+v", repo.cred)
	}
}

func TestGetAuthorizedPartialRefreshKeepsPriorFields(t *testing.T) {
	repo := &fakeCredRepo{cred: &model.TikTokCredential{
		AccessToken:  "stale",
		RefreshToken: "rt",
		ExpiresAt:    tokenNow.UnixMilli() - 1000,
		Scope:        strPtr("video.list"),
		OpenID:       strPtr("oid"),
	}}
	oauth := &fakeOAuth{refreshResp: &tiktok.Token{
		AccessToken: "fresh",
		ExpiresIn:   7200,
	}}
	s := newTokenServiceForTest(repo, oauth)

	cred, err := s.GetAuthorized(context.Background())
	if err != nil {
		t.Fatalf("GetAuthorized: %v", err)
	}
	if cred.RefreshToken != "rt" {
		t.Errorf("RefreshToken = %q, want prior rt", cred.RefreshToken)
	}
	if cred.Scope == nil || *cred.Scope != "video.list" {
		t.Errorf("Scope not preserved: %+v", cred.Scope)
	}
	if cred.OpenID == nil || *cred.OpenID != "oid" {
		t.Errorf("OpenID not preserved: %+v", cred.OpenID)
	}
}

func TestGetAuthorizedRefreshFailureLeavesStoredCredential(t *testing.T) {
	stored := &model.TikTokCredential{
		AccessToken:  "stale",
		RefreshToken: "rt",
		ExpiresAt:    tokenNow.UnixMilli() - 1000,
	}
	repo := &fakeCredRepo{cred: stored}
	oauth := &fakeOAuth{refreshErr: &tiktok.AuthError{Message: "refresh token expired"}}
	s := newTokenServiceForTest(repo, oauth)

	_, err := s.GetAuthorized(context.Background())
	var authErr *tiktok.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if repo.cred.AccessToken != "stale" || repo.cred.RefreshToken != "rt" {
		t.Errorf("stored credential changed: %+v", repo.cred)
	}
}

func TestExchangePersistsCredential(t *testing.T) {
	repo := &fakeCredRepo{}
	oauth := &fakeOAuth{exchangeResp: &tiktok.Token{
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresIn:    86400,
		Scope:        "user.info.basic",
		OpenID:       "oid",
	}}
	s := newTokenServiceForTest(repo, oauth)

	cred, err := s.Exchange(context.Background(), "code")
	if err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if cred.ExpiresAt != tokenNow.UnixMilli()+86400*1000 {
		t.Errorf("ExpiresAt = %d", cred.ExpiresAt)
	}
	if repo.cred == nil || repo.cred.AccessToken != "at" {
		t.Errorf("credential not persisted: %+v", repo.cred)
	}
}

func TestDisconnectRemovesCredential(t *testing.T) {
	repo := &fakeCredRepo{cred: &model.TikTokCredential{AccessToken: "at"}}
	s := newTokenServiceForTest(repo, &fakeOAuth{})

	if err := s.Disconnect(context.Background()); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if repo.cred != nil {
		t.Errorf("credential still present: %+v", repo.cred)
	}
}
