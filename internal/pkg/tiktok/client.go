package tiktok

import (
	"Clipsight/internal/api/config"
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	authBase          = "https://www.tiktok.com/v2/auth/authorize/"
	tokenEndpoint     = "https://open.tiktokapis.com/v2/oauth/token/"
	userInfoEndpoint  = "https://open.tiktokapis.com/v2/user/info/"
	videoListEndpoint = "https://open.tiktokapis.com/v2/video/list/"

	userFields  = "open_id,union_id,avatar_url,display_name,profile_deep_link"
	videoFields = "id,title,create_time,view_count,like_count,comment_count,share_count,cover_image_url,share_url"

	// 仅取第一页
	videoPageSize = 20
)

// Client TikTok 开放平台客户端
type Client struct {
	http *resty.Client
	cfg  config.TikTokConfig

	tokenURL string
	userURL  string
	videoURL string
}

func NewClient(cfg config.TikTokConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:     resty.New().SetTimeout(timeout),
		cfg:      cfg,
		tokenURL: tokenEndpoint,
		userURL:  userInfoEndpoint,
		videoURL: videoListEndpoint,
	}
}

// BuildAuthURL 拼接授权跳转地址
func (c *Client) BuildAuthURL(state string) string {
	q := url.Values{}
	q.Set("client_key", c.cfg.ClientKey)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", c.cfg.Scopes)
	q.Set("state", state)
	return authBase + "?" + q.Encode()
}

// ExchangeCode 用授权码换取 token
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"client_key":    c.cfg.ClientKey,
			"client_secret": c.cfg.ClientSecret,
			"code":          code,
			"grant_type":    "authorization_code",
			"redirect_uri":  c.cfg.RedirectURI,
		}).
		Post(c.tokenURL)
	if err != nil {
		return nil, &TransportError{Op: "token exchange", Err: err}
	}
	return parseTokenBody(resp.Body(), resp.IsSuccess(), true, "TikTok token request failed.")
}

// Refresh 用 refresh token 换取新 token
// 上游的刷新响应可能只带 access_token / expires_in，其余字段由调用方回填
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Token, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"client_key":    c.cfg.ClientKey,
			"client_secret": c.cfg.ClientSecret,
			"refresh_token": refreshToken,
			"grant_type":    "refresh_token",
		}).
		Post(c.tokenURL)
	if err != nil {
		return nil, &TransportError{Op: "token refresh", Err: err}
	}
	return parseTokenBody(resp.Body(), resp.IsSuccess(), false, "TikTok token refresh failed.")
}

// FetchUserInfo 获取账号信息
func (c *Client) FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("fields", userFields).
		Get(c.userURL)
	if err != nil {
		return nil, &TransportError{Op: "user info", Err: err}
	}

	var payload struct {
		Data struct {
			User *UserInfo `json:"user"`
		} `json:"data"`
		User    *UserInfo    `json:"user"`
		Error   upstreamFail `json:"error"`
		Message string       `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &payload)

	if !resp.IsSuccess() {
		return nil, &DataError{Message: firstNonEmpty(payload.Error.Message, payload.Message, "TikTok user fetch failed.")}
	}
	if payload.Data.User != nil {
		return payload.Data.User, nil
	}
	if payload.User != nil {
		return payload.User, nil
	}
	return &UserInfo{}, nil
}

// FetchVideoList 拉取视频列表，仅第一页
func (c *Client) FetchVideoList(ctx context.Context, accessToken string) ([]RawVideo, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("fields", videoFields).
		SetBody(map[string]interface{}{"cursor": 0, "max_count": videoPageSize}).
		Post(c.videoURL)
	if err != nil {
		return nil, &TransportError{Op: "video list", Err: err}
	}

	var payload struct {
		Data struct {
			Videos []RawVideo `json:"videos"`
		} `json:"data"`
		Videos  []RawVideo   `json:"videos"`
		Error   upstreamFail `json:"error"`
		Message string       `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &payload)

	if !resp.IsSuccess() {
		return nil, &DataError{Message: firstNonEmpty(payload.Error.Message, payload.Message, "TikTok video list fetch failed.")}
	}
	if payload.Data.Videos != nil {
		return payload.Data.Videos, nil
	}
	return payload.Videos, nil
}

type upstreamFail struct {
	Message string `json:"message"`
}

type tokenPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
	OpenID       string `json:"open_id"`
}

// requireRefresh: exchange 必须带 refresh_token，refresh 响应允许缺省
func parseTokenBody(body []byte, ok bool, requireRefresh bool, fallback string) (*Token, error) {
	var payload struct {
		Data             *tokenPayload `json:"data"`
		tokenPayload
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	if !ok || payload.Error != "" || payload.Message != "" {
		return nil, &AuthError{Message: firstNonEmpty(payload.ErrorDescription, payload.Message, fallback)}
	}

	data := payload.tokenPayload
	if payload.Data != nil {
		data = *payload.Data
	}
	if data.AccessToken == "" || data.ExpiresIn == 0 || (requireRefresh && data.RefreshToken == "") {
		return nil, &AuthError{Message: "TikTok token response missing fields."}
	}

	return &Token{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresIn:    data.ExpiresIn,
		Scope:        data.Scope,
		OpenID:       data.OpenID,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
