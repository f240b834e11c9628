package handler

import (
	"Clipsight/internal/api/config"
	"Clipsight/internal/pkg/consts"
	"Clipsight/internal/pkg/redis"
	"Clipsight/internal/pkg/response"
	"Clipsight/internal/service"
	log "log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// state 只用一次，给授权跳转留够填写时间即可
const oauthStateTTL = 10 * time.Minute

type TikTokHandler struct {
	tokenSvc service.TokenService
}

func NewTikTokHandler(tokenSvc service.TokenService) *TikTokHandler {
	return &TikTokHandler{tokenSvc: tokenSvc}
}

// Connect 生成随机 state 存入 Redis 后重定向到 TikTok 授权页
func (s *TikTokHandler) Connect(c *gin.Context) {
	state := uuid.NewString()
	err := redis.SetWithExpiration(c.Request.Context(), consts.OAuthStateKey+state, "1", oauthStateTTL)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, s.tokenSvc.AuthURL(state))
}

// Callback 处理 TikTok 授权回跳，校验 state 后换取令牌，结果通过查询参数带回面板页
func (s *TikTokHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if reason := c.Query("error"); reason != "" {
		log.WarnContext(ctx, "tiktok authorization denied", "error", reason, "description", c.Query("error_description"))
		s.redirectDashboard(c, "error", reason)
		return
	}

	state := c.Query("state")
	if state == "" {
		s.redirectDashboard(c, "error", "state_missing")
		return
	}
	// GETDEL 保证 state 一次性消费，重放直接失败
	stored, err := redis.GetDel(ctx, consts.OAuthStateKey+state)
	if err != nil || stored == "" {
		s.redirectDashboard(c, "error", "state_mismatch")
		return
	}

	code := c.Query("code")
	if code == "" {
		s.redirectDashboard(c, "error", "code_missing")
		return
	}

	if _, err := s.tokenSvc.Exchange(ctx, code); err != nil {
		log.ErrorContext(ctx, "tiktok code exchange failed", "err", err)
		s.redirectDashboard(c, "error", "exchange_failed")
		return
	}

	// 新账号连接后旧的分析缓存立即作废
	_ = redis.DeleteKey(ctx, consts.AnalyticsCacheKey)
	s.redirectDashboard(c, "connected", "")
}

// Disconnect 删除存储的凭据并清掉分析缓存
func (s *TikTokHandler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()
	if err := s.tokenSvc.Disconnect(ctx); err != nil {
		response.Error(c, err)
		return
	}
	_ = redis.DeleteKey(ctx, consts.AnalyticsCacheKey)
	response.Success(c, map[string]string{
		"status": "disconnected",
	})
}

func (s *TikTokHandler) redirectDashboard(c *gin.Context, status string, reason string) {
	target := config.Cfg.Server.DashboardURL
	query := url.Values{}
	query.Set("tiktok", status)
	if reason != "" {
		query.Set("reason", reason)
	}
	c.Redirect(http.StatusFound, target+"?"+query.Encode())
}
