package handler

import (
	"Clipsight/internal/pkg/response"
	"Clipsight/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// GetAnalytics 返回账号实时分析，未连接时返回 not_connected 状态而不是错误
func (s *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	result, err := s.analyticsSvc.GetAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
