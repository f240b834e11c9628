package handler

import (
	"Clipsight/internal/api/dto"
	"Clipsight/internal/pkg/llm"
	"Clipsight/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct{}

func NewAgentHandler() *AgentHandler {
	return &AgentHandler{}
}

// Estimate 代理一次 AI 文案生成
func (s *AgentHandler) Estimate(c *gin.Context) {
	var estimateDTO dto.EstimateDTO
	if err := c.ShouldBind(&estimateDTO); err != nil {
		response.Error(c, err)
		return
	}

	text, err := llm.Estimate(c.Request.Context(), estimateDTO.Prompt, estimateDTO.Mode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.EstimateResultDTO{Text: text})
}
