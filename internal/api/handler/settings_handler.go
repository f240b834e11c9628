package handler

import (
	"Clipsight/internal/api/dto"
	"Clipsight/internal/pkg/response"
	"Clipsight/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsSvc service.SettingsService
}

func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

func (s *SettingsHandler) Get(c *gin.Context) {
	settings, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, settings)
}

func (s *SettingsHandler) Save(c *gin.Context) {
	var saveDTO dto.SaveSettingsDTO
	if err := c.ShouldBind(&saveDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.settingsSvc.Save(c.Request.Context(), saveDTO.Data); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
