package handler

import (
	"Clipsight/internal/pkg/response"
	"Clipsight/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct {
	snapshotSvc service.SnapshotService
}

func NewSnapshotHandler(snapshotSvc service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotSvc: snapshotSvc}
}

// Create 触发当天快照，重复触发返回 exists
func (s *SnapshotHandler) Create(c *gin.Context) {
	result, err := s.snapshotSvc.CreateDaily(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// List 按日期倒序返回最近的快照，默认 7 条
func (s *SnapshotHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "7"))
	snapshots, err := s.snapshotSvc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, snapshots)
}
