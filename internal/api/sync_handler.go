package api

import (
	"errors"
	"net/http"

	"CricketStats/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SyncHandler struct {
	collectService *service.CollectService
	logger         *logrus.Logger
}

func NewSyncHandler(svc *service.CollectService, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		collectService: svc,
		logger:         logger,
	}
}

// CollectHandler 从联赛网站采集本赛季逐场数据并入库
// @Summary 采集球队逐场统计
// @Success 200 {object} service.CollectResult
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /sync/collect [post]
func (h *SyncHandler) CollectHandler(c *gin.Context) {
	result, err := h.collectService.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrCollectRunning) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Errorf("采集失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
