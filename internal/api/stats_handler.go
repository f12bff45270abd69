package api

import (
	"errors"
	"net/http"

	"CricketStats/internal/service"
	"CricketStats/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsHandler 看板的击球/投球查询接口
type StatsHandler struct {
	statsService *service.StatsService
	logger       *logrus.Logger
}

// NewStatsHandler 创建 StatsHandler
func NewStatsHandler(svc *service.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: svc,
		logger:       logger,
	}
}

// BattingOptions 击球视图下拉框候选项
// GET /api/batting/options?format=ProT20&opponent=All
func (h *StatsHandler) BattingOptions(c *gin.Context) {
	result, err := h.statsService.BattingOptions(c.Request.Context(), c.Query("format"), c.DefaultQuery("opponent", stats.All))
	if err != nil {
		h.fail(c, "BattingOptions", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Batting 击球视图
// GET /api/batting?format=ProT20&opponent=All&player=All
func (h *StatsHandler) Batting(c *gin.Context) {
	var view stats.BattingView
	if err := c.ShouldBindQuery(&view); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.statsService.BattingReport(c.Request.Context(), view)
	if err != nil {
		h.fail(c, "Batting", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Dismissals 单名球员出局方式分布
// GET /api/batting/dismissals?player=Alice
func (h *StatsHandler) Dismissals(c *gin.Context) {
	player := c.Query("player")
	if player == "" || player == stats.All {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player is required"})
		return
	}

	result, err := h.statsService.DismissalBreakdown(c.Request.Context(), player)
	if err != nil {
		h.fail(c, "Dismissals", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BowlingOptions 投球视图下拉框候选项
// GET /api/bowling/options?opponent=All
func (h *StatsHandler) BowlingOptions(c *gin.Context) {
	result, err := h.statsService.BowlingOptions(c.Request.Context(), c.DefaultQuery("opponent", stats.All))
	if err != nil {
		h.fail(c, "BowlingOptions", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Bowling 投球视图
// GET /api/bowling?opponent=All&player=All
func (h *StatsHandler) Bowling(c *gin.Context) {
	var view stats.BowlingView
	if err := c.ShouldBindQuery(&view); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.statsService.BowlingReport(c.Request.Context(), view)
	if err != nil {
		h.fail(c, "Bowling", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Overview 默认视图下的击球与投球报告
// GET /api/overview
func (h *StatsHandler) Overview(c *gin.Context) {
	result, err := h.statsService.Overview(c.Request.Context())
	if err != nil {
		h.fail(c, "Overview", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *StatsHandler) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrUnknownFormat) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logger.WithError(err).Error(op + " failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
