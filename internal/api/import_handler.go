package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"CricketStats/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ImportHandler 上传CSV导入
type ImportHandler struct {
	importService *service.ImportService
	logger        *logrus.Logger
}

// NewImportHandler 创建 ImportHandler
func NewImportHandler(svc *service.ImportService, logger *logrus.Logger) *ImportHandler {
	return &ImportHandler{
		importService: svc,
		logger:        logger,
	}
}

// ImportBatting 导入击球CSV（multipart 字段 file）
// POST /api/import/batting
func (h *ImportHandler) ImportBatting(c *gin.Context) {
	h.handle(c, "batting", h.importService.ImportBatting)
}

// ImportBowling 导入投球CSV
// POST /api/import/bowling
func (h *ImportHandler) ImportBowling(c *gin.Context) {
	h.handle(c, "bowling", h.importService.ImportBowling)
}

func (h *ImportHandler) handle(c *gin.Context, kind string, importFn func(context.Context, io.Reader) (*service.ImportResult, error)) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			h.logger.WithError(err).Warn("关闭上传文件失败")
		}
	}()

	result, err := importFn(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCSV) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).WithFields(logrus.Fields{"kind": kind, "filename": fh.Filename}).Error("导入失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
