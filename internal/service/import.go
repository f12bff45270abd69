package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"CricketStats/internal/config"
	"CricketStats/internal/loader"
	"CricketStats/internal/metrics"
	"CricketStats/internal/model"
	"CricketStats/internal/repository"
	"CricketStats/internal/stats"
)

// ErrInvalidCSV 上传内容无法按统计表格解析
var ErrInvalidCSV = errors.New("invalid csv")

// ImportResult 单次导入的统计
type ImportResult struct {
	Kind             string         `json:"kind"`
	Batch            string         `json:"batch"`
	Read             int            `json:"read"`
	Inserted         int            `json:"inserted"`
	Duplicates       int            `json:"duplicates"`
	CoercionFailures map[string]int `json:"coercion_failures"`
}

// ImportService 表格行 → 规范化 → 入库；库中已有的 row_key 跳过，因此同一文件重复导入不新增记录
type ImportService struct {
	repo     repository.RecordRepository
	settings stats.Settings
	recorder *metrics.Recorder
	logger   *logrus.Logger
}

func NewImportService(repo repository.RecordRepository, cfg config.StatsConfig, recorder *metrics.Recorder, logger *logrus.Logger) *ImportService {
	return &ImportService{
		repo:     repo,
		settings: cfg.Settings(),
		recorder: recorder,
		logger:   logger,
	}
}

// ImportBatting 读取击球CSV并入库
func (s *ImportService) ImportBatting(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := loader.ReadBatting(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}
	return s.SaveBattingRows(ctx, rows)
}

// ImportBowling 读取投球CSV并入库
func (s *ImportService) ImportBowling(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := loader.ReadBowling(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}
	return s.SaveBowlingRows(ctx, rows)
}

// ImportFiles 启动时导入配置的CSV路径，路径为空则跳过
func (s *ImportService) ImportFiles(ctx context.Context, cfg config.ImportConfig) error {
	if cfg.BattingCSV != "" {
		if err := s.importFile(ctx, cfg.BattingCSV, s.ImportBatting); err != nil {
			return err
		}
	}
	if cfg.BowlingCSV != "" {
		if err := s.importFile(ctx, cfg.BowlingCSV, s.ImportBowling); err != nil {
			return err
		}
	}
	return nil
}

func (s *ImportService) importFile(ctx context.Context, path string, importFn func(context.Context, io.Reader) (*ImportResult, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开CSV失败 %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).WithField("path", path).Warn("关闭CSV失败")
		}
	}()
	if _, err := importFn(ctx, f); err != nil {
		return fmt.Errorf("导入CSV失败 %s: %w", path, err)
	}
	return nil
}

// SaveBattingRows 规范化原始击球行并入库（CSV导入与采集共用）
func (s *ImportService) SaveBattingRows(ctx context.Context, rows []model.RawBattingRow) (*ImportResult, error) {
	start := time.Now()
	records, report := stats.NormalizeBatting(rows)
	res := s.newResult(metrics.KindBatting, len(rows), report)
	for _, rec := range records {
		rec.Batch = res.Batch
	}

	inserted, err := s.repo.SaveBatting(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("保存击球记录失败: %w", err)
	}
	s.finish(res, inserted, time.Since(start))
	return res, nil
}

// SaveBowlingRows 规范化原始投球行并入库
func (s *ImportService) SaveBowlingRows(ctx context.Context, rows []model.RawBowlingRow) (*ImportResult, error) {
	start := time.Now()
	records, report := stats.NormalizeBowling(rows, s.settings)
	res := s.newResult(metrics.KindBowling, len(rows), report)
	for _, rec := range records {
		rec.Batch = res.Batch
	}

	inserted, err := s.repo.SaveBowling(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("保存投球记录失败: %w", err)
	}
	s.finish(res, inserted, time.Since(start))
	return res, nil
}

func (s *ImportService) newResult(kind string, read int, report stats.CoercionReport) *ImportResult {
	return &ImportResult{
		Kind:             kind,
		Batch:            uuid.New().String(),
		Read:             read,
		CoercionFailures: report,
	}
}

func (s *ImportService) finish(res *ImportResult, inserted int, elapsed time.Duration) {
	res.Inserted = inserted
	res.Duplicates = res.Read - inserted
	s.recorder.ObserveImport(res.Kind, res.Read, res.Inserted, res.CoercionFailures, elapsed)

	entry := s.logger.WithFields(logrus.Fields{
		"kind":       res.Kind,
		"batch":      res.Batch,
		"read":       res.Read,
		"inserted":   res.Inserted,
		"duplicates": res.Duplicates,
	})
	if len(res.CoercionFailures) > 0 {
		entry.WithField("coercion_failures", res.CoercionFailures).Warn("部分字段无法解析，已置为空值")
	}
	entry.Info("导入完成")
}
