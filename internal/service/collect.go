package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"CricketStats/internal/config"
	"CricketStats/internal/interfaces"
	"CricketStats/internal/loader"
	"CricketStats/internal/metrics"
	"CricketStats/internal/model"
)

// ErrCollectRunning 已有一次采集在进行
var ErrCollectRunning = errors.New("collect already running")

// CollectResult 一次采集的结果
type CollectResult struct {
	Source        string        `json:"source"`
	Players       int           `json:"players"`
	FailedPlayers []string      `json:"failed_players"`
	Batting       *ImportResult `json:"batting"`
	Bowling       *ImportResult `json:"bowling"`
	Files         []string      `json:"files,omitempty"`
}

// CollectService 逐名球员采集击球/投球表并入库，请求之间按配置间隔限速
type CollectService struct {
	collector interfaces.StatsCollector
	importer  *ImportService
	limiter   *rate.Limiter
	cfg       *config.CollectorConfig
	recorder  *metrics.Recorder
	logger    *logrus.Logger
	running   atomic.Bool
}

func NewCollectService(collector interfaces.StatsCollector, importer *ImportService, cfg *config.CollectorConfig, recorder *metrics.Recorder, logger *logrus.Logger) *CollectService {
	limit := rate.Inf
	if cfg.RequestInterval > 0 {
		limit = rate.Every(cfg.RequestInterval)
	}
	return &CollectService{
		collector: collector,
		importer:  importer,
		limiter:   rate.NewLimiter(limit, 1),
		cfg:       cfg,
		recorder:  recorder,
		logger:    logger,
	}
}

// Run 采集全部球员；单名球员失败只记录并跳过，球员列表获取失败或 ctx 取消时返回错误
func (s *CollectService) Run(ctx context.Context) (*CollectResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrCollectRunning
	}
	defer s.running.Store(false)

	players, err := s.collector.FetchPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s获取球员列表失败: %w", s.collector.GetName(), err)
	}
	res := &CollectResult{Source: s.collector.GetName(), Players: len(players), FailedPlayers: []string{}}

	var batting []model.RawBattingRow
	var bowling []model.RawBowlingRow
	for _, p := range players {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		log := s.logger.WithFields(logrus.Fields{"player": p.Name, "player_id": p.ID})
		failed := false

		bat, err := s.collector.FetchBatting(ctx, p)
		s.recorder.ObserveFetch(metrics.KindBatting, err)
		if err != nil {
			log.WithError(err).Warn("采集击球数据失败，跳过")
			failed = true
		}
		batting = append(batting, bat...)

		bowl, err := s.collector.FetchBowling(ctx, p)
		s.recorder.ObserveFetch(metrics.KindBowling, err)
		if err != nil {
			log.WithError(err).Warn("采集投球数据失败，跳过")
			failed = true
		}
		bowling = append(bowling, bowl...)

		if failed {
			res.FailedPlayers = append(res.FailedPlayers, p.Name)
		}
		log.WithFields(logrus.Fields{"batting_rows": len(bat), "bowling_rows": len(bowl)}).Debug("球员采集完成")
	}

	if s.cfg.OutputDir != "" {
		files, err := s.writeCSV(batting, bowling)
		if err != nil {
			return nil, err
		}
		res.Files = files
	}

	if res.Batting, err = s.importer.SaveBattingRows(ctx, batting); err != nil {
		return nil, err
	}
	if res.Bowling, err = s.importer.SaveBowlingRows(ctx, bowling); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"source":  res.Source,
		"players": res.Players,
		"failed":  len(res.FailedPlayers),
	}).Info("采集完成")
	return res, nil
}

// writeCSV 另存采集结果，文件名带赛季，格式与导入CSV一致
func (s *CollectService) writeCSV(batting []model.RawBattingRow, bowling []model.RawBowlingRow) ([]string, error) {
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	battingPath := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("batting_stats_%s.csv", s.cfg.Season))
	if err := writeFile(battingPath, func(f *os.File) error { return loader.WriteBatting(f, batting) }); err != nil {
		return nil, err
	}
	bowlingPath := filepath.Join(s.cfg.OutputDir, fmt.Sprintf("bowling_stats_%s.csv", s.cfg.Season))
	if err := writeFile(bowlingPath, func(f *os.File) error { return loader.WriteBowling(f, bowling) }); err != nil {
		return nil, err
	}
	return []string{battingPath, bowlingPath}, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建文件失败 %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("写入文件失败 %s: %w", path, err)
	}
	return f.Close()
}
