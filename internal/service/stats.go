package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"CricketStats/internal/config"
	"CricketStats/internal/model"
	"CricketStats/internal/repository"
	"CricketStats/internal/stats"
)

// ErrUnknownFormat 请求的赛事格式不在配置列表内
var ErrUnknownFormat = errors.New("unknown format")

// BattingOptions 击球视图下拉框候选项（层层收窄：格式 → 对手 → 球员）
type BattingOptions struct {
	Formats   []string `json:"formats"`
	Opponents []string `json:"opponents"`
	Players   []string `json:"players"`
}

// BattingReport 击球视图：筛选后的行、球员汇总与各排行
type BattingReport struct {
	View               stats.BattingView              `json:"view"`
	Rows               []*model.BattingRecord         `json:"rows"`
	Aggregates         []model.PlayerBattingAggregate `json:"aggregates"`
	TopRunScorers      []model.PlayerBattingAggregate `json:"top_run_scorers"`
	PowerHitters       []model.PlayerBattingAggregate `json:"power_hitters"`
	RecommendedOpeners []model.PlayerBattingAggregate `json:"recommended_openers"`
	Timeline           []model.TimelinePoint          `json:"timeline"`
}

// BowlingOptions 投球视图下拉框候选项
type BowlingOptions struct {
	Opponents []string `json:"opponents"`
	Players   []string `json:"players"`
}

// BowlingReport 投球视图：行的经济率按筛选后重新计算
type BowlingReport struct {
	View            stats.BowlingView              `json:"view"`
	Rows            []*model.BowlingRecord         `json:"rows"`
	Aggregates      []model.PlayerBowlingAggregate `json:"aggregates"`
	TopWicketTakers []model.PlayerBowlingAggregate `json:"top_wicket_takers"`
	MostEconomical  []model.PlayerBowlingAggregate `json:"most_economical"`
	ControlBowlers  []model.PlayerBowlingAggregate `json:"control_bowlers"`
}

// Overview 看板首页：默认视图下的两份报告
type Overview struct {
	Batting *BattingReport `json:"batting"`
	Bowling *BowlingReport `json:"bowling"`
}

// StatsService 从仓储读取规范化记录并计算各视图
type StatsService struct {
	repo            repository.RecordRepository
	settings        stats.Settings
	formats         []string
	resolveIdentity bool
	logger          *logrus.Logger
}

func NewStatsService(repo repository.RecordRepository, cfg config.StatsConfig, logger *logrus.Logger) *StatsService {
	return &StatsService{
		repo:            repo,
		settings:        cfg.Settings(),
		formats:         cfg.FormatList(),
		resolveIdentity: cfg.ResolvePlayerIdentity,
		logger:          logger,
	}
}

// Formats 可选赛事格式，第一个为默认值
func (s *StatsService) Formats() []string {
	return slices.Clone(s.formats)
}

// resolveFormat 空值取默认格式，未配置的格式返回 ErrUnknownFormat
func (s *StatsService) resolveFormat(format string) (string, error) {
	if format == "" {
		return s.formats[0], nil
	}
	if !slices.Contains(s.formats, format) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return format, nil
}

func (s *StatsService) loadBatting(ctx context.Context) ([]*model.BattingRecord, error) {
	records, err := s.repo.ListBatting(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取击球记录失败: %w", err)
	}
	if s.resolveIdentity {
		records = stats.NewIdentityResolver().ResolveBatting(records)
	}
	return records, nil
}

func (s *StatsService) loadBowling(ctx context.Context) ([]*model.BowlingRecord, error) {
	records, err := s.repo.ListBowling(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取投球记录失败: %w", err)
	}
	if s.resolveIdentity {
		records = stats.NewIdentityResolver().ResolveBowling(records)
	}
	return records, nil
}

// BattingOptions 对手候选取自该格式下的行，球员候选取自格式+对手下的行
func (s *StatsService) BattingOptions(ctx context.Context, format, opponent string) (*BattingOptions, error) {
	format, err := s.resolveFormat(format)
	if err != nil {
		return nil, err
	}
	records, err := s.loadBatting(ctx)
	if err != nil {
		return nil, err
	}
	inFormat := stats.FilterBattingByFormat(records, format)
	return &BattingOptions{
		Formats:   s.Formats(),
		Opponents: stats.BattingOpponents(inFormat),
		Players:   stats.BattingPlayers(stats.FilterBattingByOpponent(inFormat, opponent)),
	}, nil
}

// BattingReport 按视图筛选后汇总、排名并生成得分时间线
func (s *StatsService) BattingReport(ctx context.Context, view stats.BattingView) (*BattingReport, error) {
	format, err := s.resolveFormat(view.Format)
	if err != nil {
		return nil, err
	}
	view.Format = format
	records, err := s.loadBatting(ctx)
	if err != nil {
		return nil, err
	}

	rows := view.Apply(records)
	aggs := stats.AggregateBatting(rows, s.settings)
	return &BattingReport{
		View:               view,
		Rows:               rows,
		Aggregates:         aggs,
		TopRunScorers:      stats.TopRunScorers(aggs, s.settings),
		PowerHitters:       stats.PowerHitters(aggs, s.settings),
		RecommendedOpeners: stats.RecommendedOpeners(aggs, s.settings),
		Timeline:           stats.RunsTimeline(rows),
	}, nil
}

// DismissalBreakdown 球员全部击球行（不按格式筛选）的出局方式分布
func (s *StatsService) DismissalBreakdown(ctx context.Context, player string) (*model.DismissalBreakdown, error) {
	records, err := s.loadBatting(ctx)
	if err != nil {
		return nil, err
	}
	b := stats.DismissalBreakdownFor(records, player)
	return &b, nil
}

func (s *StatsService) BowlingOptions(ctx context.Context, opponent string) (*BowlingOptions, error) {
	records, err := s.loadBowling(ctx)
	if err != nil {
		return nil, err
	}
	return &BowlingOptions{
		Opponents: stats.BowlingOpponents(records),
		Players:   stats.BowlingPlayers(stats.FilterBowlingByOpponent(records, opponent)),
	}, nil
}

func (s *StatsService) BowlingReport(ctx context.Context, view stats.BowlingView) (*BowlingReport, error) {
	records, err := s.loadBowling(ctx)
	if err != nil {
		return nil, err
	}

	rows := stats.RecomputeEconomy(view.Apply(records), s.settings)
	aggs := stats.AggregateBowling(rows, s.settings)
	return &BowlingReport{
		View:            view,
		Rows:            rows,
		Aggregates:      aggs,
		TopWicketTakers: stats.TopWicketTakers(aggs, s.settings),
		MostEconomical:  stats.MostEconomical(aggs, s.settings),
		ControlBowlers:  stats.ControlBowlers(aggs),
	}, nil
}

// Overview 并发生成默认视图（默认格式、全部对手、全部球员）下的两份报告
func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.BattingReport(gctx, stats.BattingView{Opponent: stats.All, Player: stats.All})
		out.Batting = r
		return err
	})
	g.Go(func() error {
		r, err := s.BowlingReport(gctx, stats.BowlingView{Opponent: stats.All, Player: stats.All})
		out.Bowling = r
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
