package interfaces

import (
	"context"

	"CricketStats/internal/model"
)

// PlayerRef 采集源上的球员条目
type PlayerRef struct {
	ID   string // 采集源内的球员ID
	Name string // 展示名称
}

// StatsCollector 逐场统计数据源必须实现的接口
type StatsCollector interface {
	GetName() string                                                                   // 数据源名称
	FetchPlayers(ctx context.Context) ([]PlayerRef, error)                             // 球队球员列表
	FetchBatting(ctx context.Context, player PlayerRef) ([]model.RawBattingRow, error) // 单名球员逐场击球
	FetchBowling(ctx context.Context, player PlayerRef) ([]model.RawBowlingRow, error) // 单名球员逐场投球
}
