package stats

import (
	"sort"

	"CricketStats/internal/model"
)

// 以下排名均基于汇总结果重新计算，稳定排序，并列时保持汇总结果中的原有顺序

// TopRunScorers 得分降序前 N
func TopRunScorers(aggs []model.PlayerBattingAggregate, s Settings) []model.PlayerBattingAggregate {
	out := rank(aggs, func(a, b model.PlayerBattingAggregate) bool { return a.Runs > b.Runs })
	return limit(out, s.WithDefaults().TopRunScorers)
}

// PowerHitters 场均边界球 >= 阈值，按击球率降序
func PowerHitters(aggs []model.PlayerBattingAggregate, s Settings) []model.PlayerBattingAggregate {
	threshold := s.WithDefaults().PowerHitterBoundaries
	picked := filter(aggs, func(a model.PlayerBattingAggregate) bool { return a.AvgBoundariesPerInns >= threshold })
	return rank(picked, byStrikeRateDesc)
}

// RecommendedOpeners 击球率 > 阈值，按击球率降序
func RecommendedOpeners(aggs []model.PlayerBattingAggregate, s Settings) []model.PlayerBattingAggregate {
	threshold := s.WithDefaults().OpenerStrikeRate
	picked := filter(aggs, func(a model.PlayerBattingAggregate) bool { return a.StrikeRate > threshold })
	return rank(picked, byStrikeRateDesc)
}

// TopWicketTakers 三柱门降序前 N
func TopWicketTakers(aggs []model.PlayerBowlingAggregate, s Settings) []model.PlayerBowlingAggregate {
	out := rank(aggs, func(a, b model.PlayerBowlingAggregate) bool { return a.Wickets > b.Wickets })
	return limit(out, s.WithDefaults().TopWicketTakers)
}

// MostEconomical 经济率升序前 N
func MostEconomical(aggs []model.PlayerBowlingAggregate, s Settings) []model.PlayerBowlingAggregate {
	out := rank(aggs, func(a, b model.PlayerBowlingAggregate) bool { return a.Economy < b.Economy })
	return limit(out, s.WithDefaults().MostEconomical)
}

// ControlBowlers 全部投手按无失分轮降序，无阈值
func ControlBowlers(aggs []model.PlayerBowlingAggregate) []model.PlayerBowlingAggregate {
	return rank(aggs, func(a, b model.PlayerBowlingAggregate) bool { return a.Maidens > b.Maidens })
}

func byStrikeRateDesc(a, b model.PlayerBattingAggregate) bool { return a.StrikeRate > b.StrikeRate }

func rank[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
