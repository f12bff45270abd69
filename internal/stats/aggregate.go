package stats

import (
	"sort"

	"CricketStats/internal/model"
)

// AggregateBatting 按球员名（精确字符串）分组汇总击球数据。
// Matches 为该球员在筛选结果中的行数（含 DNB 行）；其余累计值只来自 InningsPlayed==1 的行。
// 结果按球员名升序，排名在此顺序上做稳定排序。
func AggregateBatting(records []*model.BattingRecord, s Settings) []model.PlayerBattingAggregate {
	s = s.WithDefaults()
	byPlayer := make(map[string]*model.PlayerBattingAggregate)
	for _, r := range records {
		agg, ok := byPlayer[r.PlayerName]
		if !ok {
			agg = &model.PlayerBattingAggregate{PlayerName: r.PlayerName}
			byPlayer[r.PlayerName] = agg
		}
		agg.Matches++
		if r.InningsPlayed != 1 {
			continue
		}
		agg.Innings++
		agg.Runs += r.Runs.ValueOrZero()
		agg.Balls += r.Balls.ValueOrZero()
		agg.Fours += r.Fours.ValueOrZero()
		agg.Sixes += r.Sixes.ValueOrZero()
		agg.Dots += r.Dots.ValueOrZero()
		if r.WasNotOut {
			agg.NotOuts++
		}
	}

	out := make([]model.PlayerBattingAggregate, 0, len(byPlayer))
	for _, agg := range byPlayer {
		deriveBatting(agg, s)
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerName < out[j].PlayerName })
	return out
}

// AggregateBowling 按球员名分组汇总投球数据，经济率基于汇总后的失分与轮数重新计算
func AggregateBowling(records []*model.BowlingRecord, s Settings) []model.PlayerBowlingAggregate {
	s = s.WithDefaults()
	byPlayer := make(map[string]*model.PlayerBowlingAggregate)
	for _, r := range records {
		agg, ok := byPlayer[r.PlayerName]
		if !ok {
			agg = &model.PlayerBowlingAggregate{PlayerName: r.PlayerName}
			byPlayer[r.PlayerName] = agg
		}
		agg.Matches++
		agg.Overs += r.Overs.ValueOrZero()
		agg.Wickets += r.Wickets.ValueOrZero()
		agg.RunsConceded += r.RunsConceded.ValueOrZero()
		agg.Maidens += r.Maidens.ValueOrZero()
		agg.Dots += r.Dots.ValueOrZero()
	}

	out := make([]model.PlayerBowlingAggregate, 0, len(byPlayer))
	for _, agg := range byPlayer {
		agg.Economy = Economy(float64(agg.RunsConceded), agg.Overs, s)
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerName < out[j].PlayerName })
	return out
}

// RecomputeEconomy 筛选后按同一替换规则重新计算单行经济率，返回副本
func RecomputeEconomy(records []*model.BowlingRecord, s Settings) []*model.BowlingRecord {
	s = s.WithDefaults()
	out := make([]*model.BowlingRecord, 0, len(records))
	for _, r := range records {
		cp := *r
		cp.Economy = RowEconomy(&cp, s)
		out = append(out, &cp)
	}
	return out
}
