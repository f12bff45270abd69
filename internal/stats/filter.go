package stats

import (
	"sort"
	"strings"

	"CricketStats/internal/model"
)

// BattingView 击球视图的筛选条件，按 Format → Opponent → Player 顺序应用
type BattingView struct {
	Format   string `json:"format" form:"format"`
	Opponent string `json:"opponent" form:"opponent"`
	Player   string `json:"player" form:"player"`
}

// BowlingView 投球视图的筛选条件（没有赛事格式）
type BowlingView struct {
	Opponent string `json:"opponent" form:"opponent"`
	Player   string `json:"player" form:"player"`
}

// Apply 返回新的切片，不修改入参
func (v BattingView) Apply(records []*model.BattingRecord) []*model.BattingRecord {
	out := FilterBattingByFormat(records, v.Format)
	out = FilterBattingByOpponent(out, v.Opponent)
	return FilterBattingByPlayer(out, v.Player)
}

func (v BowlingView) Apply(records []*model.BowlingRecord) []*model.BowlingRecord {
	out := FilterBowlingByOpponent(records, v.Opponent)
	return FilterBowlingByPlayer(out, v.Player)
}

// FilterBattingByFormat 赛事名称包含 format 子串的行；赛事缺失的行一律排除
func FilterBattingByFormat(records []*model.BattingRecord, format string) []*model.BattingRecord {
	return filter(records, func(r *model.BattingRecord) bool {
		return r.Tournament.Valid && strings.Contains(r.Tournament.String, format)
	})
}

// FilterBattingByOpponent 对手精确匹配；"All" 或空串不过滤
func FilterBattingByOpponent(records []*model.BattingRecord, opponent string) []*model.BattingRecord {
	if isAll(opponent) {
		return filter(records, nil)
	}
	return filter(records, func(r *model.BattingRecord) bool {
		return r.Opponent.Valid && r.Opponent.String == opponent
	})
}

func FilterBattingByPlayer(records []*model.BattingRecord, player string) []*model.BattingRecord {
	if isAll(player) {
		return filter(records, nil)
	}
	return filter(records, func(r *model.BattingRecord) bool { return r.PlayerName == player })
}

func FilterBowlingByOpponent(records []*model.BowlingRecord, opponent string) []*model.BowlingRecord {
	if isAll(opponent) {
		return filter(records, nil)
	}
	return filter(records, func(r *model.BowlingRecord) bool {
		return r.Opponent.Valid && r.Opponent.String == opponent
	})
}

func FilterBowlingByPlayer(records []*model.BowlingRecord, player string) []*model.BowlingRecord {
	if isAll(player) {
		return filter(records, nil)
	}
	return filter(records, func(r *model.BowlingRecord) bool { return r.PlayerName == player })
}

// BattingOpponents 非空对手去重排序，供下拉框使用
func BattingOpponents(records []*model.BattingRecord) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		if r.Opponent.Valid {
			set[r.Opponent.String] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func BattingPlayers(records []*model.BattingRecord) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		set[r.PlayerName] = struct{}{}
	}
	return sortedKeys(set)
}

func BowlingOpponents(records []*model.BowlingRecord) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		if r.Opponent.Valid {
			set[r.Opponent.String] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func BowlingPlayers(records []*model.BowlingRecord) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		set[r.PlayerName] = struct{}{}
	}
	return sortedKeys(set)
}

func isAll(v string) bool { return v == "" || v == All }

// filter keep 为 nil 时原样复制
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
