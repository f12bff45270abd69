package stats

import (
	"strings"

	"CricketStats/internal/model"
)

// caughtBehindMarker 记分表里"被守门员接杀"的标记
const caughtBehindMarker = "c.†"

type dismissalRule struct {
	match func(d string) bool
	kind  model.DismissalType
}

// dismissalRules 自上而下首个命中即返回，顺序即优先级：
// 同时含 "c." 与 "b." 的描述落在 Caught，永远到不了 Bowled
var dismissalRules = []dismissalRule{
	{func(d string) bool { return strings.Contains(d, "runout") }, model.DismissalRunOut},
	{func(d string) bool { return strings.Contains(d, "lbw") }, model.DismissalLBW},
	{func(d string) bool { return strings.Contains(d, caughtBehindMarker) }, model.DismissalCaughtBehind},
	{func(d string) bool { return strings.Contains(d, "c.") }, model.DismissalCaught},
	{func(d string) bool { return strings.Contains(d, "b.") && !strings.Contains(d, "c.") }, model.DismissalBowled},
}

// ClassifyDismissal 出局描述 → 出局方式
func ClassifyDismissal(dismissal string) model.DismissalType {
	d := strings.ToLower(dismissal)
	for _, rule := range dismissalRules {
		if rule.match(d) {
			return rule.kind
		}
	}
	return model.DismissalOther
}

// IsClassifiable "dnb" 与 "not out"（忽略大小写、整串相等）不参与出局分类
func IsClassifiable(dismissal string) bool {
	switch strings.ToLower(dismissal) {
	case "dnb", "not out":
		return false
	}
	return true
}

// DismissalBreakdownFor 统计某球员各出局方式的次数与占比，只返回出现过的类别，顺序固定
func DismissalBreakdownFor(records []*model.BattingRecord, player string) model.DismissalBreakdown {
	counts := make(map[model.DismissalType]int)
	total := 0
	for _, r := range records {
		if r.PlayerName != player || !IsClassifiable(r.Dismissal) {
			continue
		}
		counts[ClassifyDismissal(r.Dismissal)]++
		total++
	}

	out := model.DismissalBreakdown{
		PlayerName: player,
		Total:      total,
		Shares:     make([]model.DismissalShare, 0, len(counts)),
	}
	for _, t := range model.DismissalTypes {
		c := counts[t]
		if c == 0 {
			continue
		}
		out.Shares = append(out.Shares, model.DismissalShare{
			Type:       t,
			Count:      c,
			Proportion: float64(c) / float64(total),
		})
	}
	return out
}
