package stats

import (
	"sort"
	"time"

	"CricketStats/internal/model"
)

const timelineDateLayout = "2006-01-02"

// RunsTimeline 按 (日期, 球员) 汇总得分；日期缺失的行不进入时间序列
func RunsTimeline(records []*model.BattingRecord) []model.TimelinePoint {
	type key struct {
		day    time.Time
		player string
	}
	sums := make(map[key]int64)
	for _, r := range records {
		if !r.MatchDate.Valid {
			continue
		}
		t := r.MatchDate.Time
		k := key{day: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), player: r.PlayerName}
		sums[k] += r.Runs.ValueOrZero()
	}

	keys := make([]key, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].day.Equal(keys[j].day) {
			return keys[i].day.Before(keys[j].day)
		}
		return keys[i].player < keys[j].player
	})

	out := make([]model.TimelinePoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.TimelinePoint{
			Date:       k.day.Format(timelineDateLayout),
			PlayerName: k.player,
			Runs:       sums[k],
		})
	}
	return out
}
