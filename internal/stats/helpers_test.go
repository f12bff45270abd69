package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"CricketStats/internal/model"
)

func batting(t *testing.T, rows ...model.RawBattingRow) []*model.BattingRecord {
	t.Helper()
	recs, report := NormalizeBatting(rows)
	require.Zero(t, report.Total(), "unexpected coercion failures: %v", report)
	return recs
}

func bowling(t *testing.T, rows ...model.RawBowlingRow) []*model.BowlingRecord {
	t.Helper()
	recs, report := NormalizeBowling(rows, DefaultSettings())
	require.Zero(t, report.Total(), "unexpected coercion failures: %v", report)
	return recs
}

func bowlRow(player, opponent, overs, wickets, runs, maidens string) model.RawBowlingRow {
	return model.RawBowlingRow{
		PlayerName: player,
		Date:       "2024-06-01",
		Opponent:   opponent,
		Overs:      overs,
		Wickets:    wickets,
		Runs:       runs,
		Maidens:    maidens,
		Dots:       "0",
		HasDots:    true,
	}
}

func names[T interface {
	model.PlayerBattingAggregate | model.PlayerBowlingAggregate
}](aggs []T) []string {
	out := make([]string, 0, len(aggs))
	for _, a := range aggs {
		switch v := any(a).(type) {
		case model.PlayerBattingAggregate:
			out = append(out, v.PlayerName)
		case model.PlayerBowlingAggregate:
			out = append(out, v.PlayerName)
		}
	}
	return out
}
