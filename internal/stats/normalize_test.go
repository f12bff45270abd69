package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CricketStats/internal/model"
)

func TestNormalizeBattingFlags(t *testing.T) {
	recs := batting(t,
		model.RawBattingRow{PlayerName: "A", Dismissal: "DNB"},
		model.RawBattingRow{PlayerName: "A", Dismissal: "Not Out", Runs: "12"},
		model.RawBattingRow{PlayerName: "A", Dismissal: "dnb", Runs: "0"},
		model.RawBattingRow{PlayerName: "A", Dismissal: "b.Lee", Runs: "7"},
	)

	assert.Equal(t, 0, recs[0].InningsPlayed)
	assert.False(t, recs[0].WasNotOut)

	assert.Equal(t, 1, recs[1].InningsPlayed)
	assert.True(t, recs[1].WasNotOut)

	// 哨兵值区分大小写
	assert.Equal(t, 1, recs[2].InningsPlayed)

	assert.Equal(t, 1, recs[3].InningsPlayed)
	assert.False(t, recs[3].WasNotOut)
}

func TestNormalizeBattingCoercionFailuresKeepRow(t *testing.T) {
	recs, report := NormalizeBatting([]model.RawBattingRow{{
		PlayerName: "B",
		Date:       "not a date",
		Dismissal:  "c.Smith b.Jones",
		Runs:       "12*",
		Balls:      " 20 ",
		Fours:      "2.0",
		Sixes:      "",
		Dots:       "NaN",
	}})

	require.Len(t, recs, 1)
	rec := recs[0]
	assert.False(t, rec.MatchDate.Valid)
	assert.False(t, rec.Runs.Valid)
	assert.Equal(t, int64(20), rec.Balls.Int64)
	assert.Equal(t, int64(2), rec.Fours.Int64)
	assert.False(t, rec.Sixes.Valid)
	assert.False(t, rec.Dots.Valid)
	assert.False(t, rec.Opponent.Valid)
	assert.False(t, rec.Tournament.Valid)

	assert.Equal(t, CoercionReport{"Date": 1, "Runs": 1, "Dots": 1}, report)
	assert.Equal(t, 3, report.Total())
}

func TestNormalizeBattingTruncatesFractionalCounts(t *testing.T) {
	recs := batting(t, model.RawBattingRow{PlayerName: "A", Dismissal: "b.Lee", Runs: "12.5", Balls: "9.99", Dots: "-0.5"})

	assert.Equal(t, int64(12), recs[0].Runs.Int64)
	assert.Equal(t, int64(9), recs[0].Balls.Int64)
	assert.True(t, recs[0].Dots.Valid)
	assert.Equal(t, int64(0), recs[0].Dots.Int64)
}

func TestNormalizeBattingDates(t *testing.T) {
	recs := batting(t,
		model.RawBattingRow{PlayerName: "A", Date: "2024-06-15"},
		model.RawBattingRow{PlayerName: "A", Date: "06/15/2024"},
		model.RawBattingRow{PlayerName: "A", Date: "15 Jun 2024"},
	)
	want := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	for _, r := range recs {
		require.True(t, r.MatchDate.Valid)
		assert.True(t, r.MatchDate.Time.Equal(want), r.MatchDate.Time.String())
	}
}

func TestNormalizeBattingRowKeyStable(t *testing.T) {
	row := model.RawBattingRow{PlayerName: "A", Date: "2024-06-15", Runs: "10"}
	first := batting(t, row)
	second := batting(t, row)
	other := batting(t, model.RawBattingRow{PlayerName: "A", Date: "2024-06-15", Runs: "11"})

	assert.Len(t, first[0].RowKey, 32)
	assert.Equal(t, first[0].RowKey, second[0].RowKey)
	assert.NotEqual(t, first[0].RowKey, other[0].RowKey)
}

func TestNormalizeIdenticalRowsGetDistinctKeys(t *testing.T) {
	dnb := model.RawBattingRow{PlayerName: "A", Date: "2024-06-01", Opponent: "Falcons", Tournament: "ProT20 2024", Dismissal: "DNB"}
	recs := batting(t, dnb, dnb, model.RawBattingRow{PlayerName: "A", Dismissal: "DNB"}, model.RawBattingRow{PlayerName: "A", Dismissal: "DNB"})

	keys := map[string]struct{}{}
	for _, r := range recs {
		keys[r.RowKey] = struct{}{}
	}
	assert.Len(t, keys, 4)

	again := batting(t, dnb, dnb)
	assert.Equal(t, recs[0].RowKey, again[0].RowKey)
	assert.Equal(t, recs[1].RowKey, again[1].RowKey)

	bowl := bowlRow("A", "X", "4", "1", "20", "0")
	brecs := bowling(t, bowl, bowl)
	assert.NotEqual(t, brecs[0].RowKey, brecs[1].RowKey)
}

func TestNormalizeBowlingEconomyAtLoad(t *testing.T) {
	recs := bowling(t,
		bowlRow("A", "X", "4", "2", "24", "1"),
		bowlRow("B", "X", "0", "0", "5", "0"),
		bowlRow("C", "X", "", "0", "5", "0"),
	)

	assert.InDelta(t, 6.0, recs[0].Economy.Float64, 1e-9)
	assert.InDelta(t, 50.0, recs[1].Economy.Float64, 1e-9)
	assert.False(t, recs[2].Economy.Valid)
}

func TestNormalizeBowlingMissingDotsColumn(t *testing.T) {
	recs, report := NormalizeBowling([]model.RawBowlingRow{
		{PlayerName: "A", Overs: "2", Runs: "10"},
		{PlayerName: "B", Overs: "2", Runs: "10", Dots: "x", HasDots: true},
	}, DefaultSettings())

	require.True(t, recs[0].Dots.Valid)
	assert.Equal(t, int64(0), recs[0].Dots.Int64)
	assert.False(t, recs[1].Dots.Valid)
	assert.Equal(t, CoercionReport{"Dots": 1}, report)
}
