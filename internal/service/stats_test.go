package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CricketStats/internal/config"
	"CricketStats/internal/metrics"
	"CricketStats/internal/model"
	"CricketStats/internal/stats"
)

func seededStats(t *testing.T, cfg config.StatsConfig) (*StatsService, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	imp := NewImportService(repo, cfg, metrics.NewRecorder(), quietLogger())

	_, err := imp.SaveBattingRows(context.Background(), []model.RawBattingRow{
		{PlayerName: "A", Date: "2024-06-01", Opponent: "Falcons", Tournament: "ProT20 2024", Dismissal: "DNB"},
		{PlayerName: "A", Date: "2024-06-08", Opponent: "Falcons", Tournament: "ProT20 2024", Dismissal: "c.†Jones b.Lee",
			Runs: "45", Balls: "30", Fours: "5", Sixes: "1"},
		{PlayerName: "B", Date: "2024-06-08", Opponent: "Hawks", Tournament: "ProT20 2024", Dismissal: "not out",
			Runs: "20", Balls: "25", Fours: "1"},
		{PlayerName: "C", Date: "2024-07-01", Opponent: "Eagles", Tournament: "Pro40 2024", Dismissal: "lbw b.Smith",
			Runs: "60", Balls: "50", Fours: "6", Sixes: "2"},
		{PlayerName: "A", Date: "2024-07-02", Opponent: "Eagles", Tournament: "Pro40 2024", Dismissal: "runout (Smith)",
			Runs: "5", Balls: "4"},
	})
	require.NoError(t, err)

	_, err = imp.SaveBowlingRows(context.Background(), []model.RawBowlingRow{
		{PlayerName: "A", Date: "2024-06-01", Opponent: "Falcons", Overs: "4", Wickets: "2", Runs: "20", Maidens: "1"},
		{PlayerName: "B", Date: "2024-06-08", Opponent: "Hawks", Overs: "0", Wickets: "0", Runs: "5", Maidens: "0"},
		{PlayerName: "C", Date: "2024-06-08", Opponent: "Hawks", Overs: "3", Wickets: "3", Runs: "12", Maidens: "2"},
	})
	require.NoError(t, err)

	return NewStatsService(repo, cfg, quietLogger()), repo
}

func TestBattingReportDefaultView(t *testing.T) {
	svc, _ := seededStats(t, config.StatsConfig{})

	rep, err := svc.BattingReport(context.Background(), stats.BattingView{})
	require.NoError(t, err)

	assert.Equal(t, "ProT20", rep.View.Format)
	assert.Len(t, rep.Rows, 3)
	require.Len(t, rep.Aggregates, 2)

	a := rep.Aggregates[0]
	assert.Equal(t, "A", a.PlayerName)
	assert.Equal(t, 2, a.Matches)
	assert.Equal(t, 1, a.Innings)
	assert.InDelta(t, 45.0, a.Average, 1e-9)
	assert.InDelta(t, 150.0, a.StrikeRate, 1e-9)
	assert.Equal(t, int64(58), a.ImpactScore)

	assert.Equal(t, []string{"A", "B"}, aggNames(rep.TopRunScorers))
	assert.Equal(t, []string{"A"}, aggNames(rep.PowerHitters))
	assert.Equal(t, []string{"A"}, aggNames(rep.RecommendedOpeners))

	require.Len(t, rep.Timeline, 3)
	assert.Equal(t, model.TimelinePoint{Date: "2024-06-08", PlayerName: "B", Runs: 20}, rep.Timeline[2])
}

func TestBattingReportFiltersByOpponentAndPlayer(t *testing.T) {
	svc, _ := seededStats(t, config.StatsConfig{})

	rep, err := svc.BattingReport(context.Background(), stats.BattingView{Format: "Pro40", Opponent: "Eagles", Player: "C"})
	require.NoError(t, err)

	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "C", rep.Rows[0].PlayerName)
	assert.Equal(t, []string{"C"}, aggNames(rep.Aggregates))
}

func TestBattingReportUnknownFormat(t *testing.T) {
	svc, _ := seededStats(t, config.StatsConfig{})

	_, err := svc.BattingReport(context.Background(), stats.BattingView{Format: "T10"})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = svc.BattingOptions(context.Background(), "T10", "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestBattingOptionsNarrowByFormatAndOpponent(t *testing.T) {
	svc, _ := seededStats(t, config.StatsConfig{})

	opts, err := svc.BattingOptions(context.Background(), "ProT20", "Hawks")
	require.NoError(t, err)

	assert.Equal(t, []string{"ProT20", "Pro40"}, opts.Formats)
	assert.Equal(t, []string{"Falcons", "Hawks"}, opts.Opponents)
	assert.Equal(t, []string{"B"}, opts.Players)

	opts, err = svc.BattingOptions(context.Background(), "Pro40", stats.All)
	require.NoError(t, err)
	assert.Equal(t, []string{"Eagles"}, opts.Opponents)
	assert.Equal(t, []string{"A", "C"}, opts.Players)
}

func TestDismissalBreakdownIgnoresFormat(t *testing.T) {
	svc, _ := seededStats(t, config.StatsConfig{})

	b, err := svc.DismissalBreakdown(context.Background(), "A")
	require.NoError(t, err)

	assert.Equal(t, 2, b.Total)
	require.Len(t, b.Shares, 2)
	assert.Equal(t, model.DismissalRunOut, b.Shares[0].Type)
	assert.Equal(t, model.DismissalCaughtBehind, b.Shares[1].Type)
	assert.InDelta(t, 0.5, b.Shares[0].Proportion, 1e-9)
}

func TestBowlingReport(t *testing.T) {
	svc, _ := seededStats(t, config.StatsConfig{})

	rep, err := svc.BowlingReport(context.Background(), stats.BowlingView{Opponent: stats.All, Player: stats.All})
	require.NoError(t, err)

	require.Len(t, rep.Rows, 3)
	assert.InDelta(t, 5.0, rep.Rows[0].Economy.Float64, 1e-9)
	assert.InDelta(t, 50.0, rep.Rows[1].Economy.Float64, 1e-9)

	assert.Equal(t, []string{"C", "A", "B"}, bowlNames(rep.TopWicketTakers))
	assert.Equal(t, []string{"C", "A", "B"}, bowlNames(rep.MostEconomical))
	assert.Equal(t, []string{"C", "A", "B"}, bowlNames(rep.ControlBowlers))

	rep, err = svc.BowlingReport(context.Background(), stats.BowlingView{Opponent: "Hawks"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, bowlNames(rep.Aggregates))
}

func TestBowlingOptions(t *testing.T) {
	svc, _ := seededStats(t, config.StatsConfig{})

	opts, err := svc.BowlingOptions(context.Background(), "Hawks")
	require.NoError(t, err)
	assert.Equal(t, []string{"Falcons", "Hawks"}, opts.Opponents)
	assert.Equal(t, []string{"B", "C"}, opts.Players)
}

func TestOverview(t *testing.T) {
	svc, _ := seededStats(t, config.StatsConfig{})

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.NotNil(t, ov.Batting)
	require.NotNil(t, ov.Bowling)
	assert.Equal(t, "ProT20", ov.Batting.View.Format)
	assert.Len(t, ov.Bowling.Aggregates, 3)
}

func TestOverviewPropagatesRepositoryError(t *testing.T) {
	svc, repo := seededStats(t, config.StatsConfig{})
	repo.err = errors.New("db down")

	_, err := svc.Overview(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestIdentityResolutionMergesSpellings(t *testing.T) {
	cfg := config.StatsConfig{ResolvePlayerIdentity: true}
	repo := newMemRepo()
	imp := NewImportService(repo, cfg, metrics.NewRecorder(), quietLogger())
	_, err := imp.SaveBattingRows(context.Background(), []model.RawBattingRow{
		{PlayerName: "José Díaz", Tournament: "ProT20", Dismissal: "b.X", Runs: "10", Balls: "10"},
		{PlayerName: "jose  diaz", Tournament: "ProT20", Dismissal: "b.Y", Runs: "20", Balls: "10"},
	})
	require.NoError(t, err)

	rep, err := NewStatsService(repo, cfg, quietLogger()).BattingReport(context.Background(), stats.BattingView{})
	require.NoError(t, err)
	require.Len(t, rep.Aggregates, 1)
	assert.Equal(t, "José Díaz", rep.Aggregates[0].PlayerName)
	assert.Equal(t, int64(30), rep.Aggregates[0].Runs)

	rep, err = NewStatsService(repo, config.StatsConfig{}, quietLogger()).BattingReport(context.Background(), stats.BattingView{})
	require.NoError(t, err)
	assert.Len(t, rep.Aggregates, 2)
}

func aggNames(aggs []model.PlayerBattingAggregate) []string {
	out := make([]string, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, a.PlayerName)
	}
	return out
}

func bowlNames(aggs []model.PlayerBowlingAggregate) []string {
	out := make([]string, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, a.PlayerName)
	}
	return out
}
