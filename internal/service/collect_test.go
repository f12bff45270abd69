package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CricketStats/internal/config"
	"CricketStats/internal/interfaces"
	"CricketStats/internal/loader"
	"CricketStats/internal/metrics"
	"CricketStats/internal/model"
)

func newCollectFixture() *fakeCollector {
	return &fakeCollector{
		players: []interfaces.PlayerRef{{ID: "a1", Name: "Alice"}, {ID: "b2", Name: "Bob"}},
		batting: map[string][]model.RawBattingRow{
			"a1": {{PlayerName: "Alice", Date: "06/01/2024", Opponent: "Falcons", Tournament: "ProT20 2024", Dismissal: "b.Lee", Runs: "12", Balls: "9"}},
			"b2": {{PlayerName: "Bob", Date: "06/01/2024", Opponent: "Falcons", Tournament: "ProT20 2024", Dismissal: "DNB"}},
		},
		bowling: map[string][]model.RawBowlingRow{
			"b2": {{PlayerName: "Bob", Date: "06/01/2024", Opponent: "Falcons", Overs: "4", Wickets: "1", Runs: "30", Maidens: "0"}},
		},
	}
}

func TestCollectRun(t *testing.T) {
	repo := newMemRepo()
	cfg := &config.CollectorConfig{Season: "2024"}
	svc := NewCollectService(newCollectFixture(), newImporter(repo), cfg, metrics.NewRecorder(), quietLogger())

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fake", res.Source)
	assert.Equal(t, 2, res.Players)
	assert.Empty(t, res.FailedPlayers)
	assert.Equal(t, 2, res.Batting.Inserted)
	assert.Equal(t, 1, res.Bowling.Inserted)
	assert.Empty(t, res.Files)
	assert.Len(t, repo.batting, 2)
	assert.Len(t, repo.bowling, 1)
}

func TestCollectRunSkipsFailingPlayer(t *testing.T) {
	repo := newMemRepo()
	fc := newCollectFixture()
	fc.battingErr = map[string]error{"a1": errors.New("timeout")}
	svc := NewCollectService(fc, newImporter(repo), &config.CollectorConfig{}, metrics.NewRecorder(), quietLogger())

	res, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice"}, res.FailedPlayers)
	assert.Equal(t, 1, res.Batting.Inserted)
	assert.Equal(t, "Bob", repo.batting[0].PlayerName)
}

func TestCollectRunPlayerListError(t *testing.T) {
	fc := newCollectFixture()
	fc.playersErr = errors.New("site down")
	svc := NewCollectService(fc, newImporter(newMemRepo()), &config.CollectorConfig{}, metrics.NewRecorder(), quietLogger())

	_, err := svc.Run(context.Background())
	assert.ErrorContains(t, err, "site down")
}

func TestCollectRunWritesCSV(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.CollectorConfig{Season: "2024", OutputDir: dir}
	svc := NewCollectService(newCollectFixture(), newImporter(newMemRepo()), cfg, metrics.NewRecorder(), quietLogger())

	res, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Files, 2)

	f, err := os.Open(res.Files[0])
	require.NoError(t, err)
	defer f.Close()
	rows, err := loader.ReadBatting(f)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestCollectRunRejectsConcurrentRun(t *testing.T) {
	svc := NewCollectService(newCollectFixture(), newImporter(newMemRepo()), &config.CollectorConfig{}, metrics.NewRecorder(), quietLogger())
	svc.running.Store(true)

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrCollectRunning)
}
