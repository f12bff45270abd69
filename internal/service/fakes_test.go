package service

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"CricketStats/internal/interfaces"
	"CricketStats/internal/model"
)

// memRepo 内存版 RecordRepository，按 row_key 去重
type memRepo struct {
	mu      sync.Mutex
	batting []*model.BattingRecord
	bowling []*model.BowlingRecord
	keys    map[string]struct{}
	err     error
}

func newMemRepo() *memRepo {
	return &memRepo{keys: make(map[string]struct{})}
}

func (m *memRepo) SaveBatting(_ context.Context, records []*model.BattingRecord) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, r := range records {
		if _, ok := m.keys["bat:"+r.RowKey]; ok {
			continue
		}
		m.keys["bat:"+r.RowKey] = struct{}{}
		m.batting = append(m.batting, r)
		n++
	}
	return n, nil
}

func (m *memRepo) SaveBowling(_ context.Context, records []*model.BowlingRecord) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, r := range records {
		if _, ok := m.keys["bowl:"+r.RowKey]; ok {
			continue
		}
		m.keys["bowl:"+r.RowKey] = struct{}{}
		m.bowling = append(m.bowling, r)
		n++
	}
	return n, nil
}

func (m *memRepo) ListBatting(context.Context) ([]*model.BattingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]*model.BattingRecord(nil), m.batting...), nil
}

func (m *memRepo) ListBowling(context.Context) ([]*model.BowlingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]*model.BowlingRecord(nil), m.bowling...), nil
}

// fakeCollector 按球员ID返回预置数据或错误
type fakeCollector struct {
	players    []interfaces.PlayerRef
	playersErr error
	batting    map[string][]model.RawBattingRow
	bowling    map[string][]model.RawBowlingRow
	battingErr map[string]error
}

func (f *fakeCollector) GetName() string { return "fake" }

func (f *fakeCollector) FetchPlayers(context.Context) ([]interfaces.PlayerRef, error) {
	return f.players, f.playersErr
}

func (f *fakeCollector) FetchBatting(_ context.Context, p interfaces.PlayerRef) ([]model.RawBattingRow, error) {
	if err := f.battingErr[p.ID]; err != nil {
		return nil, err
	}
	return f.batting[p.ID], nil
}

func (f *fakeCollector) FetchBowling(_ context.Context, p interfaces.PlayerRef) ([]model.RawBowlingRow, error) {
	return f.bowling[p.ID], nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
