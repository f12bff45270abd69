// Package loader 读写击球/投球 CSV（列名与采集脚本导出的表头一致）
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"CricketStats/internal/model"
)

const utf8BOM = "\uFEFF"

// 列名
const (
	ColPlayerName = "Player Name"
	ColDate       = "Date"
	ColOpponent   = "Opponent"
	ColTournament = "Tournament"
	ColDismissal  = "Dismissal"
	ColRuns       = "Runs"
	ColBalls      = "Balls"
	ColFours      = "4s"
	ColSixes      = "6s"
	ColDots       = "Dots"
	ColOvers      = "Overs"
	ColWickets    = "Wickets"
	ColMaidens    = "Maidens"
)

var (
	BattingHeader = []string{ColPlayerName, ColDate, ColOpponent, ColTournament, ColDismissal,
		ColRuns, ColBalls, ColFours, ColSixes, ColDots}
	BowlingHeader = []string{ColPlayerName, ColDate, ColOpponent, ColOvers, ColWickets,
		ColRuns, ColMaidens, ColDots}
)

// ErrMissingPlayerColumn 表头里没有 "Player Name"
var ErrMissingPlayerColumn = errors.New("CSV 缺少 Player Name 列")

// table 按列名取值，缺列或短行返回空串
type table struct {
	index map[string]int
}

func (t table) has(col string) bool {
	_, ok := t.index[col]
	return ok
}

func (t table) get(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// readTable 读取表头与全部数据行；未知列忽略
func readTable(r io.Reader) (table, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return table{}, nil, fmt.Errorf("读取 CSV 表头失败: %w", err)
	}
	t := table{index: make(map[string]int, len(header))}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
	if !t.has(ColPlayerName) {
		return table{}, nil, ErrMissingPlayerColumn
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table{}, nil, fmt.Errorf("读取 CSV 数据行失败: %w", err)
		}
		rows = append(rows, row)
	}
	return t, rows, nil
}

// ReadBatting 解析击球 CSV
func ReadBatting(r io.Reader) ([]model.RawBattingRow, error) {
	t, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	out := make([]model.RawBattingRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.RawBattingRow{
			PlayerName: t.get(row, ColPlayerName),
			Date:       t.get(row, ColDate),
			Opponent:   t.get(row, ColOpponent),
			Tournament: t.get(row, ColTournament),
			Dismissal:  t.get(row, ColDismissal),
			Runs:       t.get(row, ColRuns),
			Balls:      t.get(row, ColBalls),
			Fours:      t.get(row, ColFours),
			Sixes:      t.get(row, ColSixes),
			Dots:       t.get(row, ColDots),
		})
	}
	return out, nil
}

// ReadBowling 解析投球 CSV；没有 Dots 列时 HasDots=false
func ReadBowling(r io.Reader) ([]model.RawBowlingRow, error) {
	t, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}
	hasDots := t.has(ColDots)
	out := make([]model.RawBowlingRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.RawBowlingRow{
			PlayerName: t.get(row, ColPlayerName),
			Date:       t.get(row, ColDate),
			Opponent:   t.get(row, ColOpponent),
			Overs:      t.get(row, ColOvers),
			Wickets:    t.get(row, ColWickets),
			Runs:       t.get(row, ColRuns),
			Maidens:    t.get(row, ColMaidens),
			Dots:       t.get(row, ColDots),
			HasDots:    hasDots,
		})
	}
	return out, nil
}

// WriteBatting 按 BattingHeader 输出
func WriteBatting(w io.Writer, rows []model.RawBattingRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BattingHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.PlayerName, r.Date, r.Opponent, r.Tournament, r.Dismissal,
			r.Runs, r.Balls, r.Fours, r.Sixes, r.Dots}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBowling 按 BowlingHeader 输出；来源没有 Dots 列的行写 "0"，读回后与规范化结果一致
func WriteBowling(w io.Writer, rows []model.RawBowlingRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BowlingHeader); err != nil {
		return err
	}
	for _, r := range rows {
		dots := r.Dots
		if !r.HasDots {
			dots = "0"
		}
		if err := cw.Write([]string{r.PlayerName, r.Date, r.Opponent, r.Overs, r.Wickets,
			r.Runs, r.Maidens, dots}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
