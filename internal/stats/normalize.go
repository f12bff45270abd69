package stats

import (
	"encoding/json"
	"strings"

	"github.com/guregu/null/v5"
	"gorm.io/datatypes"

	"CricketStats/internal/model"
)

// InningsPlayed 出局描述恰好等于 "DNB" 时为 0，否则为 1
func InningsPlayed(dismissal string) int {
	if dismissal == DNB {
		return 0
	}
	return 1
}

// WasNotOut 出局描述（小写）包含 "not out"
func WasNotOut(dismissal string) bool {
	return strings.Contains(strings.ToLower(dismissal), "not out")
}

// NormalizeBatting 将原始击球行转换为带类型的记录；单字段解析失败只置 null，不丢行
func NormalizeBatting(rows []model.RawBattingRow) ([]*model.BattingRecord, CoercionReport) {
	report := CoercionReport{}
	seen := occurrences{}
	out := make([]*model.BattingRecord, 0, len(rows))
	for _, r := range rows {
		rec := &model.BattingRecord{
			RowKey:        BattingRowKey(r, seen.next(battingFields(r))),
			PlayerName:    r.PlayerName,
			Opponent:      coerceText(r.Opponent),
			Tournament:    coerceText(r.Tournament),
			Dismissal:     r.Dismissal,
			WasNotOut:     WasNotOut(r.Dismissal),
			InningsPlayed: InningsPlayed(r.Dismissal),
			RawFields:     rawJSON(r),
		}
		rec.MatchDate = date(report, "Date", r.Date)
		rec.Runs = integer(report, "Runs", r.Runs)
		rec.Balls = integer(report, "Balls", r.Balls)
		rec.Fours = integer(report, "4s", r.Fours)
		rec.Sixes = integer(report, "6s", r.Sixes)
		rec.Dots = integer(report, "Dots", r.Dots)
		out = append(out, rec)
	}
	return out, report
}

// NormalizeBowling 将原始投球行转换为带类型的记录，并在加载时计算单行经济率
func NormalizeBowling(rows []model.RawBowlingRow, s Settings) ([]*model.BowlingRecord, CoercionReport) {
	s = s.WithDefaults()
	report := CoercionReport{}
	seen := occurrences{}
	out := make([]*model.BowlingRecord, 0, len(rows))
	for _, r := range rows {
		rec := &model.BowlingRecord{
			RowKey:     BowlingRowKey(r, seen.next(bowlingFields(r))),
			PlayerName: r.PlayerName,
			Opponent:   coerceText(r.Opponent),
			RawFields:  rawJSON(r),
		}
		rec.MatchDate = date(report, "Date", r.Date)
		rec.Overs = decimal(report, "Overs", r.Overs)
		rec.Wickets = integer(report, "Wickets", r.Wickets)
		rec.RunsConceded = integer(report, "Runs", r.Runs)
		rec.Maidens = integer(report, "Maidens", r.Maidens)
		if r.HasDots {
			rec.Dots = integer(report, "Dots", r.Dots)
		} else {
			rec.Dots = null.IntFrom(0)
		}
		rec.Economy = RowEconomy(rec, s)
		out = append(out, rec)
	}
	return out, report
}

// RowEconomy 单行经济率；失分或轮数缺失时为 null
func RowEconomy(rec *model.BowlingRecord, s Settings) null.Float {
	if !rec.RunsConceded.Valid || !rec.Overs.Valid {
		return null.Float{}
	}
	return null.FloatFrom(Economy(float64(rec.RunsConceded.Int64), rec.Overs.Float64, s))
}

func integer(report CoercionReport, field, s string) null.Int {
	v, ok := coerceInt(s)
	if !ok {
		report.add(field)
	}
	return v
}

func decimal(report CoercionReport, field, s string) null.Float {
	v, ok := coerceFloat(s)
	if !ok {
		report.add(field)
	}
	return v
}

func date(report CoercionReport, field, s string) null.Time {
	v, ok := coerceDate(s)
	if !ok {
		report.add(field)
	}
	return v
}

func rawJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return b
}
