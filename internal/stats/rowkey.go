package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"

	"CricketStats/internal/model"
)

const fieldSep = "\x1f"

// BattingRowKey 原始行指纹。occurrence 为同一批次内内容完全相同的行的序号（从 1 开始），
// 同一文件重复导入时指纹不变，而文件内两条相同的行（如同日两场 DNB）仍各算一场
func BattingRowKey(r model.RawBattingRow, occurrence int) string {
	return hashFields(append(battingFields(r), strconv.Itoa(occurrence))...)
}

// BowlingRowKey 同上（投球）
func BowlingRowKey(r model.RawBowlingRow, occurrence int) string {
	return hashFields(append(bowlingFields(r), strconv.Itoa(occurrence))...)
}

func battingFields(r model.RawBattingRow) []string {
	return []string{"batting", r.PlayerName, r.Date, r.Opponent, r.Tournament, r.Dismissal,
		r.Runs, r.Balls, r.Fours, r.Sixes, r.Dots}
}

func bowlingFields(r model.RawBowlingRow) []string {
	return []string{"bowling", r.PlayerName, r.Date, r.Opponent, r.Overs, r.Wickets,
		r.Runs, r.Maidens, r.Dots}
}

// occurrences 按行内容计数，返回本行是第几次出现
type occurrences map[string]int

func (o occurrences) next(fields []string) int {
	k := strings.Join(fields, fieldSep)
	o[k]++
	return o[k]
}

func hashFields(fields ...string) string {
	h := xxh3.HashString128(strings.Join(fields, fieldSep))
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}
