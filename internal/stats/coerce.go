package stats

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v5"
)

// dateLayouts 可接受的日期格式，依次尝试
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"02-Jan-2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// CoercionReport 记录每个字段解析失败的次数（空值不算失败）
type CoercionReport map[string]int

func (r CoercionReport) add(field string) { r[field]++ }

// Total 失败总数
func (r CoercionReport) Total() int {
	n := 0
	for _, c := range r {
		n += c
	}
	return n
}

// coerceInt 文本转整数；空串或解析失败返回 null，ok=false 仅表示非空却无法解析。
// 带小数的数值（如 "12.5"）向零截断保留，不当作失败
func coerceInt(s string) (v null.Int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Int{}, true
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return null.IntFrom(i), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return null.Int{}, false
	}
	return null.IntFrom(int64(math.Trunc(f))), true
}

func coerceFloat(s string) (v null.Float, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Float{}, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return null.Float{}, false
	}
	return null.FloatFrom(f), true
}

func coerceDate(s string) (v null.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return null.TimeFrom(t), true
		}
	}
	return null.Time{}, false
}

// coerceText 空串视为缺失
func coerceText(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
