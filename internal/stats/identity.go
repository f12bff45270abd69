package stats

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"CricketStats/internal/model"
)

// IdentityKey 球员名归一化键：去变音符、小写、合并空白
func IdentityKey(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// IdentityResolver 把同一归一化键下的不同写法统一成首次出现的写法。
// 可选的聚合前步骤，默认关闭，关闭时按球员名精确匹配分组。
type IdentityResolver struct {
	canonical map[string]string
}

func NewIdentityResolver() *IdentityResolver {
	return &IdentityResolver{canonical: make(map[string]string)}
}

// Canonical 返回 name 对应的统一写法
func (r *IdentityResolver) Canonical(name string) string {
	key := IdentityKey(name)
	if c, ok := r.canonical[key]; ok {
		return c
	}
	r.canonical[key] = name
	return name
}

// ResolveBatting 返回球员名已统一的副本
func (r *IdentityResolver) ResolveBatting(records []*model.BattingRecord) []*model.BattingRecord {
	out := make([]*model.BattingRecord, 0, len(records))
	for _, rec := range records {
		cp := *rec
		cp.PlayerName = r.Canonical(rec.PlayerName)
		out = append(out, &cp)
	}
	return out
}

func (r *IdentityResolver) ResolveBowling(records []*model.BowlingRecord) []*model.BowlingRecord {
	out := make([]*model.BowlingRecord, 0, len(records))
	for _, rec := range records {
		cp := *rec
		cp.PlayerName = r.Canonical(rec.PlayerName)
		out = append(out, &cp)
	}
	return out
}
