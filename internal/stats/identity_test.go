package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"CricketStats/internal/model"
)

func TestIdentityKey(t *testing.T) {
	assert.Equal(t, "jose perez", IdentityKey("  José   Pérez "))
	assert.Equal(t, IdentityKey("SAM LEE"), IdentityKey("sam lee"))
}

func TestIdentityResolverMergesVariants(t *testing.T) {
	recs := batting(t,
		model.RawBattingRow{PlayerName: "Sam Lee", Dismissal: "b.X", Runs: "1"},
		model.RawBattingRow{PlayerName: "sam  lee", Dismissal: "b.X", Runs: "2"},
		model.RawBattingRow{PlayerName: "Ravi", Dismissal: "b.X", Runs: "3"},
	)

	resolved := NewIdentityResolver().ResolveBatting(recs)
	aggs := AggregateBatting(resolved, DefaultSettings())

	assert.Equal(t, []string{"Ravi", "Sam Lee"}, names(aggs))
	assert.Equal(t, int64(3), aggs[1].Runs)
	// 原记录不变
	assert.Equal(t, "sam  lee", recs[1].PlayerName)
}
