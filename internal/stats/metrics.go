package stats

import "CricketStats/internal/model"

// Economy 失分 / 轮数；轮数恰好为 0 时用 ZeroOversSubstitute 代替
func Economy(runsConceded, overs float64, s Settings) float64 {
	if overs == 0 {
		overs = s.WithDefaults().ZeroOversSubstitute
	}
	return runsConceded / overs
}

// BattingAverage 得分 / max(局数 - 未出局, MinDismissals)
func BattingAverage(runs int64, innings, notOuts int, s Settings) float64 {
	dismissals := innings - notOuts
	if floor := s.WithDefaults().MinDismissals; dismissals < floor {
		dismissals = floor
	}
	return float64(runs) / float64(dismissals)
}

// StrikeRate 每 100 球得分；没有面对过球时为 0
func StrikeRate(runs, balls int64) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) / float64(balls) * 100
}

// ImpactScore 得分 + 2×四分球 + 3×六分球
func ImpactScore(runs, fours, sixes int64) int64 {
	return runs + 2*fours + 3*sixes
}

func deriveBatting(agg *model.PlayerBattingAggregate, s Settings) {
	agg.Average = BattingAverage(agg.Runs, agg.Innings, agg.NotOuts, s)
	agg.StrikeRate = StrikeRate(agg.Runs, agg.Balls)
	if agg.Innings > 0 {
		agg.AvgBoundariesPerInns = float64(agg.Fours+agg.Sixes) / float64(agg.Innings)
	}
	agg.ImpactScore = ImpactScore(agg.Runs, agg.Fours, agg.Sixes)
}
