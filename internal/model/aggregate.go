package model

// PlayerBattingAggregate 单个球员在当前视图下的击球汇总
// 比值字段不做四舍五入，展示层自行处理
type PlayerBattingAggregate struct {
	PlayerName           string  `json:"player_name"`
	Matches              int     `json:"matches"`
	Innings              int     `json:"innings"`
	Runs                 int64   `json:"runs"`
	Balls                int64   `json:"balls"`
	Fours                int64   `json:"fours"`
	Sixes                int64   `json:"sixes"`
	Dots                 int64   `json:"dots"`
	NotOuts              int     `json:"not_outs"`
	Average              float64 `json:"average"`
	StrikeRate           float64 `json:"strike_rate"`
	AvgBoundariesPerInns float64 `json:"avg_boundaries_per_innings"`
	ImpactScore          int64   `json:"impact_score"`
}

// PlayerBowlingAggregate 单个球员在当前视图下的投球汇总
type PlayerBowlingAggregate struct {
	PlayerName   string  `json:"player_name"`
	Matches      int     `json:"matches"`
	Overs        float64 `json:"overs"`
	Wickets      int64   `json:"wickets"`
	RunsConceded int64   `json:"runs_conceded"`
	Maidens      int64   `json:"maidens"`
	Dots         int64   `json:"dots"`
	Economy      float64 `json:"economy"`
}

// TimelinePoint 某球员某日的得分（时间序列视图）
type TimelinePoint struct {
	Date       string `json:"date"`
	PlayerName string `json:"player_name"`
	Runs       int64  `json:"runs"`
}
