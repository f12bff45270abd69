package model

// RawBattingRow 表格来源（CSV / 采集页面）的一行击球原始数据，所有字段均为文本
type RawBattingRow struct {
	PlayerName string `json:"Player Name"`
	Date       string `json:"Date"`
	Opponent   string `json:"Opponent"`
	Tournament string `json:"Tournament"`
	Dismissal  string `json:"Dismissal"`
	Runs       string `json:"Runs"`
	Balls      string `json:"Balls"`
	Fours      string `json:"4s"`
	Sixes      string `json:"6s"`
	Dots       string `json:"Dots"`
}

// RawBowlingRow 一行投球原始数据
// HasDots 为 false 表示来源表没有 Dots 列（按 0 处理），与"有列但值无法解析"区分开
type RawBowlingRow struct {
	PlayerName string `json:"Player Name"`
	Date       string `json:"Date"`
	Opponent   string `json:"Opponent"`
	Overs      string `json:"Overs"`
	Wickets    string `json:"Wickets"`
	Runs       string `json:"Runs"`
	Maidens    string `json:"Maidens"`
	Dots       string `json:"Dots,omitempty"`
	HasDots    bool   `json:"-"`
}
