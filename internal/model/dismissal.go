package model

// DismissalType 出局方式分类（封闭集合）
type DismissalType string

const (
	DismissalRunOut       DismissalType = "Run Out"
	DismissalLBW          DismissalType = "LBW"
	DismissalCaughtBehind DismissalType = "Caught Behind"
	DismissalCaught       DismissalType = "Caught"
	DismissalBowled       DismissalType = "Bowled"
	DismissalOther        DismissalType = "Other"
)

// DismissalTypes 固定的展示顺序
var DismissalTypes = []DismissalType{
	DismissalRunOut,
	DismissalLBW,
	DismissalCaughtBehind,
	DismissalCaught,
	DismissalBowled,
	DismissalOther,
}

// DismissalShare 某一出局方式的次数与占比
type DismissalShare struct {
	Type       DismissalType `json:"type"`
	Count      int           `json:"count"`
	Proportion float64       `json:"proportion"`
}

// DismissalBreakdown 单个球员的出局方式分布
type DismissalBreakdown struct {
	PlayerName string           `json:"player_name"`
	Total      int              `json:"total"`
	Shares     []DismissalShare `json:"shares"`
}
