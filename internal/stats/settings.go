// Package stats 击球/投球统计的核心流水线：规范化 → 筛选 → 按球员聚合 → 派生指标 → 排名。
// 包内全部为纯函数，不做 I/O，也不返回错误：解析失败置 null，除零按固定值替换，空集返回空结果。
package stats

const (
	// All 筛选项的"不过滤"哨兵值
	All = "All"
	// DNB Did Not Bat，出局描述等于该值（区分大小写）时该行不计入击球
	DNB = "DNB"

	// DefaultZeroOversSubstitute 投球轮数为 0 时用来代替的分母（近似值，不要"修正"）
	DefaultZeroOversSubstitute = 0.1
	// DefaultMinDismissals 场均得分分母（出局次数）的下限
	DefaultMinDismissals = 1

	DefaultTopRunScorers         = 5
	DefaultTopWicketTakers       = 5
	DefaultMostEconomical        = 7
	DefaultPowerHitterBoundaries = 3.0
	DefaultOpenerStrikeRate      = 100.0
)

// DefaultFormats 击球视图可选的赛事格式（按赛事名称子串匹配）
var DefaultFormats = []string{"ProT20", "Pro40"}

// Settings 统计公式里的常量与排名规模，可由配置覆盖
type Settings struct {
	ZeroOversSubstitute   float64
	MinDismissals         int
	TopRunScorers         int
	TopWicketTakers       int
	MostEconomical        int
	PowerHitterBoundaries float64
	OpenerStrikeRate      float64
}

// DefaultSettings 返回默认常量
func DefaultSettings() Settings {
	return Settings{
		ZeroOversSubstitute:   DefaultZeroOversSubstitute,
		MinDismissals:         DefaultMinDismissals,
		TopRunScorers:         DefaultTopRunScorers,
		TopWicketTakers:       DefaultTopWicketTakers,
		MostEconomical:        DefaultMostEconomical,
		PowerHitterBoundaries: DefaultPowerHitterBoundaries,
		OpenerStrikeRate:      DefaultOpenerStrikeRate,
	}
}

// WithDefaults 未设置（<=0）的字段回落到默认值，避免公式拿到 0 常量
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.ZeroOversSubstitute <= 0 {
		s.ZeroOversSubstitute = d.ZeroOversSubstitute
	}
	if s.MinDismissals <= 0 {
		s.MinDismissals = d.MinDismissals
	}
	if s.TopRunScorers <= 0 {
		s.TopRunScorers = d.TopRunScorers
	}
	if s.TopWicketTakers <= 0 {
		s.TopWicketTakers = d.TopWicketTakers
	}
	if s.MostEconomical <= 0 {
		s.MostEconomical = d.MostEconomical
	}
	if s.PowerHitterBoundaries <= 0 {
		s.PowerHitterBoundaries = d.PowerHitterBoundaries
	}
	if s.OpenerStrikeRate <= 0 {
		s.OpenerStrikeRate = d.OpenerStrikeRate
	}
	return s
}
