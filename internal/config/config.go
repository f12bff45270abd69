package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"CricketStats/internal/stats"
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`    // 服务器配置
	Database  DatabaseConfig  `mapstructure:"database"`  // PostgreSQL配置
	Stats     StatsConfig     `mapstructure:"stats"`     // 统计公式常量
	Import    ImportConfig    `mapstructure:"import"`    // 启动时导入的CSV
	Collector CollectorConfig `mapstructure:"collector"` // 数据采集配置
	CORS      CORSConfig      `mapstructure:"cors"`      // 跨域配置（看板前端）
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `mapstructure:"port"` // 服务端口
	Mode string `mapstructure:"mode"` // Gin运行模式：debug/release/test
}

// DatabaseConfig PostgreSQL数据库配置
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`               // 连接DSN（URL形式）
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
}

// StatsConfig 统计常量；未配置的项使用 stats 包默认值
type StatsConfig struct {
	Formats               []string `mapstructure:"formats"`                 // 击球视图赛事格式（赛事名称子串）
	ZeroOversSubstitute   float64  `mapstructure:"zero_overs_substitute"`   // 轮数为0时的替代分母
	MinDismissals         int      `mapstructure:"min_dismissals"`          // 场均得分分母下限
	TopRunScorers         int      `mapstructure:"top_run_scorers"`         // 得分榜人数
	TopWicketTakers       int      `mapstructure:"top_wicket_takers"`       // 三柱门榜人数
	MostEconomical        int      `mapstructure:"most_economical"`         // 经济率榜人数
	PowerHitterBoundaries float64  `mapstructure:"power_hitter_boundaries"` // 强攻手场均边界球阈值
	OpenerStrikeRate      float64  `mapstructure:"opener_strike_rate"`      // 推荐开局击球率阈值
	ResolvePlayerIdentity bool     `mapstructure:"resolve_player_identity"` // 聚合前统一球员名写法
}

// ImportConfig 启动时批量导入的CSV路径，留空则跳过
type ImportConfig struct {
	BattingCSV string `mapstructure:"batting_csv"`
	BowlingCSV string `mapstructure:"bowling_csv"`
}

// CollectorConfig 从联赛统计网站采集球员逐场数据
type CollectorConfig struct {
	Source          string        `mapstructure:"source"`           // 数据源名称，对应采集器注册表
	BaseURL         string        `mapstructure:"base_url"`         // 网站基础地址
	Season          string        `mapstructure:"season"`           // 赛季，如 2024
	Team            string        `mapstructure:"team"`             // 球队名称
	Timeout         int           `mapstructure:"timeout"`          // 请求超时（秒）
	RetryCount      int           `mapstructure:"retry_count"`      // 重试次数
	RequestInterval time.Duration `mapstructure:"request_interval"` // 两名球员之间的间隔
	Proxy           string        `mapstructure:"proxy"`            // 代理地址
	OutputDir       string        `mapstructure:"output_dir"`       // 采集结果另存CSV的目录，留空不写
}

// CORSConfig 允许的前端来源
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	// 1. 加载 .env（若存在），env 中的值会覆盖 config.yaml 中同名字段
	_ = godotenv.Load() // 忽略错误（.env 可不存在）

	// 2. 读取 config.yaml
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 3. 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("stats.formats", stats.DefaultFormats)
	v.SetDefault("collector.source", "mscl")
	v.SetDefault("collector.base_url", "https://www.mscl.org")
	v.SetDefault("collector.timeout", 30)
	v.SetDefault("collector.retry_count", 3)
	v.SetDefault("collector.request_interval", 1500*time.Millisecond)
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("COLLECTOR_PROXY"); v != "" {
		cfg.Collector.Proxy = v
	}
	if v := os.Getenv("BATTING_CSV"); v != "" {
		cfg.Import.BattingCSV = v
	}
	if v := os.Getenv("BOWLING_CSV"); v != "" {
		cfg.Import.BowlingCSV = v
	}
}

// Settings 转换为统计包使用的常量集合（缺省项回落默认值）
func (s StatsConfig) Settings() stats.Settings {
	return stats.Settings{
		ZeroOversSubstitute:   s.ZeroOversSubstitute,
		MinDismissals:         s.MinDismissals,
		TopRunScorers:         s.TopRunScorers,
		TopWicketTakers:       s.TopWicketTakers,
		MostEconomical:        s.MostEconomical,
		PowerHitterBoundaries: s.PowerHitterBoundaries,
		OpenerStrikeRate:      s.OpenerStrikeRate,
	}.WithDefaults()
}

// FormatList 配置为空时使用默认赛事格式
func (s StatsConfig) FormatList() []string {
	if len(s.Formats) == 0 {
		return stats.DefaultFormats
	}
	return s.Formats
}
