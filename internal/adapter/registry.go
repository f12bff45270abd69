package adapter

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"CricketStats/internal/adapter/mscl"
	"CricketStats/internal/config"
	"CricketStats/internal/interfaces"
)

// Factory 按采集配置创建数据源实例
type Factory func(cfg *config.CollectorConfig, logger *logrus.Logger) interfaces.StatsCollector

// ========== 数据源工厂注册表：新增数据源仅需添加此处 ==========
var factoryRegistry = map[string]Factory{
	"mscl": mscl.NewMsclAdapter,
}

// NewCollector 按 collector.source 创建采集器
func NewCollector(source string, cfg *config.CollectorConfig, logger *logrus.Logger) (interfaces.StatsCollector, error) {
	factory, ok := factoryRegistry[source]
	if !ok {
		return nil, fmt.Errorf("未支持的数据源: %s（可选: %v）", source, Sources())
	}
	logger.WithField("source", source).Info("采集器初始化成功")
	return factory(cfg, logger), nil
}

// Sources 已注册的数据源名称（排序后）
func Sources() []string {
	out := make([]string, 0, len(factoryRegistry))
	for name := range factoryRegistry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
