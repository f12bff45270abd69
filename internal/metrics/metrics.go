// Package metrics 导入与采集流程的 Prometheus 指标，由 /metrics 暴露
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 表类型标签值
const (
	KindBatting = "batting"
	KindBowling = "bowling"
)

// Recorder 持有独立的 Registry，测试中可多次创建互不冲突
type Recorder struct {
	reg *prometheus.Registry

	rows      *prometheus.CounterVec   // cricket_rows_total{kind,stage}
	coercion  *prometheus.CounterVec   // cricket_coercion_failures_total{kind,field}
	fetches   *prometheus.CounterVec   // cricket_collector_fetch_total{kind,status}
	durations *prometheus.HistogramVec // cricket_import_duration_seconds{kind}
}

// NewRecorder 注册全部指标以及 Go 运行时指标
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cricket_rows_total",
			Help: "Rows seen by the import pipeline, partitioned by kind and stage (read, inserted).",
		}, []string{"kind", "stage"}),
		coercion: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cricket_coercion_failures_total",
			Help: "Non-empty cells that could not be parsed and were nulled, partitioned by kind and field.",
		}, []string{"kind", "field"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cricket_collector_fetch_total",
			Help: "Per-player page fetches by the collector, partitioned by kind and status.",
		}, []string{"kind", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cricket_import_duration_seconds",
			Help:    "Time spent importing one batch, partitioned by kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}
	r.reg.MustRegister(
		r.rows, r.coercion, r.fetches, r.durations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler /metrics 的 HTTP 处理器
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// ObserveImport 记录一次导入：读取行数、新增行数、各字段解析失败数与耗时
func (r *Recorder) ObserveImport(kind string, read, inserted int, failures map[string]int, elapsed time.Duration) {
	r.rows.WithLabelValues(kind, "read").Add(float64(read))
	r.rows.WithLabelValues(kind, "inserted").Add(float64(inserted))
	for field, n := range failures {
		r.coercion.WithLabelValues(kind, field).Add(float64(n))
	}
	r.durations.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// ObserveFetch 记录一次球员页面采集结果
func (r *Recorder) ObserveFetch(kind string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.fetches.WithLabelValues(kind, status).Inc()
}
